package domain

import (
	"cmp"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// SeatID is a seat coordinate: a row letter and a 1-based column.
type SeatID struct {
	Row byte
	Col int
}

func ParseSeatID(s string) (SeatID, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if len(s) < 2 {
		return SeatID{}, fmt.Errorf("%w: %q", ErrInvalidSeatID, s)
	}

	row := s[0]
	if row < 'A' || row > 'Z' {
		return SeatID{}, fmt.Errorf("%w: %q: row must be a letter", ErrInvalidSeatID, s)
	}

	col, err := strconv.Atoi(s[1:])
	if err != nil || col < 1 {
		return SeatID{}, fmt.Errorf("%w: %q: column must be a positive number", ErrInvalidSeatID, s)
	}

	return SeatID{Row: row, Col: col}, nil
}

func (id SeatID) String() string {
	return fmt.Sprintf("%c%d", id.Row, id.Col)
}

// Compare orders seats row first, then column.
func (id SeatID) Compare(other SeatID) int {
	if c := cmp.Compare(id.Row, other.Row); c != 0 {
		return c
	}

	return cmp.Compare(id.Col, other.Col)
}

// RowIndex is the zero-based row index, or -1 for a non-letter row.
func (id SeatID) RowIndex() int {
	if id.Row < 'A' || id.Row > 'Z' {
		return -1
	}

	return int(id.Row - 'A')
}

func (id SeatID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *SeatID) UnmarshalText(text []byte) error {
	parsed, err := ParseSeatID(string(text))
	if err != nil {
		return err
	}

	*id = parsed
	return nil
}

type SeatStatus string

const (
	SeatAvailable SeatStatus = "Available"
	SeatBooked    SeatStatus = "Booked"
)

type SeatType string

const (
	SeatTypeStandard SeatType = "Standard"
	SeatTypeIMAX     SeatType = "IMAX"
	SeatTypeLounge   SeatType = "Lounge"
)

// SeatTypeForTier maps a hall tier to the seat type installed in that hall.
func SeatTypeForTier(tier HallTier) SeatType {
	switch tier {
	case TierIMAX:
		return SeatTypeIMAX
	case TierLounge:
		return SeatTypeLounge
	default:
		return SeatTypeStandard
	}
}

// Seat is a read-only view of one seat of a showtime.
type Seat struct {
	ID     SeatID
	Type   SeatType
	Status SeatStatus
	HallID int
	Price  decimal.Decimal
}

func (s Seat) IsAvailable() bool {
	return s.Status == SeatAvailable
}

// NewSeat builds the view of a seat in hall h with the given status.
func NewSeat(h *CinemaHall, id SeatID, status SeatStatus) Seat {
	return Seat{
		ID:     id,
		Type:   SeatTypeForTier(h.Tier),
		Status: status,
		HallID: h.ID,
		Price:  h.BasePrice(),
	}
}

type SeatRepository interface {
	// ReserveSeats books every seat in seatIDs for the showtime, or none of them.
	ReserveSeats(ctx context.Context, showtime *Showtime, seatIDs []SeatID) ([]Seat, error)
	FindSeat(ctx context.Context, showtime *Showtime, seatID SeatID) (*Seat, error)
	FindSeatsByShowtime(ctx context.Context, showtime *Showtime) ([]Seat, error)
}
