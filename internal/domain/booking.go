package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type BookingRequest struct {
	MovieID int
	Date    time.Time
	Time    string
	HallID  int
	SeatIDs []SeatID
}

// Validate checks the structural invariants of the request. Every violation
// wraps ErrInvalidRequest.
func (r BookingRequest) Validate() error {
	var errs []error

	if r.MovieID < 1 {
		errs = append(errs, fmt.Errorf("movie id must be positive, got %d", r.MovieID))
	}

	if r.HallID < 1 {
		errs = append(errs, fmt.Errorf("hall id must be positive, got %d", r.HallID))
	}

	if r.Date.IsZero() {
		errs = append(errs, errors.New("date is required"))
	}

	if strings.TrimSpace(r.Time) == "" {
		errs = append(errs, errors.New("time is required"))
	}

	if len(r.SeatIDs) == 0 {
		errs = append(errs, errors.New("at least one seat is required"))
	}

	seen := make(map[SeatID]bool, len(r.SeatIDs))
	for _, id := range r.SeatIDs {
		if seen[id] {
			errs = append(errs, fmt.Errorf("seat %s requested more than once", id))
			continue
		}
		seen[id] = true
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalidRequest, errors.Join(errs...))
}

// BookingResult is only built when every requested seat was reserved.
type BookingResult struct {
	Movie    *Movie
	Showtime *Showtime
	Seats    []Seat
}

func (r *BookingResult) Total() decimal.Decimal {
	total := decimal.Zero

	for _, seat := range r.Seats {
		total = total.Add(seat.Price)
	}

	return total
}

type Ticket struct {
	ID       int64
	Showtime *Showtime
	Hall     *CinemaHall
	Seats    []Seat
	IssuedAt time.Time
}

func NewTicket(id int64, result *BookingResult, issuedAt time.Time) Ticket {
	seats := make([]Seat, len(result.Seats))
	copy(seats, result.Seats)

	return Ticket{
		ID:       id,
		Showtime: result.Showtime,
		Hall:     result.Showtime.Hall,
		Seats:    seats,
		IssuedAt: issuedAt,
	}
}

// UnitPrice is the price of one seat. All seats of a showtime share the
// hall's base price.
func (t Ticket) UnitPrice() decimal.Decimal {
	if len(t.Seats) == 0 {
		return decimal.Zero
	}

	return t.Seats[0].Price
}

func (t Ticket) TotalPrice() decimal.Decimal {
	return t.UnitPrice().Mul(decimal.NewFromInt(int64(len(t.Seats))))
}

// TicketRepository keeps issued tickets so they can be paid for later.
type TicketRepository interface {
	Save(ctx context.Context, ticket Ticket) error
	GetById(ctx context.Context, id int64) (*Ticket, error)
	IsPaid(ctx context.Context, id int64) (bool, error)
	// MarkPaid fails with ErrTicketAlreadyPaid on the second call for a ticket.
	MarkPaid(ctx context.Context, id int64, paymentID int64) error
}
