package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type HallTier string

const (
	TierStandard HallTier = "Standard"
	TierIMAX     HallTier = "IMAX"
	TierLounge   HallTier = "Lounge"
)

// MaxHallRows is bounded by the seat row alphabet (A-Z).
const MaxHallRows = 26

var tierPrices = map[HallTier]decimal.Decimal{
	TierStandard: decimal.RequireFromString("15.00"),
	TierIMAX:     decimal.RequireFromString("20.00"),
	TierLounge:   decimal.RequireFromString("30.00"),
}

// TierPrice returns the base seat price for a hall tier. Unknown tiers are
// rejected instead of being priced as Standard.
func TierPrice(tier HallTier) (decimal.Decimal, error) {
	price, ok := tierPrices[tier]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownHallTier, tier)
	}

	return price, nil
}

func (t HallTier) IsValid() bool {
	_, ok := tierPrices[t]
	return ok
}

type CinemaHall struct {
	ID   int
	Name string
	Tier HallTier
	Rows int
	Cols int
}

func (h *CinemaHall) Validate() error {
	if h.ID < 1 {
		return fmt.Errorf("hall id must be positive, got %d", h.ID)
	}

	if h.Rows < 1 || h.Rows > MaxHallRows {
		return fmt.Errorf("hall %d: row count must be between 1 and %d, got %d", h.ID, MaxHallRows, h.Rows)
	}

	if h.Cols < 1 {
		return fmt.Errorf("hall %d: column count must be positive, got %d", h.ID, h.Cols)
	}

	if !h.Tier.IsValid() {
		return fmt.Errorf("hall %d: %w: %q", h.ID, ErrUnknownHallTier, h.Tier)
	}

	return nil
}

// BasePrice is the price of every seat in the hall. Halls that passed
// Validate always have a known tier.
func (h *CinemaHall) BasePrice() decimal.Decimal {
	price, err := TierPrice(h.Tier)
	if err != nil {
		return decimal.Zero
	}

	return price
}

// Contains reports whether the seat lies within the hall's row and column bounds.
func (h *CinemaHall) Contains(id SeatID) bool {
	row := id.RowIndex()
	return row >= 0 && row < h.Rows && id.Col >= 1 && id.Col <= h.Cols
}

// SeatIDs lists every seat coordinate of the hall in row-major order.
func (h *CinemaHall) SeatIDs() []SeatID {
	ids := make([]SeatID, 0, h.Rows*h.Cols)

	for r := 0; r < h.Rows; r++ {
		for c := 1; c <= h.Cols; c++ {
			ids = append(ids, SeatID{Row: byte('A' + r), Col: c})
		}
	}

	return ids
}
