package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierPrice(t *testing.T) {
	tests := []struct {
		name      string
		tier      HallTier
		wantPrice string
		wantErr   error
	}{
		{name: "standard", tier: TierStandard, wantPrice: "15"},
		{name: "imax", tier: TierIMAX, wantPrice: "20"},
		{name: "lounge", tier: TierLounge, wantPrice: "30"},
		{name: "unknown tier is an error", tier: HallTier("4DX"), wantErr: ErrUnknownHallTier},
		{name: "empty tier is an error", tier: "", wantErr: ErrUnknownHallTier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := TierPrice(tt.tier)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.wantPrice).Equal(price), "got %s", price)
		})
	}
}

func TestTierPriceOrdering(t *testing.T) {
	standard, _ := TierPrice(TierStandard)
	imax, _ := TierPrice(TierIMAX)
	lounge, _ := TierPrice(TierLounge)

	assert.True(t, standard.LessThan(imax))
	assert.True(t, imax.LessThan(lounge))
}

func TestCinemaHallContains(t *testing.T) {
	hall := &CinemaHall{ID: 1, Tier: TierStandard, Rows: 2, Cols: 3}

	tests := []struct {
		seat SeatID
		want bool
	}{
		{SeatID{Row: 'A', Col: 1}, true},
		{SeatID{Row: 'B', Col: 3}, true},
		{SeatID{Row: 'C', Col: 1}, false},
		{SeatID{Row: 'A', Col: 0}, false},
		{SeatID{Row: 'A', Col: 4}, false},
		{SeatID{Row: '1', Col: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.seat.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, hall.Contains(tt.seat))
		})
	}
}

func TestCinemaHallValidate(t *testing.T) {
	tests := []struct {
		name    string
		hall    CinemaHall
		wantErr bool
		errIs   error
	}{
		{name: "valid hall", hall: CinemaHall{ID: 1, Tier: TierIMAX, Rows: 10, Cols: 12}},
		{name: "non-positive id", hall: CinemaHall{ID: 0, Tier: TierIMAX, Rows: 1, Cols: 1}, wantErr: true},
		{name: "too many rows", hall: CinemaHall{ID: 1, Tier: TierIMAX, Rows: 27, Cols: 1}, wantErr: true},
		{name: "no columns", hall: CinemaHall{ID: 1, Tier: TierIMAX, Rows: 1, Cols: 0}, wantErr: true},
		{name: "unknown tier", hall: CinemaHall{ID: 1, Tier: "Drive-in", Rows: 1, Cols: 1}, wantErr: true, errIs: ErrUnknownHallTier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.hall.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
			}
		})
	}
}

func TestCinemaHallSeatIDs(t *testing.T) {
	hall := &CinemaHall{ID: 1, Tier: TierStandard, Rows: 2, Cols: 2}

	ids := hall.SeatIDs()

	assert.Equal(t, []SeatID{
		{Row: 'A', Col: 1}, {Row: 'A', Col: 2},
		{Row: 'B', Col: 1}, {Row: 'B', Col: 2},
	}, ids)
}
