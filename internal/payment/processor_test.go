package payment

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/cinema-booking/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTicket() domain.Ticket {
	hall := &domain.CinemaHall{ID: 2, Name: "IMAX", Tier: domain.TierIMAX, Rows: 2, Cols: 2}
	showtime := &domain.Showtime{ID: 1, Movie: &domain.Movie{ID: 1}, Hall: hall, Time: "18:00"}

	return domain.NewTicket(7, &domain.BookingResult{
		Movie:    showtime.Movie,
		Showtime: showtime,
		Seats: []domain.Seat{
			domain.NewSeat(hall, domain.SeatID{Row: 'A', Col: 1}, domain.SeatBooked),
			domain.NewSeat(hall, domain.SeatID{Row: 'A', Col: 2}, domain.SeatBooked),
		},
	}, time.Now())
}

func TestProcess(t *testing.T) {
	paidAt := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		method        Method
		tendered      string
		wantErr       error
		wantKind      domain.PaymentKind
		wantChangeDue string
	}{
		{
			name:          "cash with change",
			method:        Cash(),
			tendered:      "50",
			wantKind:      domain.PaymentKindCash,
			wantChangeDue: "10",
		},
		{
			name:          "exact cash",
			method:        Cash(),
			tendered:      "40.00",
			wantKind:      domain.PaymentKindCash,
			wantChangeDue: "0",
		},
		{
			name:     "cash short of the total",
			method:   Cash(),
			tendered: "39.99",
			wantErr:  ErrInsufficientCash,
		},
		{
			name:          "bank transfer with spaced account",
			method:        BankTransfer("tr33 0006 1005 1978 6457 8413 26"),
			tendered:      "0",
			wantKind:      domain.PaymentKindBankTransfer,
			wantChangeDue: "0",
		},
		{
			name:     "bank transfer with short account",
			method:   BankTransfer("1234"),
			tendered: "0",
			wantErr:  ErrInvalidAccount,
		},
		{
			name:     "bank transfer with symbols",
			method:   BankTransfer("TR33-0006-1005"),
			tendered: "0",
			wantErr:  ErrInvalidAccount,
		},
		{
			name:     "zero method",
			method:   Method{},
			tendered: "100",
			wantErr:  ErrUnknownMethod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			processor := NewProcessor(
				WithPaymentSequence(domain.NewSequence(10)),
				WithClock(func() time.Time { return paidAt }),
			)

			receipt, err := processor.Process(tt.method, testTicket(), decimal.RequireFromString(tt.tendered))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, receipt)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(11), receipt.ID)
			assert.Equal(t, int64(7), receipt.TicketID)
			assert.Equal(t, tt.wantKind, receipt.Kind)
			assert.Equal(t, "40", receipt.Amount.String())
			assert.Equal(t, tt.wantChangeDue, receipt.ChangeDue.String())
			assert.Equal(t, domain.PaymentStatusCompleted, receipt.Status)
			assert.Equal(t, paidAt, receipt.PaymentDate)
			assert.NotEmpty(t, receipt.Reference)

			if tt.wantKind == domain.PaymentKindBankTransfer {
				_, err := uuid.Parse(receipt.Reference)
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRejectsNonPositiveAmount(t *testing.T) {
	err := Validate(Cash(), decimal.Zero, decimal.NewFromInt(5))

	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("bank_transfer", "de89 3704 0044 0532 0130 00")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentKindBankTransfer, m.Kind())
	assert.Equal(t, "DE89370400440532013000", m.Account())
	assert.Equal(t, "******************3000", m.MaskedAccount())

	m, err = ParseMethod("cash", "ignored")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentKindCash, m.Kind())
	assert.Empty(t, m.Account())

	_, err = ParseMethod("card", "")
	assert.ErrorIs(t, err, ErrUnknownMethod)
}
