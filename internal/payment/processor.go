// Package payment settles tickets with one of the supported payment methods.
package payment

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/cinema-booking/internal/domain"
	"github.com/shopspring/decimal"
)

const Currency = "USD"

var (
	ErrInvalidAccount   = errors.New("invalid bank account")
	ErrInsufficientCash = errors.New("tendered cash does not cover the amount")
	ErrUnknownMethod    = errors.New("unknown payment method")
	ErrInvalidAmount    = errors.New("payment amount must be positive")
)

type Processor struct {
	payments *domain.Sequence
	now      func() time.Time
}

type Option func(*Processor)

func WithPaymentSequence(seq *domain.Sequence) Option {
	return func(p *Processor) {
		p.payments = seq
	}
}

func WithClock(now func() time.Time) Option {
	return func(p *Processor) {
		p.now = now
	}
}

func NewProcessor(opts ...Option) *Processor {
	p := &Processor{
		payments: domain.NewSequence(0),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Validate checks a payment without executing it. tendered only matters for
// cash payments.
func Validate(method Method, amount, tendered decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	switch method.Kind() {
	case domain.PaymentKindBankTransfer:
		if !accountRgx.MatchString(method.Account()) {
			return fmt.Errorf("%w: expected 8 to 34 letters or digits", ErrInvalidAccount)
		}
	case domain.PaymentKindCash:
		if tendered.LessThan(amount) {
			return fmt.Errorf("%w: short by %s", ErrInsufficientCash, amount.Sub(tendered).StringFixed(2))
		}
	default:
		return ErrUnknownMethod
	}

	return nil
}

// Process settles the ticket's total price. Rejected payments return an
// error and no receipt.
func (p *Processor) Process(method Method, ticket domain.Ticket, tendered decimal.Decimal) (*domain.Payment, error) {
	amount := ticket.TotalPrice()

	if err := Validate(method, amount, tendered); err != nil {
		return nil, err
	}

	receipt := &domain.Payment{
		ID:          p.payments.Next(),
		TicketID:    ticket.ID,
		Kind:        method.Kind(),
		Amount:      amount,
		Currency:    Currency,
		Status:      domain.PaymentStatusCompleted,
		ChangeDue:   decimal.Zero,
		PaymentDate: p.now(),
	}

	switch method.Kind() {
	case domain.PaymentKindBankTransfer:
		receipt.Reference = uuid.NewString()
	case domain.PaymentKindCash:
		receipt.ChangeDue = tendered.Sub(amount)
		receipt.Reference = fmt.Sprintf("CASH-%d", receipt.ID)
	}

	return receipt, nil
}
