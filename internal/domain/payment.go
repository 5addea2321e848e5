package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusRejected  PaymentStatus = "rejected"
)

type PaymentKind string

const (
	PaymentKindBankTransfer PaymentKind = "bank_transfer"
	PaymentKindCash         PaymentKind = "cash"
)

type Payment struct {
	ID          int64
	TicketID    int64
	Kind        PaymentKind
	Amount      decimal.Decimal
	Currency    string
	Status      PaymentStatus
	Reference   string
	ChangeDue   decimal.Decimal
	PaymentDate time.Time
}
