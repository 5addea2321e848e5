// Package api holds the JSON request and response bodies of the HTTP API.
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status       string            `json:"status"`
	SystemInfo   SystemInfo        `json:"systemInfo"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

type Movie struct {
	Id              int                 `json:"id"`
	Title           string              `json:"title"`
	DurationMinutes int                 `json:"durationMinutes"`
	Director        string              `json:"director,omitempty"`
	ReleaseDate     *openapi_types.Date `json:"releaseDate,omitempty"`
}

type MovieListResponse struct {
	Movies []Movie `json:"movies"`
}

type Hall struct {
	Id        int             `json:"id"`
	Name      string          `json:"name"`
	Tier      string          `json:"tier"`
	Rows      int             `json:"rows"`
	Cols      int             `json:"cols"`
	BasePrice decimal.Decimal `json:"basePrice"`
}

type Showtime struct {
	Id      int                `json:"id"`
	MovieId int                `json:"movieId"`
	Date    openapi_types.Date `json:"date"`
	Time    string             `json:"time"`
	Hall    Hall               `json:"hall"`
}

type ShowtimeListResponse struct {
	Movie     Movie      `json:"movie"`
	Showtimes []Showtime `json:"showtimes"`
}

type Seat struct {
	Id     string          `json:"id"`
	Type   string          `json:"type"`
	Status string          `json:"status"`
	Price  decimal.Decimal `json:"price"`
}

type SeatMapResponse struct {
	Showtime  Showtime `json:"showtime"`
	Available int      `json:"available"`
	Seats     []Seat   `json:"seats"`
}

type CreateBookingRequest struct {
	MovieId int                `json:"movieId" validate:"gte=1"`
	Date    openapi_types.Date `json:"date" validate:"required"`
	Time    string             `json:"time" validate:"required,show_time"`
	HallId  int                `json:"hallId" validate:"gte=1"`
	Seats   []string           `json:"seats" validate:"min=1,max=26,dive,seat_id"`
}

type TicketResponse struct {
	Id         int64           `json:"id"`
	Movie      Movie           `json:"movie"`
	Showtime   Showtime        `json:"showtime"`
	Seats      []Seat          `json:"seats"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	IssuedAt   time.Time       `json:"issuedAt"`
}

type PaymentMethod struct {
	Kind    string `json:"kind" validate:"oneof=cash bank_transfer"`
	Account string `json:"account,omitempty" validate:"required_if=Kind bank_transfer"`
}

type CreatePaymentRequest struct {
	TicketId int64            `json:"ticketId" validate:"gte=1"`
	Method   PaymentMethod    `json:"method"`
	Tendered *decimal.Decimal `json:"tendered,omitempty"`
}

type PaymentResponse struct {
	Id          int64           `json:"id"`
	TicketId    int64           `json:"ticketId"`
	Kind        string          `json:"kind"`
	Account     string          `json:"account,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Status      string          `json:"status"`
	Reference   string          `json:"reference"`
	ChangeDue   decimal.Decimal `json:"changeDue"`
	PaymentDate time.Time       `json:"paymentDate"`
}

type ConcessionLine struct {
	Name     string          `json:"name" validate:"required,max=100"`
	Category string          `json:"category" validate:"oneof=beverage popcorn hot_food"`
	Size     string          `json:"size,omitempty" validate:"omitempty,oneof=S M L"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity" validate:"gte=1,lte=50"`
}

type ConcessionQuoteRequest struct {
	Items []ConcessionLine `json:"items" validate:"min=1,max=50,dive"`
}

type ConcessionQuoteLine struct {
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	CategoryLabel string          `json:"categoryLabel"`
	Size          string          `json:"size,omitempty"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	LineTotal     decimal.Decimal `json:"lineTotal"`
}

type ConcessionQuoteResponse struct {
	Lines     []ConcessionQuoteLine      `json:"lines"`
	Subtotals map[string]decimal.Decimal `json:"subtotals"`
	Total     decimal.Decimal            `json:"total"`
}

type CreateCustomerRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,e164"`
	Password  string `json:"password" validate:"required,password"`
}

type CustomerResponse struct {
	Id        int       `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
