package app

import (
	"fmt"
	"net/http"

	"github.com/metinatakli/cinema-booking/api"
	"github.com/metinatakli/cinema-booking/internal/domain"
	"github.com/metinatakli/cinema-booking/internal/jsonutil"
	appmiddleware "github.com/metinatakli/cinema-booking/internal/middleware"
	"github.com/metinatakli/cinema-booking/internal/payment"
	"github.com/shopspring/decimal"
)

// CreatePayment settles an issued ticket. The amount is always the ticket's
// total price.
func (app *Application) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var input api.CreatePaymentRequest

	err := jsonutil.ReadJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	method, err := payment.ParseMethod(input.Method.Kind, input.Method.Account)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	ticket, err := app.ticketRepo.GetById(r.Context(), input.TicketId)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	paid, err := app.ticketRepo.IsPaid(r.Context(), ticket.ID)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	if paid {
		app.domainErrorResponse(w, r, fmt.Errorf("%w: ticket %d", domain.ErrTicketAlreadyPaid, ticket.ID))
		return
	}

	tendered := decimal.Zero
	if input.Tendered != nil {
		tendered = *input.Tendered
	}

	receipt, err := app.payments.Process(method, *ticket, tendered)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.ticketRepo.MarkPaid(r.Context(), ticket.ID, receipt.ID)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	appmiddleware.Logger(r.Context(), app.logger).Info("payment completed",
		"payment_id", receipt.ID,
		"ticket_id", ticket.ID,
		"kind", receipt.Kind,
		"amount", receipt.Amount.StringFixed(2),
	)

	err = jsonutil.WriteJSON(w, http.StatusCreated, toApiPayment(receipt, method), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiPayment(receipt *domain.Payment, method payment.Method) api.PaymentResponse {
	return api.PaymentResponse{
		Id:          receipt.ID,
		TicketId:    receipt.TicketID,
		Kind:        string(receipt.Kind),
		Account:     method.MaskedAccount(),
		Amount:      receipt.Amount,
		Currency:    receipt.Currency,
		Status:      string(receipt.Status),
		Reference:   receipt.Reference,
		ChangeDue:   receipt.ChangeDue,
		PaymentDate: receipt.PaymentDate,
	}
}
