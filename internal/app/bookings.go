package app

import (
	"fmt"
	"net/http"

	"github.com/metinatakli/cinema-booking/api"
	"github.com/metinatakli/cinema-booking/internal/jsonutil"
	appmiddleware "github.com/metinatakli/cinema-booking/internal/middleware"
)

// CreateBooking reserves the requested seats of one showtime and issues a
// ticket for them. Either every seat is booked or none is.
func (app *Application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var input api.CreateBookingRequest

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

	req, err := toBookingRequest(input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	_, ticket, err := app.bookings.BookAndIssue(r.Context(), req)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = app.ticketRepo.Save(r.Context(), *ticket)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	appmiddleware.Logger(r.Context(), app.logger).Info("ticket issued",
		"ticket_id", ticket.ID,
		"showtime_id", ticket.Showtime.ID,
		"seats", len(ticket.Seats),
		"total", ticket.TotalPrice().StringFixed(2),
	)

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/tickets/%d", ticket.ID))

	err = jsonutil.WriteJSON(w, http.StatusCreated, toApiTicket(ticket), headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetTicket(w http.ResponseWriter, r *http.Request) {
	ticketID, err := readIDParam(r, "ticketId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ticket, err := app.ticketRepo.GetById(r.Context(), int64(ticketID))
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = jsonutil.WriteJSON(w, http.StatusOK, toApiTicket(ticket), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
