package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-booking/api"
	"github.com/metinatakli/cinema-booking/internal/domain"
	"github.com/metinatakli/cinema-booking/internal/jsonutil"
	appmiddleware "github.com/metinatakli/cinema-booking/internal/middleware"
	"github.com/metinatakli/cinema-booking/internal/payment"
	appvalidator "github.com/metinatakli/cinema-booking/internal/validator"
)

// retryAfterSeconds is advertised to clients that hit a busy showtime.
const retryAfterSeconds = "1"

func (app *Application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	appmiddleware.Logger(r.Context(), app.logger).Error(err.Error(), "method", method, "uri", uri)
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	app.errorResponseWithHeaders(w, r, status, message, nil)
}

func (app *Application) errorResponseWithHeaders(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	message string,
	headers http.Header) {

	resp := api.ErrorResponse{
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := jsonutil.WriteJSON(w, status, resp, headers)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	message := "The server encountered a problem and could not process your request"
	app.errorResponse(w, r, http.StatusInternalServerError, message)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "The requested resource not found"
	app.errorResponse(w, r, http.StatusNotFound, message)
}

func (app *Application) notFoundResponseWithErr(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusNotFound, err.Error())
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *Application) editConflictResponseWithErr(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusConflict, err.Error())
}

func (app *Application) busyResponse(w http.ResponseWriter, r *http.Request, err error) {
	headers := http.Header{"Retry-After": []string{retryAfterSeconds}}
	app.errorResponseWithHeaders(w, r, http.StatusServiceUnavailable, err.Error(), headers)
}

func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		app.badRequestResponse(w, r, err)
		return
	}

	resp := api.ValidationErrorResponse{
		Message:          "One or more fields have invalid values",
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
		ValidationErrors: make([]api.ValidationError, 0, len(validationErrs)),
	}

	for _, fieldErr := range validationErrs {
		resp.ValidationErrors = append(resp.ValidationErrors, api.ValidationError{
			Field: fieldErr.Field(),
			Issue: appvalidator.ValidationMessage(fieldErr),
		})
	}

	err = jsonutil.WriteJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// domainErrorResponse maps booking and payment failures to their HTTP status.
// Anything it does not recognise is a server error.
func (app *Application) domainErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, domain.ErrInvalidSeatID),
		errors.Is(err, domain.ErrInvalidConcession),
		errors.Is(err, payment.ErrInvalidAccount),
		errors.Is(err, payment.ErrInsufficientCash),
		errors.Is(err, payment.ErrUnknownMethod),
		errors.Is(err, payment.ErrInvalidAmount):
		app.badRequestResponse(w, r, err)

	case errors.Is(err, domain.ErrMovieNotFound),
		errors.Is(err, domain.ErrShowtimeNotFound),
		errors.Is(err, domain.ErrRecordNotFound):
		app.notFoundResponseWithErr(w, r, err)

	case errors.Is(err, domain.ErrSeatUnavailable),
		errors.Is(err, domain.ErrTicketAlreadyPaid):
		app.editConflictResponseWithErr(w, r, err)

	case errors.Is(err, domain.ErrBusy):
		app.busyResponse(w, r, err)

	default:
		app.serverErrorResponse(w, r, fmt.Errorf("unexpected error: %w", err))
	}
}
