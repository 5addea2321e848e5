package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/metinatakli/cinema-booking/api"
	"github.com/metinatakli/cinema-booking/internal/domain"
	"github.com/metinatakli/cinema-booking/internal/jsonutil"
	appmiddleware "github.com/metinatakli/cinema-booking/internal/middleware"
)

func (app *Application) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	logger := appmiddleware.Logger(r.Context(), app.logger)

	var input api.CreateCustomerRequest

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

	customer := domain.Customer{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		CreatedAt: time.Now().UTC(),
	}

	err = customer.Password.Set(input.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.customerRepo.Create(r.Context(), &customer)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCustomerExists):
			// do not reveal which emails are registered
			logger.Warn("registration attempt for existing email")
			app.badRequestResponse(w, r, fmt.Errorf("invalid input data"))
		default:
			logger.Error("failed to create customer", "error", err)
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	logger.Info("customer registered", "customer_id", customer.ID)

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/customers/%d", customer.ID))

	err = jsonutil.WriteJSON(w, http.StatusCreated, toApiCustomer(&customer), headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r, "customerId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	customer, err := app.customerRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = jsonutil.WriteJSON(w, http.StatusOK, toApiCustomer(customer), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiCustomer(c *domain.Customer) api.CustomerResponse {
	return api.CustomerResponse{
		Id:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}
