package app

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/metinatakli/cinema-booking/api"
	"github.com/metinatakli/cinema-booking/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomerRequest() api.CreateCustomerRequest {
	return api.CreateCustomerRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "+905551112233",
		Password:  "Engine#1843",
	}
}

func TestCreateCustomer(t *testing.T) {
	tests := []struct {
		name           string
		modify         func(req *api.CreateCustomerRequest)
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:       "valid customer",
			modify:     func(req *api.CreateCustomerRequest) {},
			wantStatus: http.StatusCreated,
		},
		{
			name:           "missing first name",
			modify:         func(req *api.CreateCustomerRequest) { req.FirstName = "" },
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrRequired,
		},
		{
			name:           "invalid email",
			modify:         func(req *api.CreateCustomerRequest) { req.Email = "ada.example.com" },
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrEmail,
		},
		{
			name:           "weak password",
			modify:         func(req *api.CreateCustomerRequest) { req.Password = "password" },
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: validator.ErrPassword,
		},
		{
			name:           "long last name",
			modify:         func(req *api.CreateCustomerRequest) { req.LastName = strings.Repeat("x", 101) },
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: fmt.Sprintf(validator.ErrMaxLength, "100"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(t)

			req := validCustomerRequest()
			tt.modify(&req)

			w, r := executeRequest(t, http.MethodPost, "/customers", req)
			serve(app, w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("Status = %v, want %v", w.Code, tt.wantStatus)
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{tt.wantStatus, tt.wantErrMessage})

			if tt.wantStatus != http.StatusCreated {
				return
			}

			assert.NotContains(t, w.Body.String(), "Engine#1843")
			assert.NotContains(t, w.Body.String(), "password")
			assert.Equal(t, "/customers/1", w.Header().Get("Location"))

			got := decodeBody[api.CustomerResponse](t, w)
			assert.Equal(t, 1, got.Id)
			assert.Equal(t, "ada@example.com", got.Email)
		})
	}
}

func TestCreateCustomerDuplicateEmail(t *testing.T) {
	app := newTestApplication(t)

	w, r := executeRequest(t, http.MethodPost, "/customers", validCustomerRequest())
	serve(app, w, r)
	require.Equal(t, http.StatusCreated, w.Code)

	dup := validCustomerRequest()
	dup.Email = "ADA@example.com"

	w, r = executeRequest(t, http.MethodPost, "/customers", dup)
	serve(app, w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	checkErrorResponse(t, w, struct {
		wantStatus     int
		wantErrMessage string
	}{http.StatusBadRequest, "invalid input data"})
}

func TestGetCustomer(t *testing.T) {
	app := newTestApplication(t)

	w, r := executeRequest(t, http.MethodPost, "/customers", validCustomerRequest())
	serve(app, w, r)
	require.Equal(t, http.StatusCreated, w.Code)

	w, r = executeRequest(t, http.MethodGet, "/customers/1", nil)
	serve(app, w, r)
	require.Equal(t, http.StatusOK, w.Code)

	got := decodeBody[api.CustomerResponse](t, w)
	assert.Equal(t, "Lovelace", got.LastName)
	assert.Equal(t, "+905551112233", got.Phone)
	assert.False(t, got.CreatedAt.IsZero())

	w, r = executeRequest(t, http.MethodGet, "/customers/2", nil)
	serve(app, w, r)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, r = executeRequest(t, http.MethodGet, "/customers/abc", nil)
	serve(app, w, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
