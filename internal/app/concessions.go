package app

import (
	"net/http"

	"github.com/metinatakli/cinema-booking/api"
	"github.com/metinatakli/cinema-booking/internal/domain"
	"github.com/metinatakli/cinema-booking/internal/jsonutil"
	"github.com/shopspring/decimal"
)

// QuoteConcessionOrder prices a food and beverage order. Nothing is stored.
func (app *Application) QuoteConcessionOrder(w http.ResponseWriter, r *http.Request) {
	var input api.ConcessionQuoteRequest

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

	order := toConcessionOrder(input)

	err = order.Validate()
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	err = jsonutil.WriteJSON(w, http.StatusOK, toConcessionQuote(order), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toConcessionOrder(input api.ConcessionQuoteRequest) domain.ConcessionOrder {
	order := domain.ConcessionOrder{
		Lines: make([]domain.ConcessionLine, len(input.Items)),
	}

	for i, item := range input.Items {
		order.Lines[i] = domain.ConcessionLine{
			Item: domain.ConcessionItem{
				Name:     item.Name,
				Category: domain.ConcessionCategory(item.Category),
				Size:     domain.ConcessionSize(item.Size),
				Price:    item.Price,
			},
			Quantity: item.Quantity,
		}
	}

	return order
}

func toConcessionQuote(order domain.ConcessionOrder) api.ConcessionQuoteResponse {
	resp := api.ConcessionQuoteResponse{
		Lines:     make([]api.ConcessionQuoteLine, len(order.Lines)),
		Subtotals: make(map[string]decimal.Decimal),
		Total:     order.Total(),
	}

	for i, l := range order.Lines {
		resp.Lines[i] = api.ConcessionQuoteLine{
			Name:          l.Item.Name,
			Category:      string(l.Item.Category),
			CategoryLabel: l.Item.Category.Label(),
			Size:          string(l.Item.Size),
			Quantity:      l.Quantity,
			UnitPrice:     l.Item.Price,
			LineTotal:     l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity))),
		}
	}

	for category, subtotal := range order.Subtotals() {
		resp.Subtotals[string(category)] = subtotal
	}

	return resp
}
