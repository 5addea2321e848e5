package app

import (
	"net/http"

	"github.com/metinatakli/cinema-booking/api"
	"github.com/metinatakli/cinema-booking/internal/jsonutil"
)

func (app *Application) GetSeatMapByShowtime(w http.ResponseWriter, r *http.Request) {
	showtimeID, err := readIDParam(r, "showtimeId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	showtime, seats, err := app.bookings.SeatMap(r.Context(), showtimeID)
	if err != nil {
		app.domainErrorResponse(w, r, err)
		return
	}

	available := 0
	for _, seat := range seats {
		if seat.IsAvailable() {
			available++
		}
	}

	resp := api.SeatMapResponse{
		Showtime:  toApiShowtime(showtime),
		Available: available,
		Seats:     toApiSeats(seats),
	}

	err = jsonutil.WriteJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
