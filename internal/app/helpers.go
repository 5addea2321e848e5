package app

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/metinatakli/cinema-booking/api"
	"github.com/metinatakli/cinema-booking/internal/domain"
	"github.com/oapi-codegen/runtime/types"
)

func readIDParam(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}

	return id, nil
}

func toApiMovie(movie *domain.Movie) api.Movie {
	if movie == nil {
		return api.Movie{}
	}

	m := api.Movie{
		Id:              movie.ID,
		Title:           movie.Title,
		DurationMinutes: movie.Duration,
		Director:        movie.Director,
	}

	if !movie.ReleaseDate.IsZero() {
		m.ReleaseDate = &types.Date{Time: movie.ReleaseDate}
	}

	return m
}

func toApiHall(hall *domain.CinemaHall) api.Hall {
	return api.Hall{
		Id:        hall.ID,
		Name:      hall.Name,
		Tier:      string(hall.Tier),
		Rows:      hall.Rows,
		Cols:      hall.Cols,
		BasePrice: hall.BasePrice(),
	}
}

func toApiShowtime(showtime *domain.Showtime) api.Showtime {
	return api.Showtime{
		Id:      showtime.ID,
		MovieId: showtime.Movie.ID,
		Date:    types.Date{Time: showtime.Date},
		Time:    showtime.Time,
		Hall:    toApiHall(showtime.Hall),
	}
}

func toApiSeats(seats []domain.Seat) []api.Seat {
	result := make([]api.Seat, len(seats))

	for i, seat := range seats {
		result[i] = api.Seat{
			Id:     seat.ID.String(),
			Type:   string(seat.Type),
			Status: string(seat.Status),
			Price:  seat.Price,
		}
	}

	return result
}

func toApiTicket(ticket *domain.Ticket) api.TicketResponse {
	return api.TicketResponse{
		Id:         ticket.ID,
		Movie:      toApiMovie(ticket.Showtime.Movie),
		Showtime:   toApiShowtime(ticket.Showtime),
		Seats:      toApiSeats(ticket.Seats),
		UnitPrice:  ticket.UnitPrice(),
		TotalPrice: ticket.TotalPrice(),
		IssuedAt:   ticket.IssuedAt,
	}
}

// toBookingRequest parses the seat ids of an already validated request body.
func toBookingRequest(req api.CreateBookingRequest) (domain.BookingRequest, error) {
	seatIDs := make([]domain.SeatID, len(req.Seats))

	for i, s := range req.Seats {
		id, err := domain.ParseSeatID(s)
		if err != nil {
			return domain.BookingRequest{}, err
		}
		seatIDs[i] = id
	}

	return domain.BookingRequest{
		MovieID: req.MovieId,
		Date:    domain.CalendarDate(req.Date.Time),
		Time:    req.Time,
		HallID:  req.HallId,
		SeatIDs: seatIDs,
	}, nil
}
