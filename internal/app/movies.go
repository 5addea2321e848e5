package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/cinema-booking/api"
	"github.com/metinatakli/cinema-booking/internal/domain"
	"github.com/metinatakli/cinema-booking/internal/jsonutil"
)

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := app.movieRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies: make([]api.Movie, len(movies)),
	}

	for i, movie := range movies {
		resp.Movies[i] = toApiMovie(movie)
	}

	err = jsonutil.WriteJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), movieID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	err = jsonutil.WriteJSON(w, http.StatusOK, toApiMovie(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetShowtimesOfMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), movieID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	showtimes, err := app.showtimeRepo.GetByMovie(r.Context(), movie.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ShowtimeListResponse{
		Movie:     toApiMovie(movie),
		Showtimes: make([]api.Showtime, len(showtimes)),
	}

	for i, showtime := range showtimes {
		resp.Showtimes[i] = toApiShowtime(showtime)
	}

	err = jsonutil.WriteJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
