package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/metinatakli/cinema-booking/internal/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(middleware.NotFoundHandler)
	r.MethodNotAllowed(middleware.MethodNotAllowedHandler)

	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.RequestLogger(app.logger))
	r.Use(middleware.RecoverPanic(app.logger))

	r.Get("/healthcheck", app.health.GetHealth)

	r.Route("/movies", func(r chi.Router) {
		r.Get("/", app.GetMovies)
		r.Get("/{movieId}", app.GetMovie)
		r.Get("/{movieId}/showtimes", app.GetShowtimesOfMovie)
	})

	r.Get("/showtimes/{showtimeId}/seats", app.GetSeatMapByShowtime)

	r.Post("/bookings", app.CreateBooking)
	r.Get("/tickets/{ticketId}", app.GetTicket)
	r.Post("/payments", app.CreatePayment)

	r.Post("/concessions/orders/quote", app.QuoteConcessionOrder)

	r.Post("/customers", app.CreateCustomer)
	r.Get("/customers/{customerId}", app.GetCustomer)

	return r
}
