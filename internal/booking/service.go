// Package booking orchestrates a seat booking: it validates the request,
// resolves the movie and showtime from the catalog, reserves the whole seat
// set in one repository call and issues tickets.
package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/metinatakli/cinema-booking/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/metinatakli/cinema-booking/internal/booking"

const (
	OutcomeSuccess          = "success"
	OutcomeInvalidRequest   = "invalid_request"
	OutcomeMovieNotFound    = "movie_not_found"
	OutcomeShowtimeNotFound = "showtime_not_found"
	OutcomeSeatUnavailable  = "seat_unavailable"
	OutcomeBusy             = "busy"
	OutcomeError            = "error"
)

const (
	attemptsCounterName = "booking.attempts"
	outcomeAttributeKey = "outcome"
)

type Service struct {
	movies    domain.MovieRepository
	showtimes domain.ShowtimeRepository
	seats     domain.SeatRepository

	tickets  *domain.Sequence
	logger   *slog.Logger
	meter    metric.Meter
	tracer   trace.Tracer
	now      func() time.Time
	attempts metric.Int64Counter
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMeter(meter metric.Meter) Option {
	return func(s *Service) {
		s.meter = meter
	}
}

// WithTicketSequence sets the sequence ticket ids are drawn from, for example
// one seeded with the highest id already issued.
func WithTicketSequence(seq *domain.Sequence) Option {
	return func(s *Service) {
		s.tickets = seq
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(
	movies domain.MovieRepository,
	showtimes domain.ShowtimeRepository,
	seats domain.SeatRepository,
	opts ...Option) (*Service, error) {

	s := &Service{
		movies:    movies,
		showtimes: showtimes,
		seats:     seats,
		tickets:   domain.NewSequence(0),
		logger:    slog.New(slog.NewTextHandler(os.Stdout, nil)),
		meter:     otel.Meter(instrumentationName),
		tracer:    otel.Tracer(instrumentationName),
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	attempts, err := s.meter.Int64Counter(
		attemptsCounterName,
		metric.WithDescription("Booking attempts by outcome"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", attemptsCounterName, err)
	}
	s.attempts = attempts

	return s, nil
}

// Book reserves every seat of req for one showtime, or none of them.
// domain.ErrSeatUnavailable and domain.ErrBusy come back from the seat
// repository unchanged; callers decide whether to retry.
func (s *Service) Book(ctx context.Context, req domain.BookingRequest) (*domain.BookingResult, error) {
	ctx, span := s.tracer.Start(ctx, "booking.Book", trace.WithAttributes(
		attribute.Int("movie.id", req.MovieID),
		attribute.Int("hall.id", req.HallID),
		attribute.Int("seat.count", len(req.SeatIDs)),
	))
	defer span.End()

	result, err := s.book(ctx, req)

	outcome := Outcome(err)
	s.attempts.Add(ctx, 1, metric.WithAttributes(attribute.String(outcomeAttributeKey, outcome)))
	span.SetAttributes(attribute.String(outcomeAttributeKey, outcome))

	logger := s.logger.With(
		"movie_id", req.MovieID,
		"hall_id", req.HallID,
		"date", req.Date.Format(time.DateOnly),
		"time", req.Time,
		"seats", len(req.SeatIDs),
		"outcome", outcome,
	)

	switch outcome {
	case OutcomeSuccess:
		logger.Info("seats booked", "showtime_id", result.Showtime.ID)
	case OutcomeError:
		span.RecordError(err)
		span.SetStatus(codes.Error, "booking failed")
		logger.Error("booking failed", "error", err)
	default:
		logger.Info("booking rejected", "error", err)
	}

	return result, err
}

func (s *Service) book(ctx context.Context, req domain.BookingRequest) (*domain.BookingResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	movie, err := s.movies.GetById(ctx, req.MovieID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrMovieNotFound, req.MovieID)
		}

		return nil, err
	}

	showtime, err := s.showtimes.FindAvailableShowtime(ctx, movie.ID, req.Date, req.Time, req.HallID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrShowtimeNotFound,
				domain.NewShowtimeKey(movie.ID, req.Date, req.Time, req.HallID))
		}

		return nil, err
	}

	seats, err := s.seats.ReserveSeats(ctx, showtime, req.SeatIDs)
	if err != nil {
		return nil, err
	}

	return &domain.BookingResult{
		Movie:    movie,
		Showtime: showtime,
		Seats:    seats,
	}, nil
}

// IssueTicket turns a successful booking into a ticket with the next id of
// the service's sequence.
func (s *Service) IssueTicket(result *domain.BookingResult) domain.Ticket {
	return domain.NewTicket(s.tickets.Next(), result, s.now())
}

func (s *Service) BookAndIssue(ctx context.Context, req domain.BookingRequest) (*domain.BookingResult, *domain.Ticket, error) {
	result, err := s.Book(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	ticket := s.IssueTicket(result)
	return result, &ticket, nil
}

// SeatMap returns the showtime and a snapshot of all its seats in row-major
// order. It never changes seat state.
func (s *Service) SeatMap(ctx context.Context, showtimeID int) (*domain.Showtime, []domain.Seat, error) {
	showtime, err := s.showtimes.GetById(ctx, showtimeID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: id %d", domain.ErrShowtimeNotFound, showtimeID)
		}

		return nil, nil, err
	}

	seats, err := s.seats.FindSeatsByShowtime(ctx, showtime)
	if err != nil {
		return nil, nil, err
	}

	return showtime, seats, nil
}

// Outcome classifies a Book error into the label used for metrics and logs.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, domain.ErrInvalidRequest):
		return OutcomeInvalidRequest
	case errors.Is(err, domain.ErrMovieNotFound):
		return OutcomeMovieNotFound
	case errors.Is(err, domain.ErrShowtimeNotFound):
		return OutcomeShowtimeNotFound
	case errors.Is(err, domain.ErrSeatUnavailable):
		return OutcomeSeatUnavailable
	case errors.Is(err, domain.ErrBusy):
		return OutcomeBusy
	default:
		return OutcomeError
	}
}
