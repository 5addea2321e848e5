package mocks

import (
	"context"
	"time"

	"github.com/metinatakli/cinema-booking/internal/domain"
)

type MockShowtimeRepo struct {
	domain.ShowtimeRepository
	FindAvailableShowtimeFunc func(ctx context.Context, movieID int, date time.Time, timeLabel string, hallID int) (*domain.Showtime, error)
	GetByIdFunc               func(ctx context.Context, id int) (*domain.Showtime, error)
	GetByMovieFunc            func(ctx context.Context, movieID int) ([]*domain.Showtime, error)
	Calls                     int
}

func (m *MockShowtimeRepo) FindAvailableShowtime(
	ctx context.Context,
	movieID int,
	date time.Time,
	timeLabel string,
	hallID int) (*domain.Showtime, error) {

	m.Calls++
	return m.FindAvailableShowtimeFunc(ctx, movieID, date, timeLabel, hallID)
}

func (m *MockShowtimeRepo) GetById(ctx context.Context, id int) (*domain.Showtime, error) {
	m.Calls++
	return m.GetByIdFunc(ctx, id)
}

func (m *MockShowtimeRepo) GetByMovie(ctx context.Context, movieID int) ([]*domain.Showtime, error) {
	m.Calls++
	return m.GetByMovieFunc(ctx, movieID)
}
