package mocks

import (
	"context"

	"github.com/metinatakli/cinema-booking/internal/domain"
)

type MockMovieRepo struct {
	domain.MovieRepository
	GetAllFunc  func(ctx context.Context) ([]*domain.Movie, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.Movie, error)
	Calls       int
}

func (m *MockMovieRepo) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	m.Calls++
	return m.GetAllFunc(ctx)
}

func (m *MockMovieRepo) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	m.Calls++
	return m.GetByIdFunc(ctx, id)
}
