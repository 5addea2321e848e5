package domain

import (
	"context"
	"time"
)

type Movie struct {
	ID          int
	Title       string
	Duration    int
	Director    string
	ReleaseDate time.Time
}

type MovieRepository interface {
	GetAll(ctx context.Context) ([]*Movie, error)
	GetById(ctx context.Context, id int) (*Movie, error)
}
