package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking/internal/domain"
)

// PostgresCatalogLoader reads the whole catalog from the movies, halls and
// showtimes tables in one pass.
type PostgresCatalogLoader struct {
	db *pgxpool.Pool
}

func NewPostgresCatalogLoader(db *pgxpool.Pool) *PostgresCatalogLoader {
	return &PostgresCatalogLoader{
		db: db,
	}
}

func (p *PostgresCatalogLoader) Load(ctx context.Context) (*domain.Catalog, error) {
	movies, err := p.loadMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading movies: %w", err)
	}

	halls, err := p.loadHalls(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading halls: %w", err)
	}

	showtimes, err := p.loadShowtimes(ctx, movies, halls)
	if err != nil {
		return nil, fmt.Errorf("loading showtimes: %w", err)
	}

	catalog := &domain.Catalog{
		Movies:    movies,
		Halls:     halls,
		Showtimes: showtimes,
	}

	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	return catalog, nil
}

func (p *PostgresCatalogLoader) loadMovies(ctx context.Context) ([]*domain.Movie, error) {
	query := `SELECT id, title, duration_minutes, director, release_date
		FROM movies
		ORDER BY id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []*domain.Movie{}

	for rows.Next() {
		var movie domain.Movie
		var releaseDate *time.Time

		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Duration,
			&movie.Director,
			&releaseDate,
		)

		if err != nil {
			return nil, err
		}

		if releaseDate != nil {
			movie.ReleaseDate = *releaseDate
		}

		movies = append(movies, &movie)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}
