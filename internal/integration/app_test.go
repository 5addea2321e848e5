package integration_test

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking/internal/app"
	"github.com/metinatakli/cinema-booking/internal/config"
	"github.com/redis/go-redis/v9"
)

// TestApp carries the application under test and direct connections used to
// seed and inspect the stores behind it.
type TestApp struct {
	App   *app.Application
	DB    *pgxpool.Pool
	Redis *redis.Client
}

func newTestApp(ctx context.Context, cfg config.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	db, err := pgxpool.New(ctx, cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	err = seedCatalog(ctx, db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("seeding catalog: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.URL})

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		db.Close()
		redisClient.Close()
		return nil, err
	}

	return &TestApp{
		App:   application,
		DB:    db,
		Redis: redisClient,
	}, nil
}

func (a *TestApp) Close() {
	a.App.Close()
	a.Redis.Close()
	a.DB.Close()
}

func seedCatalog(ctx context.Context, db *pgxpool.Pool) error {
	statements := []struct {
		query string
		args  []any
	}{
		{
			query: `
				INSERT INTO movies (id, title, duration_minutes, director, release_date) VALUES
					(1, $1, $2, $3, DATE '2016-11-11'),
					(2, 'Interstellar', 169, 'Christopher Nolan', NULL)`,
			args: []any{TestMovieTitle, TestMovieDuration, TestMovieDirector},
		},
		{
			query: `
				INSERT INTO halls (id, name, tier, seat_rows, seat_cols) VALUES
					(1, 'Hall 1', 'Standard', 2, 2),
					(2, 'IMAX Hall', 'IMAX', 8, 12),
					(3, 'Lounge', 'Lounge', 3, 6)`,
		},
		{
			query: `
				INSERT INTO showtimes (id, movie_id, hall_id, show_date, show_time) VALUES
					(1, 1, 1, DATE '2026-10-20', '19:30'),
					(2, 1, 3, DATE '2026-10-20', '21:45'),
					(3, 2, 2, DATE '2026-10-21', '18:00')`,
		},
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt.query, stmt.args...); err != nil {
			return err
		}
	}

	return nil
}
