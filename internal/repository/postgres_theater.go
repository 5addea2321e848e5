package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/metinatakli/cinema-booking/internal/domain"
)

func (p *PostgresCatalogLoader) loadHalls(ctx context.Context) ([]*domain.CinemaHall, error) {
	query := `SELECT id, name, tier, seat_rows, seat_cols
		FROM halls
		ORDER BY id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	halls := []*domain.CinemaHall{}

	for rows.Next() {
		var hall domain.CinemaHall
		var tier string

		if err := rows.Scan(&hall.ID, &hall.Name, &tier, &hall.Rows, &hall.Cols); err != nil {
			return nil, err
		}

		hall.Tier = domain.HallTier(tier)
		halls = append(halls, &hall)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return halls, nil
}

// loadShowtimes links every showtime row to the already loaded movie and
// hall, so the catalog shares one instance of each.
func (p *PostgresCatalogLoader) loadShowtimes(
	ctx context.Context,
	movies []*domain.Movie,
	halls []*domain.CinemaHall) ([]*domain.Showtime, error) {

	movieByID := make(map[int]*domain.Movie, len(movies))
	for _, m := range movies {
		movieByID[m.ID] = m
	}

	hallByID := make(map[int]*domain.CinemaHall, len(halls))
	for _, h := range halls {
		hallByID[h.ID] = h
	}

	query := `SELECT id, movie_id, hall_id, show_date, show_time
		FROM showtimes
		ORDER BY show_date, show_time, id`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	showtimes := []*domain.Showtime{}

	for rows.Next() {
		var (
			showtime        domain.Showtime
			movieID, hallID int
			date            time.Time
		)

		if err := rows.Scan(&showtime.ID, &movieID, &hallID, &date, &showtime.Time); err != nil {
			return nil, err
		}

		movie, ok := movieByID[movieID]
		if !ok {
			return nil, fmt.Errorf("%w: showtime %d references unknown movie %d", domain.ErrInvalidCatalog, showtime.ID, movieID)
		}

		hall, ok := hallByID[hallID]
		if !ok {
			return nil, fmt.Errorf("%w: showtime %d references unknown hall %d", domain.ErrInvalidCatalog, showtime.ID, hallID)
		}

		showtime.Movie = movie
		showtime.Hall = hall
		showtime.Date = domain.CalendarDate(date)
		showtimes = append(showtimes, &showtime)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return showtimes, nil
}
