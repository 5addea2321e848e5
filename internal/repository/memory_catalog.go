package repository

import (
	"context"
	"slices"
	"time"

	"github.com/metinatakli/cinema-booking/internal/domain"
)

// MemoryCatalog serves movies and showtimes from a catalog loaded once at
// start. It is never mutated after construction, so reads need no locking.
type MemoryCatalog struct {
	movies    map[int]*domain.Movie
	movieList []*domain.Movie
	halls     map[int]*domain.CinemaHall
	showtimes map[int]*domain.Showtime
	byKey     map[domain.ShowtimeKey]*domain.Showtime
	byMovie   map[int][]*domain.Showtime
}

func NewMemoryCatalog(catalog *domain.Catalog) (*MemoryCatalog, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	c := &MemoryCatalog{
		movies:    make(map[int]*domain.Movie, len(catalog.Movies)),
		movieList: make([]*domain.Movie, 0, len(catalog.Movies)),
		halls:     make(map[int]*domain.CinemaHall, len(catalog.Halls)),
		showtimes: make(map[int]*domain.Showtime, len(catalog.Showtimes)),
		byKey:     make(map[domain.ShowtimeKey]*domain.Showtime, len(catalog.Showtimes)),
		byMovie:   make(map[int][]*domain.Showtime),
	}

	for _, m := range catalog.Movies {
		c.movies[m.ID] = m
		c.movieList = append(c.movieList, m)
	}
	slices.SortFunc(c.movieList, func(a, b *domain.Movie) int { return a.ID - b.ID })

	for _, h := range catalog.Halls {
		c.halls[h.ID] = h
	}

	for _, s := range catalog.Showtimes {
		c.showtimes[s.ID] = s
		c.byKey[s.Key()] = s
		c.byMovie[s.Movie.ID] = append(c.byMovie[s.Movie.ID], s)
	}

	for _, list := range c.byMovie {
		slices.SortFunc(list, compareShowtimes)
	}

	return c, nil
}

func compareShowtimes(a, b *domain.Showtime) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	if a.Time != b.Time {
		if a.Time < b.Time {
			return -1
		}
		return 1
	}
	return a.Hall.ID - b.Hall.ID
}

func (c *MemoryCatalog) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	return slices.Clone(c.movieList), nil
}

func (c *MemoryCatalog) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	m, ok := c.movies[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return m, nil
}

// Showtimes exposes the showtime half of the catalog. Go does not allow two
// GetById methods on one type.
func (c *MemoryCatalog) Showtimes() *MemoryShowtimes {
	return &MemoryShowtimes{catalog: c}
}

// Hall returns the hall with the given id.
func (c *MemoryCatalog) Hall(id int) (*domain.CinemaHall, error) {
	h, ok := c.halls[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return h, nil
}

type MemoryShowtimes struct {
	catalog *MemoryCatalog
}

// FindAvailableShowtime matches the exact (movie, date, time, hall) tuple.
// The date is compared by calendar day.
func (s *MemoryShowtimes) FindAvailableShowtime(
	ctx context.Context,
	movieID int,
	date time.Time,
	timeLabel string,
	hallID int) (*domain.Showtime, error) {

	showtime, ok := s.catalog.byKey[domain.NewShowtimeKey(movieID, date, timeLabel, hallID)]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return showtime, nil
}

func (s *MemoryShowtimes) GetById(ctx context.Context, id int) (*domain.Showtime, error) {
	showtime, ok := s.catalog.showtimes[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return showtime, nil
}

func (s *MemoryShowtimes) GetByMovie(ctx context.Context, movieID int) ([]*domain.Showtime, error) {
	if _, ok := s.catalog.movies[movieID]; !ok {
		return nil, domain.ErrRecordNotFound
	}

	return slices.Clone(s.catalog.byMovie[movieID]), nil
}
