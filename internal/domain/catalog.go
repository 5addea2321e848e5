package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Catalog is the read-only set of movies, halls and showtimes loaded at
// process start. Showtimes reference movies and halls of the same catalog.
type Catalog struct {
	Movies    []*Movie
	Halls     []*CinemaHall
	Showtimes []*Showtime
}

func (c *Catalog) Validate() error {
	var errs []error

	movies := make(map[int]*Movie, len(c.Movies))
	for _, m := range c.Movies {
		if m.ID < 1 {
			errs = append(errs, fmt.Errorf("movie id must be positive, got %d", m.ID))
			continue
		}
		if _, dup := movies[m.ID]; dup {
			errs = append(errs, fmt.Errorf("movie id %d is not unique", m.ID))
			continue
		}
		if strings.TrimSpace(m.Title) == "" {
			errs = append(errs, fmt.Errorf("movie %d has no title", m.ID))
		}
		movies[m.ID] = m
	}

	halls := make(map[int]*CinemaHall, len(c.Halls))
	for _, h := range c.Halls {
		if err := h.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := halls[h.ID]; dup {
			errs = append(errs, fmt.Errorf("hall id %d is not unique", h.ID))
			continue
		}
		halls[h.ID] = h
	}

	ids := make(map[int]bool, len(c.Showtimes))
	keys := make(map[ShowtimeKey]bool, len(c.Showtimes))
	for _, s := range c.Showtimes {
		if s.ID < 1 || ids[s.ID] {
			errs = append(errs, fmt.Errorf("showtime id %d is not positive or not unique", s.ID))
			continue
		}
		ids[s.ID] = true

		if s.Movie == nil || movies[s.Movie.ID] != s.Movie {
			errs = append(errs, fmt.Errorf("showtime %d references a movie outside the catalog", s.ID))
			continue
		}
		if s.Hall == nil || halls[s.Hall.ID] != s.Hall {
			errs = append(errs, fmt.Errorf("showtime %d references a hall outside the catalog", s.ID))
			continue
		}
		if s.Date.IsZero() || strings.TrimSpace(s.Time) == "" {
			errs = append(errs, fmt.Errorf("showtime %d needs a date and a time", s.ID))
			continue
		}

		key := s.Key()
		if keys[key] {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateShowtime, key))
			continue
		}
		keys[key] = true
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(errs...))
}
