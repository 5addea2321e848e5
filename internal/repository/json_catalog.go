package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-booking/internal/domain"
	appvalidator "github.com/metinatakli/cinema-booking/internal/validator"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CatalogSchemaVersion is the only catalog document version accepted.
const CatalogSchemaVersion = 1

type catalogDocument struct {
	Version   int              `json:"version"`
	Movies    []movieRecord    `json:"movies" validate:"dive"`
	Halls     []hallRecord     `json:"halls" validate:"dive"`
	Showtimes []showtimeRecord `json:"showtimes" validate:"dive"`
}

type movieRecord struct {
	ID          int                 `json:"id" validate:"gte=1"`
	Title       string              `json:"title" validate:"required,max=200"`
	Duration    int                 `json:"durationMinutes" validate:"gte=0"`
	Director    string              `json:"director" validate:"max=100"`
	ReleaseDate *openapi_types.Date `json:"releaseDate,omitempty"`
}

type hallRecord struct {
	ID   int    `json:"id" validate:"gte=1"`
	Name string `json:"name" validate:"required,max=100"`
	Tier string `json:"tier" validate:"required"`
	Rows int    `json:"rows" validate:"gte=1,lte=26"`
	Cols int    `json:"cols" validate:"gte=1"`
}

type showtimeRecord struct {
	ID      int                `json:"id" validate:"gte=1"`
	MovieID int                `json:"movieId" validate:"gte=1"`
	HallID  int                `json:"hallId" validate:"gte=1"`
	Date    openapi_types.Date `json:"date" validate:"required"`
	Time    string             `json:"time" validate:"required,show_time"`
}

// JSONCatalogLoader reads a versioned catalog document from disk.
type JSONCatalogLoader struct {
	path      string
	validator *validator.Validate
}

func NewJSONCatalogLoader(path string) *JSONCatalogLoader {
	return &JSONCatalogLoader{
		path:      path,
		validator: appvalidator.NewValidator(),
	}
}

func (l *JSONCatalogLoader) Load(ctx context.Context) (*domain.Catalog, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	return l.Decode(bytes.NewReader(data))
}

// Decode parses and validates one catalog document. Tier names are left to
// domain validation so an unknown tier surfaces as domain.ErrUnknownHallTier.
func (l *JSONCatalogLoader) Decode(r io.Reader) (*domain.Catalog, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc catalogDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, err)
	}

	if doc.Version != CatalogSchemaVersion {
		return nil, fmt.Errorf("%w: catalog document version %d", domain.ErrUnsupportedVersion, doc.Version)
	}

	if err := l.validator.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, err)
	}

	return doc.toCatalog()
}

func (doc *catalogDocument) toCatalog() (*domain.Catalog, error) {
	catalog := &domain.Catalog{
		Movies:    make([]*domain.Movie, 0, len(doc.Movies)),
		Halls:     make([]*domain.CinemaHall, 0, len(doc.Halls)),
		Showtimes: make([]*domain.Showtime, 0, len(doc.Showtimes)),
	}

	movies := make(map[int]*domain.Movie, len(doc.Movies))
	for _, rec := range doc.Movies {
		movie := &domain.Movie{
			ID:       rec.ID,
			Title:    rec.Title,
			Duration: rec.Duration,
			Director: rec.Director,
		}
		if rec.ReleaseDate != nil {
			movie.ReleaseDate = rec.ReleaseDate.Time
		}

		movies[movie.ID] = movie
		catalog.Movies = append(catalog.Movies, movie)
	}

	halls := make(map[int]*domain.CinemaHall, len(doc.Halls))
	for _, rec := range doc.Halls {
		hall := &domain.CinemaHall{
			ID:   rec.ID,
			Name: rec.Name,
			Tier: domain.HallTier(rec.Tier),
			Rows: rec.Rows,
			Cols: rec.Cols,
		}

		halls[hall.ID] = hall
		catalog.Halls = append(catalog.Halls, hall)
	}

	for _, rec := range doc.Showtimes {
		movie, ok := movies[rec.MovieID]
		if !ok {
			return nil, fmt.Errorf("%w: showtime %d references unknown movie %d", domain.ErrInvalidCatalog, rec.ID, rec.MovieID)
		}

		hall, ok := halls[rec.HallID]
		if !ok {
			return nil, fmt.Errorf("%w: showtime %d references unknown hall %d", domain.ErrInvalidCatalog, rec.ID, rec.HallID)
		}

		catalog.Showtimes = append(catalog.Showtimes, &domain.Showtime{
			ID:    rec.ID,
			Movie: movie,
			Hall:  hall,
			Date:  domain.CalendarDate(rec.Date.Time),
			Time:  rec.Time,
		})
	}

	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	return catalog, nil
}
