package domain

import (
	"context"
	"fmt"
	"time"
)

// Showtime is one screening of a movie, on one date, at one time, in one hall.
// Movie and Hall are assigned at construction and never change.
type Showtime struct {
	ID    int
	Movie *Movie
	Hall  *CinemaHall
	Date  time.Time
	Time  string
}

// CalendarDate truncates t to midnight UTC of the same calendar day.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ShowtimeKey is the identity of a showtime within a catalog.
type ShowtimeKey struct {
	MovieID int
	Date    time.Time
	Time    string
	HallID  int
}

func NewShowtimeKey(movieID int, date time.Time, timeLabel string, hallID int) ShowtimeKey {
	return ShowtimeKey{
		MovieID: movieID,
		Date:    CalendarDate(date),
		Time:    timeLabel,
		HallID:  hallID,
	}
}

func (k ShowtimeKey) String() string {
	return fmt.Sprintf("movie=%d date=%s time=%s hall=%d", k.MovieID, k.Date.Format(time.DateOnly), k.Time, k.HallID)
}

func (s *Showtime) Key() ShowtimeKey {
	return NewShowtimeKey(s.Movie.ID, s.Date, s.Time, s.Hall.ID)
}

type ShowtimeRepository interface {
	FindAvailableShowtime(ctx context.Context, movieID int, date time.Time, timeLabel string, hallID int) (*Showtime, error)
	GetById(ctx context.Context, id int) (*Showtime, error)
	GetByMovie(ctx context.Context, movieID int) ([]*Showtime, error)
}
