package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/metinatakli/cinema-booking/internal/domain"
)

const defaultReserveTimeout = 250 * time.Millisecond

// MemorySeatRepository keeps booked seats in process memory. Every showtime
// has its own critical section, so bookings for different showtimes never
// wait on each other.
type MemorySeatRepository struct {
	mu             sync.Mutex
	showtimes      map[int]*showtimeSeats
	reserveTimeout time.Duration
}

type MemorySeatOption func(*MemorySeatRepository)

// WithReserveTimeout bounds how long a call waits for a showtime's critical
// section before giving up with domain.ErrBusy.
func WithReserveTimeout(d time.Duration) MemorySeatOption {
	return func(r *MemorySeatRepository) {
		if d > 0 {
			r.reserveTimeout = d
		}
	}
}

func NewMemorySeatRepository(opts ...MemorySeatOption) *MemorySeatRepository {
	r := &MemorySeatRepository{
		showtimes:      make(map[int]*showtimeSeats),
		reserveTimeout: defaultReserveTimeout,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// showtimeSeats is the seat state of one showtime. sem is a one-slot
// semaphore; booked may only be touched while holding it.
type showtimeSeats struct {
	sem    chan struct{}
	booked map[domain.SeatID]time.Time
}

func (r *MemorySeatRepository) seatsFor(showtimeID int) *showtimeSeats {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.showtimes[showtimeID]
	if !ok {
		s = &showtimeSeats{
			sem:    make(chan struct{}, 1),
			booked: make(map[domain.SeatID]time.Time),
		}
		r.showtimes[showtimeID] = s
	}

	return s
}

func (r *MemorySeatRepository) acquire(ctx context.Context, s *showtimeSeats) error {
	timer := time.NewTimer(r.reserveTimeout)
	defer timer.Stop()

	select {
	case s.sem <- struct{}{}:
		return nil
	case <-timer.C:
		return domain.ErrBusy
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *showtimeSeats) release() {
	<-s.sem
}

func (r *MemorySeatRepository) ReserveSeats(
	ctx context.Context,
	showtime *domain.Showtime,
	seatIDs []domain.SeatID) ([]domain.Seat, error) {

	state := r.seatsFor(showtime.ID)
	if err := r.acquire(ctx, state); err != nil {
		return nil, err
	}
	defer state.release()

	pending := make(map[domain.SeatID]bool, len(seatIDs))
	for _, id := range seatIDs {
		if !showtime.Hall.Contains(id) {
			return nil, fmt.Errorf("%w: %s is outside hall %d", domain.ErrSeatUnavailable, id, showtime.Hall.ID)
		}
		if _, booked := state.booked[id]; booked || pending[id] {
			return nil, fmt.Errorf("%w: %s", domain.ErrSeatUnavailable, id)
		}
		pending[id] = true
	}

	now := time.Now()
	seats := make([]domain.Seat, 0, len(seatIDs))
	for _, id := range seatIDs {
		state.booked[id] = now
		seats = append(seats, domain.NewSeat(showtime.Hall, id, domain.SeatBooked))
	}

	return seats, nil
}

func (r *MemorySeatRepository) FindSeat(
	ctx context.Context,
	showtime *domain.Showtime,
	seatID domain.SeatID) (*domain.Seat, error) {

	if !showtime.Hall.Contains(seatID) {
		return nil, domain.ErrRecordNotFound
	}

	state := r.seatsFor(showtime.ID)
	if err := r.acquire(ctx, state); err != nil {
		return nil, err
	}
	defer state.release()

	seat := domain.NewSeat(showtime.Hall, seatID, seatStatus(state.booked, seatID))
	return &seat, nil
}

// FindSeatsByShowtime returns every seat of the showtime's hall in row-major
// order.
func (r *MemorySeatRepository) FindSeatsByShowtime(ctx context.Context, showtime *domain.Showtime) ([]domain.Seat, error) {
	state := r.seatsFor(showtime.ID)
	if err := r.acquire(ctx, state); err != nil {
		return nil, err
	}
	defer state.release()

	ids := showtime.Hall.SeatIDs()
	seats := make([]domain.Seat, len(ids))
	for i, id := range ids {
		seats[i] = domain.NewSeat(showtime.Hall, id, seatStatus(state.booked, id))
	}

	return seats, nil
}

func seatStatus(booked map[domain.SeatID]time.Time, id domain.SeatID) domain.SeatStatus {
	if _, ok := booked[id]; ok {
		return domain.SeatBooked
	}

	return domain.SeatAvailable
}
