package mocks

import (
	"context"

	"github.com/metinatakli/cinema-booking/internal/domain"
)

type MockSeatRepo struct {
	ReserveSeatsFunc        func(ctx context.Context, showtime *domain.Showtime, seatIDs []domain.SeatID) ([]domain.Seat, error)
	FindSeatFunc            func(ctx context.Context, showtime *domain.Showtime, seatID domain.SeatID) (*domain.Seat, error)
	FindSeatsByShowtimeFunc func(ctx context.Context, showtime *domain.Showtime) ([]domain.Seat, error)
	ReserveCalls            int
}

func (m *MockSeatRepo) ReserveSeats(
	ctx context.Context,
	showtime *domain.Showtime,
	seatIDs []domain.SeatID) ([]domain.Seat, error) {

	m.ReserveCalls++
	return m.ReserveSeatsFunc(ctx, showtime, seatIDs)
}

func (m *MockSeatRepo) FindSeat(ctx context.Context, showtime *domain.Showtime, seatID domain.SeatID) (*domain.Seat, error) {
	return m.FindSeatFunc(ctx, showtime, seatID)
}

func (m *MockSeatRepo) FindSeatsByShowtime(ctx context.Context, showtime *domain.Showtime) ([]domain.Seat, error) {
	return m.FindSeatsByShowtimeFunc(ctx, showtime)
}
