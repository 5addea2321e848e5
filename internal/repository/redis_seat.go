package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/metinatakli/cinema-booking/internal/domain"
	"github.com/redis/go-redis/v9"
)

const seatUnavailableReply = "seat unavailable"

var reserveSeatsScript = redis.NewScript(`
    -- KEYS = booked seat keys (e.g., seat:{12}:A1, seat:{12}:A2)
    -- ARGV = [bookedAt]

    for i=1, #KEYS do
        if redis.call("EXISTS", KEYS[i]) == 1 then
            return {err = "seat unavailable " .. KEYS[i]}
        end
    end

    for i=1, #KEYS do
        redis.call("SET", KEYS[i], ARGV[1])
    end

    return #KEYS
`)

// RedisSeatRepository stores one key per booked seat. The showtime id sits
// in a hash tag so every key of a showtime maps to the same cluster slot.
type RedisSeatRepository struct {
	client redis.UniversalClient
}

func NewRedisSeatRepository(client redis.UniversalClient) *RedisSeatRepository {
	return &RedisSeatRepository{
		client: client,
	}
}

func seatKey(showtimeID int, seatID domain.SeatID) string {
	return fmt.Sprintf("seat:{%d}:%s", showtimeID, seatID)
}

func (r *RedisSeatRepository) ReserveSeats(
	ctx context.Context,
	showtime *domain.Showtime,
	seatIDs []domain.SeatID) ([]domain.Seat, error) {

	keys := make([]string, len(seatIDs))
	for i, id := range seatIDs {
		if !showtime.Hall.Contains(id) {
			return nil, fmt.Errorf("%w: %s is outside hall %d", domain.ErrSeatUnavailable, id, showtime.Hall.ID)
		}
		keys[i] = seatKey(showtime.ID, id)
	}

	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	if len(slices.Compact(sorted)) != len(keys) {
		return nil, fmt.Errorf("%w: seat requested more than once", domain.ErrSeatUnavailable)
	}

	err := reserveSeatsScript.Run(ctx, r.client, keys, time.Now().UTC().Format(time.RFC3339)).Err()
	if err != nil {
		if redis.HasErrorPrefix(err, seatUnavailableReply) {
			key := strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(err.Error(), "ERR "), seatUnavailableReply))
			return nil, fmt.Errorf("%w: %s", domain.ErrSeatUnavailable, key)
		}

		return nil, err
	}

	seats := make([]domain.Seat, len(seatIDs))
	for i, id := range seatIDs {
		seats[i] = domain.NewSeat(showtime.Hall, id, domain.SeatBooked)
	}

	return seats, nil
}

func (r *RedisSeatRepository) FindSeat(
	ctx context.Context,
	showtime *domain.Showtime,
	seatID domain.SeatID) (*domain.Seat, error) {

	if !showtime.Hall.Contains(seatID) {
		return nil, domain.ErrRecordNotFound
	}

	n, err := r.client.Exists(ctx, seatKey(showtime.ID, seatID)).Result()
	if err != nil {
		return nil, err
	}

	status := domain.SeatAvailable
	if n > 0 {
		status = domain.SeatBooked
	}

	seat := domain.NewSeat(showtime.Hall, seatID, status)
	return &seat, nil
}

// FindSeatsByShowtime reads every seat of the hall with a single MGET. A nil
// value means the seat is still available.
func (r *RedisSeatRepository) FindSeatsByShowtime(ctx context.Context, showtime *domain.Showtime) ([]domain.Seat, error) {
	ids := showtime.Hall.SeatIDs()
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = seatKey(showtime.ID, id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	seats := make([]domain.Seat, len(ids))
	for i, id := range ids {
		status := domain.SeatAvailable
		if i < len(values) && values[i] != nil {
			status = domain.SeatBooked
		}
		seats[i] = domain.NewSeat(showtime.Hall, id, status)
	}

	return seats, nil
}
