package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking/internal/domain"
)

// PostgresSeatRepository stores one booked_seats row per booked seat. The
// primary key on (showtime_id, seat_row, seat_col) is what rejects a second
// booking of the same seat.
type PostgresSeatRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSeatRepository(db *pgxpool.Pool) *PostgresSeatRepository {
	return &PostgresSeatRepository{
		db: db,
	}
}

func (p *PostgresSeatRepository) ReserveSeats(
	ctx context.Context,
	showtime *domain.Showtime,
	seatIDs []domain.SeatID) ([]domain.Seat, error) {

	// Overlapping requests must insert in the same order or they can wait on
	// each other's unique index entries.
	ordered := slices.Clone(seatIDs)
	slices.SortFunc(ordered, domain.SeatID.Compare)

	rows := make([]string, len(ordered))
	cols := make([]int32, len(ordered))
	for i, id := range ordered {
		if !showtime.Hall.Contains(id) {
			return nil, fmt.Errorf("%w: %s is outside hall %d", domain.ErrSeatUnavailable, id, showtime.Hall.ID)
		}
		rows[i] = string(id.Row)
		cols[i] = int32(id.Col)
	}

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO booked_seats (showtime_id, seat_row, seat_col)
			SELECT $1, r, c
			FROM unnest($2::text[], $3::int[]) AS s(r, c)
			ORDER BY r, c
		`

		tag, err := tx.Exec(ctx, query, showtime.ID, rows, cols)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) {
				switch pgErr.Code {
				case pgerrcode.UniqueViolation, pgerrcode.DeadlockDetected:
					return domain.ErrSeatUnavailable
				}
			}

			return err
		}

		if tag.RowsAffected() != int64(len(seatIDs)) {
			return domain.ErrSeatUnavailable
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	seats := make([]domain.Seat, len(seatIDs))
	for i, id := range seatIDs {
		seats[i] = domain.NewSeat(showtime.Hall, id, domain.SeatBooked)
	}

	return seats, nil
}

func (p *PostgresSeatRepository) FindSeat(
	ctx context.Context,
	showtime *domain.Showtime,
	seatID domain.SeatID) (*domain.Seat, error) {

	if !showtime.Hall.Contains(seatID) {
		return nil, domain.ErrRecordNotFound
	}

	query := `
		SELECT EXISTS (
			SELECT 1 FROM booked_seats
			WHERE showtime_id = $1 AND seat_row = $2 AND seat_col = $3
		)
	`

	var booked bool
	err := p.db.QueryRow(ctx, query, showtime.ID, string(seatID.Row), seatID.Col).Scan(&booked)
	if err != nil {
		return nil, err
	}

	status := domain.SeatAvailable
	if booked {
		status = domain.SeatBooked
	}

	seat := domain.NewSeat(showtime.Hall, seatID, status)
	return &seat, nil
}

func (p *PostgresSeatRepository) FindSeatsByShowtime(ctx context.Context, showtime *domain.Showtime) ([]domain.Seat, error) {
	query := `
		SELECT seat_row, seat_col
		FROM booked_seats
		WHERE showtime_id = $1
	`

	rows, err := p.db.Query(ctx, query, showtime.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	booked := make(map[domain.SeatID]bool)

	for rows.Next() {
		var row string
		var col int

		if err := rows.Scan(&row, &col); err != nil {
			return nil, err
		}

		if row != "" {
			booked[domain.SeatID{Row: row[0], Col: col}] = true
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	ids := showtime.Hall.SeatIDs()
	seats := make([]domain.Seat, len(ids))
	for i, id := range ids {
		status := domain.SeatAvailable
		if booked[id] {
			status = domain.SeatBooked
		}
		seats[i] = domain.NewSeat(showtime.Hall, id, status)
	}

	return seats, nil
}
