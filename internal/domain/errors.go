package domain

import "errors"

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrInvalidRequest     = errors.New("invalid booking request")
	ErrMovieNotFound      = errors.New("movie not found")
	ErrShowtimeNotFound   = errors.New("showtime not found")
	ErrSeatUnavailable    = errors.New("seat(s) are not available")
	ErrBusy               = errors.New("showtime is busy, try again")
	ErrUnknownHallTier    = errors.New("unknown hall tier")
	ErrDuplicateShowtime  = errors.New("duplicate showtime")
	ErrInvalidSeatID      = errors.New("invalid seat id")
	ErrInvalidCatalog     = errors.New("invalid catalog")
	ErrUnsupportedVersion = errors.New("unsupported schema version")
	ErrTicketAlreadyPaid  = errors.New("ticket is already paid")
	ErrCustomerExists     = errors.New("a customer with this email already exists")
)
