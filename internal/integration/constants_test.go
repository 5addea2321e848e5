package integration_test

const (
	// Catalog related constants
	TestMovieTitle    = "Arrival"
	TestMovieDuration = 116
	TestMovieDirector = "Denis Villeneuve"
	TestShowTime      = "19:30"

	// Hall 1 is a 2x2 Standard hall
	TestHallId      = 1
	TestHallSeats   = 4
	TestStandardFee = "15"
)
