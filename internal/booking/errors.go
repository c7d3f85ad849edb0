package booking

import "errors"

// Terminal outcomes of a booking attempt. Handlers translate these into
// HTTP status codes; anything else coming out of Book is an infrastructure
// failure.
var (
	// ErrInvalidRequest means the request failed local validation and the
	// store was never touched.
	ErrInvalidRequest = errors.New("invalid booking request")

	ErrMovieNotFound = errors.New("movie not found")
	ErrShowNotFound  = errors.New("show not found")

	// ErrInsufficientSeats is the legitimate business rejection: the show
	// exists but cannot cover the requested seat count.
	ErrInsufficientSeats = errors.New("not enough seats available")

	// ErrContended means the conditional write kept losing races for the
	// whole retry budget. The caller may retry the request later.
	ErrContended = errors.New("booking contention persisted, try again")
)
