package facade

import "errors"

var (
	// ErrInvalidInput is returned for malformed dates, party sizes or statuses
	// before any network call is made.
	ErrInvalidInput = errors.New("facade: invalid input")

	// ErrFetchFailed is returned when the reservation service could not be
	// reached or answered with an error. When a previous month view exists it
	// is returned alongside this error so the caller can keep rendering
	// stale data.
	ErrFetchFailed = errors.New("facade: fetch failed")
)
