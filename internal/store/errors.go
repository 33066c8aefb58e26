package store

import "errors"

// Sentinel errors returned by the stores. Handlers check them with
// errors.Is and map them to HTTP status codes; anything else is treated
// as an internal failure and never shown to the client.
var (
	// ErrNotFound is returned when no record matches the given identifier.
	ErrNotFound = errors.New("store: record not found")

	// ErrDuplicateEmail is returned when a user with the email already exists.
	ErrDuplicateEmail = errors.New("store: email already registered")

	// ErrInvalid is returned when a record is missing required fields or
	// carries a specialization outside the enumerated set.
	ErrInvalid = errors.New("store: invalid record")

	// ErrUnavailable is returned when the database connection was never
	// established. The process keeps serving; requests fail individually.
	ErrUnavailable = errors.New("store: database unavailable")
)
