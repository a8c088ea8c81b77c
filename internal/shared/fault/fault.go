package fault

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinel errors translated at the HTTP boundary.
var (
	// ErrMalformedBody covers bodies that are not valid JSON, empty bodies on
	// write endpoints and fields with an unparseable type or date format.
	ErrMalformedBody = errors.New("malformed request body")

	// ErrBadPage covers page < 0 or size < 1 on paginated listings.
	ErrBadPage = errors.New("invalid pagination parameters")
)

// ValidationError carries the ordered violation keys produced by the
// per-field rule tables. Order is field declaration order, then rule
// declaration order within a field.
type ValidationError struct {
	Keys []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Keys, ", ")
}

// NotFoundError identifies a missing resource. MessageKey is the bundle key
// for the localized message; Subject is the missing id or title, appended to
// the translated message on the wire.
type NotFoundError struct {
	MessageKey string
	Subject    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", e.MessageKey, e.Subject)
}

// ConstraintError wraps a store-level uniqueness or not-null violation
// surfaced from the database.
type ConstraintError struct {
	Err error
}

func (e *ConstraintError) Error() string { return "constraint violation: " + e.Err.Error() }
func (e *ConstraintError) Unwrap() error { return e.Err }

// StoreError wraps an operational database failure: the store is unreachable
// or the transaction aborted.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string { return "store unavailable: " + e.Err.Error() }
func (e *StoreError) Unwrap() error { return e.Err }

// StatusOf maps an error to its HTTP status. Anything unrecognized is an
// internal server error.
func StatusOf(err error) int {
	var (
		validationErr *ValidationError
		notFoundErr   *NotFoundError
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, ErrMalformedBody), errors.Is(err, ErrBadPage):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
