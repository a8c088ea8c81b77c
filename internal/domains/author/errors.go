package author

import (
	"strconv"

	"book-management/internal/shared/fault"
)

// Message keys owned by the author domain.
const (
	KeyNotFound      = "author.not-found"
	KeyUpdateSuccess = "author.update.success"
	KeyDeleteSuccess = "author.delete.success"
)

// NewNotFound reports that no author exists under id. The subject is
// appended to the localized message on the wire.
func NewNotFound(id int64) *fault.NotFoundError {
	return &fault.NotFoundError{
		MessageKey: KeyNotFound,
		Subject:    " " + strconv.FormatInt(id, 10),
	}
}
