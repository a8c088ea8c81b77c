package book

import (
	"strconv"

	"book-management/internal/shared/fault"
)

// KeyNotFound is the message key for every missing-book error; the subject
// distinguishes id and title lookups.
const KeyNotFound = "book.not-found"

func NewNotFound(id int64) *fault.NotFoundError {
	return &fault.NotFoundError{
		MessageKey: KeyNotFound,
		Subject:    " " + strconv.FormatInt(id, 10),
	}
}

func NewTitleNotFound(title string) *fault.NotFoundError {
	return &fault.NotFoundError{
		MessageKey: KeyNotFound,
		Subject:    " " + title,
	}
}
