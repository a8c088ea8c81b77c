package book

import "context"

// Repository is the persistence port of the book domain.
type Repository interface {
	// FindByID returns the book or a not-found fault.
	FindByID(ctx context.Context, id int64) (Book, error)

	// FindAll returns one page ordered by ascending id plus the total row
	// count. page is zero-based.
	FindAll(ctx context.Context, page, size int) ([]Book, int64, error)

	// FindByTitle returns the book whose title matches exactly, lowest id
	// first when duplicates exist, or a not-found fault.
	FindByTitle(ctx context.Context, title string) (Book, error)

	// Insert persists a new book and returns it with the assigned id.
	Insert(ctx context.Context, b Book) (Book, error)

	// Replace loads the book under id, applies the mutation and writes the
	// result back, all inside one transaction. Returns a not-found fault when
	// the id does not exist.
	Replace(ctx context.Context, id int64, apply func(*Book)) (Book, error)

	// Delete removes the book or returns a not-found fault.
	Delete(ctx context.Context, id int64) error
}
