package author

import "context"

// Repository is the persistence port of the author domain.
type Repository interface {
	// FindByID returns the author or a not-found fault.
	FindByID(ctx context.Context, id int64) (Author, error)

	// FindAll returns one page ordered by ascending id plus the total row
	// count. page is zero-based.
	FindAll(ctx context.Context, page, size int) ([]Author, int64, error)

	// FindByNameContaining returns authors whose name contains keyword,
	// case-sensitively, ordered by ascending id and capped at limit.
	FindByNameContaining(ctx context.Context, keyword string, limit int) ([]Author, error)

	// Insert persists a new author and returns it with the assigned id.
	Insert(ctx context.Context, a Author) (Author, error)

	// Replace loads the author under id, applies the mutation and writes the
	// result back, all inside one transaction. Returns a not-found fault when
	// the id does not exist.
	Replace(ctx context.Context, id int64, apply func(*Author)) (Author, error)

	// Delete removes the author or returns a not-found fault.
	Delete(ctx context.Context, id int64) error
}
