package book

import (
	"context"

	"book-management/internal/shared/response"
)

// Service is the use-case surface the HTTP handler drives.
type Service interface {
	List(ctx context.Context, page, size int) (response.Page[BookResponse], error)
	GetByTitle(ctx context.Context, title string) (BookResponse, error)
	Create(ctx context.Context, req BookRequest) (BookResponse, error)
	Update(ctx context.Context, id int64, req BookRequest) (BookResponse, error)
	Delete(ctx context.Context, id int64) error
}
