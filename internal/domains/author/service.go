package author

import (
	"context"

	"book-management/internal/shared/response"
)

// Service is the use-case surface the HTTP handler drives.
type Service interface {
	List(ctx context.Context, page, size int) (response.Page[AuthorResponse], error)
	Get(ctx context.Context, id int64) (AuthorResponse, error)
	Create(ctx context.Context, req AuthorRequest) (int64, error)
	Update(ctx context.Context, id int64, req AuthorRequest) (AuthorResponse, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, keyword string) ([]AuthorResponse, error)
}
