package service

import (
	"context"

	"book-management/internal/domains/book"
	"book-management/internal/shared/fault"
	"book-management/internal/shared/response"
)

type bookService struct {
	repo book.Repository
}

func NewService(repo book.Repository) book.Service {
	return &bookService{repo: repo}
}

func (s *bookService) List(ctx context.Context, page, size int) (response.Page[book.BookResponse], error) {
	if page < 0 || size < 1 {
		return response.Page[book.BookResponse]{}, fault.ErrBadPage
	}

	books, total, err := s.repo.FindAll(ctx, page, size)
	if err != nil {
		return response.Page[book.BookResponse]{}, err
	}
	return response.NewPage(book.ToResponses(books), total, page, size), nil
}

func (s *bookService) GetByTitle(ctx context.Context, title string) (book.BookResponse, error) {
	b, err := s.repo.FindByTitle(ctx, title)
	if err != nil {
		return book.BookResponse{}, err
	}
	return book.ToResponse(b), nil
}

func (s *bookService) Create(ctx context.Context, req book.BookRequest) (book.BookResponse, error) {
	if keys := req.Violations(); len(keys) > 0 {
		return book.BookResponse{}, &fault.ValidationError{Keys: keys}
	}

	inserted, err := s.repo.Insert(ctx, req.ToEntity())
	if err != nil {
		return book.BookResponse{}, err
	}
	return book.ToResponse(inserted), nil
}

func (s *bookService) Update(ctx context.Context, id int64, req book.BookRequest) (book.BookResponse, error) {
	if keys := req.Violations(); len(keys) > 0 {
		return book.BookResponse{}, &fault.ValidationError{Keys: keys}
	}

	updated, err := s.repo.Replace(ctx, id, req.ApplyTo)
	if err != nil {
		return book.BookResponse{}, err
	}
	return book.ToResponse(updated), nil
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
