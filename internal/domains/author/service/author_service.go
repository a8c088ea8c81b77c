package service

import (
	"context"

	"book-management/internal/domains/author"
	"book-management/internal/shared/fault"
	"book-management/internal/shared/response"
)

// searchLimit caps name search results; searches are unpaginated.
const searchLimit = 100

type authorService struct {
	repo author.Repository
}

func NewService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) List(ctx context.Context, page, size int) (response.Page[author.AuthorResponse], error) {
	if page < 0 || size < 1 {
		return response.Page[author.AuthorResponse]{}, fault.ErrBadPage
	}

	authors, total, err := s.repo.FindAll(ctx, page, size)
	if err != nil {
		return response.Page[author.AuthorResponse]{}, err
	}
	return response.NewPage(author.ToResponses(authors), total, page, size), nil
}

func (s *authorService) Get(ctx context.Context, id int64) (author.AuthorResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return author.AuthorResponse{}, err
	}
	return author.ToResponse(a), nil
}

func (s *authorService) Create(ctx context.Context, req author.AuthorRequest) (int64, error) {
	if keys := req.Violations(); len(keys) > 0 {
		return 0, &fault.ValidationError{Keys: keys}
	}

	inserted, err := s.repo.Insert(ctx, req.ToEntity())
	if err != nil {
		return 0, err
	}
	return inserted.ID, nil
}

func (s *authorService) Update(ctx context.Context, id int64, req author.AuthorRequest) (author.AuthorResponse, error) {
	if keys := req.Violations(); len(keys) > 0 {
		return author.AuthorResponse{}, &fault.ValidationError{Keys: keys}
	}

	updated, err := s.repo.Replace(ctx, id, req.ApplyTo)
	if err != nil {
		return author.AuthorResponse{}, err
	}
	return author.ToResponse(updated), nil
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *authorService) Search(ctx context.Context, keyword string) ([]author.AuthorResponse, error) {
	authors, err := s.repo.FindByNameContaining(ctx, keyword, searchLimit)
	if err != nil {
		return nil, err
	}
	return author.ToResponses(authors), nil
}
