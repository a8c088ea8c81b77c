package book

import (
	"book-management/internal/shared"
	"book-management/internal/shared/validation"
)

const (
	MaxTitleLength       = 255
	MaxGenreLength       = 255
	MaxDescriptionLength = 1000
)

// BookRequest is the write payload for create and update. A client-sent id
// is accepted and ignored.
type BookRequest struct {
	ID            *int64      `json:"id,omitempty"`
	Title         string      `json:"title"`
	PublishedDate shared.Date `json:"publishedDate"`
	Genre         string      `json:"genre"`
	Description   *string     `json:"description"`
	AuthorID      *int64      `json:"author"`
}

// Violations runs the field rules in declaration order and returns the
// message keys of the first failing rule of each field.
func (r *BookRequest) Violations() []string {
	return validation.Check(
		validation.Field{
			Name:  "title",
			Value: r.Title,
			Rules: []validation.Rule{
				validation.NotBlank("book.title.mandatory"),
				validation.MaxRunes(MaxTitleLength, "book.title.size"),
			},
		},
		validation.Field{
			Name:  "publishedDate",
			Value: r.PublishedDate,
			Rules: []validation.Rule{
				validation.RequiredDate("book.publishedDate.mandatory"),
			},
		},
		validation.Field{
			Name:  "genre",
			Value: r.Genre,
			Rules: []validation.Rule{
				validation.NotBlank("book.genre.mandatory"),
				validation.MaxRunes(MaxGenreLength, "book.genre.size"),
			},
		},
		validation.Field{
			Name:  "description",
			Value: stringValue(r.Description),
			Rules: []validation.Rule{
				validation.MaxRunes(MaxDescriptionLength, "book.description.size"),
			},
		},
	)
}

func (r *BookRequest) ToEntity() Book {
	return Book{
		Title:         r.Title,
		PublishedDate: r.PublishedDate,
		Genre:         r.Genre,
		Description:   r.Description,
		AuthorID:      r.AuthorID,
	}
}

// ApplyTo overwrites every writable field of b. Updates are full
// replacements, never merges.
func (r *BookRequest) ApplyTo(b *Book) {
	b.Title = r.Title
	b.PublishedDate = r.PublishedDate
	b.Genre = r.Genre
	b.Description = r.Description
	b.AuthorID = r.AuthorID
}

// BookResponse is the read shape of a book.
type BookResponse struct {
	ID            int64       `json:"id"`
	Title         string      `json:"title"`
	PublishedDate shared.Date `json:"publishedDate"`
	Genre         string      `json:"genre"`
	Description   *string     `json:"description"`
	AuthorID      *int64      `json:"author"`
}

func ToResponse(b Book) BookResponse {
	return BookResponse{
		ID:            b.ID,
		Title:         b.Title,
		PublishedDate: b.PublishedDate,
		Genre:         b.Genre,
		Description:   b.Description,
		AuthorID:      b.AuthorID,
	}
}

func ToResponses(books []Book) []BookResponse {
	out := make([]BookResponse, len(books))
	for i, b := range books {
		out[i] = ToResponse(b)
	}
	return out
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
