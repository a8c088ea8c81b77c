package book

import "book-management/internal/shared"

// Book is the persisted catalog entity. AuthorID is a bare reference to an
// author id; no referential integrity is enforced.
type Book struct {
	ID            int64       `db:"id" json:"id"`
	Title         string      `db:"title" json:"title"`
	PublishedDate shared.Date `db:"published_date" json:"publishedDate"`
	Genre         string      `db:"genre" json:"genre"`
	Description   *string     `db:"description" json:"description"`
	AuthorID      *int64      `db:"author_id" json:"author"`
}
