package author

import "book-management/internal/shared"

// Author is the persisted catalog entity. Nationality is required on the
// wire but description may be omitted; both map to text columns.
type Author struct {
	ID          int64       `db:"id" json:"id"`
	AuthorName  string      `db:"author_name" json:"authorName"`
	BirthDate   shared.Date `db:"birth_date" json:"birthDate"`
	Nationality string      `db:"nationality" json:"nationality"`
	Description *string     `db:"description" json:"description"`
}
