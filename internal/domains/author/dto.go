package author

import (
	"book-management/internal/shared"
	"book-management/internal/shared/validation"
)

const (
	MaxNameLength        = 255
	MaxNationalityLength = 100
	MaxDescriptionLength = 1000
)

// AuthorRequest is the write payload for create and update. A client-sent id
// is accepted and ignored; the path parameter and the database own identity.
type AuthorRequest struct {
	ID          *int64      `json:"id,omitempty"`
	AuthorName  string      `json:"authorName"`
	BirthDate   shared.Date `json:"birthDate"`
	Nationality string      `json:"nationality"`
	Description *string     `json:"description"`
}

// Violations runs the field rules in declaration order and returns the
// message keys of the first failing rule of each field.
func (r *AuthorRequest) Violations() []string {
	return validation.Check(
		validation.Field{
			Name:  "authorName",
			Value: r.AuthorName,
			Rules: []validation.Rule{
				validation.NotBlank("author.name.mandatory"),
				validation.MaxRunes(MaxNameLength, "author.name.size"),
			},
		},
		validation.Field{
			Name:  "birthDate",
			Value: r.BirthDate,
			Rules: []validation.Rule{
				validation.RequiredDate("author.birthDate.mandatory"),
				validation.PastOrPresent("author.birthDate.pastOrPresent"),
			},
		},
		validation.Field{
			Name:  "nationality",
			Value: r.Nationality,
			Rules: []validation.Rule{
				validation.NotBlank("author.nationality.mandatory"),
				validation.MaxRunes(MaxNationalityLength, "author.nationality.size"),
			},
		},
		validation.Field{
			Name:  "description",
			Value: stringValue(r.Description),
			Rules: []validation.Rule{
				validation.MaxRunes(MaxDescriptionLength, "author.description.size"),
			},
		},
	)
}

// ToEntity builds a new Author from the payload. ID stays zero until the
// database assigns one.
func (r *AuthorRequest) ToEntity() Author {
	return Author{
		AuthorName:  r.AuthorName,
		BirthDate:   r.BirthDate,
		Nationality: r.Nationality,
		Description: r.Description,
	}
}

// ApplyTo overwrites every writable field of a. Updates are full
// replacements, never merges.
func (r *AuthorRequest) ApplyTo(a *Author) {
	a.AuthorName = r.AuthorName
	a.BirthDate = r.BirthDate
	a.Nationality = r.Nationality
	a.Description = r.Description
}

// AuthorResponse is the read shape of an author.
type AuthorResponse struct {
	ID          int64       `json:"id"`
	AuthorName  string      `json:"authorName"`
	BirthDate   shared.Date `json:"birthDate"`
	Nationality string      `json:"nationality"`
	Description *string     `json:"description"`
}

func ToResponse(a Author) AuthorResponse {
	return AuthorResponse{
		ID:          a.ID,
		AuthorName:  a.AuthorName,
		BirthDate:   a.BirthDate,
		Nationality: a.Nationality,
		Description: a.Description,
	}
}

func ToResponses(authors []Author) []AuthorResponse {
	out := make([]AuthorResponse, len(authors))
	for i, a := range authors {
		out[i] = ToResponse(a)
	}
	return out
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
