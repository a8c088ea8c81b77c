package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-management/internal/domains/author"
	"book-management/internal/shared"
	"book-management/internal/shared/fault"
)

type fakeRepo struct {
	authors map[int64]author.Author
	nextID  int64
}

func newFakeRepo(seed ...author.Author) *fakeRepo {
	r := &fakeRepo{authors: map[int64]author.Author{}, nextID: 1}
	for _, a := range seed {
		r.authors[a.ID] = a
		if a.ID >= r.nextID {
			r.nextID = a.ID + 1
		}
	}
	return r
}

func (r *fakeRepo) FindByID(_ context.Context, id int64) (author.Author, error) {
	a, ok := r.authors[id]
	if !ok {
		return author.Author{}, author.NewNotFound(id)
	}
	return a, nil
}

func (r *fakeRepo) FindAll(_ context.Context, page, size int) ([]author.Author, int64, error) {
	all := r.sorted()
	start := page * size
	if start > len(all) {
		start = len(all)
	}
	end := start + size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], int64(len(all)), nil
}

func (r *fakeRepo) FindByNameContaining(_ context.Context, keyword string, limit int) ([]author.Author, error) {
	var out []author.Author
	for _, a := range r.sorted() {
		if len(out) == limit {
			break
		}
		if keyword == "" || strings.Contains(a.AuthorName, keyword) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeRepo) Insert(_ context.Context, a author.Author) (author.Author, error) {
	a.ID = r.nextID
	r.nextID++
	r.authors[a.ID] = a
	return a, nil
}

func (r *fakeRepo) Replace(_ context.Context, id int64, apply func(*author.Author)) (author.Author, error) {
	a, ok := r.authors[id]
	if !ok {
		return author.Author{}, author.NewNotFound(id)
	}
	apply(&a)
	r.authors[id] = a
	return a, nil
}

func (r *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.authors[id]; !ok {
		return author.NewNotFound(id)
	}
	delete(r.authors, id)
	return nil
}

func (r *fakeRepo) sorted() []author.Author {
	var out []author.Author
	for id := int64(0); id < r.nextID; id++ {
		if a, ok := r.authors[id]; ok {
			out = append(out, a)
		}
	}
	return out
}

func date(year int, month time.Month, day int) shared.Date {
	return shared.DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func validRequest() author.AuthorRequest {
	return author.AuthorRequest{
		AuthorName:  "George Orwell",
		BirthDate:   date(1903, time.June, 25),
		Nationality: "British",
	}
}

func TestCreateReturnsAssignedID(t *testing.T) {
	svc := NewService(newFakeRepo())

	id, err := svc.Create(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestCreateCollectsViolationsInFieldOrder(t *testing.T) {
	svc := NewService(newFakeRepo())

	req := author.AuthorRequest{
		AuthorName:  "   ",
		BirthDate:   shared.DateOf(time.Now().AddDate(0, 0, 1)),
		Nationality: "",
	}

	_, err := svc.Create(context.Background(), req)

	var vErr *fault.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{
		"author.name.mandatory",
		"author.birthDate.pastOrPresent",
		"author.nationality.mandatory",
	}, vErr.Keys)
}

func TestCreateReportsFirstFailingRulePerField(t *testing.T) {
	svc := NewService(newFakeRepo())

	// Blank name also exceeds no length rule; only the mandatory key must
	// surface even though the field has two rules.
	req := validRequest()
	req.AuthorName = ""
	req.BirthDate = shared.Date{}

	_, err := svc.Create(context.Background(), req)

	var vErr *fault.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{
		"author.name.mandatory",
		"author.birthDate.mandatory",
	}, vErr.Keys)
}

func TestGetUnknownAuthor(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Get(context.Background(), 42)

	var nfErr *fault.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, author.KeyNotFound, nfErr.MessageKey)
	assert.Equal(t, " 42", nfErr.Subject)
}

func TestListRejectsBadPagination(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.List(context.Background(), -1, 10)
	assert.ErrorIs(t, err, fault.ErrBadPage)

	_, err = svc.List(context.Background(), 0, 0)
	assert.ErrorIs(t, err, fault.ErrBadPage)
}

func TestListPaginates(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	for i := 0; i < 5; i++ {
		req := validRequest()
		_, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
	}

	page, err := svc.List(context.Background(), 1, 2)

	require.NoError(t, err)
	assert.Equal(t, int64(5), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 1, page.Number)
	require.Len(t, page.Content, 2)
	assert.Equal(t, int64(3), page.Content[0].ID)
}

func TestUpdateReplacesEveryField(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	desc := "Author of 1984"
	create := validRequest()
	create.Description = &desc
	id, err := svc.Create(context.Background(), create)
	require.NoError(t, err)

	// The update omits the description; a full replacement must clear it.
	updated, err := svc.Update(context.Background(), id, author.AuthorRequest{
		AuthorName:  "Eric Blair",
		BirthDate:   date(1903, time.June, 25),
		Nationality: "British",
	})

	require.NoError(t, err)
	assert.Equal(t, id, updated.ID)
	assert.Equal(t, "Eric Blair", updated.AuthorName)
	assert.Nil(t, updated.Description)
}

func TestUpdateValidatesBeforeTouchingStore(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	id, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), id, author.AuthorRequest{})

	var vErr *fault.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "George Orwell", repo.authors[id].AuthorName)
}

func TestUpdateUnknownAuthor(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Update(context.Background(), 99, validRequest())

	var nfErr *fault.NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestDeleteUnknownAuthor(t *testing.T) {
	svc := NewService(newFakeRepo())

	err := svc.Delete(context.Background(), 7)

	var nfErr *fault.NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestSearchMatchesSubstring(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	for _, name := range []string{"George Orwell", "George Eliot", "Jane Austen"} {
		req := validRequest()
		req.AuthorName = name
		_, err := svc.Create(context.Background(), req)
		require.NoError(t, err)
	}

	results, err := svc.Search(context.Background(), "George")

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "George Orwell", results[0].AuthorName)
}

func TestSearchEmptyKeywordReturnsAll(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	for i := 0; i < 3; i++ {
		_, err := svc.Create(context.Background(), validRequest())
		require.NoError(t, err)
	}

	results, err := svc.Search(context.Background(), "")

	require.NoError(t, err)
	assert.Len(t, results, 3)
}
