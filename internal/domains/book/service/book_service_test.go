package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-management/internal/domains/book"
	"book-management/internal/shared"
	"book-management/internal/shared/fault"
)

type fakeRepo struct {
	books  map[int64]book.Book
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{books: map[int64]book.Book{}, nextID: 1}
}

func (r *fakeRepo) FindByID(_ context.Context, id int64) (book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return book.Book{}, book.NewNotFound(id)
	}
	return b, nil
}

func (r *fakeRepo) FindAll(_ context.Context, page, size int) ([]book.Book, int64, error) {
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

func (r *fakeRepo) FindByTitle(_ context.Context, title string) (book.Book, error) {
	for _, b := range r.sorted() {
		if b.Title == title {
			return b, nil
		}
	}
	return book.Book{}, book.NewTitleNotFound(title)
}

func (r *fakeRepo) Insert(_ context.Context, b book.Book) (book.Book, error) {
	b.ID = r.nextID
	r.nextID++
	r.books[b.ID] = b
	return b, nil
}

func (r *fakeRepo) Replace(_ context.Context, id int64, apply func(*book.Book)) (book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return book.Book{}, book.NewNotFound(id)
	}
	apply(&b)
	r.books[id] = b
	return b, nil
}

func (r *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.books[id]; !ok {
		return book.NewNotFound(id)
	}
	delete(r.books, id)
	return nil
}

func (r *fakeRepo) sorted() []book.Book {
	var out []book.Book
	for id := int64(0); id < r.nextID; id++ {
		if b, ok := r.books[id]; ok {
			out = append(out, b)
		}
	}
	return out
}

func date(year int, month time.Month, day int) shared.Date {
	return shared.DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func validRequest() book.BookRequest {
	authorID := int64(1)
	return book.BookRequest{
		Title:         "Notes",
		PublishedDate: date(1843, time.January, 1),
		Genre:         "Essay",
		AuthorID:      &authorID,
	}
}

func TestCreateReturnsStoredRecord(t *testing.T) {
	svc := NewService(newFakeRepo())

	created, err := svc.Create(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Notes", created.Title)
	require.NotNil(t, created.AuthorID)
	assert.Equal(t, int64(1), *created.AuthorID)
}

func TestCreateCollectsViolationsInFieldOrder(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Create(context.Background(), book.BookRequest{})

	var vErr *fault.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{
		"book.title.mandatory",
		"book.publishedDate.mandatory",
		"book.genre.mandatory",
	}, vErr.Keys)
}

func TestCreateTitleTooLong(t *testing.T) {
	svc := NewService(newFakeRepo())

	req := validRequest()
	long := make([]byte, 256)
	for i := range long {
		long[i] = 'a'
	}
	req.Title = string(long)

	_, err := svc.Create(context.Background(), req)

	var vErr *fault.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"book.title.size"}, vErr.Keys)
}

func TestCreateFutureDateAllowed(t *testing.T) {
	// publishedDate has no temporal bound, unlike an author's birth date.
	svc := NewService(newFakeRepo())

	req := validRequest()
	req.PublishedDate = shared.DateOf(time.Now().AddDate(1, 0, 0))

	_, err := svc.Create(context.Background(), req)

	require.NoError(t, err)
}

func TestGetByTitle(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	found, err := svc.GetByTitle(context.Background(), "Notes")

	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestGetByTitleReturnsLowestID(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	first, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	found, err := svc.GetByTitle(context.Background(), "Notes")

	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
}

func TestGetByUnknownTitle(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.GetByTitle(context.Background(), "Missing")

	var nfErr *fault.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, book.KeyNotFound, nfErr.MessageKey)
	assert.Equal(t, " Missing", nfErr.Subject)
}

func TestUpdateReplacesEveryField(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	// Omitting the author reference must clear it.
	updated, err := svc.Update(context.Background(), created.ID, book.BookRequest{
		Title:         "Notes, revised",
		PublishedDate: date(1850, time.May, 2),
		Genre:         "Essay",
	})

	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Notes, revised", updated.Title)
	assert.Nil(t, updated.AuthorID)
}

func TestDeleteThenLookupFails(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.GetByTitle(context.Background(), "Notes")
	var nfErr *fault.NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestListRejectsBadPagination(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.List(context.Background(), 0, 0)
	assert.ErrorIs(t, err, fault.ErrBadPage)
}

func TestListEmptyStore(t *testing.T) {
	svc := NewService(newFakeRepo())

	page, err := svc.List(context.Background(), 0, 1)

	require.NoError(t, err)
	assert.NotNil(t, page.Content)
	assert.Empty(t, page.Content)
	assert.Equal(t, int64(0), page.TotalElements)
}
