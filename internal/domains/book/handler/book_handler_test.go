package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-management/internal/domains/book"
	"book-management/internal/shared"
	"book-management/internal/shared/fault"
	"book-management/internal/shared/middleware"
	"book-management/internal/shared/response"
	"book-management/pkg/i18n"
)

type stubService struct {
	list       func(page, size int) (response.Page[book.BookResponse], error)
	getByTitle func(title string) (book.BookResponse, error)
	create     func(req book.BookRequest) (book.BookResponse, error)
	update     func(id int64, req book.BookRequest) (book.BookResponse, error)
	del        func(id int64) error
}

func (s *stubService) List(_ context.Context, page, size int) (response.Page[book.BookResponse], error) {
	return s.list(page, size)
}
func (s *stubService) GetByTitle(_ context.Context, title string) (book.BookResponse, error) {
	return s.getByTitle(title)
}
func (s *stubService) Create(_ context.Context, req book.BookRequest) (book.BookResponse, error) {
	return s.create(req)
}
func (s *stubService) Update(_ context.Context, id int64, req book.BookRequest) (book.BookResponse, error) {
	return s.update(id, req)
}
func (s *stubService) Delete(_ context.Context, id int64) error {
	return s.del(id)
}

func newRouter(t *testing.T, svc book.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	bundle, err := i18n.Load("testdata.messages", "en")
	require.NoError(t, err)

	router := gin.New()
	router.Use(middleware.Locale(bundle))

	h := NewHandler(svc, response.NewTranslator(bundle))
	h.RegisterRoutes(router.Group("/books"))
	return router
}

func perform(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func sampleBook() book.BookResponse {
	authorID := int64(1)
	return book.BookResponse{
		ID:            3,
		Title:         "Notes",
		PublishedDate: shared.DateOf(time.Date(1843, time.January, 1, 0, 0, 0, 0, time.UTC)),
		Genre:         "Essay",
		AuthorID:      &authorID,
	}
}

func TestCreateEchoesStoredRecord(t *testing.T) {
	svc := &stubService{
		create: func(req book.BookRequest) (book.BookResponse, error) {
			assert.Equal(t, "Notes", req.Title)
			require.NotNil(t, req.AuthorID)
			assert.Equal(t, int64(1), *req.AuthorID)
			return sampleBook(), nil
		},
	}
	router := newRouter(t, svc)

	body := `{"title":"Notes","publishedDate":"01-01-1843","genre":"Essay","author":1}`
	rec := perform(router, http.MethodPost, "/books", body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":3`)
	assert.Contains(t, rec.Body.String(), `"publishedDate":"01-01-1843"`)
	assert.Contains(t, rec.Body.String(), `"author":1`)
}

func TestCreateValidationFailure(t *testing.T) {
	svc := &stubService{
		create: func(req book.BookRequest) (book.BookResponse, error) {
			return book.BookResponse{}, &fault.ValidationError{Keys: []string{
				"book.title.mandatory",
				"book.publishedDate.mandatory",
				"book.genre.mandatory",
			}}
		},
	}
	router := newRouter(t, svc)

	rec := perform(router, http.MethodPost, "/books", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(),
		"[Title is mandatory, Published date is mandatory, Genre is mandatory]")
}

func TestUpdateEchoesRecord(t *testing.T) {
	svc := &stubService{
		update: func(id int64, req book.BookRequest) (book.BookResponse, error) {
			assert.Equal(t, int64(3), id)
			return sampleBook(), nil
		},
	}
	router := newRouter(t, svc)

	body := `{"title":"Notes","publishedDate":"01-01-1843","genre":"Essay"}`
	rec := perform(router, http.MethodPut, "/books/3", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Notes"`)
}

func TestDeleteReturnsNoContent(t *testing.T) {
	svc := &stubService{
		del: func(id int64) error {
			assert.Equal(t, int64(3), id)
			return nil
		},
	}
	router := newRouter(t, svc)

	rec := perform(router, http.MethodDelete, "/books/3", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDeleteUnknownID(t *testing.T) {
	svc := &stubService{
		del: func(id int64) error { return book.NewNotFound(id) },
	}
	router := newRouter(t, svc)

	rec := perform(router, http.MethodDelete, "/books/9", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No book found with 9")
}

func TestList(t *testing.T) {
	svc := &stubService{
		list: func(page, size int) (response.Page[book.BookResponse], error) {
			return response.NewPage([]book.BookResponse{sampleBook()}, 1, page, size), nil
		},
	}
	router := newRouter(t, svc)

	rec := perform(router, http.MethodGet, "/books/list?page=0&size=5", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalElements":1`)
	assert.Contains(t, rec.Body.String(), `"size":5`)
}

func TestGetByTitle(t *testing.T) {
	svc := &stubService{
		getByTitle: func(title string) (book.BookResponse, error) {
			assert.Equal(t, "Notes", title)
			return sampleBook(), nil
		},
	}
	router := newRouter(t, svc)

	rec := perform(router, http.MethodGet, "/books/title?title=Notes", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Notes"`)
}

func TestGetByUnknownTitle(t *testing.T) {
	svc := &stubService{
		getByTitle: func(title string) (book.BookResponse, error) {
			return book.BookResponse{}, book.NewTitleNotFound(title)
		},
	}
	router := newRouter(t, svc)

	rec := perform(router, http.MethodGet, "/books/title?title=Missing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No book found with Missing")
}

func TestGetByTitleMissingParameter(t *testing.T) {
	router := newRouter(t, &stubService{})

	rec := perform(router, http.MethodGet, "/books/title", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
