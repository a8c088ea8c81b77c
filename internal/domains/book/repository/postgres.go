package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"book-management/internal/domains/book"
	"book-management/internal/infrastructure/database"
	"book-management/pkg/cache"
	pkgdatabase "book-management/pkg/database"
)

const (
	cacheKeyPrefix = "book:"
	cacheTTL       = 15 * time.Minute
)

const bookColumns = "id, title, published_date, genre, description, author_id"

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository builds the pgx-backed book repository with a
// read-through cache on id lookups.
func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache) book.Repository {
	return &postgresRepository{pool: pool, cache: c}
}

func cacheKey(id int64) string {
	return cacheKeyPrefix + strconv.FormatInt(id, 10)
}

func scanBook(row pgx.Row) (book.Book, error) {
	var b book.Book
	err := row.Scan(&b.ID, &b.Title, &b.PublishedDate, &b.Genre, &b.Description, &b.AuthorID)
	return b, err
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (book.Book, error) {
	var cached book.Book
	if found, err := r.cache.Get(ctx, cacheKey(id), &cached); err == nil && found {
		return cached, nil
	} else if err != nil {
		log.Warn().Err(err).Int64("book_id", id).Msg("Cache read failed")
	}

	row := r.pool.QueryRow(ctx,
		"SELECT "+bookColumns+" FROM books WHERE id = $1", id)
	b, err := scanBook(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return book.Book{}, book.NewNotFound(id)
	}
	if err != nil {
		return book.Book{}, database.ClassifyError(err)
	}

	if err := r.cache.Set(ctx, cacheKey(id), b, cacheTTL); err != nil {
		log.Warn().Err(err).Int64("book_id", id).Msg("Cache write failed")
	}
	return b, nil
}

func (r *postgresRepository) FindAll(ctx context.Context, page, size int) ([]book.Book, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM books").Scan(&total); err != nil {
		return nil, 0, database.ClassifyError(err)
	}

	rows, err := r.pool.Query(ctx,
		"SELECT "+bookColumns+" FROM books ORDER BY id LIMIT $1 OFFSET $2",
		size, page*size)
	if err != nil {
		return nil, 0, database.ClassifyError(err)
	}
	defer rows.Close()

	books, err := collectBooks(rows)
	if err != nil {
		return nil, 0, database.ClassifyError(err)
	}
	return books, total, nil
}

func (r *postgresRepository) FindByTitle(ctx context.Context, title string) (book.Book, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT "+bookColumns+" FROM books WHERE title = $1 ORDER BY id LIMIT 1", title)
	b, err := scanBook(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return book.Book{}, book.NewTitleNotFound(title)
	}
	if err != nil {
		return book.Book{}, database.ClassifyError(err)
	}
	return b, nil
}

func (r *postgresRepository) Insert(ctx context.Context, b book.Book) (book.Book, error) {
	row := r.pool.QueryRow(ctx,
		"INSERT INTO books (title, published_date, genre, description, author_id)"+
			" VALUES ($1, $2, $3, $4, $5) RETURNING "+bookColumns,
		b.Title, b.PublishedDate, b.Genre, b.Description, b.AuthorID)

	inserted, err := scanBook(row)
	if err != nil {
		return book.Book{}, database.ClassifyError(err)
	}
	return inserted, nil
}

func (r *postgresRepository) Replace(ctx context.Context, id int64, apply func(*book.Book)) (book.Book, error) {
	updated, err := pkgdatabase.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (book.Book, error) {
		row := tx.QueryRow(ctx,
			"SELECT "+bookColumns+" FROM books WHERE id = $1 FOR UPDATE", id)
		b, err := scanBook(row)
		if errors.Is(err, pgx.ErrNoRows) {
			return book.Book{}, book.NewNotFound(id)
		}
		if err != nil {
			return book.Book{}, database.ClassifyError(err)
		}

		apply(&b)

		_, err = tx.Exec(ctx,
			"UPDATE books SET title = $1, published_date = $2, genre = $3, description = $4, author_id = $5 WHERE id = $6",
			b.Title, b.PublishedDate, b.Genre, b.Description, b.AuthorID, b.ID)
		if err != nil {
			return book.Book{}, database.ClassifyError(err)
		}
		return b, nil
	})
	if err != nil {
		return book.Book{}, err
	}

	r.invalidate(ctx, id)
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM books WHERE id = $1", id)
	if err != nil {
		return database.ClassifyError(err)
	}
	if tag.RowsAffected() == 0 {
		return book.NewNotFound(id)
	}

	r.invalidate(ctx, id)
	return nil
}

func (r *postgresRepository) invalidate(ctx context.Context, id int64) {
	if err := r.cache.Delete(ctx, cacheKey(id)); err != nil {
		log.Warn().Err(err).Int64("book_id", id).Msg("Cache invalidation failed")
	}
}

func collectBooks(rows pgx.Rows) ([]book.Book, error) {
	var books []book.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}
