package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"book-management/internal/domains/author"
	"book-management/internal/infrastructure/database"
	"book-management/pkg/cache"
	pkgdatabase "book-management/pkg/database"
)

const (
	cacheKeyPrefix = "author:"
	cacheTTL       = 15 * time.Minute
)

const authorColumns = "id, author_name, birth_date, nationality, description"

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository builds the pgx-backed author repository with a
// read-through cache on single-row lookups.
func NewPostgresRepository(pool *pgxpool.Pool, c cache.Cache) author.Repository {
	return &postgresRepository{pool: pool, cache: c}
}

func cacheKey(id int64) string {
	return cacheKeyPrefix + strconv.FormatInt(id, 10)
}

func scanAuthor(row pgx.Row) (author.Author, error) {
	var a author.Author
	err := row.Scan(&a.ID, &a.AuthorName, &a.BirthDate, &a.Nationality, &a.Description)
	return a, err
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (author.Author, error) {
	var cached author.Author
	if found, err := r.cache.Get(ctx, cacheKey(id), &cached); err == nil && found {
		return cached, nil
	} else if err != nil {
		log.Warn().Err(err).Int64("author_id", id).Msg("Cache read failed")
	}

	row := r.pool.QueryRow(ctx,
		"SELECT "+authorColumns+" FROM authors WHERE id = $1", id)
	a, err := scanAuthor(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return author.Author{}, author.NewNotFound(id)
	}
	if err != nil {
		return author.Author{}, database.ClassifyError(err)
	}

	if err := r.cache.Set(ctx, cacheKey(id), a, cacheTTL); err != nil {
		log.Warn().Err(err).Int64("author_id", id).Msg("Cache write failed")
	}
	return a, nil
}

func (r *postgresRepository) FindAll(ctx context.Context, page, size int) ([]author.Author, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM authors").Scan(&total); err != nil {
		return nil, 0, database.ClassifyError(err)
	}

	rows, err := r.pool.Query(ctx,
		"SELECT "+authorColumns+" FROM authors ORDER BY id LIMIT $1 OFFSET $2",
		size, page*size)
	if err != nil {
		return nil, 0, database.ClassifyError(err)
	}
	defer rows.Close()

	authors, err := collectAuthors(rows)
	if err != nil {
		return nil, 0, database.ClassifyError(err)
	}
	return authors, total, nil
}

func (r *postgresRepository) FindByNameContaining(ctx context.Context, keyword string, limit int) ([]author.Author, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+authorColumns+" FROM authors"+
			" WHERE author_name LIKE '%' || $1 || '%' ESCAPE '\\' ORDER BY id LIMIT $2",
		escapeLike(keyword), limit)
	if err != nil {
		return nil, database.ClassifyError(err)
	}
	defer rows.Close()

	authors, err := collectAuthors(rows)
	if err != nil {
		return nil, database.ClassifyError(err)
	}
	return authors, nil
}

func (r *postgresRepository) Insert(ctx context.Context, a author.Author) (author.Author, error) {
	row := r.pool.QueryRow(ctx,
		"INSERT INTO authors (author_name, birth_date, nationality, description)"+
			" VALUES ($1, $2, $3, $4) RETURNING "+authorColumns,
		a.AuthorName, a.BirthDate, a.Nationality, a.Description)

	inserted, err := scanAuthor(row)
	if err != nil {
		return author.Author{}, database.ClassifyError(err)
	}
	return inserted, nil
}

func (r *postgresRepository) Replace(ctx context.Context, id int64, apply func(*author.Author)) (author.Author, error) {
	updated, err := pkgdatabase.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (author.Author, error) {
		row := tx.QueryRow(ctx,
			"SELECT "+authorColumns+" FROM authors WHERE id = $1 FOR UPDATE", id)
		a, err := scanAuthor(row)
		if errors.Is(err, pgx.ErrNoRows) {
			return author.Author{}, author.NewNotFound(id)
		}
		if err != nil {
			return author.Author{}, database.ClassifyError(err)
		}

		apply(&a)

		_, err = tx.Exec(ctx,
			"UPDATE authors SET author_name = $1, birth_date = $2, nationality = $3, description = $4 WHERE id = $5",
			a.AuthorName, a.BirthDate, a.Nationality, a.Description, a.ID)
		if err != nil {
			return author.Author{}, database.ClassifyError(err)
		}
		return a, nil
	})
	if err != nil {
		return author.Author{}, err
	}

	r.invalidate(ctx, id)
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM authors WHERE id = $1", id)
	if err != nil {
		return database.ClassifyError(err)
	}
	if tag.RowsAffected() == 0 {
		return author.NewNotFound(id)
	}

	r.invalidate(ctx, id)
	return nil
}

func (r *postgresRepository) invalidate(ctx context.Context, id int64) {
	if err := r.cache.Delete(ctx, cacheKey(id)); err != nil {
		log.Warn().Err(err).Int64("author_id", id).Msg("Cache invalidation failed")
	}
}

func collectAuthors(rows pgx.Rows) ([]author.Author, error) {
	var authors []author.Author
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, err
		}
		authors = append(authors, a)
	}
	return authors, rows.Err()
}

// escapeLike neutralizes LIKE wildcards in user input so a keyword of "100%"
// matches the literal text.
func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
