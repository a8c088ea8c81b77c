package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"book-management/internal/config"
	authorHandler "book-management/internal/domains/author/handler"
	authorRepo "book-management/internal/domains/author/repository"
	authorService "book-management/internal/domains/author/service"
	bookHandler "book-management/internal/domains/book/handler"
	bookRepo "book-management/internal/domains/book/repository"
	bookService "book-management/internal/domains/book/service"
	infraCache "book-management/internal/infrastructure/cache"
	"book-management/internal/infrastructure/database"
	"book-management/internal/shared/response"
	"book-management/pkg/cache"
	"book-management/pkg/i18n"
)

// Container wires the dependency graph of one service process. Exactly one
// of AuthorHandler and BookHandler is set, depending on which constructor
// built it.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Bundle     *i18n.Bundle
	Translator *response.Translator

	AuthorHandler *authorHandler.Handler
	BookHandler   *bookHandler.Handler
}

// NewAuthorContainer builds the dependency graph of the author service.
func NewAuthorContainer() (*Container, error) {
	c, err := newBase("authorservice", config.Defaults{
		Port:        "8081",
		DatabaseURL: "postgres://localhost:5432/author_service",
	})
	if err != nil {
		return nil, err
	}

	repo := authorRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.AuthorHandler = authorHandler.NewHandler(authorService.NewService(repo), c.Translator)
	return c, nil
}

// NewBookContainer builds the dependency graph of the book service.
func NewBookContainer() (*Container, error) {
	c, err := newBase("bookservice", config.Defaults{
		Port:        "8082",
		DatabaseURL: "postgres://localhost:5432/book_service",
	})
	if err != nil {
		return nil, err
	}

	repo := bookRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.BookHandler = bookHandler.NewHandler(bookService.NewService(repo), c.Translator)
	return c, nil
}

// newBase initializes everything both services share: config, database,
// cache, and the message catalog. Order matters; each step depends on the
// previous ones.
func newBase(serviceName string, defaults config.Defaults) (*Container, error) {
	c := &Container{}

	cfg, err := config.Load(serviceName, defaults)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	c.DB = database.New(database.Config{
		URL:               cfg.Database.URL,
		User:              cfg.Database.User,
		Password:          cfg.Database.Password,
		MaxConns:          int32(cfg.Database.MaxConns),
		MinConns:          int32(cfg.Database.MinConns),
		MaxConnLifetime:   cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:   cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod: cfg.Database.HealthCheckPeriod,
		MaxRetries:        cfg.Database.MaxRetries,
		RetryDelay:        cfg.Database.RetryDelay,
		ConnectTimeout:    cfg.Database.ConnectTimeout,
	})
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	c.Cache = newCache(ctx, cfg)

	bundle, err := i18n.Load(cfg.Messages.Basename, "en")
	if err != nil {
		c.DB.Close()
		return nil, fmt.Errorf("failed to load message bundles: %w", err)
	}
	c.Bundle = bundle
	c.Translator = response.NewTranslator(bundle)

	return c, nil
}

// newCache connects Redis when configured and quietly degrades to a no-op
// cache otherwise. A broken cache must not keep the service from starting.
func newCache(ctx context.Context, cfg *config.Config) cache.Cache {
	if cfg.Redis.Host == "" {
		log.Info().Msg("No Redis host configured, caching disabled")
		return cache.Noop()
	}

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("Redis unreachable, caching disabled")
		return cache.Noop()
	}
	return redisCache
}

// Cleanup releases infrastructure resources. Called on shutdown.
func (c *Container) Cleanup() {
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("Redis close failed")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
