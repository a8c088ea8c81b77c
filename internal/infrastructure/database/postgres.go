package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// Config carries the connection target plus pool and retry tuning.
type Config struct {
	// URL is the DSN, e.g. postgres://localhost:5432/author_service.
	// User and Password override the credentials embedded in the URL when set.
	URL      string
	User     string
	Password string

	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration

	MaxRetries     int
	RetryDelay     time.Duration
	ConnectTimeout time.Duration
}

// PostgresDB owns the pgx connection pool for one service database.
type PostgresDB struct {
	Pool   *pgxpool.Pool
	config Config
}

func New(cfg Config) *PostgresDB {
	return &PostgresDB{config: cfg}
}

// Connect establishes the pool, retrying with exponential backoff so the
// service survives a database that is still starting up.
func (db *PostgresDB) Connect(ctx context.Context) error {
	poolCfg, err := pgxpool.ParseConfig(db.config.URL)
	if err != nil {
		return fmt.Errorf("parse database url: %w", err)
	}

	if db.config.User != "" {
		poolCfg.ConnConfig.User = db.config.User
	}
	if db.config.Password != "" {
		poolCfg.ConnConfig.Password = db.config.Password
	}

	poolCfg.MaxConns = db.config.MaxConns
	poolCfg.MinConns = db.config.MinConns
	poolCfg.MaxConnLifetime = db.config.MaxConnLifetime
	poolCfg.MaxConnIdleTime = db.config.MaxConnIdleTime
	poolCfg.HealthCheckPeriod = db.config.HealthCheckPeriod
	poolCfg.ConnConfig.ConnectTimeout = db.config.ConnectTimeout

	pool, err := db.connectWithRetry(ctx, poolCfg)
	if err != nil {
		return err
	}

	db.Pool = pool
	return nil
}

func (db *PostgresDB) connectWithRetry(ctx context.Context, cfg *pgxpool.Config) (*pgxpool.Pool, error) {
	var lastErr error

	for attempt := 1; attempt <= db.config.MaxRetries; attempt++ {
		connectCtx, cancel := context.WithTimeout(ctx, db.config.ConnectTimeout)
		pool, err := pgxpool.NewWithConfig(connectCtx, cfg)
		cancel()

		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				log.Info().Int("attempt", attempt).Msg("Database connected")
				return pool, nil
			}
			pool.Close()
		}
		lastErr = err

		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("max_attempts", db.config.MaxRetries).
			Msg("Database connection failed")

		if attempt < db.config.MaxRetries {
			delay := db.config.RetryDelay * time.Duration(1<<uint(attempt-1))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}

	return nil, fmt.Errorf("failed to connect after %d attempts: %w", db.config.MaxRetries, lastErr)
}

// Ping verifies the pool is alive. Used by health endpoints.
func (db *PostgresDB) Ping(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close drains the pool. Safe to call more than once.
func (db *PostgresDB) Close() {
	if db.Pool == nil {
		return
	}
	log.Info().Msg("Closing database connection pool")
	db.Pool.Close()
	db.Pool = nil
}
