package infrastructure

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/architeacher/svc-booking-messaging/internal/config"
)

const postgresDriver = "postgres"

// Storage owns the Postgres connection pool.
type Storage struct {
	db  *sqlx.DB
	cfg config.StorageConfig
}

// NewStorage opens a pool against the configured database and verifies it with a ping.
func NewStorage(cfg config.StorageConfig) (*Storage, error) {
	db, err := sqlx.Open(postgresDriver, DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Storage{db: db, cfg: cfg}, nil
}

// NewStorageFromDB wraps an already opened pool.
func NewStorageFromDB(db *sqlx.DB, cfg config.StorageConfig) *Storage {
	return &Storage{db: db, cfg: cfg}
}

func (s *Storage) GetDB() *sqlx.DB {
	return s.db
}

// Ping reports whether the database answers within the query timeout.
func (s *Storage) Ping(ctx context.Context) error {
	if s.cfg.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.QueryTimeout)
		defer cancel()
	}

	return s.db.PingContext(ctx)
}

func (s *Storage) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}

// DSN renders the lib/pq connection URL for cfg.
func DSN(cfg config.StorageConfig) string {
	query := url.Values{}
	query.Set("sslmode", cfg.SSLMode)

	if cfg.ConnectTimeout > 0 {
		query.Set("connect_timeout", strconv.Itoa(int(cfg.ConnectTimeout.Seconds())))
	}

	dsn := url.URL{
		Scheme:   postgresDriver,
		User:     url.UserPassword(cfg.Username, cfg.Password),
		Host:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Path:     cfg.Database,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}
