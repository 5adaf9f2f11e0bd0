package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"v3pricing/internal/model"
	"v3pricing/internal/storage/postgres"
	"v3pricing/internal/storage/redis"
)

// EntityStore persists the pricing entities. Lookups report absence with a
// false flag rather than an error.
type EntityStore interface {
	Token(ctx context.Context, id string) (model.Token, bool, error)
	SaveToken(ctx context.Context, token model.Token) error
	Pool(ctx context.Context, id string) (model.Pool, bool, error)
	SavePool(ctx context.Context, pool model.Pool) error

	// Bundle returns the singleton bundle, with a zero price when none was saved.
	Bundle(ctx context.Context) (model.Bundle, error)
	SaveBundle(ctx context.Context, bundle model.Bundle) error

	Cursor(ctx context.Context, name string) (model.Cursor, bool, error)
	SaveCursor(ctx context.Context, name string, cursor model.Cursor) error

	// Commit writes every record of changes, and its cursor, in one atomic unit.
	Commit(ctx context.Context, changes model.ChangeSet) error

	Close() error
}

var (
	_ EntityStore = (*MemoryStore)(nil)
	_ EntityStore = (*postgres.Store)(nil)
	_ EntityStore = (*redis.Store)(nil)
)

// Open returns a store for dsn: "memory" (or empty), a postgres URL or a redis URL.
func Open(ctx context.Context, dsn string, logger *zap.Logger) (EntityStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	dsn = strings.TrimSpace(dsn)
	switch {
	case dsn == "" || dsn == "memory":
		logger.Info("using in-memory store")
		return NewMemoryStore(), nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		store, err := postgres.NewStore(ctx, dsn)
		if err != nil {
			return nil, fmt.Errorf("open postgres store: %w", err)
		}
		if err := store.EnsureSchema(ctx); err != nil {
			store.Close()
			return nil, fmt.Errorf("ensure postgres schema: %w", err)
		}
		logger.Info("using postgres store")
		return store, nil
	case strings.HasPrefix(dsn, "redis://"), strings.HasPrefix(dsn, "rediss://"):
		store, err := redis.NewStore(ctx, dsn, redis.DefaultPrefix)
		if err != nil {
			return nil, fmt.Errorf("open redis store: %w", err)
		}
		logger.Info("using redis store", zap.String("prefix", redis.DefaultPrefix))
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported store dsn %q", RedactDSN(dsn))
	}
}

// RedactDSN masks the password of a URL-style DSN for logging.
func RedactDSN(dsn string) string {
	if dsn == "" || dsn == "memory" {
		return dsn
	}
	u, err := url.Parse(dsn)
	if err != nil || u.Scheme == "" {
		return "***"
	}
	return u.Redacted()
}
