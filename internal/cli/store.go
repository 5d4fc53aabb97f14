package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/jumptable/internal/config"
	"github.com/aretw0/jumptable/pkg/adapters/file"
	"github.com/aretw0/jumptable/pkg/adapters/memory"
	"github.com/aretw0/jumptable/pkg/adapters/redis"
	"github.com/aretw0/jumptable/pkg/adapters/sqlite"
	"github.com/aretw0/jumptable/pkg/persistence/middleware"
	"github.com/aretw0/jumptable/pkg/ports"
)

// sessionLockKey guards interactive sessions on shared backends.
const sessionLockKey = "session"

// sessionLockTTL bounds how long a crashed session keeps the lock.
const sessionLockTTL = time.Hour

// Backend is an opened store plus what it takes to release it.
type Backend struct {
	Store ports.Store
	// Locker is set for backends shared between processes.
	Locker ports.Locker
	close  func() error
}

// Close releases the backend.
func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// OpenStore opens the store selected by cfg.Store. Calls are logged through
// logger, and bounded by cfg.StoreTimeout on network backends.
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Backend, error) {
	b, err := openBackend(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	mws := []middleware.Middleware{middleware.NewLoggingMiddleware(logger, cfg.Debug)}
	if b.Locker != nil || cfg.Store == config.StoreSQLite {
		mws = append(mws, middleware.NewTimeoutMiddleware(cfg.StoreTimeout))
	}
	b.Store = middleware.Chain(b.Store, mws...)
	return b, nil
}

func openBackend(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Backend, error) {
	switch cfg.Store {
	case config.StoreFile, "":
		logger.Debug("using file store", "dir", cfg.Dir)
		return &Backend{Store: file.NewStore(cfg.Dir)}, nil

	case config.StoreMemory:
		return &Backend{Store: memory.NewStore()}, nil

	case config.StoreRedis:
		logger.Debug("using redis store", "addr", cfg.RedisAddr, "db", cfg.RedisDB)
		store := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, redis.WithPrefix(cfg.RedisPrefix))
		if err := store.Ping(ctx); err != nil {
			store.Close()
			return nil, err
		}
		return &Backend{Store: store, Locker: store.Locker(), close: store.Close}, nil

	case config.StoreSQLite:
		logger.Debug("using sqlite store", "path", cfg.SQLitePath)
		store, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Backend{Store: store, close: store.Close}, nil
	}
	return nil, fmt.Errorf("invalid store %q", cfg.Store)
}

// lockSession takes the session lock when the backend has one, waiting at most
// cfg.LockTimeout. The returned function releases it.
func lockSession(ctx context.Context, b *Backend, cfg *config.Config) (func(), error) {
	if b.Locker == nil {
		return func() {}, nil
	}

	lockCtx, cancel := context.WithTimeout(ctx, cfg.LockTimeout)
	defer cancel()

	unlock, err := b.Locker.Lock(lockCtx, sessionLockKey, sessionLockTTL)
	if err != nil {
		return nil, fmt.Errorf("another session is running: %w", err)
	}
	return func() {
		_ = unlock(context.Background())
	}, nil
}
