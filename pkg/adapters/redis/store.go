package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/jumptable/pkg/codec"
	"github.com/aretw0/jumptable/pkg/domain"
	"github.com/aretw0/jumptable/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces every key written by the store.
const DefaultPrefix = "jumptable:"

// Store implements ports.Store using Redis.
// Each kind is one string key holding the same line a file store would write.
type Store struct {
	client *backend.Client
	prefix string
}

type Option func(*Store)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: DefaultPrefix,
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key(kind domain.Kind) string {
	return s.prefix + string(kind)
}

// Ping checks that the server is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// Save overwrites the key for kind with the encoded items.
func (s *Store) Save(ctx context.Context, kind domain.Kind, items []rune) error {
	if err := ports.CheckKind(kind); err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key(kind), codec.Encode(items), 0).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load retrieves the items for kind. A missing key is an empty structure.
func (s *Store) Load(ctx context.Context, kind domain.Kind) ([]rune, error) {
	if err := ports.CheckKind(kind); err != nil {
		return nil, err
	}
	val, err := s.client.Get(ctx, s.key(kind)).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return []rune{}, nil
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}
	return codec.Decode(val), nil
}

// Delete removes the key for kind.
func (s *Store) Delete(ctx context.Context, kind domain.Kind) error {
	if err := ports.CheckKind(kind); err != nil {
		return err
	}
	if err := s.client.Del(ctx, s.key(kind)).Err(); err != nil {
		return fmt.Errorf("failed to delete from redis: %w", err)
	}
	return nil
}

// Locker returns a session locker sharing the store's client and prefix.
func (s *Store) Locker() *Locker {
	return NewLocker(s.client, s.prefix)
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
