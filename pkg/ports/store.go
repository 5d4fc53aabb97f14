package ports

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/jumptable/pkg/domain"
)

// Store persists the contents of each structure kind.
// Items are given and returned in persistence order: bottom-to-top for the stack,
// head-to-tail for the queue, natural order for the list.
type Store interface {
	// Load retrieves the items last saved for kind.
	// A kind that was never saved (or was deleted) yields an empty slice and no error.
	Load(ctx context.Context, kind domain.Kind) ([]rune, error)

	// Save replaces the persisted items of kind. It never appends.
	Save(ctx context.Context, kind domain.Kind, items []rune) error

	// Delete removes the persisted items of kind. Deleting missing data is not an error.
	Delete(ctx context.Context, kind domain.Kind) error
}

// CheckKind returns a wrapped domain.ErrUnknownKind when kind is not valid.
func CheckKind(kind domain.Kind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownKind, kind)
	}
	return nil
}

// UnlockFunc releases a lock acquired through a Locker.
type UnlockFunc func(ctx context.Context) error

// Locker provides mutual exclusion between interactive sessions sharing a store.
type Locker interface {
	// Lock blocks until the lock for key is held or ctx is done.
	// The returned UnlockFunc MUST be called to release it.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
