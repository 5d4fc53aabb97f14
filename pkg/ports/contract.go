package ports

import (
	"context"
	"testing"

	"github.com/aretw0/jumptable/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStoreContract runs a suite of tests to verify that a Store implementation
// adheres to the defined interface contract. The store must start empty.
func RunStoreContract(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("Load Missing", func(t *testing.T) {
		for _, kind := range domain.Kinds {
			items, err := store.Load(ctx, kind)
			require.NoError(t, err, "missing %s should not be an error", kind)
			assert.Empty(t, items)
		}
	})

	t.Run("Save and Load", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, domain.KindQueue, []rune("abc")))

		items, err := store.Load(ctx, domain.KindQueue)
		require.NoError(t, err)
		assert.Equal(t, []rune("abc"), items)
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, domain.KindList, []rune("wxyz")))
		require.NoError(t, store.Save(ctx, domain.KindList, []rune("q")))

		items, err := store.Load(ctx, domain.KindList)
		require.NoError(t, err)
		assert.Equal(t, []rune("q"), items)
	})

	t.Run("Save Empty", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, domain.KindList, nil))

		items, err := store.Load(ctx, domain.KindList)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("Kinds Are Isolated", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, domain.KindStack, []rune("s")))
		require.NoError(t, store.Save(ctx, domain.KindQueue, []rune("qq")))

		stack, err := store.Load(ctx, domain.KindStack)
		require.NoError(t, err)
		queue, err := store.Load(ctx, domain.KindQueue)
		require.NoError(t, err)

		assert.Equal(t, []rune("s"), stack)
		assert.Equal(t, []rune("qq"), queue)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, domain.KindStack, []rune("gone")))
		require.NoError(t, store.Delete(ctx, domain.KindStack))

		items, err := store.Load(ctx, domain.KindStack)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("Delete Missing", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, domain.KindStack))
	})

	t.Run("Unknown Kind", func(t *testing.T) {
		_, err := store.Load(ctx, domain.Kind("heap"))
		assert.ErrorIs(t, err, domain.ErrUnknownKind)
		err = store.Save(ctx, domain.Kind("heap"), []rune("a"))
		assert.ErrorIs(t, err, domain.ErrUnknownKind)
		err = store.Delete(ctx, domain.Kind("heap"))
		assert.ErrorIs(t, err, domain.ErrUnknownKind)
	})
}

