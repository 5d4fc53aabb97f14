package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aretw0/jumptable/pkg/adapters/sqlite"
	"github.com/aretw0/jumptable/pkg/domain"
	"github.com/aretw0/jumptable/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.Store = (*sqlite.Store)(nil)

func TestSQLiteStore_Contract(t *testing.T) {
	store, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "jumptable.db"))
	require.NoError(t, err)
	defer store.Close()

	ports.RunStoreContract(t, store)
}

func TestSQLiteStore_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jumptable.db")
	ctx := context.Background()

	first, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, domain.KindStack, []rune("xyz")))
	require.NoError(t, first.Close())

	second, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	defer second.Close()

	items, err := second.Load(ctx, domain.KindStack)
	require.NoError(t, err)
	assert.Equal(t, []rune("xyz"), items)
}

func TestSQLiteStore_QueryErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := sqlite.New(db, "")
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT line FROM structures WHERE kind = ?;`)).
		WithArgs("queue").
		WillReturnError(errors.New("disk I/O error"))
	_, err = store.Load(ctx, domain.KindQueue)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load queue")

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO structures (kind, line)`)).
		WithArgs("list", "a,").
		WillReturnError(errors.New("database is locked"))
	err = store.Save(ctx, domain.KindList, []rune("a"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_SetupWithoutDB(t *testing.T) {
	store := &sqlite.Store{}
	err := store.Setup(context.Background())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
