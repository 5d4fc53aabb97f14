package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aretw0/jumptable/pkg/codec"
	"github.com/aretw0/jumptable/pkg/domain"
	"github.com/aretw0/jumptable/pkg/ports"
	_ "modernc.org/sqlite"
)

// DefaultTable is the table used when none is configured.
const DefaultTable = "structures"

// Store implements ports.Store on a SQLite table with one row per kind.
// The line column holds the same text a file store would write.
type Store struct {
	DB        *sql.DB
	TableName string
}

// New wraps an open database. Call Setup before first use.
func New(db *sql.DB, tableName string) *Store {
	if tableName == "" {
		tableName = DefaultTable
	}
	return &Store{
		DB:        db,
		TableName: tableName,
	}
}

// Open opens (creating if needed) the database at path and prepares the table.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	// A single connection keeps writes serialized on the same file.
	db.SetMaxOpenConns(1)

	store := New(db, DefaultTable)
	if err := store.Setup(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// Setup creates the table if it does not exist.
func (s *Store) Setup(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("%w: sqlite store requires DB", domain.ErrStoreUnavailable)
	}
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (kind TEXT PRIMARY KEY, line TEXT NOT NULL DEFAULT '');`, s.TableName)
	if _, err := s.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create table %s: %w", s.TableName, err)
	}
	return nil
}

// Save upserts the encoded items for kind.
func (s *Store) Save(ctx context.Context, kind domain.Kind, items []rune) error {
	if err := ports.CheckKind(kind); err != nil {
		return err
	}
	query := fmt.Sprintf(`INSERT INTO %s (kind, line) VALUES (?, ?) ON CONFLICT(kind) DO UPDATE SET line = excluded.line;`, s.TableName)
	if _, err := s.DB.ExecContext(ctx, query, string(kind), codec.Encode(items)); err != nil {
		return fmt.Errorf("failed to save %s: %w", kind, err)
	}
	return nil
}

// Load reads the line for kind. A missing row is an empty structure.
func (s *Store) Load(ctx context.Context, kind domain.Kind) ([]rune, error) {
	if err := ports.CheckKind(kind); err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT line FROM %s WHERE kind = ?;`, s.TableName)

	var line string
	err := s.DB.QueryRowContext(ctx, query, string(kind)).Scan(&line)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []rune{}, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w", kind, err)
	}
	return codec.Decode(line), nil
}

// Delete removes the row for kind.
func (s *Store) Delete(ctx context.Context, kind domain.Kind) error {
	if err := ports.CheckKind(kind); err != nil {
		return err
	}
	query := fmt.Sprintf(`DELETE FROM %s WHERE kind = ?;`, s.TableName)
	if _, err := s.DB.ExecContext(ctx, query, string(kind)); err != nil {
		return fmt.Errorf("failed to delete %s: %w", kind, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.DB.Close()
}
