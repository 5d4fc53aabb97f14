package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/jumptable/pkg/codec"
	"github.com/aretw0/jumptable/pkg/domain"
	"github.com/aretw0/jumptable/pkg/ports"
)

// Store implements ports.Store using the local filesystem.
// Each kind lives in its own single-line text file (stack.txt, queue.txt, list.txt).
type Store struct {
	BasePath string
}

// NewStore creates a new Store rooted at basePath.
// If basePath is empty, it defaults to the working directory.
func NewStore(basePath string) *Store {
	if basePath == "" {
		basePath = "."
	}
	return &Store{BasePath: basePath}
}

// Path returns the file backing kind.
func (f *Store) Path(kind domain.Kind) string {
	return filepath.Join(f.BasePath, kind.FileName())
}

// Save truncates the file for kind and writes the encoded items.
func (f *Store) Save(ctx context.Context, kind domain.Kind, items []rune) error {
	if err := ports.CheckKind(kind); err != nil {
		return err
	}

	if err := os.MkdirAll(f.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure store directory: %w", err)
	}

	if err := os.WriteFile(f.Path(kind), []byte(codec.Encode(items)), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", kind.FileName(), err)
	}

	return nil
}

// Load reads the first line of the file for kind.
// A missing file is an empty structure.
func (f *Store) Load(ctx context.Context, kind domain.Kind) ([]rune, error) {
	if err := ports.CheckKind(kind); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.Path(kind))
	if err != nil {
		if os.IsNotExist(err) {
			return []rune{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", kind.FileName(), err)
	}

	return codec.Decode(string(data)), nil
}

// Delete removes the file for kind.
func (f *Store) Delete(ctx context.Context, kind domain.Kind) error {
	if err := ports.CheckKind(kind); err != nil {
		return err
	}

	err := os.Remove(f.Path(kind))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", kind.FileName(), err)
	}

	return nil
}
