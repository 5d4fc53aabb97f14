package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/jumptable/pkg/domain"
	"github.com/stretchr/testify/require"
)

// Script joins menu commands into the input of a scripted session.
// Each command becomes one line.
func Script(commands ...string) *strings.Reader {
	if len(commands) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(commands, "\n") + "\n")
}

// WriteStructure writes the persisted line of kind into dir.
// It fails the test immediately on error.
func WriteStructure(t *testing.T, dir string, kind domain.Kind, line string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, kind.FileName()), []byte(line), 0644)
	require.NoError(t, err, "Failed to write %s", kind.FileName())
}

// ReadStructure returns the persisted line of kind in dir.
func ReadStructure(t *testing.T, dir string, kind domain.Kind) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, kind.FileName()))
	require.NoError(t, err, "Failed to read %s", kind.FileName())
	return string(data)
}
