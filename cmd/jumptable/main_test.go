package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/jumptable/internal/testutils"
	"github.com/aretw0/jumptable/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseKinds(t *testing.T) {
	kinds, err := parseKinds(nil)
	require.NoError(t, err)
	assert.Equal(t, domain.Kinds, kinds)

	kinds, err = parseKinds([]string{"List", "stack"})
	require.NoError(t, err)
	assert.Equal(t, []domain.Kind{domain.KindList, domain.KindStack}, kinds)

	_, err = parseKinds([]string{"deque"})
	assert.ErrorIs(t, err, domain.ErrUnknownKind)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "jumptable version ")
}

func TestShowAndResetCommands(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteStructure(t, dir, domain.KindQueue, "a,b,")

	out, err := execute(t, "show", "queue", "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "| a | b |   |\n", out)

	_, err = execute(t, "reset", "queue", "--dir", dir)
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "queue.txt"))
}

func TestConfigCommand_HidesPassword(t *testing.T) {
	out, err := execute(t, "config", "--store", "redis", "--redis-password", "s3cret", "--dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "store: redis")
	assert.NotContains(t, out, "s3cret")
}

func TestGraphCommand_Highlight(t *testing.T) {
	out, err := execute(t, "graph", "--highlight", "stack")
	require.NoError(t, err)
	assert.Contains(t, out, "graph TD")
	assert.Contains(t, out, "class STACK current;")
}

func TestMCPCommand(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteStructure(t, dir, domain.KindList, "k,")

	rootCmd.SetIn(strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"show_structures","arguments":{"kind":"list"}}}` + "\n"))
	defer rootCmd.SetIn(nil)

	out, err := execute(t, "mcp", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, `"line":"k,"`)
}
