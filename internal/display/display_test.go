package display_test

import (
	"bytes"
	"testing"

	"github.com/aretw0/jumptable/internal/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestANSI_ClearDisplay(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, display.NewANSI(&buf).ClearDisplay())
	assert.Contains(t, buf.String(), "\x1b[2J")
}

func TestFromMode(t *testing.T) {
	var buf bytes.Buffer

	tests := []struct {
		mode       string
		isTerminal bool
		want       any
	}{
		{display.ModeAuto, true, &display.ANSI{}},
		{display.ModeAuto, false, display.Nop{}},
		{"", false, display.Nop{}},
		{display.ModeANSI, false, &display.ANSI{}},
		{display.ModeCommand, false, &display.Command{}},
		{display.ModeNone, true, display.Nop{}},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			c, err := display.FromMode(tt.mode, &buf, tt.isTerminal)
			require.NoError(t, err)
			assert.IsType(t, tt.want, c)
		})
	}

	_, err := display.FromMode("flash", &buf, true)
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	assert.NoError(t, display.Nop{}.ClearDisplay())
}

func TestCommand_MissingProgram(t *testing.T) {
	c := &display.Command{Name: "jumptable-no-such-clear-program"}
	assert.Error(t, c.ClearDisplay())
}
