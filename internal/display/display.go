// Package display provides the clear-display capability used between screens.
package display

import (
	"fmt"
	"io"
	"os/exec"

	"github.com/muesli/termenv"
)

// Mode selects how the display is cleared.
const (
	ModeAuto    = "auto"
	ModeANSI    = "ansi"
	ModeCommand = "command"
	ModeNone    = "none"
)

// Clearer wipes the terminal before the next screen is drawn.
// Implementations must not return before the display is clear.
type Clearer interface {
	ClearDisplay() error
}

// ANSI clears with escape sequences written to the output.
type ANSI struct {
	output *termenv.Output
}

// NewANSI creates an ANSI clearer writing to w.
func NewANSI(w io.Writer) *ANSI {
	return &ANSI{output: termenv.NewOutput(w)}
}

func (a *ANSI) ClearDisplay() error {
	a.output.ClearScreen()
	return nil
}

// Command clears by running an external program and waiting for it to exit.
type Command struct {
	Name   string
	Args   []string
	Stdout io.Writer
}

// NewCommand creates a clearer running the platform's clear program with its
// output sent to w.
func NewCommand(w io.Writer) *Command {
	name, args := clearCommand()
	return &Command{Name: name, Args: args, Stdout: w}
}

func (c *Command) ClearDisplay() error {
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Stdout = c.Stdout
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run %s: %w", c.Name, err)
	}
	return nil
}

// Nop leaves the display untouched.
type Nop struct{}

func (Nop) ClearDisplay() error { return nil }

// FromMode returns the clearer for mode. In ModeAuto, terminals are cleared with
// ANSI sequences and anything else is left alone.
func FromMode(mode string, w io.Writer, isTerminal bool) (Clearer, error) {
	switch mode {
	case ModeAuto, "":
		if isTerminal {
			return NewANSI(w), nil
		}
		return Nop{}, nil
	case ModeANSI:
		return NewANSI(w), nil
	case ModeCommand:
		return NewCommand(w), nil
	case ModeNone:
		return Nop{}, nil
	}
	return nil, fmt.Errorf("unknown clear mode %q", mode)
}
