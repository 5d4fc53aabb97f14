// Package render draws structure snapshots as text, optionally colorized with termenv.
package render

import (
	"io"
	"strings"

	"github.com/aretw0/jumptable/pkg/domain"
	"github.com/muesli/termenv"
)

const (
	stackLid  = "|   |\n|---|\n"
	stackRule = "|---|\n"
)

// Plain returns the uncolored depiction of items for kind.
// Items are in persistence order, see ports.Store.
func Plain(kind domain.Kind, items []rune) string {
	switch kind {
	case domain.KindStack:
		return Stack(items)
	case domain.KindQueue:
		return Queue(items)
	case domain.KindList:
		return List(items)
	}
	return ""
}

// Stack draws a box per element, top of the stack first, under an empty lid.
// items are bottom-to-top.
func Stack(items []rune) string {
	var b strings.Builder
	b.WriteString(stackLid)
	for i := len(items) - 1; i >= 0; i-- {
		b.WriteString("| ")
		b.WriteRune(items[i])
		b.WriteString(" |\n")
		b.WriteString(stackRule)
	}
	return b.String()
}

// Queue draws a pipe-delimited row, head first, ending in an empty slot.
func Queue(items []rune) string {
	var b strings.Builder
	b.WriteString("| ")
	for _, r := range items {
		b.WriteRune(r)
		b.WriteString(" | ")
	}
	b.WriteString("  |\n")
	return b.String()
}

// List draws the elements in braces, separated by commas.
func List(items []rune) string {
	var b strings.Builder
	b.WriteString("{ ")
	for i, r := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteRune(r)
	}
	if len(items) > 0 {
		b.WriteString(" ")
	}
	b.WriteString("}\n")
	return b.String()
}

// Palette maps each part of the screen to an ANSI color index.
type Palette struct {
	Prompt string
	Stack  string
	Queue  string
	List   string
}

// DefaultPalette is yellow prompts, red stack, green queue and blue list.
var DefaultPalette = Palette{
	Prompt: "3",
	Stack:  "1",
	Queue:  "2",
	List:   "4",
}

// Renderer colorizes depictions for a given output.
type Renderer struct {
	output  *termenv.Output
	palette Palette
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithColor forces colors on or off. By default the profile is detected from the output.
func WithColor(enabled bool) Option {
	return func(r *Renderer) {
		if !enabled {
			r.output = termenv.NewOutput(r.output.Writer(), termenv.WithProfile(termenv.Ascii))
			return
		}
		r.output = termenv.NewOutput(r.output.Writer(), termenv.WithProfile(termenv.ANSI))
	}
}

// WithPalette replaces the default colors.
func WithPalette(p Palette) Option {
	return func(r *Renderer) {
		r.palette = p
	}
}

// New creates a Renderer for w.
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		output:  termenv.NewOutput(w),
		palette: DefaultPalette,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Structure returns the colorized depiction of items for kind.
func (r *Renderer) Structure(kind domain.Kind, items []rune) string {
	var color string
	switch kind {
	case domain.KindStack:
		color = r.palette.Stack
	case domain.KindQueue:
		color = r.palette.Queue
	case domain.KindList:
		color = r.palette.List
	}
	return r.paint(Plain(kind, items), color)
}

// Prompt returns the colorized menu text.
func (r *Renderer) Prompt(text string) string {
	return r.paint(text, r.palette.Prompt)
}

func (r *Renderer) paint(text, color string) string {
	if text == "" || color == "" {
		return text
	}
	return r.output.String(text).Foreground(r.output.Color(color)).String()
}
