package tui

import (
	_ "embed"

	"github.com/charmbracelet/glamour"
)

//go:embed guide.md
var guide string

// Guide returns the user guide in markdown.
func Guide() string {
	return guide
}

// NewRenderer returns a function that renders markdown using glamour.
// When plain is set, the notty style is used so no escape codes are emitted.
func NewRenderer(plain bool, width int) (func(string) (string, error), error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if plain {
		opts = append(opts, glamour.WithStandardStyle("notty"))
	} else {
		opts = append(opts, glamour.WithAutoStyle())
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}
