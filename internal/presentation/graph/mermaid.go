// Package graph draws the screen state machine as a Mermaid diagram.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/jumptable/pkg/domain"
)

// Overlay highlights runtime data on the diagram.
type Overlay struct {
	Visited []domain.State
	Current domain.State
}

// GenerateMermaid produces a Mermaid flowchart from a transition table.
// IDLE is drawn as a circle, NONE as a terminal stadium and structure
// states as rectangles labelled with their persisted kind.
func GenerateMermaid(transitions []domain.Transition, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	seen := make(map[domain.State]bool)
	var order []domain.State
	for _, t := range transitions {
		for _, s := range []domain.State{t.From, t.To} {
			if !seen[s] {
				seen[s] = true
				order = append(order, s)
			}
		}
	}

	for _, s := range order {
		sb.WriteString(fmt.Sprintf("    %s\n", nodeShape(s)))
	}

	for _, t := range transitions {
		arrow := fmt.Sprintf("-- \"%c %s\" -->", t.Option, strings.ReplaceAll(t.Label, "\"", "'"))
		if t.To == domain.StateNone {
			arrow = fmt.Sprintf("-. \"%c %s\" .->", t.Option, t.Label)
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", t.From, arrow, t.To))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		styled := make(map[domain.State]bool)
		for _, s := range overlay.Visited {
			if !styled[s] && seen[s] {
				styled[s] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", s))
			}
		}
		if seen[overlay.Current] {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", overlay.Current))
		}
	}

	return sb.String()
}

func nodeShape(s domain.State) string {
	switch s {
	case domain.StateIdle:
		return fmt.Sprintf("%s((\"%s\"))", s, s)
	case domain.StateNone:
		return fmt.Sprintf("%s([\"%s\"])", s, s)
	}
	if kind, ok := s.Kind(); ok {
		return fmt.Sprintf("%s[\"%s <br/> %s\"]", s, s, kind.FileName())
	}
	return fmt.Sprintf("%s[\"%s\"]", s, s)
}
