package render_test

import (
	"bytes"
	"testing"

	"github.com/aretw0/jumptable/internal/render"
	"github.com/aretw0/jumptable/pkg/domain"
	"github.com/aretw0/jumptable/pkg/structures"
	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	got := render.Stack([]rune("ab"))
	want := "|   |\n|---|\n" +
		"| b |\n|---|\n" +
		"| a |\n|---|\n"
	assert.Equal(t, want, got)
	assert.Equal(t, "|   |\n|---|\n", render.Stack(nil))
}

func TestQueue(t *testing.T) {
	assert.Equal(t, "| a | b |   |\n", render.Queue([]rune("ab")))
	assert.Equal(t, "|   |\n", render.Queue(nil))
}

func TestList(t *testing.T) {
	tests := []struct {
		name  string
		items []rune
		want  string
	}{
		{"nil", nil, "{ }\n"},
		{"empty", []rune{}, "{ }\n"},
		{"one", []rune("a"), "{ a }\n"},
		{"two", []rune("ab"), "{ a, b }\n"},
		{"three", []rune("xyz"), "{ x, y, z }\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render.List(tt.items))
		})
	}
}

func TestStructure_EmptyAndPopulatedList(t *testing.T) {
	var buf bytes.Buffer
	r := render.New(&buf, render.WithColor(false))
	assert.Equal(t, "{ }\n", r.Structure(domain.KindList, nil))
	assert.Equal(t, "{ a, b }\n", r.Structure(domain.KindList, []rune("ab")))
}

func TestPlain_UnknownKind(t *testing.T) {
	assert.Empty(t, render.Plain(domain.Kind("heap"), []rune("a")))
}

func TestRender_IsIdempotentAndReadOnly(t *testing.T) {
	s := structures.NewStack('a', 'b', 'c')
	r := render.New(&bytes.Buffer{}, render.WithColor(false))

	first := r.Structure(domain.KindStack, s.Items())
	second := r.Structure(domain.KindStack, s.Items())

	assert.Equal(t, first, second)
	assert.Equal(t, []rune("abc"), s.Items())
	top, _ := s.Peek()
	assert.Equal(t, 'c', top)
}

func TestRenderer_Color(t *testing.T) {
	var buf bytes.Buffer

	plain := render.New(&buf, render.WithColor(false))
	assert.Equal(t, render.List([]rune("a")), plain.Structure(domain.KindList, []rune("a")))
	assert.Equal(t, "? ", plain.Prompt("? "))

	colored := render.New(&buf, render.WithColor(true))
	out := colored.Structure(domain.KindStack, []rune("a"))
	assert.Contains(t, out, "\x1b[31m", "stack is red")
	assert.Contains(t, out, "| a |")
	assert.Contains(t, colored.Prompt("? "), "\x1b[33m", "prompt is yellow")
	assert.Contains(t, colored.Structure(domain.KindQueue, nil), "\x1b[32m", "queue is green")
	assert.Contains(t, colored.Structure(domain.KindList, nil), "\x1b[34m", "list is blue")
}
