package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want command
	}{
		{"", command{}},
		{"1", command{option: '1'}},
		{"2 ", command{option: '2'}},
		{"2 a", command{option: '2', operand: 'a', hasOperand: true}},
		{"2xb", command{option: '2', operand: 'b', hasOperand: true}},
		{"2 abc", command{option: '2', operand: 'a', hasOperand: true}},
		{"1 é", command{option: '1', operand: 'é', hasOperand: true}},
		{"2  ", command{option: '2', operand: ' ', hasOperand: true}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, parseCommand(tt.line))
		})
	}
}

func TestMenuString(t *testing.T) {
	assert.Equal(t, "\nWhere next?\n1.Stack\n2.Queue\n3.List\n4.Quit\n? ", idleMenu.String())
}
