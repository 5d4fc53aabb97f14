package screen

import (
	"fmt"
	"strings"
)

// operandIndex is where the operand sits in "<digit> <char>".
const operandIndex = 2

// command is one parsed input line.
type command struct {
	option     rune
	operand    rune
	hasOperand bool
}

// parseCommand reads the option from the first character and the operand, if any,
// from operandIndex. An empty line has option 0, which matches no menu entry.
func parseCommand(line string) command {
	runes := []rune(line)
	var c command
	if len(runes) > 0 {
		c.option = runes[0]
	}
	if len(runes) > operandIndex {
		c.operand = runes[operandIndex]
		c.hasOperand = true
	}
	return c
}

// menu lists the entries of a screen, numbered from 1.
type menu []string

func (m menu) String() string {
	var b strings.Builder
	b.WriteString("\nWhere next?\n")
	for i, entry := range m {
		fmt.Fprintf(&b, "%d.%s\n", i+1, entry)
	}
	b.WriteString("? ")
	return b.String()
}

var (
	idleMenu  = menu{"Stack", "Queue", "List", "Quit"}
	stackMenu = menu{"Pop", "Push <char>", "Save & Move to List", "Save & Move to Queue", "Quit"}
	queueMenu = menu{"Enqueue <char>", "Dequeue", "Save & Move to Stack", "Save & Move to List", "Quit"}
	listMenu  = menu{"Append <char>", "Remove last", "Save & Move to Stack", "Save & Move to Queue", "Quit"}
)
