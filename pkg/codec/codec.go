// Package codec converts structure contents to and from their persisted form:
// a single line of characters, each followed by domain.Delimiter.
package codec

import (
	"strings"

	"github.com/aretw0/jumptable/pkg/domain"
)

// Encode serializes items as "<c>,<c>,...", preserving order.
func Encode(items []rune) string {
	var b strings.Builder
	b.Grow(len(items) * 2)
	for _, r := range items {
		b.WriteRune(r)
		b.WriteRune(domain.Delimiter)
	}
	return b.String()
}

// Decode parses the first line of data, discarding delimiters.
// A trailing delimiter never yields a phantom element.
func Decode(data string) []rune {
	line := FirstLine(data)
	items := make([]rune, 0, len(line)/2+1)
	for _, r := range line {
		if r == domain.Delimiter {
			continue
		}
		items = append(items, r)
	}
	return items
}

// FirstLine returns data up to the first line break, without the terminator.
func FirstLine(data string) string {
	if i := strings.IndexByte(data, '\n'); i >= 0 {
		data = data[:i]
	}
	return strings.TrimSuffix(data, "\r")
}
