package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"    _                       _        _     _      ", "#f87171"},
	{"   (_)_   _ _ __ ___  _ __ | |_ __ _| |__ | | ___ ", "#fb923c"},
	{"   | | | | | '_ ` _ \\| '_ \\| __/ _` | '_ \\| |/ _ \\", "#facc15"},
	{"   | | |_| | | | | | | |_) | || (_| | |_) | |  __/", "#4ade80"},
	{"  _/ |\\__,_|_| |_| |_| .__/ \\__\\__,_|_.__/|_|\\___|", "#60a5fa"},
	{" |__/                |_|                          ", "#a78bfa"},
}

// PrintBanner writes the ASCII art banner and version to w, colored for the
// terminal behind w. Non-terminal writers get plain text.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	p := out.ColorProfile()

	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, out.String(l.text).Foreground(p.Color(l.color)))
	}
	if version != "" {
		fmt.Fprintln(w, out.String("  v"+version).Faint())
	}
	fmt.Fprintln(w)
}
