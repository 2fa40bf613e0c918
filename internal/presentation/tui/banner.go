package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the boardchain banner and version to w.
func PrintBanner(w io.Writer, version string) {
	p := termenv.EnvColorProfile()
	lines := []struct {
		text, color string
	}{
		{" _                         _      _           _       ", "#34d399"},
		{"| |__   ___   __ _ _ __ __| | ___| |__   __ _(_)_ __  ", "#2dd4bf"},
		{"| '_ \\ / _ \\ / _` | '__/ _` |/ __| '_ \\ / _` | | '_ \\ ", "#22d3ee"},
		{"| |_) | (_) | (_| | | | (_| | (__| | | | (_| | | | | |", "#38bdf8"},
		{"|_.__/ \\___/ \\__,_|_|  \\__,_|\\___|_| |_|\\__,_|_|_| |_|", "#60a5fa"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintf(w, "%s\n\n", termenv.String("  "+version).Faint())
}

// Verdict colors a regularity answer: green when it holds, red otherwise.
func Verdict(ok bool) string {
	p := termenv.EnvColorProfile()
	if ok {
		return termenv.String("true").Foreground(p.Color("#22c55e")).Bold().String()
	}
	return termenv.String("false").Foreground(p.Color("#ef4444")).Bold().String()
}
