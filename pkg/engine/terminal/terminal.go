package terminal

import (
	"io"

	"golang.org/x/term"
)

const (
	DefaultWidth = 80
	MaxWidth     = 120
)

// fder is satisfied by *os.File.
type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether w is attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Width returns the width of the terminal behind w, clamped to MaxWidth.
// Falls back to DefaultWidth when w is not a terminal.
func Width(w io.Writer) int {
	f, ok := w.(fder)
	if !ok {
		return DefaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return min(width, MaxWidth)
}
