package n2t

import (
	"os"

	"golang.org/x/term"
)

// isTerminal returns true if f is attached to a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ShouldSimplifyOutput reports whether stdout is piped or redirected, in
// which case icons and colors give way to plain text markers
func ShouldSimplifyOutput() bool {
	return !isTerminal(os.Stdout)
}
