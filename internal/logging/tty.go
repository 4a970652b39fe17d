package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// SupportsColor reports whether Handler should emit ANSI colors on w.
// Color is used only when w is a terminal and neither NO_COLOR
// (https://no-color.org) nor TERM=dumb asks for plain output.
func SupportsColor(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return IsTTY(w)
}

// IsTTY reports whether w is backed by a terminal. Anything exposing an
// Fd method (os.File and wrappers around it) is checked against the
// terminal; other writers, like the buffers tests log into, never are.
func IsTTY(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
