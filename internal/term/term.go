// Package term implements the terminal adapter: capability detection, raw
// mode, escape-sequence output, cursor and width queries, and a
// non-blocking poll used to coalesce bursts of keypresses before redrawing.
package term

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// Capability classifies what kind of terminal read_line is facing.
type Capability int

const (
	// NotTTY means stdin or stdout is not a terminal at all.
	NotTTY Capability = iota
	// Unsupported means the terminal is a TTY but its TERM name is known
	// not to support the escape sequences this editor relies on.
	Unsupported
	// Supported means the full interactive path may be used.
	Supported
)

var unsupportedTermNames = map[string]bool{
	"dumb":   true,
	"cons25": true,
	"emacs":  true,
	"":       true,
}

// Detect inspects stdin/stdout and $TERM to classify the environment.
func Detect(stdin, stdout *os.File) Capability {
	if !term.IsTerminal(int(stdin.Fd())) || !term.IsTerminal(int(stdout.Fd())) {
		return NotTTY
	}
	name := strings.ToLower(os.Getenv("TERM"))
	if unsupportedTermNames[name] {
		return Unsupported
	}
	return Supported
}

// IsTTY reports whether both stdin and stdout are terminals, matching the
// public is_tty() contract.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
