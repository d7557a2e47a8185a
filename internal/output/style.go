package output

import (
	"os"

	"github.com/mattn/go-isatty"
)

// ANSI escape sequences used for styled output.
const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiCyan   = "\x1b[36m"
	ansiYellow = "\x1b[33m"
)

// Style applies ANSI sequences to output fragments. The zero value emits
// plain text.
type Style struct {
	Enabled bool
}

// NewStyle enables styling unless quiet is set, NO_COLOR is present in the
// environment, or stdout is not a terminal.
func NewStyle(quiet bool) Style {
	if quiet {
		return Style{}
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return Style{}
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return Style{}
	}
	return Style{Enabled: true}
}

// Header styles a top-level section header.
func (s Style) Header(text string) string {
	if !s.Enabled {
		return text
	}
	return ansiBold + ansiCyan + text + ansiReset
}

// Label styles a sub-header such as a contact block label.
func (s Style) Label(text string) string {
	if !s.Enabled {
		return text
	}
	return ansiBold + text + ansiReset
}

// Domain styles a domain name.
func (s Style) Domain(text string) string {
	if !s.Enabled {
		return text
	}
	return ansiYellow + text + ansiReset
}
