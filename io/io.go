// Package optio centralizes output streams and colour decisions for
// go-optable programs and the parser's trace logger.
package optio

import (
	stdio "io"
	"os"

	"golang.org/x/term"
)

// Manager owns the output streams and colour policy
type Manager struct {
	out stdio.Writer
	err stdio.Writer

	forceColor bool
	noColor    bool
}

// New returns a manager bound to process stdout and stderr
func New() *Manager {
	return &Manager{out: os.Stdout, err: os.Stderr}
}

// WithOut sets the standard output writer and returns the manager for chaining.
func (m *Manager) WithOut(w stdio.Writer) *Manager { m.out = w; return m }

// WithErr sets the standard error writer and returns the manager for chaining.
func (m *Manager) WithErr(w stdio.Writer) *Manager { m.err = w; return m }

// ForceColor forces color output on, regardless of environment.
func (m *Manager) ForceColor() *Manager { m.forceColor = true; m.noColor = false; return m }

// NoColor disables color output, regardless of environment.
func (m *Manager) NoColor() *Manager { m.noColor = true; m.forceColor = false; return m }

// ColorAuto uses environment heuristics to determine color support.
func (m *Manager) ColorAuto() *Manager { m.noColor = false; m.forceColor = false; return m }

// Out returns the configured standard output writer.
func (m *Manager) Out() stdio.Writer { return m.out }

// Err returns the configured standard error writer.
func (m *Manager) Err() stdio.Writer { return m.err }

// IsTTY reports whether the output writer is a terminal.
func (m *Manager) IsTTY() bool { return isTerminal(m.out) }

// SupportsColor reports whether ANSI sequences should be emitted.
// Explicit settings win, then NO_COLOR / FORCE_COLOR, then a TTY check
// with TERM not set to "dumb".
func (m *Manager) SupportsColor() bool {
	if m.noColor {
		return false
	}
	if m.forceColor {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if !m.IsTTY() {
		return false
	}
	t := os.Getenv("TERM")
	return t != "" && t != "dumb"
}

// Colorize wraps s with the given SGR code when colour is supported.
func (m *Manager) Colorize(s string, c Color) string {
	if c == ColorNone || !m.SupportsColor() {
		return s
	}
	return "\x1b[" + c.code() + "m" + s + "\x1b[0m"
}

// Bold returns s in bold when color is supported; otherwise s unchanged.
func (m *Manager) Bold(s string) string {
	if !m.SupportsColor() {
		return s
	}
	return "\x1b[1m" + s + "\x1b[0m"
}

func isTerminal(w stdio.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
