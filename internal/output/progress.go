// Package output renders user-facing progress on the error stream, keeping
// stdout free for the store's own output redirection.
package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Console prints per-phase completion percentages, e.g. "Nodes - 50% (1/2)".
// On a terminal the current phase line is rewritten in place; otherwise one
// line is printed per update so logs stay readable.
type Console struct {
	W   io.Writer
	TTY bool

	lastPhase string
}

// NewConsole returns a Console writing to stderr, rewriting in place when
// stderr is a terminal.
func NewConsole() *Console {
	return &Console{
		W:   os.Stderr,
		TTY: term.IsTerminal(int(os.Stderr.Fd())),
	}
}

// OnProgress implements the uploader's progress contract.
func (c *Console) OnProgress(phase string, completed, total int) {
	if total <= 0 {
		return
	}
	pct := completed * 100 / total

	if !c.TTY {
		fmt.Fprintf(c.W, "%s - %d%% (%d/%d)\n", phase, pct, completed, total)
		return
	}

	if c.lastPhase != "" && c.lastPhase != phase {
		fmt.Fprintln(c.W)
	}
	c.lastPhase = phase

	fmt.Fprintf(c.W, "\r%s - %d%% (%d/%d)", phase, pct, completed, total)
	if completed == total {
		fmt.Fprintln(c.W)
		c.lastPhase = ""
	}
}
