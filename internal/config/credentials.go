package config

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/graphdesc/graphdesc/internal/errors"
)

// CanPrompt reports whether stdin is a terminal an operator can type into.
func CanPrompt() bool {
	return term.IsTerminal(int(syscall.Stdin))
}

// PromptPassword reads a password from the terminal without echoing it.
// Used when no password was provided via flag or environment.
func PromptPassword(prompt string) (string, error) {
	if !CanPrompt() {
		return "", errors.ConfigError("no password provided and stdin is not a terminal")
	}

	fmt.Fprint(os.Stderr, prompt)
	bytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", errors.ConfigErrorf("failed to read password: %v", err)
	}

	return strings.TrimSpace(string(bytes)), nil
}
