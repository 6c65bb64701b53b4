// SPDX-License-Identifier: MPL-2.0

package selector

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"mvdan.cc/sh/v3/shell"
)

var (
	// ErrCancelled is returned when the selector exits without a choice.
	ErrCancelled = errors.New("selection cancelled")
	// ErrEmptyCommand is returned when the configured command is blank.
	ErrEmptyCommand = errors.New("empty selector command")
)

// Selector runs a configured chooser command line.
type Selector struct {
	command string
}

// New returns a Selector for the given command line (e.g.
// "rofi -dmenu -p 'Open With: '").
func New(command string) Selector {
	return Selector{command: command}
}

// Select presents options to the user through the chooser and returns the
// picked one. An empty result means the user dismissed the chooser.
func (s Selector) Select(ctx context.Context, options []string) (string, error) {
	argv, err := shell.Fields(s.command, nil)
	if err != nil {
		return "", fmt.Errorf("failed to parse selector command %q: %w", s.command, err)
	}
	if len(argv) == 0 {
		return "", ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(strings.Join(options, "\n"))

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("selector %q failed: %w", argv[0], err)
	}

	choice := strings.TrimRight(out.String(), "\n")
	if choice == "" {
		return "", ErrCancelled
	}
	return choice, nil
}
