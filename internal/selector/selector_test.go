// SPDX-License-Identifier: MPL-2.0

package selector

import (
	"context"
	"errors"
	"testing"
)

func TestSelectPicksFirstLine(t *testing.T) {
	// head -n 1 stands in for an interactive chooser: it "picks" the first
	// candidate fed on stdin.
	s := New("head -n 1")
	choice, err := s.Select(context.Background(), []string{"mpv.desktop", "vlc.desktop"})
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if choice != "mpv.desktop" {
		t.Errorf("Select = %q, want mpv.desktop", choice)
	}
}

func TestSelectQuotedArguments(t *testing.T) {
	// The command line is split with shell quoting rules, so a quoted
	// argument with spaces stays one argument.
	s := New(`echo 'picked one'`)
	choice, err := s.Select(context.Background(), []string{"ignored"})
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if choice != "picked one" {
		t.Errorf("Select = %q, want %q", choice, "picked one")
	}
}

func TestSelectCancelled(t *testing.T) {
	// A chooser that exits without printing anything means dismissal.
	s := New("true")
	_, err := s.Select(context.Background(), []string{"mpv.desktop"})
	if !errors.Is(err, ErrCancelled) {
		t.Errorf("Select error = %v, want ErrCancelled", err)
	}
}

func TestSelectEmptyCommand(t *testing.T) {
	_, err := New("   ").Select(context.Background(), []string{"x"})
	if !errors.Is(err, ErrEmptyCommand) {
		t.Errorf("Select error = %v, want ErrEmptyCommand", err)
	}
}

func TestSelectMissingBinary(t *testing.T) {
	_, err := New("definitely-not-a-real-chooser-zzz").Select(context.Background(), []string{"x"})
	if err == nil || errors.Is(err, ErrCancelled) {
		t.Errorf("Select error = %v, want a start failure", err)
	}
}
