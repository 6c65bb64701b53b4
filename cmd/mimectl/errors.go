// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"mimectl/internal/assoc"
	"mimectl/internal/desktop"
	"mimectl/internal/issue"
	"mimectl/internal/notify"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// runE wraps a command implementation with mimectl's error dispatch: when
// stdout is a terminal, known failure classes get a rendered issue card on
// stderr in addition to the one-line error; when it is not (mimectl invoked
// from desktop plumbing), the error goes out as a desktop notification so it
// is not silently lost. The error itself still propagates, so the process
// exits non-zero either way.
func runE(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if err == nil {
			return nil
		}

		if isatty.IsTerminal(os.Stdout.Fd()) {
			if card := issueFor(err); card != nil {
				if rendered, renderErr := card.Render("auto"); renderErr == nil {
					fmt.Fprint(os.Stderr, rendered)
				}
			}
			return formatted(err)
		}

		_ = notify.Send(cmd.Context(), "mimectl error", err.Error())
		return formatted(err)
	}
}

// issueFor maps an error to its issue card, if one is registered for its class.
func issueFor(err error) *issue.Issue {
	switch {
	case errors.Is(err, desktop.ErrHandlerNotFound):
		return issue.Lookup(issue.HandlerNotFoundId)
	case errors.Is(err, assoc.ErrParse):
		return issue.Lookup(issue.MimeappsParseErrorId)
	default:
		return nil
	}
}

// formatted expands ActionableErrors into their suggestion-bearing form so
// the final printed error is more than the one-liner.
func formatted(err error) error {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return errors.New(ae.Format(verbose))
	}
	return err
}
