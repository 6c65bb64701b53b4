// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"mimectl/internal/mimetype"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <mime|extension> <handler>",
	Short: "Add a handler for a MIME type or extension",
	Long: `Add a handler to the default list of a MIME type.

The first handler in the list is the default; an added handler becomes a
fallback after the existing ones. Adding a handler that is already in the
list leaves the list unchanged.`,
	Args: cobra.ExactArgs(2),
	RunE: runE(runAdd),
}

func runAdd(_ *cobra.Command, args []string) error {
	app := newApp()
	mt, err := mimetype.ParseOrExtension(args[0])
	if err != nil {
		return err
	}
	handler, err := resolveHandler(app, args[1])
	if err != nil {
		return err
	}
	apps, err := app.loadCanonical()
	if err != nil {
		return err
	}

	if err := apps.Add(mt, handler); err != nil {
		return err
	}
	app.Logger.Debug("added fallback handler", "mime", mt, "handler", handler)
	return nil
}
