// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"mimectl/internal/mimetype"

	"github.com/spf13/cobra"
)

var unsetCmd = &cobra.Command{
	Use:   "unset <mime|extension>",
	Short: "Unset the default handler for a MIME type or extension",
	Long: `Remove the default handler list of a MIME type.

The type is canonicalized first, so unsetting an alias removes the canonical
entry. Unsetting a type with no entry is a no-op and does not rewrite the
association file.`,
	Args: cobra.ExactArgs(1),
	RunE: runE(runUnset),
}

func runUnset(_ *cobra.Command, args []string) error {
	app := newApp()
	mt, err := mimetype.ParseOrExtension(args[0])
	if err != nil {
		return err
	}
	apps, err := app.loadCanonical()
	if err != nil {
		return err
	}

	if err := apps.Remove(mt); err != nil {
		return err
	}
	app.Logger.Debug("unset default handler", "mime", mt)
	return nil
}
