// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"

	"mimectl/internal/assoc"
	"mimectl/internal/desktop"
	"mimectl/internal/issue"
	"mimectl/internal/mimetype"
	"mimectl/internal/selector"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <mime|extension> [handler]",
	Short: "Set the default handler for a MIME type or extension",
	Long: `Set the default handler, replacing any previous default list.

The MIME type is canonicalized first, so setting a handler for an alias
(e.g. audio/x-flac) updates the canonical entry (audio/flac).

When the handler argument is omitted and the selector is enabled in the
configuration, the choice is made interactively among the handlers already
associated with the type.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runE(runSet),
}

func runSet(cmd *cobra.Command, args []string) error {
	app := newApp()
	mt, err := mimetype.ParseOrExtension(args[0])
	if err != nil {
		return err
	}
	apps, err := app.loadCanonical()
	if err != nil {
		return err
	}

	var handler desktop.Handler
	if len(args) == 2 {
		handler, err = resolveHandler(app, args[1])
	} else {
		handler, err = chooseHandler(cmd.Context(), app, apps, mt)
	}
	if err != nil {
		return err
	}

	if err := apps.Set(mt, handler); err != nil {
		return err
	}
	app.Logger.Debug("set default handler", "mime", mt, "handler", handler)
	return nil
}

// resolveHandler validates a handler name against the installed desktop
// entries, attaching suggestions when it does not resolve.
func resolveHandler(app *App, name string) (desktop.Handler, error) {
	h, err := app.Registry.Resolve(name)
	if err != nil {
		return "", issue.NewErrorContext().
			WithOperation("resolve handler").
			WithResource(name).
			WithSuggestion("Handler names are desktop entry file names, e.g. 'mpv.desktop'").
			WithSuggestion("Check the entry exists under an applications/ directory in your XDG data path").
			Wrap(err).
			BuildError()
	}
	return h, nil
}

// chooseHandler runs the configured selector over the handlers already
// associated with mt's canonical type.
func chooseHandler(ctx context.Context, app *App, apps *assoc.Canonical, mt mimetype.Type) (desktop.Handler, error) {
	if !app.Config.EnableSelector {
		return "", issue.NewErrorContext().
			WithOperation("pick a handler").
			WithResource(mt.String()).
			WithSuggestion("Pass the handler explicitly: mimectl set <mime> <handler>").
			WithSuggestion("Or set enable_selector = true in the mimectl configuration").
			BuildError()
	}

	canonical := app.Aliases.Canonical(mt)
	tbl := apps.Table()

	var candidates []string
	seen := make(map[string]bool)
	for _, list := range []assoc.HandlerList{tbl.Defaults[canonical], tbl.Added[canonical]} {
		for _, h := range list {
			if !seen[h.String()] {
				seen[h.String()] = true
				candidates = append(candidates, h.String())
			}
		}
	}
	if len(candidates) == 0 {
		return "", &assoc.NoHandlerError{Type: canonical}
	}

	choice, err := selector.New(app.Config.Selector).Select(ctx, candidates)
	if err != nil {
		return "", err
	}
	return app.Registry.Resolve(choice)
}
