// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"mimectl/internal/assoc"
	"mimectl/internal/mimetype"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var (
	listAll bool

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List default apps and the associated handlers",
		Long: `List the default application table, one row per canonical MIME type.

The first handler in a row is the default; the rest are fallbacks. With
--all, explicitly added (non-default) associations are shown as well.`,
		Args: cobra.NoArgs,
		RunE: runE(runList),
	}
)

func init() {
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "also list added associations")
}

func runList(cmd *cobra.Command, _ []string) error {
	app := newApp()
	apps, err := app.loadCanonical()
	if err != nil {
		return err
	}
	tbl := apps.Table()

	out := cmd.OutOrStdout()
	if listAll {
		fmt.Fprintln(out, TitleStyle.Render("Default Applications"))
	}
	fmt.Fprintln(out, renderAssociations(tbl.Defaults))

	if listAll && len(tbl.Added) > 0 {
		fmt.Fprintln(out, TitleStyle.Render("Added Associations"))
		fmt.Fprintln(out, renderAssociations(tbl.Added))
	}
	return nil
}

// renderAssociations renders one association mapping as a bordered table,
// rows sorted by MIME type for stable output.
func renderAssociations(m map[mimetype.Type]assoc.HandlerList) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(BorderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle
			}
			return CellStyle
		}).
		Headers("MIME type", "Handlers")

	for _, mt := range slices.Sorted(maps.Keys(m)) {
		t.Row(mt.String(), strings.Join(handlerNames(m[mt]), ", "))
	}
	return t.Render()
}

func handlerNames(list assoc.HandlerList) []string {
	names := make([]string, len(list))
	for i, h := range list {
		names[i] = h.String()
	}
	return names
}
