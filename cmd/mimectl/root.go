// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug logging and full error chains
	verbose bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "mimectl",
		Short: "Manage default applications for MIME types",
		Long: TitleStyle.Render("mimectl") + SubtitleStyle.Render(" - Manage default applications for MIME types") + `

mimectl maintains the XDG mimeapps.list association table: which installed
application opens which MIME type. MIME aliases are resolved against the
shared MIME database, so an association stored under a legacy name (say
audio/x-flac) and one stored under the canonical name (audio/flac) are
always presented and edited as one entry.

` + SubtitleStyle.Render("Examples:") + `
  mimectl list              Show the default application table
  mimectl set audio/flac mpv.desktop
  mimectl add audio/flac vlc.desktop
  mimectl unset audio/flac
  mimectl set .flac mpv.desktop    Extensions work too`,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(unsetCmd)
	rootCmd.AddCommand(addCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
