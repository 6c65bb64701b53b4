// SPDX-License-Identifier: MPL-2.0

package xdg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigHome returns the user configuration directory:
// $XDG_CONFIG_HOME, defaulting to ~/.config.
func ConfigHome() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config"), nil
}

// DataDirs returns the data directory search path in precedence order:
// $XDG_DATA_HOME (default ~/.local/share) followed by the entries of
// $XDG_DATA_DIRS (default /usr/local/share:/usr/share).
//
// An unresolvable home directory only drops the user entry; the system
// entries are still returned so lookups can proceed.
func DataDirs() []string {
	var dirs []string

	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		dirs = append(dirs, dir)
	} else if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".local", "share"))
	}

	system := os.Getenv("XDG_DATA_DIRS")
	if system == "" {
		system = "/usr/local/share:/usr/share"
	}
	for _, dir := range strings.Split(system, ":") {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}

	return dirs
}
