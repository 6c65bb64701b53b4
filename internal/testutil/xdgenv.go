// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"path/filepath"
	"testing"
)

// XDGEnv describes a sandboxed XDG environment rooted in a scratch directory.
type XDGEnv struct {
	Home       string
	ConfigHome string
	DataHome   string
}

// SandboxXDG points HOME, XDG_CONFIG_HOME, XDG_DATA_HOME and XDG_DATA_DIRS
// at directories under t.TempDir() so tests never touch the real user
// configuration. Cleanup is registered on t.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    env := testutil.SandboxXDG(t)
//	    testutil.InstallDesktopEntry(t, env, "mpv.desktop")
//	    // ...
//	}
func SandboxXDG(t testing.TB) XDGEnv {
	t.Helper()
	root := t.TempDir()
	env := XDGEnv{
		Home:       root,
		ConfigHome: filepath.Join(root, ".config"),
		DataHome:   filepath.Join(root, ".local", "share"),
	}
	t.Cleanup(MustSetenv(t, "HOME", env.Home))
	t.Cleanup(MustSetenv(t, "XDG_CONFIG_HOME", env.ConfigHome))
	t.Cleanup(MustSetenv(t, "XDG_DATA_HOME", env.DataHome))
	// Keep the search path inside the sandbox: system dirs would leak real
	// desktop entries and alias tables into the test.
	t.Cleanup(MustSetenv(t, "XDG_DATA_DIRS", env.DataHome))
	return env
}

// InstallDesktopEntry plants an empty desktop entry file under the sandbox's
// applications directory so the registry resolves it.
func InstallDesktopEntry(t testing.TB, env XDGEnv, name string) {
	t.Helper()
	MustWriteFile(t, filepath.Join(env.DataHome, "applications", name), "[Desktop Entry]\n")
}

// InstallAliases writes an alias table ("alias canonical" per line) under the
// sandbox's shared MIME database directory.
func InstallAliases(t testing.TB, env XDGEnv, lines string) {
	t.Helper()
	MustWriteFile(t, filepath.Join(env.DataHome, "mime", "aliases"), lines)
}
