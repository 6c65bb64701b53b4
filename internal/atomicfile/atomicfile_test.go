// SPDX-License-Identifier: MPL-2.0

package atomicfile

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileCreates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mimeapps.list")

	err := WriteFile(path, DontSyncDir, func(w io.Writer) error {
		_, err := io.WriteString(w, "[Default Applications]\n")
		return err
	})
	if err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	if string(data) != "[Default Applications]\n" {
		t.Errorf("content = %q", data)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Errorf("mode = %v, want 0644", info.Mode().Perm())
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mimeapps.list")
	if err := os.WriteFile(path, []byte("old content"), 0o644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	err := WriteFile(path, SyncDir, func(w io.Writer) error {
		_, err := io.WriteString(w, "new content")
		return err
	})
	if err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "new content" {
		t.Errorf("content = %q, want new content", data)
	}
}

func TestWriteFileFailureLeavesTargetUntouched(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mimeapps.list")
	if err := os.WriteFile(path, []byte("precious"), 0o644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	writeErr := errors.New("simulated failure")
	err := WriteFile(path, DontSyncDir, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return writeErr
	})
	if !errors.Is(err, writeErr) {
		t.Fatalf("WriteFile error = %v, want the write callback's error", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "precious" {
		t.Errorf("target was touched on failure: %q", data)
	}

	// The temporary file must be cleaned up.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir failed: %v", err)
	}
	if len(entries) != 1 {
		for _, e := range entries {
			t.Logf("left behind: %s", e.Name())
		}
		t.Errorf("expected only the target in %s, found %d entries", dir, len(entries))
	}
}
