// SPDX-License-Identifier: MPL-2.0

package atomicfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Durability selects how hard WriteFile tries to survive a power loss.
type Durability int

const (
	// DontSyncDir fsyncs the file content but not the containing
	// directory. A crash immediately after the rename can lose the rename
	// itself, leaving the previous content in place; it can never expose a
	// partial file. This is the default trade-off.
	DontSyncDir Durability = iota
	// SyncDir additionally fsyncs the containing directory after the
	// rename, making the replacement itself durable.
	SyncDir
)

// WriteFile atomically replaces path with the content produced by write.
// The temporary file is created in path's directory so the final rename
// stays within one filesystem. On any error the temporary file is removed
// and the destination is left untouched.
func WriteFile(path string, durability Durability, write func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	w := bufio.NewWriter(tmp)
	if err = write(w); err != nil {
		return err
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", tmpName, err)
	}
	// CreateTemp opens 0600; published config files should be world-readable.
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", tmpName, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}

	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	if durability == SyncDir {
		if err = syncDir(dir); err != nil {
			return err
		}
	}
	return nil
}

func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("failed to open directory %s: %w", dir, err)
	}
	defer d.Close()
	if err := d.Sync(); err != nil {
		return fmt.Errorf("failed to sync directory %s: %w", dir, err)
	}
	return nil
}
