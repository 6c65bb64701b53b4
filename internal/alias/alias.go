// SPDX-License-Identifier: MPL-2.0

package alias

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"mimectl/internal/mimetype"
)

// Resolver maps aliased MIME identifiers to their canonical form.
//
// The shared MIME database ships the alias table as a flat list; resolving
// against that list directly would cost a linear scan per lookup. The table
// is small (around 300 entries on a typical system), so Load indexes it into
// a map once and every Canonical call is O(1). This changes nothing
// behaviorally, only the lookup cost.
type Resolver struct {
	canonical map[mimetype.Type]mimetype.Type
}

// Load reads every mime/aliases file found under the given data directories,
// earlier directories taking precedence (the first definition of an alias
// wins). Missing files are skipped. A non-nil error reports I/O or parse
// trouble for the caller to log; the returned Resolver is always usable and
// falls back to identity canonicalization for anything it has no entry for.
func Load(dataDirs []string) (*Resolver, error) {
	r := &Resolver{canonical: make(map[mimetype.Type]mimetype.Type)}

	var errs []error
	for _, dir := range dataDirs {
		path := filepath.Join(dir, "mime", "aliases")
		f, err := os.Open(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				errs = append(errs, fmt.Errorf("failed to open alias table %s: %w", path, err))
			}
			continue
		}
		if err := r.merge(f); err != nil {
			errs = append(errs, fmt.Errorf("failed to read alias table %s: %w", path, err))
		}
		_ = f.Close()
	}

	return r, errors.Join(errs...)
}

// Identity returns a Resolver with no alias entries. Every identifier
// canonicalizes to itself. Intended for tests and for callers that
// explicitly opt out of the shared MIME database.
func Identity() *Resolver {
	return &Resolver{canonical: make(map[mimetype.Type]mimetype.Type)}
}

// Canonical returns the canonical identifier for t, or t itself when the
// database records no alias. Pure query; a Resolver is never mutated after
// Load.
func (r *Resolver) Canonical(t mimetype.Type) mimetype.Type {
	if c, ok := r.canonical[t]; ok {
		return c
	}
	return t
}

// Len reports the number of alias entries loaded.
func (r *Resolver) Len() int {
	return len(r.canonical)
}

// merge parses one aliases file ("alias canonical" per line) into the index.
// Lines that do not parse as two MIME identifiers are skipped; the shared
// MIME database is system data we have no business rejecting wholesale.
func (r *Resolver) merge(src io.Reader) error {
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		aliased, err := mimetype.Parse(fields[0])
		if err != nil {
			continue
		}
		canonical, err := mimetype.Parse(fields[1])
		if err != nil {
			continue
		}
		if _, exists := r.canonical[aliased]; !exists {
			r.canonical[aliased] = canonical
		}
	}
	return scanner.Err()
}
