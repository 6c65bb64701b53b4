// SPDX-License-Identifier: MPL-2.0

package assoc

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"mimectl/internal/atomicfile"
	"mimectl/internal/desktop"
	"mimectl/internal/mimetype"
	"mimectl/internal/xdg"
)

// The three section headers mimeapps.list recognizes. Anything else is
// carried as an unknown section and its lines are ignored.
const (
	sectionAdded    = "Added Associations"
	sectionRemoved  = "Removed Associations"
	sectionDefaults = "Default Applications"
)

// FileName is the association file name under the XDG config home.
const FileName = "mimeapps.list"

// writeFile is swapped out by tests to observe persistence.
var writeFile = atomicfile.WriteFile

type (
	// HandlerList is an ordered sequence of handlers for one MIME type.
	// Values are unique (first occurrence wins); position 0 is the default
	// handler, later positions are fallbacks.
	HandlerList []desktop.Handler

	// HandlerResolver validates a handler name against the installed
	// applications. *desktop.Registry implements it.
	HandlerResolver interface {
		Resolve(name string) (desktop.Handler, error)
	}

	// Table is the raw mimeapps.list data model. Keys within one mapping
	// are unique MIME identifiers, but the same underlying type may still
	// appear under different alias names; see Canonicalize.
	Table struct {
		Added    map[mimetype.Type]HandlerList
		Removed  map[mimetype.Type]HandlerList
		Defaults map[mimetype.Type]HandlerList
	}
)

// contains reports whether l already holds h.
func (l HandlerList) contains(h desktop.Handler) bool {
	return slices.Contains(l, h)
}

// join renders the list in the on-disk value form, with a trailing ';'.
func (l HandlerList) join() string {
	var b strings.Builder
	for _, h := range l {
		b.WriteString(string(h))
		b.WriteByte(';')
	}
	return b.String()
}

// NewTable returns an empty association table.
func NewTable() *Table {
	return &Table{
		Added:    make(map[mimetype.Type]HandlerList),
		Removed:  make(map[mimetype.Type]HandlerList),
		Defaults: make(map[mimetype.Type]HandlerList),
	}
}

// Path returns the association file location, $XDG_CONFIG_HOME/mimeapps.list.
func Path() (string, error) {
	config, err := xdg.ConfigHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(config, FileName), nil
}

// Load reads the association file, creating it empty first if it does not
// exist. A missing file is never an error; a structurally malformed one is.
func Load(handlers HandlerResolver) (*Table, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f, handlers)
}

// Parse reads the mimeapps.list grammar: '[Section]' headers followed by
// 'key=value1;value2;...;' lines. Unrecognized sections are ignored, as are
// keys that do not parse as MIME types and values that do not resolve to an
// installed handler. Duplicate values keep their first occurrence; empty
// values are dropped. Only a line that is neither blank, comment, section
// header nor property is an error.
func Parse(src io.Reader, handlers HandlerResolver) (*Table, error) {
	table := NewTable()
	section := ""

	scanner := bufio.NewScanner(src)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
			section = strings.TrimSpace(line[1 : len(line)-1])
		case strings.Contains(line, "="):
			key, value, _ := strings.Cut(line, "=")

			dest := table.section(section)
			if dest == nil {
				continue
			}
			mt, err := mimetype.Parse(key)
			if err != nil {
				continue
			}
			list := parseHandlerList(value, handlers)
			if len(list) > 0 {
				dest[mt] = list
			}
		default:
			return nil, &ParseError{Line: lineNo, Text: line}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mimeapps.list: %w", err)
	}

	return table, nil
}

// section maps a header name to its backing map, or nil for unknown headers.
func (t *Table) section(name string) map[mimetype.Type]HandlerList {
	switch name {
	case sectionAdded:
		return t.Added
	case sectionRemoved:
		return t.Removed
	case sectionDefaults:
		return t.Defaults
	default:
		return nil
	}
}

func parseHandlerList(value string, handlers HandlerResolver) HandlerList {
	var list HandlerList
	for _, name := range strings.Split(value, ";") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		h, err := handlers.Resolve(name)
		if err != nil {
			// Uninstalled handlers are dropped, not fatal: stale
			// entries accumulate in mimeapps.list as apps come and go.
			continue
		}
		if !list.contains(h) {
			list = append(list, h)
		}
	}
	return list
}

// Save atomically replaces the association file with the serialized table.
func (t *Table) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return writeFile(path, atomicfile.DontSyncDir, t.Serialize)
}

// Serialize writes the table in mimeapps.list form. Sections are sorted by
// key so repeated saves produce reproducible diffs; the Removed Associations
// section is omitted entirely when empty.
func (t *Table) Serialize(w io.Writer) error {
	writeSection := func(header string, m map[mimetype.Type]HandlerList) error {
		if _, err := fmt.Fprintf(w, "[%s]\n", header); err != nil {
			return err
		}
		for _, mt := range slices.Sorted(maps.Keys(m)) {
			if _, err := fmt.Fprintf(w, "%s=%s\n", mt, m[mt].join()); err != nil {
				return err
			}
		}
		return nil
	}

	if err := writeSection(sectionAdded, t.Added); err != nil {
		return err
	}
	if len(t.Removed) > 0 {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		if err := writeSection(sectionRemoved, t.Removed); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return writeSection(sectionDefaults, t.Defaults)
}

// AddHandler appends h as a fallback handler for mt's default list. The
// list invariant holds: a handler already present keeps its position.
func (t *Table) AddHandler(mt mimetype.Type, h desktop.Handler) {
	if t.Defaults[mt].contains(h) {
		return
	}
	t.Defaults[mt] = append(t.Defaults[mt], h)
}

// SetHandler replaces mt's default list with the single handler h.
func (t *Table) SetHandler(mt mimetype.Type, h desktop.Handler) {
	t.Defaults[mt] = HandlerList{h}
}

// RemoveHandler deletes mt's default list and reports whether anything was
// deleted.
func (t *Table) RemoveHandler(mt mimetype.Type) bool {
	if _, ok := t.Defaults[mt]; !ok {
		return false
	}
	delete(t.Defaults, mt)
	return true
}

// GetHandler returns the default (first) handler for mt.
func (t *Table) GetHandler(mt mimetype.Type) (desktop.Handler, error) {
	list, ok := t.Defaults[mt]
	if !ok || len(list) == 0 {
		return "", &NoHandlerError{Type: mt}
	}
	return list[0], nil
}
