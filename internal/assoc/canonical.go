// SPDX-License-Identifier: MPL-2.0

package assoc

import (
	"mimectl/internal/desktop"
	"mimectl/internal/mimetype"
)

// AliasResolver canonicalizes MIME identifiers. *alias.Resolver implements
// it; the identity resolver is a valid degenerate implementation.
type AliasResolver interface {
	Canonical(mimetype.Type) mimetype.Type
}

// Canonical is the alias-free view of an association table. Every key of the
// wrapped table is a canonical MIME type, and every operation unaliases its
// argument before touching the table. Mutations persist the wrapped table,
// so a later load starts from an already canonical-keyed file.
type Canonical struct {
	aliases AliasResolver
	table   *Table
}

// Canonicalize merges t into a canonical-keyed view. The three mappings are
// merged independently; t itself is not modified.
func Canonicalize(t *Table, aliases AliasResolver) *Canonical {
	return &Canonical{
		aliases: aliases,
		table: &Table{
			Added:    unaliasMap(aliases, t.Added),
			Removed:  unaliasMap(aliases, t.Removed),
			Defaults: unaliasMap(aliases, t.Defaults),
		},
	}
}

// unaliasMap folds a mapping with possibly alias-keyed entries into one
// keyed only by canonical MIME types, in a single pass over the map.
//
// The result must not depend on map iteration order. A canonical-keyed
// entry always wins over alias-keyed ones; since the input map has unique
// keys, at most one such entry exists per canonical type, so overwriting
// unconditionally is safe. When only aliases of a type are present, the one
// with the lexicographically smallest alias name wins. That tie-break is a
// policy choice: a "first in file order" rule cannot be reproduced once the
// entries have been through a map, and picking the smallest name is
// deterministic without sorting the whole map first.
func unaliasMap(aliases AliasResolver, m map[mimetype.Type]HandlerList) map[mimetype.Type]HandlerList {
	type slot struct {
		// source is the key the winning entry was originally stored
		// under; source == the canonical key marks a canonical-sourced
		// slot.
		source mimetype.Type
		list   HandlerList
	}

	slots := make(map[mimetype.Type]slot, len(m))
	for mt, list := range m {
		canonical := aliases.Canonical(mt)
		if mt == canonical {
			slots[canonical] = slot{source: mt, list: list}
			continue
		}
		current, occupied := slots[canonical]
		switch {
		case !occupied:
			slots[canonical] = slot{source: mt, list: list}
		case current.source == canonical:
			// Canonical-sourced slots are never displaced by an alias.
		case mt.Less(current.source):
			slots[canonical] = slot{source: mt, list: list}
		}
	}

	result := make(map[mimetype.Type]HandlerList, len(slots))
	for canonical, s := range slots {
		result[canonical] = s.list
	}
	return result
}

// Table exposes the canonical-keyed table for read-only uses such as
// rendering. Mutate only through the Canonical methods.
func (c *Canonical) Table() *Table {
	return c.table
}

// Add appends h as a fallback handler for mime's canonical type and
// persists the table.
func (c *Canonical) Add(mime mimetype.Type, h desktop.Handler) error {
	c.table.AddHandler(c.aliases.Canonical(mime), h)
	return c.table.Save()
}

// Set makes h the sole default handler for mime's canonical type and
// persists the table.
func (c *Canonical) Set(mime mimetype.Type, h desktop.Handler) error {
	c.table.SetHandler(c.aliases.Canonical(mime), h)
	return c.table.Save()
}

// Remove deletes the default list for mime's canonical type. The table is
// persisted only if a deletion actually occurred.
//
// Removing under an alias removes the canonical entry: an add under that
// alias would have landed on the canonical key too, so there is never a
// reason to remove the alias but keep the canonical type.
func (c *Canonical) Remove(mime mimetype.Type) error {
	if !c.table.RemoveHandler(c.aliases.Canonical(mime)) {
		return nil
	}
	return c.table.Save()
}

// Get returns the default handler for mime's canonical type.
func (c *Canonical) Get(mime mimetype.Type) (desktop.Handler, error) {
	return c.table.GetHandler(c.aliases.Canonical(mime))
}
