// SPDX-License-Identifier: MPL-2.0

// Package alias resolves MIME identifiers to their canonical form using the
// shared MIME database's alias tables.
//
// The tables are loaded once per process and treated as immutable for the
// run. A Resolver that failed to load anything still works: it degrades to
// identity canonicalization, which keeps the CLI usable on systems without a
// shared MIME database.
package alias
