// SPDX-License-Identifier: MPL-2.0

// Package assoc implements the mimeapps.list association table and its
// canonical view.
//
// Table is the raw persisted model: three independent mappings from MIME
// type to an ordered, deduplicated handler list, read from and written to
// the section-delimited mimeapps.list format. Nothing at this layer prevents
// the same underlying type from appearing under two different alias names.
//
// Canonical wraps a Table so that every key is a canonical MIME type and all
// lookups and mutations unalias their argument first. The alias merge is
// deliberately order-independent: Go maps do not guarantee iteration order,
// so the merged result must not depend on it.
package assoc
