// SPDX-License-Identifier: MPL-2.0

// Package xdg resolves XDG base directories from the environment.
//
// Only the directories mimectl actually consults are exposed: the user
// configuration home (where mimeapps.list and the tool config live) and the
// data directory search path (where desktop entries and the shared MIME
// database live). Defaults follow the XDG Base Directory specification.
package xdg
