// SPDX-License-Identifier: MPL-2.0

// Package desktop is the application-registry collaborator: it validates
// handler identifiers against the desktop entries installed under the XDG
// data directories.
//
// Only existence is checked; mimectl never parses desktop entry content and
// never launches applications. A Handler that passed Resolve is the only way
// a name enters an association table.
package desktop
