// SPDX-License-Identifier: MPL-2.0

// Package selector runs the configured dmenu-style chooser subprocess.
//
// Candidates go in on stdin, one per line; the chosen line comes back on
// stdout. This is a thin exec wrapper with no state of its own.
package selector
