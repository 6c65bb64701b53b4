// SPDX-License-Identifier: MPL-2.0

// Package notify sends desktop notifications through notify-send.
//
// Used for error reporting when mimectl runs detached from a terminal (e.g.
// invoked from a desktop environment's "open with" plumbing).
package notify
