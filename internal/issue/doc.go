// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries what operation failed, which file or MIME type was
// involved, and suggestions for fixing it. Known failure classes additionally
// have a Markdown issue card rendered in the terminal via glamour.
package issue
