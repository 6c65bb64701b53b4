// SPDX-License-Identifier: MPL-2.0

// Package mimetype defines the MIME type identifier value used as the key of
// every association mapping.
//
// A Type is an immutable type/subtype string in essence form (parameters
// stripped, ASCII lowercased). Two Types are equal iff their string forms are
// equal; alias canonicalization is an explicit operation performed by the
// alias package, never implied by equality.
package mimetype
