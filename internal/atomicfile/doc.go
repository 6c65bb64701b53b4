// SPDX-License-Identifier: MPL-2.0

// Package atomicfile writes files with atomic-replace semantics.
//
// Content is fully written to a temporary file in the target directory and
// renamed over the destination, so a crash or a concurrent reader never
// observes a partially written file. No cross-process locking is provided:
// two writers racing on the same path resolve last-writer-wins.
package atomicfile
