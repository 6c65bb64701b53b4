// SPDX-License-Identifier: MPL-2.0

package assoc

import (
	"errors"
	"fmt"

	"mimectl/internal/mimetype"
)

var (
	// ErrParse is the sentinel error wrapped by ParseError.
	ErrParse = errors.New("malformed mimeapps.list")
	// ErrNotFound is the sentinel error wrapped by NoHandlerError.
	ErrNotFound = errors.New("no handler configured")
)

type (
	// ParseError reports a structurally malformed mimeapps.list line.
	// It wraps ErrParse for errors.Is() compatibility.
	ParseError struct {
		Line int
		Text string
	}

	// NoHandlerError is returned by lookups for a MIME type with no
	// default handler. It wraps ErrNotFound for errors.Is() compatibility.
	NoHandlerError struct {
		Type mimetype.Type
	}
)

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed mimeapps.list: line %d: %q", e.Line, e.Text)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *NoHandlerError) Error() string {
	return fmt.Sprintf("no handlers found for %q", e.Type)
}

func (e *NoHandlerError) Is(target error) bool {
	return target == ErrNotFound
}
