// SPDX-License-Identifier: MPL-2.0

package mimetype

import (
	"errors"
	"fmt"
	"mime"
	"strings"
)

var (
	// ErrInvalidSyntax is the sentinel error wrapped by InvalidTypeError.
	ErrInvalidSyntax = errors.New("invalid mime type syntax")
	// ErrAmbiguous is the sentinel error wrapped by AmbiguousTypeError.
	ErrAmbiguous = errors.New("could not determine mime type")
)

type (
	// Type is a MIME identifier in essence form (type/subtype, lowercase,
	// no parameters). The zero value is not a valid Type; construct through
	// Parse or ParseOrExtension.
	//
	// Types order lexicographically by string form, which is the ordering
	// the canonicalization tie-break relies on.
	Type string

	// InvalidTypeError is returned when a string is not a syntactically
	// valid MIME identifier. It wraps ErrInvalidSyntax for errors.Is().
	InvalidTypeError struct {
		Value string
	}

	// AmbiguousTypeError is returned when a file extension does not map to
	// any known MIME type. It wraps ErrAmbiguous for errors.Is().
	AmbiguousTypeError struct {
		Extension string
	}
)

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid mime type syntax: %q", e.Value)
}

func (e *InvalidTypeError) Is(target error) bool {
	return target == ErrInvalidSyntax
}

func (e *AmbiguousTypeError) Error() string {
	return fmt.Sprintf("could not determine the mime type of %q", e.Extension)
}

func (e *AmbiguousTypeError) Is(target error) bool {
	return target == ErrAmbiguous
}

// Parse validates s as a type/subtype MIME identifier and returns it in
// essence form: parameters after ';' are dropped and the identifier is
// ASCII-lowercased (MIME types are case-insensitive).
func Parse(s string) (Type, error) {
	essence := s
	if i := strings.IndexByte(essence, ';'); i >= 0 {
		essence = essence[:i]
	}
	essence = strings.ToLower(strings.TrimSpace(essence))

	major, sub, ok := strings.Cut(essence, "/")
	if !ok || !validToken(major) || !validToken(sub) {
		return "", &InvalidTypeError{Value: s}
	}
	return Type(essence), nil
}

// ParseOrExtension accepts either a MIME identifier or a file extension.
// Arguments without a '/' are treated as an extension (a leading dot is
// optional) and resolved through the system extension table; extensions
// with no known type yield an AmbiguousTypeError.
func ParseOrExtension(s string) (Type, error) {
	if strings.ContainsRune(s, '/') {
		return Parse(s)
	}

	ext := s
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	resolved := mime.TypeByExtension(ext)
	if resolved == "" {
		return "", &AmbiguousTypeError{Extension: s}
	}
	return Parse(resolved)
}

func (t Type) String() string {
	return string(t)
}

// Less reports whether t sorts before other in the lexicographic identifier
// ordering used for deterministic alias selection and display sorting.
func (t Type) Less(other Type) bool {
	return t < other
}

// validToken reports whether s is a non-empty RFC 6838 restricted name.
func validToken(s string) bool {
	if s == "" || len(s) > 127 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		case c == '!' || c == '#' || c == '$' || c == '&' || c == '-' ||
			c == '^' || c == '_' || c == '.' || c == '+':
		default:
			return false
		}
	}
	return true
}
