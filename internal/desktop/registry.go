// SPDX-License-Identifier: MPL-2.0

package desktop

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"mimectl/internal/xdg"
)

// ErrHandlerNotFound is the sentinel error wrapped by HandlerNotFoundError.
var ErrHandlerNotFound = errors.New("handler not found")

type (
	// Handler is a validated desktop entry file name (e.g. "mpv.desktop").
	// Handlers order lexicographically by name.
	Handler string

	// HandlerNotFoundError is returned when no installed desktop entry
	// matches the requested name. It wraps ErrHandlerNotFound for
	// errors.Is() compatibility.
	HandlerNotFoundError struct {
		Name string
	}

	// Registry looks handler names up in the applications directories of
	// the XDG data search path.
	Registry struct {
		dataDirs []string
	}
)

func (h Handler) String() string {
	return string(h)
}

func (e *HandlerNotFoundError) Error() string {
	return fmt.Sprintf("no handlers found for %q", e.Name)
}

func (e *HandlerNotFoundError) Is(target error) bool {
	return target == ErrHandlerNotFound
}

// NewRegistry returns a Registry over the XDG data search path. Passing
// explicit directories overrides the environment-derived path (used by
// tests).
func NewRegistry(dataDirs ...string) *Registry {
	if len(dataDirs) == 0 {
		dataDirs = xdg.DataDirs()
	}
	return &Registry{dataDirs: dataDirs}
}

// Resolve confirms that a desktop entry named name is installed and returns
// the validated Handler. The name is used as-is; no extension is appended.
func (r *Registry) Resolve(name string) (Handler, error) {
	if _, ok := r.Path(name); !ok {
		return "", &HandlerNotFoundError{Name: name}
	}
	return Handler(name), nil
}

// Path returns the path of the first installed desktop entry matching name,
// searching the data directories in precedence order.
func (r *Registry) Path(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	for _, dir := range r.dataDirs {
		candidate := filepath.Join(dir, "applications", name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}
