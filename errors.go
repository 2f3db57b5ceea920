//go:build !ios && !android && (amd64 || arm64)

package unurgo

import (
	"errors"
	"fmt"

	"github.com/obinnaokechukwu/unurgo/internal/bindings"
)

// Common errors
var (
	// ErrInvalidHandle indicates an operation on a generator that was
	// never successfully constructed or has already been closed.
	ErrInvalidHandle = errors.New("unurgo: invalid generator handle")

	// ErrShortBuffer indicates a caller-supplied buffer smaller than the
	// operation requires. It surfaces before any native call is made.
	ErrShortBuffer = errors.New("unurgo: buffer shorter than required")

	// ErrExhausted indicates a native or adapter allocation failed during
	// construction.
	ErrExhausted = errors.New("unurgo: resource allocation failed")

	// ErrNotLoaded indicates the UNURAN library is not loaded.
	ErrNotLoaded = bindings.ErrNotLoaded

	// ErrLibraryNotFound indicates the UNURAN library could not be found.
	ErrLibraryNotFound = bindings.ErrLibraryNotFound
)

// CreateError is returned when the engine rejects a generator description.
// Diagnostic carries the engine's own message, which for the native engine
// is UNURAN's strerror text for its current errno.
type CreateError struct {
	Spec       string // the description that was rejected
	Diagnostic string // the engine's diagnostic text
}

// Error implements the error interface.
func (e *CreateError) Error() string {
	if e.Diagnostic == "" {
		return fmt.Sprintf("unurgo: cannot create generator from %q", e.Spec)
	}
	return fmt.Sprintf("unurgo: cannot create generator from %q: %s", e.Spec, e.Diagnostic)
}

// IsCreateError reports whether err is a generator creation failure and, if
// so, returns it.
func IsCreateError(err error) (*CreateError, bool) {
	var ce *CreateError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
