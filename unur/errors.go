//go:build !ios && !android && (amd64 || arm64)

package unur

import (
	"fmt"
	"unsafe"
)

// UNURAN error codes (unuran.h). The full set is larger; these are the ones
// the binding inspects. Everything else is reported through its strerror
// text.
const (
	success       = 0x0  // UNUR_SUCCESS
	ErrDistrSet   = 0x11 // UNUR_ERR_DISTR_SET: invalid distribution parameter
	ErrStrUnknown = 0x21 // UNUR_ERR_STR_UNKNOWN: unknown keyword in spec string
	ErrStrSyntax  = 0x22 // UNUR_ERR_STR_SYNTAX: syntax error in spec string
	ErrStrInvalid = 0x23 // UNUR_ERR_STR_INVALID: invalid parameter in spec string
	ErrNoMemory   = 0x30 // UNUR_ERR_MALLOC: allocation failure
	ErrNull       = 0x32 // UNUR_ERR_NULL: invalid NULL pointer
)

// Error represents a UNURAN library error with the errno value and
// diagnostic text captured at failure time.
type Error struct {
	Code    int    // UNURAN error code (unur_errno)
	Message string // human-readable text from unur_get_strerror
	Op      string // native entry point that failed
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("unur: %s: %s (code %#x)", e.Op, e.Message, e.Code)
	}
	return fmt.Sprintf("unur: %s (code %#x)", e.Message, e.Code)
}

// newError snapshots the library's current errno and diagnostic text.
// Must only be called after a failed native call, before any further one.
func newError(op string) *Error {
	code := Errno()
	return &Error{Code: code, Message: Strerror(code), Op: op}
}

// Errno returns the UNURAN library's current global error code, or 0 when
// the library is not loaded or exports no errno symbol.
func Errno() int {
	if unurErrnoAddr == 0 {
		return 0
	}
	return int(*(*int32)(unsafe.Pointer(unurErrnoAddr)))
}

// Strerror returns UNURAN's short description for an error code.
// Returns an empty string if the library is not loaded.
func Strerror(code int) string {
	if unurGetStrerror == nil {
		return ""
	}
	return unurGetStrerror(int32(code))
}
