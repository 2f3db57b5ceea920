//go:build !ios && !android && (amd64 || arm64)

package unur

import (
	"sync"

	"github.com/ebitengine/purego"
)

// Report is one diagnostic record emitted by UNURAN's error handler.
type Report struct {
	ObjID  string // id of the object the error occurred in ("TDR.gen" etc.)
	File   string // source file inside UNURAN
	Line   int
	Type   string // "error" or "warning"
	Code   int    // UNURAN error code
	Reason string // short description
}

// ErrorHandler is called for each diagnostic UNURAN reports. By default the
// library prints to stderr; installing a handler routes everything here
// instead.
type ErrorHandler func(Report)

var (
	errHandlerMu sync.Mutex
	errHandler   ErrorHandler
	errCBHandle  uintptr
)

// SetErrorHandler installs a custom handler for UNURAN diagnostics.
// Pass nil to restore the library's default stderr reporting.
func SetErrorHandler(h ErrorHandler) error {
	if err := Load(); err != nil {
		return err
	}

	errHandlerMu.Lock()
	defer errHandlerMu.Unlock()

	if h == nil {
		errHandler = nil
		unurSetErrorHandler(0)
		return nil
	}

	errHandler = h

	// Create a purego callback if we haven't yet
	if errCBHandle == 0 {
		errCBHandle = purego.NewCallback(errorTrampoline)
	}

	unurSetErrorHandler(errCBHandle)
	return nil
}

// errorTrampoline is called by UNURAN and forwards to the Go handler.
// Signature: void (*)(const char *objid, const char *file, int line,
// const char *errortype, int errorcode, const char *reason)
func errorTrampoline(objid, file uintptr, line int32, errtype uintptr, code int32, reason uintptr) {
	errHandlerMu.Lock()
	h := errHandler
	errHandlerMu.Unlock()

	if h == nil {
		return
	}

	h(Report{
		ObjID:  goString(objid),
		File:   goString(file),
		Line:   int(line),
		Type:   goString(errtype),
		Code:   int(code),
		Reason: goString(reason),
	})
}
