// Package handles provides a thread-safe handle table for Go objects that
// native code needs to reference.
//
// The UNURAN uniform-source callback carries a single opaque state pointer.
// Go pointers must not be stored in native memory, so the object behind a
// callback is registered here and the native side holds only the returned
// uintptr id. The callback trampoline looks the object up again on every
// crossing.
package handles

import (
	"sync"
)

var (
	mu      sync.RWMutex
	handles = make(map[uintptr]any)
	nextID  uintptr = 1
)

// Register stores a Go object and returns a handle id. The id can be safely
// handed to native code (as uintptr or void*) and stays valid until
// Unregister is called.
//
// Thread-safe.
func Register(v any) uintptr {
	mu.Lock()
	defer mu.Unlock()
	id := nextID
	nextID++
	handles[id] = v
	return id
}

// Lookup retrieves a Go object by its handle id.
// Returns nil if the handle is not registered.
//
// Thread-safe.
func Lookup(id uintptr) any {
	mu.RLock()
	defer mu.RUnlock()
	return handles[id]
}

// Unregister removes a handle and allows the Go object to be garbage
// collected. Must be called once the native side can no longer invoke a
// callback with this id.
//
// Thread-safe.
func Unregister(id uintptr) {
	mu.Lock()
	defer mu.Unlock()
	delete(handles, id)
}

// Count returns the number of currently registered handles.
// Useful for debugging and testing resource leaks.
//
// Thread-safe.
func Count() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(handles)
}
