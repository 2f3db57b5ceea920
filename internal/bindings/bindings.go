//go:build !ios && !android && (amd64 || arm64)

// Package bindings handles locating and loading the UNURAN shared library
// with purego. Registration of individual function bindings is done by the
// unur package on top of the handle exposed here.
package bindings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"

	"github.com/obinnaokechukwu/unurgo/internal/platform"
)

// ErrNotLoaded is returned when UNURAN functions are called before Load().
var ErrNotLoaded = errors.New("unurgo: UNURAN library not loaded; call unurgo.Init() first")

// ErrLibraryNotFound is returned when the UNURAN library cannot be found.
var ErrLibraryNotFound = errors.New("unurgo: UNURAN library not found")

// Sonames to try, newest first. The unversioned name is tried last.
var unuranVersions = []int{6, 5, 4}

var (
	libUnuran uintptr

	loaded   bool
	loadOnce sync.Once
	loadErr  error
)

// IsLoaded returns true if the UNURAN library has been successfully loaded.
func IsLoaded() bool {
	return loaded
}

// Load loads the UNURAN shared library.
// It is safe to call multiple times; subsequent calls are no-ops.
// Returns an error if the library cannot be found or loaded.
func Load() error {
	loadOnce.Do(func() {
		loadErr = doLoad()
		if loadErr == nil {
			loaded = true
		}
	})
	return loadErr
}

func doLoad() error {
	lib, err := loadLibrary("unuran", unuranVersions)
	if err != nil {
		return fmt.Errorf("loading libunuran: %w", err)
	}
	libUnuran = lib
	return nil
}

// loadLibrary attempts to load a library by trying versioned names.
func loadLibrary(name string, versions []int) (uintptr, error) {
	// Try each search path
	for _, searchPath := range LibrarySearchPaths() {
		// Try versioned names first (more specific)
		for _, ver := range versions {
			libName := platform.FormatLibraryName(name, ver)
			fullPath := filepath.Join(searchPath, libName)

			lib, err := tryOpen(fullPath)
			if err == nil {
				return lib, nil
			}
		}

		// Try unversioned name
		libName := platform.FormatLibraryName(name, 0)
		fullPath := filepath.Join(searchPath, libName)
		lib, err := tryOpen(fullPath)
		if err == nil {
			return lib, nil
		}
	}

	// Try just the library name (let the system find it)
	for _, ver := range versions {
		libName := platform.FormatLibraryName(name, ver)
		lib, err := tryOpen(libName)
		if err == nil {
			return lib, nil
		}
	}

	// Try unversioned
	libName := platform.FormatLibraryName(name, 0)
	lib, err := tryOpen(libName)
	if err == nil {
		return lib, nil
	}

	return 0, fmt.Errorf("%w: %s", ErrLibraryNotFound, name)
}

// tryOpen attempts to open a library with RTLD_NOW | RTLD_GLOBAL.
// RTLD_GLOBAL keeps UNURAN's own symbols resolvable should a second native
// library (a Rmath build of UNURAN links against it) be mapped later.
func tryOpen(path string) (uintptr, error) {
	lib, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, err
	}
	return lib, nil
}

// FindLibrary searches for the UNURAN library and returns its full path.
// This is useful for diagnostics; it does not load anything.
func FindLibrary() (string, error) {
	for _, searchPath := range LibrarySearchPaths() {
		for _, ver := range unuranVersions {
			libName := platform.FormatLibraryName("unuran", ver)
			fullPath := filepath.Join(searchPath, libName)
			if _, err := os.Stat(fullPath); err == nil {
				return fullPath, nil
			}
		}
		// Try unversioned
		libName := platform.FormatLibraryName("unuran", 0)
		fullPath := filepath.Join(searchPath, libName)
		if _, err := os.Stat(fullPath); err == nil {
			return fullPath, nil
		}
	}
	return "", fmt.Errorf("%w: unuran", ErrLibraryNotFound)
}

// LibrarySearchPaths returns platform-specific library search paths.
func LibrarySearchPaths() []string {
	var paths []string

	switch runtime.GOOS {
	case "linux":
		// Check LD_LIBRARY_PATH first
		if ldPath := os.Getenv("LD_LIBRARY_PATH"); ldPath != "" {
			paths = append(paths, filepath.SplitList(ldPath)...)
		}
		// Standard paths
		paths = append(paths,
			"/usr/lib/x86_64-linux-gnu",
			"/usr/lib/aarch64-linux-gnu",
			"/usr/local/lib",
			"/usr/lib",
			"/lib/x86_64-linux-gnu",
			"/lib",
		)

	case "darwin":
		// Check DYLD_LIBRARY_PATH first
		if dyldPath := os.Getenv("DYLD_LIBRARY_PATH"); dyldPath != "" {
			paths = append(paths, filepath.SplitList(dyldPath)...)
		}
		// Homebrew and MacPorts paths
		paths = append(paths,
			"/opt/homebrew/lib", // Apple Silicon
			"/usr/local/lib",    // Intel
			"/opt/homebrew/opt/unuran/lib",
			"/usr/local/opt/unuran/lib",
			"/opt/local/lib",
		)

	case "windows":
		// Check PATH
		if winPath := os.Getenv("PATH"); winPath != "" {
			paths = append(paths, filepath.SplitList(winPath)...)
		}
		// Executable directory
		if exe, err := os.Executable(); err == nil {
			paths = append(paths, filepath.Dir(exe))
		}
		// Common install locations
		paths = append(paths,
			"C:\\unuran\\bin",
			"C:\\Program Files\\unuran\\bin",
		)

	case "freebsd":
		if ldPath := os.Getenv("LD_LIBRARY_PATH"); ldPath != "" {
			paths = append(paths, filepath.SplitList(ldPath)...)
		}
		paths = append(paths,
			"/usr/local/lib",
			"/usr/lib",
		)
	}

	return paths
}

// LibUnuran returns the UNURAN library handle, or 0 before a successful Load.
func LibUnuran() uintptr {
	return libUnuran
}
