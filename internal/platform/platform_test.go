//go:build !ios && !android && (amd64 || arm64)

package platform

import (
	"runtime"
	"testing"
)

func TestLibraryExtension(t *testing.T) {
	switch runtime.GOOS {
	case "darwin":
		if LibraryExtension != ".dylib" {
			t.Errorf("expected .dylib, got %s", LibraryExtension)
		}
	case "windows":
		if LibraryExtension != ".dll" {
			t.Errorf("expected .dll, got %s", LibraryExtension)
		}
	default:
		if LibraryExtension != ".so" {
			t.Errorf("expected .so, got %s", LibraryExtension)
		}
	}
}

func TestLibraryPrefix(t *testing.T) {
	switch runtime.GOOS {
	case "windows":
		if LibraryPrefix != "" {
			t.Errorf("expected empty prefix on Windows, got %s", LibraryPrefix)
		}
	default:
		if LibraryPrefix != "lib" {
			t.Errorf("expected 'lib' prefix, got %s", LibraryPrefix)
		}
	}
}

func TestFormatLibraryName(t *testing.T) {
	tests := []struct {
		name    string
		version int
		goos    string
		want    string
	}{
		{"unuran", 6, "linux", "libunuran.so.6"},
		{"unuran", 0, "linux", "libunuran.so"},
		{"unuran", 6, "darwin", "libunuran.6.dylib"},
		{"unuran", 0, "darwin", "libunuran.dylib"},
		{"unuran", 6, "windows", "unuran-6.dll"},
		{"unuran", 0, "windows", "unuran.dll"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"_"+tt.goos, func(t *testing.T) {
			if runtime.GOOS != tt.goos {
				t.Skipf("test only applies to %s", tt.goos)
			}
			got := FormatLibraryName(tt.name, tt.version)
			if got != tt.want {
				t.Errorf("FormatLibraryName(%q, %d) = %q, want %q", tt.name, tt.version, got, tt.want)
			}
		})
	}
}
