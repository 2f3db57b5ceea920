//go:build !ios && !android && (amd64 || arm64)

// Package unurgo provides high-level bindings to the UNURAN universal
// non-uniform random variate generation library. Generators are described
// textually ("distr=normal(0,1) & method=tdr") and draw their uniform
// randomness from Go streams, crossing back over the native boundary
// through purego callbacks, without CGO.
//
// For most use cases, create a Generator with New (or the class-checked
// NewDiscrete/NewContinuous/NewEmpirical) over a urng.Stream and draw with
// NextInt, NextFloat64, FillFloat64s and friends. The lower-level packages
// (engine, urng, unur, pure) are available for advanced use, including
// running everything on the pure-Go engine when the native library is not
// installed.
package unurgo

import (
	"github.com/obinnaokechukwu/unurgo/engine"
	"github.com/obinnaokechukwu/unurgo/unur"
	"github.com/obinnaokechukwu/unurgo/urng"
)

// Init loads the UNURAN library. This happens automatically on first use of
// the native engine, but calling it explicitly surfaces load errors early.
// It is safe to call multiple times.
func Init() error {
	return unur.Load()
}

// IsLoaded returns true if the UNURAN library has been successfully loaded.
func IsLoaded() bool {
	return unur.IsLoaded()
}

// Re-export common types for convenience
type (
	// Stream is a Go source of uniform random numbers.
	Stream = urng.Stream

	// Adapter wraps a Stream as a pull-based uniform source.
	Adapter = urng.Adapter

	// Engine builds sampling generators from textual descriptions.
	Engine = engine.Engine

	// Class describes a generator's distribution class.
	Class = engine.Class

	// ErrorReport is one diagnostic record from the native library.
	ErrorReport = unur.Report
)

// NewMathRand wraps a standard library *rand.Rand as a Stream.
var NewMathRand = urng.NewMathRand

// SetErrorHandler routes the native library's diagnostics to h instead of
// stderr. Pass nil to restore the default reporting.
func SetErrorHandler(h func(ErrorReport)) error {
	return unur.SetErrorHandler(unur.ErrorHandler(h))
}
