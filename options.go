//go:build !ios && !android && (amd64 || arm64)

package unurgo

import (
	"github.com/obinnaokechukwu/unurgo/engine"
	"github.com/obinnaokechukwu/unurgo/urng"
)

// GeneratorOptions configures generator construction.
type GeneratorOptions struct {
	// Engine builds the native sampling instance. Defaults to the shared
	// UNURAN engine; the pure-Go engine can be substituted for library-free
	// operation.
	Engine engine.Engine

	// Aux is the uniform stream for the auxiliary source used by rejection
	// methods. Defaults to the primary stream; the auxiliary source keeps
	// its own adapter either way.
	Aux urng.Stream
}

// GeneratorOption is a functional option for configuring a generator.
type GeneratorOption func(*GeneratorOptions)

// WithEngine selects the sampling engine backing the generator.
func WithEngine(e engine.Engine) GeneratorOption {
	return func(o *GeneratorOptions) {
		o.Engine = e
	}
}

// WithAuxStream supplies a distinct uniform stream for the auxiliary
// source. Without it, methods that draw auxiliary uniforms share the
// primary stream.
func WithAuxStream(s urng.Stream) GeneratorOption {
	return func(o *GeneratorOptions) {
		o.Aux = s
	}
}
