//go:build !ios && !android && (amd64 || arm64)

package unurgo

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/obinnaokechukwu/unurgo/engine"
	"github.com/obinnaokechukwu/unurgo/unur"
	"github.com/obinnaokechukwu/unurgo/urng"
)

// Generator is one configured sampling engine instance together with the
// uniform-source adapters it draws from. It is created from a textual
// distribution description and must be closed when no longer needed; a
// finalizer closes leaked generators, but relying on it delays the release
// of native resources.
//
// A Generator is not safe for concurrent sampling calls. Distinct
// generators are independent, except that construction itself repoints a
// process-wide default source and therefore must not run concurrently with
// another construction.
type Generator struct {
	mu sync.Mutex

	gen engine.Generator // nil once closed or failed
	dim int

	// The engine pulls through the slots, never the adapters directly,
	// so batch operations can alias the auxiliary source to the primary
	// adapter without rebinding anything natively.
	main     *urng.Adapter
	aux      *urng.Adapter
	mainSlot *slot
	auxSlot  *slot

	mainStream urng.Stream
	auxStream  urng.Stream
	sepAux     bool // a distinct auxiliary stream was supplied

	// scratch buffers for FillInts/FillFloat64s, grown lazily and reused
	unifBuf    []float64
	unifAuxBuf []float64
}

// slot is the level of indirection bound to the engine as a uniform source.
type slot struct {
	a *urng.Adapter
}

func (s *slot) Pull() float64 {
	return s.a.Pull()
}

// New creates a generator from a description in the UNURAN string API, for
// example "distr=normal(0,1) & method=tdr". Uniforms are drawn from main;
// see WithAuxStream and WithEngine for the optional knobs.
//
// Construction repoints the process-wide default uniform source and must
// not run concurrently with another New call. On any failure every native
// resource allocated so far is released before the error is returned.
func New(spec string, main urng.Stream, options ...GeneratorOption) (*Generator, error) {
	opts := &GeneratorOptions{}
	for _, opt := range options {
		opt(opts)
	}
	return NewWithOptions(spec, main, opts)
}

// NewWithOptions creates a generator with custom options.
func NewWithOptions(spec string, main urng.Stream, opts *GeneratorOptions) (*Generator, error) {
	if main == nil {
		return nil, errors.New("unurgo: nil primary stream")
	}

	var eng engine.Engine
	auxStream := main
	sepAux := false
	if opts != nil {
		eng = opts.Engine
		if opts.Aux != nil {
			auxStream = opts.Aux
			sepAux = true
		}
	}
	if eng == nil {
		eng = unur.DefaultEngine()
	}

	// The engine samples during setup, before any per-generator source is
	// bound, so the shared default source must point at this handle's
	// primary stream for the duration of the call.
	if err := installDefaultSource(eng, main); err != nil {
		return nil, err
	}

	gen, err := eng.NewGenerator(spec)
	if err != nil {
		if errors.Is(err, ErrNotLoaded) || errors.Is(err, ErrLibraryNotFound) {
			return nil, err
		}
		return nil, &CreateError{Spec: spec, Diagnostic: err.Error()}
	}

	g := &Generator{
		gen:        gen,
		dim:        gen.Dimension(),
		mainStream: main,
		auxStream:  auxStream,
		sepAux:     sepAux,
	}

	g.main = urng.New(main)
	g.mainSlot = &slot{a: g.main}
	if err := gen.BindSource(g.mainSlot, engine.Primary); err != nil {
		gen.Destroy()
		return nil, fmt.Errorf("%w: binding primary source: %v", ErrExhausted, err)
	}

	// The auxiliary adapter is always its own object, even when it wraps
	// the same stream: single-value draws cache a value on the primary
	// while resetting the auxiliary, which a shared adapter would break.
	g.aux = urng.New(auxStream)
	g.auxSlot = &slot{a: g.aux}
	if err := gen.BindSource(g.auxSlot, engine.Auxiliary); err != nil {
		gen.Destroy()
		return nil, fmt.Errorf("%w: binding auxiliary source: %v", ErrExhausted, err)
	}

	runtime.SetFinalizer(g, (*Generator).finalize)
	return g, nil
}

// Close releases the native generator and everything bound to it. It is
// idempotent: closing an already-closed generator, or one whose
// construction failed, is a no-op. Safe to call from a finalizer.
func (g *Generator) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.gen == nil {
		return nil
	}

	g.gen.Destroy()
	g.gen = nil

	g.main = nil
	g.aux = nil
	g.mainSlot = nil
	g.auxSlot = nil
	g.mainStream = nil
	g.auxStream = nil
	g.unifBuf = nil
	g.unifAuxBuf = nil

	runtime.SetFinalizer(g, nil)
	return nil
}

func (g *Generator) finalize() {
	g.Close()
}

// Dimension returns the number of components per sample, 1 for univariate
// distributions and 0 for a closed or failed handle.
func (g *Generator) Dimension() int {
	if g.gen == nil {
		return 0
	}
	return g.dim
}
