// Package pure implements the generator engine in Go, without the native
// library. Distributions are sampled by quantile inversion backed by gonum,
// so each scalar draw consumes exactly one uniform and each vector draw
// consumes one uniform per dimension.
//
// The engine accepts the same string descriptions as the native engine for
// the distributions it knows (normal, exponential, gamma, beta, cauchy,
// uniform, weibull, lognormal, discr, geometric, poisson, cemp, mvnormal).
// A method=... block is accepted and ignored; inversion is always used.
package pure

import (
	"fmt"
	"sync"

	"github.com/obinnaokechukwu/unurgo/engine"
)

// Engine builds inversion generators. The zero value is ready to use.
type Engine struct {
	mu  sync.RWMutex
	def engine.Source
}

// NewEngine returns a pure-Go engine.
func NewEngine() *Engine { return &Engine{} }

// NewGenerator parses the description and constructs an inversion generator
// for it.
func (e *Engine) NewGenerator(spec string) (engine.Generator, error) {
	s, err := parse(spec)
	if err != nil {
		return nil, err
	}
	d, err := buildDist(s)
	if err != nil {
		return nil, err
	}
	return &generator{eng: e, d: d}, nil
}

// SetDefaultSource installs the source used by generators with no bound
// primary source.
func (e *Engine) SetDefaultSource(s engine.Source) error {
	e.mu.Lock()
	e.def = s
	e.mu.Unlock()
	return nil
}

func (e *Engine) defaultSource() engine.Source {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.def
}

type generator struct {
	eng *Engine
	d   *distribution
	src [2]engine.Source
}

// pull resolves the uniform source for one draw: the bound primary source if
// any, else the engine default. Inversion never needs the auxiliary source.
func (g *generator) pull() float64 {
	if s := g.src[engine.Primary]; s != nil {
		return s.Pull()
	}
	if s := g.eng.defaultSource(); s != nil {
		return s.Pull()
	}
	panic("pure: generator has no uniform source")
}

func (g *generator) SampleDiscrete() int {
	if g.d.discr == nil {
		panic("pure: discrete sample from " + g.d.class.String() + " generator")
	}
	return g.d.discr(g.pull())
}

func (g *generator) SampleContinuous() float64 {
	if g.d.cont == nil {
		panic("pure: continuous sample from " + g.d.class.String() + " generator")
	}
	return g.d.cont(g.pull())
}

func (g *generator) SampleVector(dst []float64) {
	if g.d.vec == nil {
		panic("pure: vector sample from " + g.d.class.String() + " generator")
	}
	g.d.vec(g.pull, dst)
}

func (g *generator) Dimension() int { return g.d.dim }

func (g *generator) Class() engine.Class { return g.d.class }

// BindSource attaches a source to the slot. The auxiliary slot is accepted
// for interface parity but inversion draws only from the primary.
func (g *generator) BindSource(s engine.Source, slot engine.Slot) error {
	if slot != engine.Primary && slot != engine.Auxiliary {
		return fmt.Errorf("pure: invalid slot %d", slot)
	}
	g.src[slot] = s
	return nil
}

func (g *generator) Destroy() {
	g.src[engine.Primary] = nil
	g.src[engine.Auxiliary] = nil
}
