// Package engine defines the contracts between the unurgo facade and a
// non-uniform random variate sampling engine.
//
// An Engine turns a textual distribution/method description into a Generator.
// A Generator produces variates by pulling uniforms from the Source objects
// bound to it. The native UNURAN binding (package unur) and the pure-Go
// engine (package pure) both satisfy these interfaces.
package engine

// Source supplies uniform random numbers in [0,1) to an engine, one pull at
// a time. The engine holds only a non-owning reference to a bound Source;
// freeing it is the caller's business.
type Source interface {
	Pull() float64
}

// Slot identifies which of a generator's two uniform-source bindings an
// operation refers to. Most sampling methods draw from the primary source;
// some rejection methods additionally draw from the auxiliary one.
type Slot int

const (
	Primary Slot = iota
	Auxiliary
)

func (s Slot) String() string {
	switch s {
	case Primary:
		return "primary"
	case Auxiliary:
		return "auxiliary"
	}
	return "unknown"
}

// Class describes the distribution class a generator samples from. The
// values match UNURAN's distribution type enum so the native binding can
// report them unconverted.
type Class uint32

const (
	Cont  Class = 0x0010 // univariate continuous
	CEmp  Class = 0x0011 // univariate continuous empirical
	CVec  Class = 0x0110 // multivariate continuous
	CVEmp Class = 0x0111 // multivariate continuous empirical
	Matr  Class = 0x0210 // random matrix
	Discr Class = 0x1000 // univariate discrete
)

// The predicates mirror UNURAN's unur_distr_is_* macros: each matches its
// own class exactly, so a continuous empirical distribution is empirical,
// not continuous.

// IsDiscrete reports whether the class is univariate discrete.
func (c Class) IsDiscrete() bool { return c == Discr }

// IsContinuous reports whether the class is univariate continuous.
func (c Class) IsContinuous() bool { return c == Cont }

// IsMultivariateContinuous reports whether the class is multivariate
// continuous.
func (c Class) IsMultivariateContinuous() bool { return c == CVec }

// IsEmpirical reports whether the class is univariate empirical.
func (c Class) IsEmpirical() bool { return c == CEmp }

// IsMultivariateEmpirical reports whether the class is multivariate
// empirical.
func (c Class) IsMultivariateEmpirical() bool { return c == CVEmp }

func (c Class) String() string {
	switch c {
	case Cont:
		return "continuous"
	case CEmp:
		return "empirical"
	case CVec:
		return "multivariate"
	case CVEmp:
		return "multivariate empirical"
	case Matr:
		return "matrix"
	case Discr:
		return "discrete"
	}
	return "unknown"
}

// Engine builds generators from textual descriptions.
type Engine interface {
	// NewGenerator creates a generator from a description in the UNURAN
	// string API ("distr=normal(0,1) & method=tdr"). On failure the error
	// carries the engine's own diagnostic text.
	NewGenerator(spec string) (Generator, error)

	// SetDefaultSource installs the engine-wide fallback uniform source,
	// used whenever sampling happens outside any per-generator binding
	// (setup work during generator construction does this). Calling it
	// again replaces the fallback; the engine never frees the Source.
	SetDefaultSource(s Source) error
}

// Generator is one configured sampling instance. Implementations are not
// safe for concurrent use; Destroy must be called exactly once.
type Generator interface {
	// SampleDiscrete draws one variate from a discrete distribution.
	SampleDiscrete() int

	// SampleContinuous draws one variate from a continuous distribution.
	SampleContinuous() float64

	// SampleVector draws one multivariate point into dst, which the caller
	// guarantees holds at least Dimension() values.
	SampleVector(dst []float64)

	// Dimension returns the number of components per sample: 1 for
	// univariate distributions. Fixed for the generator's lifetime.
	Dimension() int

	// Class reports the distribution class sampled by this generator.
	Class() Class

	// BindSource attaches a uniform source to the given slot, replacing
	// any previous binding. The generator does not take ownership of s.
	BindSource(s Source, slot Slot) error

	// Destroy releases the generator and everything BindSource allocated
	// for it. The generator must not be used afterwards.
	Destroy()
}
