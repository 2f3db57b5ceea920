//go:build !ios && !android && (amd64 || arm64)

package unurgo

import "fmt"

// The single-value entry points take one uniform the caller already drew on
// the Go side. Caching it on the primary adapter lets the common
// one-uniform-per-sample case cross the native boundary without a callback;
// methods needing further uniforms fall through to the stream. The delivery
// mode is left as configured afterwards: the next operation installs its
// own before sampling.

// SampleDiscrete draws one discrete variate, consuming the prefetched
// uniform u first.
func (g *Generator) SampleDiscrete(u float64) (int, error) {
	if g.gen == nil {
		return 0, ErrInvalidHandle
	}
	g.main.SetCached(u)
	g.aux.Reset()
	return g.gen.SampleDiscrete(), nil
}

// SampleContinuous draws one continuous variate, consuming the prefetched
// uniform u first.
func (g *Generator) SampleContinuous(u float64) (float64, error) {
	if g.gen == nil {
		return 0, ErrInvalidHandle
	}
	g.main.SetCached(u)
	g.aux.Reset()
	return g.gen.SampleContinuous(), nil
}

// SampleVector draws one multivariate point into dst, consuming the
// prefetched uniform u first. dst must hold at least Dimension() values;
// a shorter buffer fails with ErrShortBuffer before any native call.
func (g *Generator) SampleVector(u float64, dst []float64) error {
	if g.gen == nil {
		return ErrInvalidHandle
	}
	if len(dst) < g.dim {
		return fmt.Errorf("%w: vector sample needs %d values, buffer holds %d",
			ErrShortBuffer, g.dim, len(dst))
	}
	g.main.SetCached(u)
	g.aux.Reset()
	g.gen.SampleVector(dst)
	return nil
}

// NextInt draws one discrete variate, prefetching the uniform from the
// primary stream itself.
func (g *Generator) NextInt() (int, error) {
	if g.gen == nil {
		return 0, ErrInvalidHandle
	}
	return g.SampleDiscrete(g.mainStream.Float64())
}

// NextFloat64 draws one continuous variate, prefetching the uniform from
// the primary stream itself.
func (g *Generator) NextFloat64() (float64, error) {
	if g.gen == nil {
		return 0, ErrInvalidHandle
	}
	return g.SampleContinuous(g.mainStream.Float64())
}

// NextVector draws one multivariate point into dst, prefetching the
// uniform from the primary stream itself.
func (g *Generator) NextVector(dst []float64) error {
	if g.gen == nil {
		return ErrInvalidHandle
	}
	return g.SampleVector(g.mainStream.Float64(), dst)
}

// Classification queries. Callable in any state: on a closed or
// never-constructed handle they report false instead of failing.

// Class reports the distribution class the generator samples from, zero for
// a closed or failed handle.
func (g *Generator) Class() Class {
	if g.gen == nil {
		return 0
	}
	return g.gen.Class()
}

// IsDiscrete reports whether the generator samples a univariate discrete
// distribution.
func (g *Generator) IsDiscrete() bool {
	if g.gen == nil {
		return false
	}
	return g.gen.Class().IsDiscrete()
}

// IsContinuous reports whether the generator samples a univariate
// continuous distribution.
func (g *Generator) IsContinuous() bool {
	if g.gen == nil {
		return false
	}
	return g.gen.Class().IsContinuous()
}

// IsMultivariateContinuous reports whether the generator samples a
// multivariate continuous distribution.
func (g *Generator) IsMultivariateContinuous() bool {
	if g.gen == nil {
		return false
	}
	return g.gen.Class().IsMultivariateContinuous()
}

// IsEmpirical reports whether the generator samples a univariate empirical
// distribution.
func (g *Generator) IsEmpirical() bool {
	if g.gen == nil {
		return false
	}
	return g.gen.Class().IsEmpirical()
}

// IsMultivariateEmpirical reports whether the generator samples a
// multivariate empirical distribution.
func (g *Generator) IsMultivariateEmpirical() bool {
	if g.gen == nil {
		return false
	}
	return g.gen.Class().IsMultivariateEmpirical()
}
