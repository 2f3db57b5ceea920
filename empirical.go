//go:build !ios && !android && (amd64 || arm64)

package unurgo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/obinnaokechukwu/unurgo/urng"
)

// EmpiricalSpec builds the description of an empirical distribution over
// the given observations: "distr=cemp; data=(x1,x2,…)". Every value is
// formatted at full precision.
func EmpiricalSpec(data []float64) string {
	var b strings.Builder
	b.WriteString("distr=cemp; data=(")
	for i, v := range data {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	b.WriteByte(')')
	return b.String()
}

// DiscreteSpec builds the description of a finite discrete distribution
// with the given probability weights: "distr=discr; pv=(w1,w2,…)". The
// weights need not sum to one; the engine normalizes them.
func DiscreteSpec(weights []float64) string {
	var b strings.Builder
	b.WriteString("distr=discr; pv=(")
	for i, w := range weights {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(w, 'g', -1, 64))
	}
	b.WriteByte(')')
	return b.String()
}

// NewDiscrete creates a generator and verifies it samples a univariate
// discrete distribution, closing it again and failing otherwise.
func NewDiscrete(spec string, main urng.Stream, options ...GeneratorOption) (*Generator, error) {
	g, err := New(spec, main, options...)
	if err != nil {
		return nil, err
	}
	if !g.IsDiscrete() {
		g.Close()
		return nil, fmt.Errorf("unurgo: %q does not describe a discrete distribution", spec)
	}
	return g, nil
}

// NewContinuous creates a generator and verifies it samples a univariate
// continuous distribution, closing it again and failing otherwise.
func NewContinuous(spec string, main urng.Stream, options ...GeneratorOption) (*Generator, error) {
	g, err := New(spec, main, options...)
	if err != nil {
		return nil, err
	}
	if !g.IsContinuous() {
		g.Close()
		return nil, fmt.Errorf("unurgo: %q does not describe a continuous distribution", spec)
	}
	return g, nil
}

// NewEmpirical creates a generator and verifies it samples an empirical
// distribution, univariate or multivariate, closing it again and failing
// otherwise.
func NewEmpirical(spec string, main urng.Stream, options ...GeneratorOption) (*Generator, error) {
	g, err := New(spec, main, options...)
	if err != nil {
		return nil, err
	}
	if !g.IsEmpirical() && !g.IsMultivariateEmpirical() {
		g.Close()
		return nil, fmt.Errorf("unurgo: %q does not describe an empirical distribution", spec)
	}
	return g, nil
}
