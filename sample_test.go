//go:build !ios && !android && (amd64 || arm64)

package unurgo

import (
	"errors"
	"testing"

	"github.com/obinnaokechukwu/unurgo/engine"
)

func TestSampleConsumesPrefetchedUniform(t *testing.T) {
	eng := &fakeEngine{}
	s := &recStream{vals: []float64{0.5}}
	g := newTestGenerator(t, eng, s)
	defer g.Close()

	// One uniform per draw: the prefetched value covers it and the stream
	// is never touched.
	n, err := g.SampleDiscrete(0.25)
	if err != nil {
		t.Fatalf("SampleDiscrete: %v", err)
	}
	if n != 25 {
		t.Errorf("SampleDiscrete(0.25) = %d, want 25", n)
	}

	x, err := g.SampleContinuous(0.375)
	if err != nil {
		t.Fatalf("SampleContinuous: %v", err)
	}
	if x != 0.75 {
		t.Errorf("SampleContinuous(0.375) = %v, want 0.75", x)
	}

	if s.calls != 0 || s.fills != 0 {
		t.Errorf("stream saw %d calls and %d fills, want none", s.calls, s.fills)
	}
	if eng.lastGen.samples != 2 {
		t.Errorf("native draws = %d, want 2", eng.lastGen.samples)
	}
}

func TestExtraUniformsFallThroughToStream(t *testing.T) {
	eng := &fakeEngine{pullsPerDraw: 2}
	s := &recStream{vals: []float64{0.9}}
	g := newTestGenerator(t, eng, s)
	defer g.Close()

	// The first pull consumes the prefetched value, the second reaches
	// the stream.
	x, err := g.SampleContinuous(0.25)
	if err != nil {
		t.Fatalf("SampleContinuous: %v", err)
	}
	if x != 0.5 {
		t.Errorf("SampleContinuous(0.25) = %v, want 0.5", x)
	}
	if s.calls != 1 {
		t.Errorf("stream calls = %d, want 1", s.calls)
	}

	// The cached value never survives into the next operation.
	if _, err := g.SampleContinuous(0.25); err != nil {
		t.Fatalf("SampleContinuous: %v", err)
	}
	if s.calls != 2 {
		t.Errorf("stream calls after second draw = %d, want 2", s.calls)
	}
}

func TestAuxiliaryPullsShareThePrimaryStream(t *testing.T) {
	eng := &fakeEngine{auxPulls: 1}
	s := &recStream{vals: []float64{0.9}}
	g := newTestGenerator(t, eng, s)
	defer g.Close()

	// Without a distinct auxiliary stream the auxiliary pull lands on the
	// same stream, but never on the prefetched value.
	x, err := g.SampleContinuous(0.25)
	if err != nil {
		t.Fatalf("SampleContinuous: %v", err)
	}
	if x != 0.5 {
		t.Errorf("SampleContinuous(0.25) = %v, want 0.5", x)
	}
	if s.calls != 1 {
		t.Errorf("stream calls = %d, want 1", s.calls)
	}
}

func TestAuxiliaryStreamOption(t *testing.T) {
	eng := &fakeEngine{auxPulls: 1}
	main := &recStream{vals: []float64{0.5}}
	aux := &recStream{vals: []float64{0.9}}
	g := newTestGenerator(t, eng, main, WithAuxStream(aux))
	defer g.Close()

	if _, err := g.SampleContinuous(0.25); err != nil {
		t.Fatalf("SampleContinuous: %v", err)
	}
	if main.calls != 0 {
		t.Errorf("primary stream calls = %d, want 0", main.calls)
	}
	if aux.calls != 1 {
		t.Errorf("auxiliary stream calls = %d, want 1", aux.calls)
	}
}

func TestSampleVectorFillsBuffer(t *testing.T) {
	eng := &fakeEngine{dim: 3, class: engine.CVec}
	g := newTestGenerator(t, eng, &recStream{vals: []float64{0.5}})
	defer g.Close()

	dst := make([]float64, 4)
	if err := g.SampleVector(0.25, dst); err != nil {
		t.Fatalf("SampleVector: %v", err)
	}
	want := []float64{0.25, 1.25, 2.25, 0}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestSampleVectorShortBuffer(t *testing.T) {
	eng := &fakeEngine{dim: 3, class: engine.CVec}
	s := &recStream{vals: []float64{0.5}}
	g := newTestGenerator(t, eng, s)
	defer g.Close()

	err := g.SampleVector(0.25, make([]float64, 2))
	if !errors.Is(err, ErrShortBuffer) {
		t.Fatalf("SampleVector into short buffer: error = %v, want ErrShortBuffer", err)
	}

	// The check fires before anything is sampled.
	if eng.lastGen.samples != 0 {
		t.Errorf("native draws after rejected call = %d, want 0", eng.lastGen.samples)
	}
	if s.calls != 0 {
		t.Errorf("stream calls after rejected call = %d, want 0", s.calls)
	}
}

func TestNextDrawsUniformFromStream(t *testing.T) {
	eng := &fakeEngine{}
	s := &recStream{vals: []float64{0.25, 0.375}}
	g := newTestGenerator(t, eng, s)
	defer g.Close()

	n, err := g.NextInt()
	if err != nil {
		t.Fatalf("NextInt: %v", err)
	}
	if n != 25 {
		t.Errorf("NextInt = %d, want 25", n)
	}

	x, err := g.NextFloat64()
	if err != nil {
		t.Fatalf("NextFloat64: %v", err)
	}
	if x != 0.75 {
		t.Errorf("NextFloat64 = %v, want 0.75", x)
	}

	if s.calls != 2 {
		t.Errorf("stream calls = %d, want 2", s.calls)
	}
}

func TestNextVector(t *testing.T) {
	eng := &fakeEngine{dim: 2, class: engine.CVec}
	s := &recStream{vals: []float64{0.5}}
	g := newTestGenerator(t, eng, s)
	defer g.Close()

	dst := make([]float64, 2)
	if err := g.NextVector(dst); err != nil {
		t.Fatalf("NextVector: %v", err)
	}
	if dst[0] != 0.5 || dst[1] != 1.5 {
		t.Errorf("NextVector dst = %v, want [0.5 1.5]", dst)
	}
	if s.calls != 1 {
		t.Errorf("stream calls = %d, want 1", s.calls)
	}
}

func TestClassificationQueries(t *testing.T) {
	predicates := []struct {
		name string
		call func(*Generator) bool
	}{
		{"IsDiscrete", (*Generator).IsDiscrete},
		{"IsContinuous", (*Generator).IsContinuous},
		{"IsMultivariateContinuous", (*Generator).IsMultivariateContinuous},
		{"IsEmpirical", (*Generator).IsEmpirical},
		{"IsMultivariateEmpirical", (*Generator).IsMultivariateEmpirical},
	}
	cases := []struct {
		name  string
		class engine.Class
		want  int // index of the one predicate that reports true
	}{
		{"discrete", engine.Discr, 0},
		{"continuous", engine.Cont, 1},
		{"multivariate", engine.CVec, 2},
		{"empirical", engine.CEmp, 3},
		{"multivariate empirical", engine.CVEmp, 4},
	}

	for _, tc := range cases {
		eng := &fakeEngine{class: tc.class}
		g := newTestGenerator(t, eng, &recStream{vals: []float64{0.5}})

		if got := g.Class(); got != tc.class {
			t.Errorf("%s: Class() = %v, want %v", tc.name, got, tc.class)
		}
		for i, p := range predicates {
			if got, want := p.call(g), i == tc.want; got != want {
				t.Errorf("%s: %s = %v, want %v", tc.name, p.name, got, want)
			}
		}
		g.Close()
	}
}

func TestSampleAfterClose(t *testing.T) {
	eng := &fakeEngine{dim: 2, class: engine.CVec}
	g := newTestGenerator(t, eng, &recStream{vals: []float64{0.5}})
	if err := g.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	dst := make([]float64, 2)
	ops := []struct {
		name string
		call func() error
	}{
		{"SampleDiscrete", func() error { _, err := g.SampleDiscrete(0.5); return err }},
		{"SampleContinuous", func() error { _, err := g.SampleContinuous(0.5); return err }},
		{"SampleVector", func() error { return g.SampleVector(0.5, dst) }},
		{"NextInt", func() error { _, err := g.NextInt(); return err }},
		{"NextFloat64", func() error { _, err := g.NextFloat64(); return err }},
		{"NextVector", func() error { return g.NextVector(dst) }},
	}
	for _, op := range ops {
		if err := op.call(); !errors.Is(err, ErrInvalidHandle) {
			t.Errorf("%s on closed handle: error = %v, want ErrInvalidHandle", op.name, err)
		}
	}

	// Classification stays callable and reports nothing.
	if g.Class() != 0 {
		t.Errorf("Class on closed handle = %v, want 0", g.Class())
	}
	if g.IsDiscrete() || g.IsContinuous() || g.IsMultivariateContinuous() ||
		g.IsEmpirical() || g.IsMultivariateEmpirical() {
		t.Error("classification predicates should report false on a closed handle")
	}
	if g.Dimension() != 0 {
		t.Errorf("Dimension on closed handle = %d, want 0", g.Dimension())
	}
}
