package urng

import (
	"math"
	"math/rand"
	"testing"
)

// seqStream hands out a fixed sequence and records how it was consumed.
type seqStream struct {
	vals  []float64
	next  int
	calls int // Float64 invocations
	fills int // Fill invocations
}

func (s *seqStream) Float64() float64 {
	s.calls++
	v := s.vals[s.next%len(s.vals)]
	s.next++
	return v
}

func (s *seqStream) Fill(p []float64) {
	s.fills++
	for i := range p {
		p[i] = s.vals[s.next%len(s.vals)]
		s.next++
	}
}

func TestCallThrough(t *testing.T) {
	s := &seqStream{vals: []float64{0.1, 0.2, 0.3}}
	a := New(s)

	for i, want := range []float64{0.1, 0.2, 0.3} {
		if got := a.Pull(); got != want {
			t.Errorf("pull %d = %v, want %v", i, got, want)
		}
	}
	if s.calls != 3 {
		t.Errorf("stream calls = %d, want 3", s.calls)
	}
}

func TestCachedValueConsumedOnce(t *testing.T) {
	s := &seqStream{vals: []float64{0.9, 0.8}}
	a := New(s)

	a.SetCached(0.25)

	if got := a.Pull(); got != 0.25 {
		t.Errorf("first pull = %v, want cached 0.25", got)
	}
	if s.calls != 0 {
		t.Errorf("stream calls after cached pull = %d, want 0", s.calls)
	}

	// Second pull within the same operation must reach the stream,
	// not replay the cached value.
	if got := a.Pull(); got != 0.9 {
		t.Errorf("second pull = %v, want stream value 0.9", got)
	}
	if s.calls != 1 {
		t.Errorf("stream calls = %d, want 1", s.calls)
	}
}

func TestSetCachedReplacesPrevious(t *testing.T) {
	a := New(&seqStream{vals: []float64{0.5}})

	a.SetCached(0.1)
	a.SetCached(0.2)

	if got := a.Pull(); got != 0.2 {
		t.Errorf("pull = %v, want latest cached 0.2", got)
	}
}

func TestArrayModeForcesInitialRefill(t *testing.T) {
	s := &seqStream{vals: []float64{0.11, 0.22, 0.33, 0.44}}
	buf := []float64{99, 99, 99, 99} // stale contents must never surface
	a := New(s)

	a.SetArray(buf)

	if s.fills != 0 {
		t.Fatalf("fills before first pull = %d, want 0", s.fills)
	}
	if got := a.Pull(); got != 0.11 {
		t.Errorf("first pull = %v, want refilled 0.11", got)
	}
	if s.fills != 1 {
		t.Errorf("fills after first pull = %d, want 1", s.fills)
	}
}

func TestArrayModeRefillsOnExhaustion(t *testing.T) {
	s := &seqStream{vals: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8}}
	buf := make([]float64, 4)
	a := New(s)
	a.SetArray(buf)

	want := []float64{0.1, 0.2, 0.3, 0.4}
	for i, w := range want {
		if got := a.Pull(); got != w {
			t.Errorf("pull %d = %v, want %v", i, got, w)
		}
	}
	if s.fills != 1 {
		t.Fatalf("fills after draining buffer = %d, want 1", s.fills)
	}

	// Pull n+1 triggers exactly one more refill before returning the
	// first value of the next batch.
	if got := a.Pull(); got != 0.5 {
		t.Errorf("pull after exhaustion = %v, want 0.5", got)
	}
	if s.fills != 2 {
		t.Errorf("fills = %d, want 2", s.fills)
	}
	if s.calls != 0 {
		t.Errorf("single-value calls during array mode = %d, want 0", s.calls)
	}
}

func TestResetReturnsToCallThrough(t *testing.T) {
	s := &seqStream{vals: []float64{0.7}}
	a := New(s)

	a.SetCached(0.5)
	a.Reset()
	if got := a.Pull(); got != 0.7 {
		t.Errorf("pull after reset from cached = %v, want 0.7", got)
	}

	a.SetArray(make([]float64, 2))
	a.Reset()
	if got := a.Pull(); got != 0.7 {
		t.Errorf("pull after reset from array = %v, want 0.7", got)
	}
	if s.fills != 0 {
		t.Errorf("fills = %d, want 0", s.fills)
	}
}

func TestSetStreamRepoints(t *testing.T) {
	first := &seqStream{vals: []float64{0.1}}
	second := &seqStream{vals: []float64{0.9}}
	a := New(first)

	if got := a.Pull(); got != 0.1 {
		t.Fatalf("pull = %v, want 0.1", got)
	}

	a.SetStream(second)
	if got := a.Pull(); got != 0.9 {
		t.Errorf("pull after SetStream = %v, want 0.9", got)
	}
	if a.Stream() != second {
		t.Error("Stream() should report the repointed stream")
	}
	if first.calls != 1 {
		t.Errorf("first stream calls = %d, want 1", first.calls)
	}
}

func TestNewMathRand(t *testing.T) {
	s := NewMathRand(rand.New(rand.NewSource(1)))

	for i := 0; i < 100; i++ {
		v := s.Float64()
		if v < 0 || v >= 1 || math.IsNaN(v) {
			t.Fatalf("Float64() = %v, want value in [0,1)", v)
		}
	}

	p := make([]float64, 32)
	s.Fill(p)
	for i, v := range p {
		if v < 0 || v >= 1 {
			t.Fatalf("Fill()[%d] = %v, want value in [0,1)", i, v)
		}
	}

	// Same seed, same sequence.
	a := NewMathRand(rand.New(rand.NewSource(7)))
	b := NewMathRand(rand.New(rand.NewSource(7)))
	for i := 0; i < 10; i++ {
		if av, bv := a.Float64(), b.Float64(); av != bv {
			t.Fatalf("seeded streams diverge at %d: %v != %v", i, av, bv)
		}
	}
}
