package urng

import "math/rand"

// mathRand adapts the standard library generator to the Stream interface.
type mathRand struct {
	r *rand.Rand
}

// NewMathRand wraps r as a Stream. Fill draws one value per element; the
// wrapper adds no buffering of its own.
func NewMathRand(r *rand.Rand) Stream {
	return &mathRand{r: r}
}

func (m *mathRand) Float64() float64 {
	return m.r.Float64()
}

func (m *mathRand) Fill(p []float64) {
	for i := range p {
		p[i] = m.r.Float64()
	}
}
