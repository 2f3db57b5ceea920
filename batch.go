//go:build !ios && !android && (amd64 || arm64)

package unurgo

import "fmt"

// The batch entry points stream uniforms through caller-supplied buffers:
// the engine's pulls walk u, and the stream refills the whole buffer each
// time it runs out, so n samples cost one Fill callback per len(u) uniforms
// instead of one call each. The first pull always triggers a fill; the
// buffers' initial contents are never consumed.
//
// When no auxiliary buffer is supplied the auxiliary source is aliased to
// the primary adapter for the duration of the loop, so both pull from the
// same buffer and cursor. The handle's own adapters are restored before
// returning in either case.

// SampleDiscreteBatch draws len(dst) discrete variates into dst, streaming
// uniforms through u and, if non-empty, auxiliary uniforms through uAux.
func (g *Generator) SampleDiscreteBatch(dst []int, u, uAux []float64) error {
	if g.gen == nil {
		return ErrInvalidHandle
	}
	if len(dst) == 0 {
		return nil
	}
	if len(u) == 0 {
		return fmt.Errorf("%w: empty uniform buffer", ErrShortBuffer)
	}

	g.main.SetArray(u)
	aliased := len(uAux) == 0
	if aliased {
		g.auxSlot.a = g.main
	} else {
		g.aux.SetArray(uAux)
	}

	for i := range dst {
		dst[i] = g.gen.SampleDiscrete()
	}

	if aliased {
		g.auxSlot.a = g.aux
	} else {
		g.aux.Reset()
	}
	g.main.Reset()
	return nil
}

// SampleContinuousBatch draws len(dst) continuous variates into dst,
// streaming uniforms through u and, if non-empty, auxiliary uniforms
// through uAux.
func (g *Generator) SampleContinuousBatch(dst []float64, u, uAux []float64) error {
	if g.gen == nil {
		return ErrInvalidHandle
	}
	if len(dst) == 0 {
		return nil
	}
	if len(u) == 0 {
		return fmt.Errorf("%w: empty uniform buffer", ErrShortBuffer)
	}

	g.main.SetArray(u)
	aliased := len(uAux) == 0
	if aliased {
		g.auxSlot.a = g.main
	} else {
		g.aux.SetArray(uAux)
	}

	for i := range dst {
		dst[i] = g.gen.SampleContinuous()
	}

	if aliased {
		g.auxSlot.a = g.aux
	} else {
		g.aux.Reset()
	}
	g.main.Reset()
	return nil
}

// FillInts draws len(dst) discrete variates into dst over internal uniform
// scratch buffers, which are grown to len(dst) once and reused afterwards.
// A separate auxiliary scratch is used only when the generator was built
// with a distinct auxiliary stream.
func (g *Generator) FillInts(dst []int) error {
	if g.gen == nil {
		return ErrInvalidHandle
	}
	if len(dst) == 0 {
		return nil
	}
	g.growScratch(len(dst))
	if g.sepAux {
		return g.SampleDiscreteBatch(dst, g.unifBuf[:len(dst)], g.unifAuxBuf[:len(dst)])
	}
	return g.SampleDiscreteBatch(dst, g.unifBuf[:len(dst)], nil)
}

// FillFloat64s draws len(dst) continuous variates into dst over internal
// uniform scratch buffers, like FillInts.
func (g *Generator) FillFloat64s(dst []float64) error {
	if g.gen == nil {
		return ErrInvalidHandle
	}
	if len(dst) == 0 {
		return nil
	}
	g.growScratch(len(dst))
	if g.sepAux {
		return g.SampleContinuousBatch(dst, g.unifBuf[:len(dst)], g.unifAuxBuf[:len(dst)])
	}
	return g.SampleContinuousBatch(dst, g.unifBuf[:len(dst)], nil)
}

func (g *Generator) growScratch(n int) {
	if len(g.unifBuf) < n {
		g.unifBuf = make([]float64, n)
	}
	if g.sepAux && len(g.unifAuxBuf) < n {
		g.unifAuxBuf = make([]float64, n)
	}
}
