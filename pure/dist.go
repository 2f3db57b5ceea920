package pure

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/obinnaokechukwu/unurgo/engine"
)

// distribution is one constructed sampling target. Exactly one of the
// sampling funcs is set, matching the class: discr for discrete, cont for
// univariate continuous and empirical, vec for multivariate.
type distribution struct {
	class engine.Class
	dim   int

	discr func(u float64) int
	cont  func(u float64) float64
	vec   func(pull func() float64, dst []float64)
}

func contDist(class engine.Class, q func(float64) float64) *distribution {
	return &distribution{class: class, dim: 1, cont: q}
}

func discrDist(q func(float64) int) *distribution {
	return &distribution{class: engine.Discr, dim: 1, discr: q}
}

// buildDist turns a parsed description into a sampling distribution. Error
// text is the engine's diagnostic and surfaces unchanged in CreateError.
func buildDist(s *genSpec) (*distribution, error) {
	d, err := buildNamed(s)
	if err != nil {
		return nil, err
	}
	for k := range s.lists {
		return nil, fmt.Errorf("%s: unknown keyword %q", s.distr, k)
	}
	return d, nil
}

func buildNamed(s *genSpec) (*distribution, error) {
	p := s.params
	switch s.distr {

	case "normal":
		mu, sigma, err := twoParams(s, 0, 1)
		if err != nil {
			return nil, err
		}
		if sigma <= 0 {
			return nil, fmt.Errorf("normal: standard deviation must be positive, got %v", sigma)
		}
		return contDist(engine.Cont, distuv.Normal{Mu: mu, Sigma: sigma}.Quantile), nil

	case "exponential":
		scale, err := oneParam(s, 1)
		if err != nil {
			return nil, err
		}
		if scale <= 0 {
			return nil, fmt.Errorf("exponential: scale must be positive, got %v", scale)
		}
		return contDist(engine.Cont, distuv.Exponential{Rate: 1 / scale}.Quantile), nil

	case "gamma":
		if len(p) < 1 || len(p) > 2 {
			return nil, fmt.Errorf("gamma: need shape parameter and optional scale, got %d parameters", len(p))
		}
		shape, scale := p[0], 1.0
		if len(p) == 2 {
			scale = p[1]
		}
		if shape <= 0 || scale <= 0 {
			return nil, fmt.Errorf("gamma: shape and scale must be positive, got (%v, %v)", shape, scale)
		}
		return contDist(engine.Cont, distuv.Gamma{Alpha: shape, Beta: 1 / scale}.Quantile), nil

	case "beta":
		if len(p) != 2 {
			return nil, fmt.Errorf("beta: need two shape parameters, got %d", len(p))
		}
		if p[0] <= 0 || p[1] <= 0 {
			return nil, fmt.Errorf("beta: shapes must be positive, got (%v, %v)", p[0], p[1])
		}
		return contDist(engine.Cont, distuv.Beta{Alpha: p[0], Beta: p[1]}.Quantile), nil

	case "cauchy":
		// Cauchy is Student's t with one degree of freedom.
		x0, g, err := twoParams(s, 0, 1)
		if err != nil {
			return nil, err
		}
		if g <= 0 {
			return nil, fmt.Errorf("cauchy: scale must be positive, got %v", g)
		}
		return contDist(engine.Cont, distuv.StudentsT{Mu: x0, Sigma: g, Nu: 1}.Quantile), nil

	case "uniform":
		lo, hi, err := twoParams(s, 0, 1)
		if err != nil {
			return nil, err
		}
		if lo >= hi {
			return nil, fmt.Errorf("uniform: domain (%v, %v) is empty", lo, hi)
		}
		return contDist(engine.Cont, distuv.Uniform{Min: lo, Max: hi}.Quantile), nil

	case "weibull":
		if len(p) < 1 || len(p) > 2 {
			return nil, fmt.Errorf("weibull: need shape parameter and optional scale, got %d parameters", len(p))
		}
		shape, scale := p[0], 1.0
		if len(p) == 2 {
			scale = p[1]
		}
		if shape <= 0 || scale <= 0 {
			return nil, fmt.Errorf("weibull: shape and scale must be positive, got (%v, %v)", shape, scale)
		}
		return contDist(engine.Cont, distuv.Weibull{K: shape, Lambda: scale}.Quantile), nil

	case "lognormal":
		mu, sigma, err := twoParams(s, 0, 1)
		if err != nil {
			return nil, err
		}
		if sigma <= 0 {
			return nil, fmt.Errorf("lognormal: shape must be positive, got %v", sigma)
		}
		return contDist(engine.Cont, distuv.LogNormal{Mu: mu, Sigma: sigma}.Quantile), nil

	case "discr":
		return buildDiscr(s)

	case "geometric":
		return buildGeometric(s)

	case "poisson":
		return buildPoisson(s)

	case "cemp":
		return buildEmpirical(s)

	case "mvnormal":
		return buildMVNormal(s)
	}
	return nil, fmt.Errorf("unknown distribution %q", s.distr)
}

func oneParam(s *genSpec, def float64) (float64, error) {
	switch len(s.params) {
	case 0:
		return def, nil
	case 1:
		return s.params[0], nil
	}
	return 0, fmt.Errorf("%s: at most one parameter expected, got %d", s.distr, len(s.params))
}

func twoParams(s *genSpec, defA, defB float64) (float64, float64, error) {
	a, b := defA, defB
	switch len(s.params) {
	case 0:
	case 1:
		a = s.params[0]
	case 2:
		a, b = s.params[0], s.params[1]
	default:
		return 0, 0, fmt.Errorf("%s: at most two parameters expected, got %d", s.distr, len(s.params))
	}
	return a, b, nil
}

// buildDiscr constructs a finite discrete distribution over a probability
// vector, sampled by cumulative-weight inversion.
func buildDiscr(s *genSpec) (*distribution, error) {
	if len(s.params) != 0 {
		return nil, fmt.Errorf("discr: unexpected parameters")
	}
	pv, ok := s.lists["pv"]
	delete(s.lists, "pv")
	if !ok || len(pv) == 0 {
		return nil, fmt.Errorf("discr: probability vector pv=(...) required")
	}
	cum := make([]float64, len(pv))
	total := 0.0
	for i, w := range pv {
		if w < 0 || math.IsNaN(w) {
			return nil, fmt.Errorf("discr: invalid weight %v at index %d", w, i)
		}
		total += w
		cum[i] = total
	}
	if total <= 0 {
		return nil, fmt.Errorf("discr: weights sum to zero")
	}
	return discrDist(func(u float64) int {
		k := sort.SearchFloat64s(cum, u*total)
		if k >= len(cum) {
			k = len(cum) - 1
		}
		return k
	}), nil
}

// buildGeometric constructs the geometric distribution on {0,1,2,...} with
// success probability p, inverted in closed form.
func buildGeometric(s *genSpec) (*distribution, error) {
	if len(s.params) != 1 {
		return nil, fmt.Errorf("geometric: success probability parameter required")
	}
	p := s.params[0]
	if p <= 0 || p > 1 {
		return nil, fmt.Errorf("geometric: probability must be in (0,1], got %v", p)
	}
	lq := math.Log1p(-p)
	return discrDist(func(u float64) int {
		if p == 1 {
			return 0
		}
		return int(math.Log1p(-u) / lq)
	}), nil
}

// buildPoisson constructs a Poisson distribution inverted by sequential
// search from k=0, consuming one uniform per draw.
func buildPoisson(s *genSpec) (*distribution, error) {
	if len(s.params) != 1 {
		return nil, fmt.Errorf("poisson: mean parameter required")
	}
	mu := s.params[0]
	if mu <= 0 {
		return nil, fmt.Errorf("poisson: mean must be positive, got %v", mu)
	}
	p0 := math.Exp(-mu)
	if p0 == 0 {
		return nil, fmt.Errorf("poisson: mean %v too large for sequential search", mu)
	}
	return discrDist(func(u float64) int {
		pk, cdf, k := p0, p0, 0
		// The bound guards against the summed CDF plateauing just
		// below u for uniforms at the top of [0,1).
		for u > cdf && k < 1<<20 {
			k++
			pk *= mu / float64(k)
			cdf += pk
		}
		return k
	}), nil
}

// buildEmpirical constructs a continuous empirical distribution over the
// observed sample, inverted by linear interpolation of the order statistics.
func buildEmpirical(s *genSpec) (*distribution, error) {
	if len(s.params) != 0 {
		return nil, fmt.Errorf("cemp: unexpected parameters")
	}
	data, ok := s.lists["data"]
	delete(s.lists, "data")
	if !ok || len(data) == 0 {
		return nil, fmt.Errorf("cemp: data=(...) required")
	}
	obs := append([]float64(nil), data...)
	sort.Float64s(obs)
	return contDist(engine.CEmp, func(u float64) float64 {
		return stat.Quantile(u, stat.LinInterp, obs, nil)
	}), nil
}

// buildMVNormal constructs a multivariate normal distribution sampled by
// Cholesky transform of per-component unit-normal inversions, consuming one
// uniform per dimension per draw.
func buildMVNormal(s *genSpec) (*distribution, error) {
	if len(s.params) != 1 {
		return nil, fmt.Errorf("mvnormal: dimension parameter required")
	}
	df := s.params[0]
	dim := int(df)
	if float64(dim) != df || dim < 1 {
		return nil, fmt.Errorf("mvnormal: dimension must be a positive integer, got %v", df)
	}

	mean, ok := s.lists["mean"]
	delete(s.lists, "mean")
	if !ok {
		mean = make([]float64, dim)
	} else if len(mean) != dim {
		return nil, fmt.Errorf("mvnormal: mean has %d entries, dimension is %d", len(mean), dim)
	}

	covar, ok := s.lists["covar"]
	delete(s.lists, "covar")
	if !ok {
		covar = make([]float64, dim*dim)
		for i := 0; i < dim; i++ {
			covar[i*dim+i] = 1
		}
	} else if len(covar) != dim*dim {
		return nil, fmt.Errorf("mvnormal: covar has %d entries, want %d", len(covar), dim*dim)
	}
	for i := 0; i < dim; i++ {
		for j := i + 1; j < dim; j++ {
			if covar[i*dim+j] != covar[j*dim+i] {
				return nil, fmt.Errorf("mvnormal: covariance matrix is not symmetric")
			}
		}
	}

	var chol mat.Cholesky
	if !chol.Factorize(mat.NewSymDense(dim, covar)) {
		return nil, fmt.Errorf("mvnormal: covariance matrix is not positive definite")
	}
	lower := mat.NewTriDense(dim, mat.Lower, nil)
	chol.LTo(lower)

	std := distuv.Normal{Mu: 0, Sigma: 1}
	z := mat.NewVecDense(dim, nil)
	var x mat.VecDense
	return &distribution{
		class: engine.CVec,
		dim:   dim,
		vec: func(pull func() float64, dst []float64) {
			for i := 0; i < dim; i++ {
				z.SetVec(i, std.Quantile(pull()))
			}
			x.MulVec(lower, z)
			for i := 0; i < dim; i++ {
				dst[i] = mean[i] + x.AtVec(i)
			}
		},
	}, nil
}
