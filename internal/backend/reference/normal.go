package reference

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/brier-ml/brier/internal/tensor"
)

// Normal returns the Gaussian N(loc, scale) with per-element parameters.
// Same distuv primitives as the cpu backend, evaluated one element at a
// time in order.
func (r *Backend) Normal(loc, scale *tensor.RawTensor) tensor.NormalDist {
	checkSameShape("normal", loc, scale)
	return &refNormal{loc: loc, scale: scale, backend: r}
}

type refNormal struct {
	loc     *tensor.RawTensor
	scale   *tensor.RawTensor
	backend *Backend
}

// PDF returns the probability density at x.
func (n *refNormal) PDF(x *tensor.RawTensor) *tensor.RawTensor {
	return n.eval("normal pdf", x, func(d distuv.Normal, v float64) float64 {
		return d.Prob(v)
	})
}

// LogPDF returns the log density at x.
func (n *refNormal) LogPDF(x *tensor.RawTensor) *tensor.RawTensor {
	return n.eval("normal logpdf", x, func(d distuv.Normal, v float64) float64 {
		return d.LogProb(v)
	})
}

// CDF returns the cumulative probability at x.
func (n *refNormal) CDF(x *tensor.RawTensor) *tensor.RawTensor {
	return n.eval("normal cdf", x, func(d distuv.Normal, v float64) float64 {
		return d.CDF(v)
	})
}

// Quantile returns the inverse CDF at probability p, or NaN outside [0, 1].
func (n *refNormal) Quantile(p *tensor.RawTensor) *tensor.RawTensor {
	return n.eval("normal quantile", p, func(d distuv.Normal, v float64) float64 {
		if v < 0 || v > 1 || math.IsNaN(v) {
			return math.NaN()
		}
		return d.Quantile(v)
	})
}

func (n *refNormal) eval(op string, x *tensor.RawTensor, fn func(distuv.Normal, float64) float64) *tensor.RawTensor {
	checkSameShape(op, n.loc, x)
	result := n.backend.newResult(op, x.Shape(), x.DType())

	switch x.DType() {
	case tensor.Float32:
		locs, scales := n.loc.AsFloat32(), n.scale.AsFloat32()
		src := x.AsFloat32()
		dst := result.AsFloat32()
		for i := range src {
			d := distuv.Normal{Mu: float64(locs[i]), Sigma: float64(scales[i])}
			dst[i] = float32(fn(d, float64(src[i])))
		}
	case tensor.Float64:
		locs, scales := n.loc.AsFloat64(), n.scale.AsFloat64()
		src := x.AsFloat64()
		dst := result.AsFloat64()
		for i := range src {
			d := distuv.Normal{Mu: locs[i], Sigma: scales[i]}
			dst[i] = fn(d, src[i])
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s (only float32/float64 supported)", op, x.DType()))
	}

	return result
}
