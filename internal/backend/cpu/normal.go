package cpu

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/brier-ml/brier/internal/parallel"
	"github.com/brier-ml/brier/internal/tensor"
)

// quantileOrNaN shields distuv's out-of-range panic: probabilities outside
// [0, 1] propagate as NaN like every other domain error.
func quantileOrNaN(d distuv.Normal, p float64) float64 {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return math.NaN()
	}
	return d.Quantile(p)
}

// Normal returns the Gaussian N(loc, scale) with per-element parameters.
// The distribution primitives come from gonum/stat/distuv; this backend
// only batches them, chunked across goroutines for large inputs.
func (cpu *CPUBackend) Normal(loc, scale *tensor.RawTensor) tensor.NormalDist {
	checkSameShape("normal", loc, scale)
	return &cpuNormal{loc: loc, scale: scale, backend: cpu}
}

type cpuNormal struct {
	loc     *tensor.RawTensor
	scale   *tensor.RawTensor
	backend *CPUBackend
}

// PDF returns the probability density at x.
func (n *cpuNormal) PDF(x *tensor.RawTensor) *tensor.RawTensor {
	return n.eval("normal pdf", x, func(d distuv.Normal, v float64) float64 {
		return d.Prob(v)
	})
}

// LogPDF returns the log density at x.
func (n *cpuNormal) LogPDF(x *tensor.RawTensor) *tensor.RawTensor {
	return n.eval("normal logpdf", x, func(d distuv.Normal, v float64) float64 {
		return d.LogProb(v)
	})
}

// CDF returns the cumulative probability at x.
func (n *cpuNormal) CDF(x *tensor.RawTensor) *tensor.RawTensor {
	return n.eval("normal cdf", x, func(d distuv.Normal, v float64) float64 {
		return d.CDF(v)
	})
}

// Quantile returns the inverse CDF at probability p.
// p outside [0, 1] yields NaN rather than a panic, matching the
// propagate-don't-trap contract for domain errors.
func (n *cpuNormal) Quantile(p *tensor.RawTensor) *tensor.RawTensor {
	return n.eval("normal quantile", p, quantileOrNaN)
}

// eval applies fn element-wise against the per-element (loc, scale) pairs.
func (n *cpuNormal) eval(op string, x *tensor.RawTensor, fn func(distuv.Normal, float64) float64) *tensor.RawTensor {
	checkSameShape(op, n.loc, x)
	result := n.backend.newResult(op, x.Shape(), x.DType())

	switch x.DType() {
	case tensor.Float32:
		locs, scales := n.loc.AsFloat32(), n.scale.AsFloat32()
		src := x.AsFloat32()
		dst := result.AsFloat32()
		parallel.For(len(src), func(i int) {
			d := distuv.Normal{Mu: float64(locs[i]), Sigma: float64(scales[i])}
			dst[i] = float32(fn(d, float64(src[i])))
		}, n.backend.par)
	case tensor.Float64:
		locs, scales := n.loc.AsFloat64(), n.scale.AsFloat64()
		src := x.AsFloat64()
		dst := result.AsFloat64()
		parallel.For(len(src), func(i int) {
			d := distuv.Normal{Mu: locs[i], Sigma: scales[i]}
			dst[i] = fn(d, src[i])
		}, n.backend.par)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s (only float32/float64 supported)", op, x.DType()))
	}

	return result
}
