// Package metrics implements proper scoring rules and accuracy metrics for
// evaluating Gaussian predictive distributions against observed outcomes.
//
// All scores are negatively oriented: lower is better. Inputs are three
// flat tensors of equal length N holding the predicted means, predicted
// standard deviations, and true values of a held-out set; the result is a
// single float64.
//
// Callers are expected to supply positive standard deviations and grid
// bounds strictly inside (0, 1). Violations are not trapped: NaN and Inf
// propagate through the reductions.
package metrics

import (
	"math"

	"github.com/brier-ml/brier/internal/tensor"
)

// NLLGaussian returns the negative log likelihood of the true values under
// per-point Gaussian predictive distributions N(yPred[i], yStd[i]).
//
// When scaled is true the sum over points becomes a mean.
func NLLGaussian[T tensor.Float, B tensor.Backend](yPred, yStd, yTrue *tensor.Tensor[T, B], scaled bool) (float64, error) {
	if err := checkFlatSameShape(yPred.Raw(), yStd.Raw(), yTrue.Raw()); err != nil {
		return 0, err
	}
	b := yPred.Backend()

	// Log density of each residual under N(0, yStd).
	residuals := b.Sub(yPred.Raw(), yTrue.Raw())
	zero := tensor.Zeros[T, B](yPred.Shape(), b)
	dist := b.Normal(zero.Raw(), yStd.Raw())

	nll := b.MulScalar(b.Sum(dist.LogPDF(residuals)), scalar[T](-1))
	if scaled {
		nll = b.DivScalar(nll, scalar[T](float64(yPred.NumElements())))
	}
	return itemFloat64(nll), nil
}

// CRPSGaussian returns the continuous ranked probability score for Gaussian
// predictive distributions, using the closed-form identity
//
//	crps_i = -yStd_i * (1/sqrt(pi) - 2*phi(z_i) - z_i*(2*Phi(z_i) - 1))
//
// with z_i the standardized residual, phi the standard normal density and
// Phi its CDF. No numerical integration is involved.
//
// When scaled is true the sum over points becomes a mean.
func CRPSGaussian[T tensor.Float, B tensor.Backend](yPred, yStd, yTrue *tensor.Tensor[T, B], scaled bool) (float64, error) {
	if err := checkFlatSameShape(yPred.Raw(), yStd.Raw(), yTrue.Raw()); err != nil {
		return 0, err
	}
	b := yPred.Backend()

	z := b.Div(b.Sub(yTrue.Raw(), yPred.Raw()), yStd.Raw())

	std := b.Normal(
		tensor.Zeros[T, B](yPred.Shape(), b).Raw(),
		tensor.Ones[T, B](yPred.Shape(), b).Raw(),
	)

	term1 := 1 / math.Sqrt(math.Pi)
	term2 := b.MulScalar(std.PDF(z), scalar[T](2))
	term3 := b.Mul(z, b.SubScalar(b.MulScalar(std.CDF(z), scalar[T](2)), scalar[T](1)))

	inner := b.AddScalar(b.MulScalar(b.Add(term2, term3), scalar[T](-1)), scalar[T](term1))
	perPoint := b.MulScalar(b.Mul(yStd.Raw(), inner), scalar[T](-1))

	crps := b.Sum(perPoint)
	if scaled {
		crps = b.DivScalar(crps, scalar[T](float64(yPred.NumElements())))
	}
	return itemFloat64(crps), nil
}

// CheckScoreOptions configures the quantile grid CheckScore integrates over.
type CheckScoreOptions struct {
	StartQ     float64 // lowest quantile level, inclusive
	EndQ       float64 // highest quantile level, inclusive
	Resolution int     // number of quantile levels
}

// DefaultCheckScoreOptions returns the standard grid of 99 quantile levels
// from 0.01 to 0.99.
func DefaultCheckScoreOptions() CheckScoreOptions {
	return CheckScoreOptions{StartQ: 0.01, EndQ: 0.99, Resolution: 99}
}

// CheckScore returns the pinball (check) loss integrated over a grid of
// quantile levels of the predictive distributions.
//
// The reduction is two-stage and the order matters: contributions are
// averaged over the N points at each quantile level first, then summed
// over the levels. scaled divides by Resolution, never by N*Resolution.
func CheckScore[T tensor.Float, B tensor.Backend](yPred, yStd, yTrue *tensor.Tensor[T, B], scaled bool, opts CheckScoreOptions) (float64, error) {
	if err := checkFlatSameShape(yPred.Raw(), yStd.Raw(), yTrue.Raw()); err != nil {
		return 0, err
	}
	b := yPred.Backend()

	qs := tensor.Linspace[T, B](opts.StartQ, opts.EndQ, opts.Resolution, b)
	dist := b.Normal(yPred.Raw(), yStd.Raw())
	zero := tensor.Zeros[T, B](yPred.Shape(), b)

	var total float64
	for _, q := range qs.Data() {
		qLevel := dist.Quantile(tensor.Full[T, B](yPred.Shape(), q, b).Raw())
		diff := b.Sub(qLevel, yTrue.Raw())

		// mask_i = 1{diff_i >= 0} - q
		ind := b.Cast(b.GreaterEqual(diff, zero.Raw()), yPred.DType())
		mask := b.SubScalar(ind, any(q))

		total += itemFloat64(b.Mean(b.Mul(mask, diff)))
	}

	if scaled {
		total /= float64(opts.Resolution)
	}
	return total, nil
}

// IntervalScoreOptions configures the coverage grid IntervalScore
// integrates over. EndP must stay strictly below 1: the miss penalty
// scales with 2/(1-p).
type IntervalScoreOptions struct {
	StartP     float64 // smallest central coverage probability, inclusive
	EndP       float64 // largest central coverage probability, inclusive
	Resolution int     // number of prediction intervals
}

// DefaultIntervalScoreOptions returns the standard grid of 99 coverage
// probabilities from 0.01 to 0.99.
func DefaultIntervalScoreOptions() IntervalScoreOptions {
	return IntervalScoreOptions{StartP: 0.01, EndP: 0.99, Resolution: 99}
}

// IntervalScore returns the interval score integrated over a grid of
// central prediction intervals. For coverage p the interval spans the
// (0.5-p/2) and (0.5+p/2) predictive quantiles; its width is charged
// always, and misses are charged 2/(1-p) times the overshoot.
//
// Same two-stage reduction order as CheckScore: mean over points per
// coverage level, then sum (or mean, per scaled) over levels.
func IntervalScore[T tensor.Float, B tensor.Backend](yPred, yStd, yTrue *tensor.Tensor[T, B], scaled bool, opts IntervalScoreOptions) (float64, error) {
	if err := checkFlatSameShape(yPred.Raw(), yStd.Raw(), yTrue.Raw()); err != nil {
		return 0, err
	}
	b := yPred.Backend()

	ps := tensor.Linspace[T, B](opts.StartP, opts.EndP, opts.Resolution, b)
	dist := b.Normal(yPred.Raw(), yStd.Raw())
	zero := tensor.Zeros[T, B](yPred.Shape(), b)

	var total float64
	for _, p := range ps.Data() {
		pf := float64(p)
		lowP, highP := 0.5-pf/2, 0.5+pf/2

		predL := dist.Quantile(tensor.Full[T, B](yPred.Shape(), T(lowP), b).Raw())
		predU := dist.Quantile(tensor.Full[T, B](yPred.Shape(), T(highP), b).Raw())

		width := b.Sub(predU, predL)

		belowDiff := b.Sub(predL, yTrue.Raw())
		below := b.Cast(b.Greater(belowDiff, zero.Raw()), yPred.DType())
		aboveDiff := b.Sub(yTrue.Raw(), predU)
		above := b.Cast(b.Greater(aboveDiff, zero.Raw()), yPred.DType())

		penalty := 2 / (1 - pf)
		score := b.Add(width, b.Add(
			b.MulScalar(b.Mul(belowDiff, below), scalar[T](penalty)),
			b.MulScalar(b.Mul(aboveDiff, above), scalar[T](penalty)),
		))

		total += itemFloat64(b.Mean(score))
	}

	if scaled {
		total /= float64(opts.Resolution)
	}
	return total, nil
}
