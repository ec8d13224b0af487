package metrics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brier-ml/brier/internal/backend/cpu"
	"github.com/brier-ml/brier/internal/backend/reference"
	"github.com/brier-ml/brier/internal/tensor"
)

func fromSlice(t *testing.T, b *cpu.CPUBackend, data []float64) *tensor.Tensor[float64, *cpu.CPUBackend] {
	t.Helper()
	ts, err := tensor.FromSlice(data, tensor.Shape{len(data)}, b)
	require.NoError(t, err)
	return ts
}

// randomPredictions draws a prediction set with mildly miscalibrated
// uncertainties, the kind of data these scores exist to rank.
func randomPredictions(rng *rand.Rand, n int) (yPred, yStd, yTrue []float64) {
	yPred = make([]float64, n)
	yStd = make([]float64, n)
	yTrue = make([]float64, n)
	for i := 0; i < n; i++ {
		yTrue[i] = rng.NormFloat64() * 2
		yStd[i] = 0.1 + rng.Float64()
		yPred[i] = yTrue[i] + rng.NormFloat64()*yStd[i]*1.3
	}
	return yPred, yStd, yTrue
}

func TestNLLGaussianKnownValue(t *testing.T) {
	b := cpu.New()

	// Zero residuals under unit variance: each point contributes
	// 0.5*ln(2*pi) to the NLL.
	n := 16
	yPred := fromSlice(t, b, make([]float64, n))
	yTrue := fromSlice(t, b, make([]float64, n))
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	yStd := fromSlice(t, b, ones)

	pointNLL := 0.5 * math.Log(2*math.Pi)

	scaled, err := NLLGaussian(yPred, yStd, yTrue, true)
	require.NoError(t, err)
	assert.InDelta(t, pointNLL, scaled, 1e-12)
	assert.InDelta(t, 0.9189385332046727, scaled, 1e-12)

	unscaled, err := NLLGaussian(yPred, yStd, yTrue, false)
	require.NoError(t, err)
	assert.InDelta(t, float64(n)*pointNLL, unscaled, 1e-10)
}

func TestNLLGaussianResidualPenalty(t *testing.T) {
	b := cpu.New()

	yTrue := fromSlice(t, b, []float64{0, 0, 0})
	yStd := fromSlice(t, b, []float64{1, 1, 1})

	exact, err := NLLGaussian(fromSlice(t, b, []float64{0, 0, 0}), yStd, yTrue, true)
	require.NoError(t, err)
	off, err := NLLGaussian(fromSlice(t, b, []float64{1, -1, 2}), yStd, yTrue, true)
	require.NoError(t, err)

	assert.Greater(t, off, exact, "worse predictions must score higher")
	// Each unit residual under unit variance adds z^2/2 to the point NLL.
	assert.InDelta(t, exact+(0.5+0.5+2)/3, off, 1e-12)
}

func TestCRPSGaussianKnownValue(t *testing.T) {
	b := cpu.New()

	// Zero residuals under unit variance: crps = (sqrt(2)-1)/sqrt(pi)
	// per point, the closed form at z = 0.
	n := 8
	yPred := fromSlice(t, b, make([]float64, n))
	yTrue := fromSlice(t, b, make([]float64, n))
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	yStd := fromSlice(t, b, ones)

	pointCRPS := (math.Sqrt2 - 1) / math.Sqrt(math.Pi)

	scaled, err := CRPSGaussian(yPred, yStd, yTrue, true)
	require.NoError(t, err)
	assert.InDelta(t, pointCRPS, scaled, 1e-12)
	assert.InDelta(t, 0.23369497725510267, scaled, 1e-12)

	unscaled, err := CRPSGaussian(yPred, yStd, yTrue, false)
	require.NoError(t, err)
	assert.InDelta(t, float64(n)*pointCRPS, unscaled, 1e-10)
}

func TestCRPSGaussianResidualSignSymmetry(t *testing.T) {
	b := cpu.New()

	yPred := fromSlice(t, b, []float64{0, 0, 0})
	yStd := fromSlice(t, b, []float64{1, 0.5, 2})

	plus, err := CRPSGaussian(yPred, yStd, fromSlice(t, b, []float64{0.7, 1.2, 0.3}), true)
	require.NoError(t, err)
	minus, err := CRPSGaussian(yPred, yStd, fromSlice(t, b, []float64{-0.7, -1.2, -0.3}), true)
	require.NoError(t, err)

	assert.InDelta(t, plus, minus, 1e-12)
}

func TestCRPSGaussianShrinksWithStd(t *testing.T) {
	b := cpu.New()

	yPred := fromSlice(t, b, []float64{1, 2, 3})
	yTrue := fromSlice(t, b, []float64{1, 2, 3})

	// With perfect point predictions the CRPS is proportional to sigma
	// and vanishes as the predicted uncertainty tightens.
	pointCRPS := (math.Sqrt2 - 1) / math.Sqrt(math.Pi)
	prev := math.Inf(1)
	for _, sigma := range []float64{1, 0.1, 0.01, 0.001} {
		yStd := fromSlice(t, b, []float64{sigma, sigma, sigma})
		got, err := CRPSGaussian(yPred, yStd, yTrue, true)
		require.NoError(t, err)
		assert.InDelta(t, sigma*pointCRPS, got, sigma*1e-9)
		assert.Less(t, got, prev)
		prev = got
	}
}

func TestCheckScoreHalfMedian(t *testing.T) {
	b := cpu.New()

	// A single quantile level at the median reduces the check score to
	// half the mean absolute residual.
	yPred := fromSlice(t, b, []float64{1, 2, 3, 4})
	yStd := fromSlice(t, b, []float64{1, 1, 1, 1})
	yTrue := fromSlice(t, b, []float64{1.5, 1.5, 3.5, 4})

	opts := CheckScoreOptions{StartQ: 0.5, EndQ: 0.5, Resolution: 1}
	got, err := CheckScore(yPred, yStd, yTrue, false, opts)
	require.NoError(t, err)

	meanAbs := (0.5 + 0.5 + 0.5 + 0.0) / 4
	assert.InDelta(t, meanAbs/2, got, 1e-12)

	// With Resolution == 1 scaling divides by 1 and changes nothing.
	scaled, err := CheckScore(yPred, yStd, yTrue, true, opts)
	require.NoError(t, err)
	assert.Equal(t, got, scaled)
}

func TestCheckScoreNonNegativeAndScaling(t *testing.T) {
	b := cpu.New()
	rng := rand.New(rand.NewSource(3))

	p, s, y := randomPredictions(rng, 64)
	yPred, yStd, yTrue := fromSlice(t, b, p), fromSlice(t, b, s), fromSlice(t, b, y)

	opts := DefaultCheckScoreOptions()
	unscaled, err := CheckScore(yPred, yStd, yTrue, false, opts)
	require.NoError(t, err)
	scaled, err := CheckScore(yPred, yStd, yTrue, true, opts)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, scaled, 0.0)
	// scaled divides by the number of quantile levels, not by N*levels.
	assert.InDelta(t, unscaled/float64(opts.Resolution), scaled, 1e-12)
}

func TestIntervalScoreWidthOnly(t *testing.T) {
	b := cpu.New()

	// True values at the predicted median never miss a central interval,
	// so the score is the mean interval width alone.
	yPred := fromSlice(t, b, []float64{3, -1})
	yStd := fromSlice(t, b, []float64{2, 0.5})
	yTrue := fromSlice(t, b, []float64{3, -1})

	p := 0.5
	opts := IntervalScoreOptions{StartP: p, EndP: p, Resolution: 1}
	got, err := IntervalScore(yPred, yStd, yTrue, false, opts)
	require.NoError(t, err)

	// Width of the central 50% interval is 2*z_{0.75}*sigma.
	z := 0.6744897501960817
	want := (2*z*2 + 2*z*0.5) / 2
	assert.InDelta(t, want, got, 1e-9)
}

func TestIntervalScoreMissPenalty(t *testing.T) {
	b := cpu.New()

	yPred := fromSlice(t, b, []float64{0})
	yStd := fromSlice(t, b, []float64{1})
	opts := IntervalScoreOptions{StartP: 0.5, EndP: 0.5, Resolution: 1}

	inside, err := IntervalScore(yPred, yStd, fromSlice(t, b, []float64{0}), false, opts)
	require.NoError(t, err)
	outside, err := IntervalScore(yPred, yStd, fromSlice(t, b, []float64{5}), false, opts)
	require.NoError(t, err)

	assert.Greater(t, outside, inside)

	// The miss is charged 2/(1-p) times the overshoot past the upper bound.
	z := 0.6744897501960817
	assert.InDelta(t, inside+(2/(1-0.5))*(5-z), outside, 1e-9)
}

func TestIntervalScoreScaling(t *testing.T) {
	b := cpu.New()
	rng := rand.New(rand.NewSource(5))

	p, s, y := randomPredictions(rng, 64)
	yPred, yStd, yTrue := fromSlice(t, b, p), fromSlice(t, b, s), fromSlice(t, b, y)

	opts := DefaultIntervalScoreOptions()
	unscaled, err := IntervalScore(yPred, yStd, yTrue, false, opts)
	require.NoError(t, err)
	scaled, err := IntervalScore(yPred, yStd, yTrue, true, opts)
	require.NoError(t, err)

	assert.Greater(t, scaled, 0.0)
	assert.InDelta(t, unscaled/float64(opts.Resolution), scaled, 1e-12)
}

func TestScoresAreDeterministic(t *testing.T) {
	b := cpu.New()
	rng := rand.New(rand.NewSource(11))

	p, s, y := randomPredictions(rng, 512)
	yPred, yStd, yTrue := fromSlice(t, b, p), fromSlice(t, b, s), fromSlice(t, b, y)

	for name, score := range map[string]func() (float64, error){
		"nll":      func() (float64, error) { return NLLGaussian(yPred, yStd, yTrue, true) },
		"crps":     func() (float64, error) { return CRPSGaussian(yPred, yStd, yTrue, true) },
		"check":    func() (float64, error) { return CheckScore(yPred, yStd, yTrue, true, DefaultCheckScoreOptions()) },
		"interval": func() (float64, error) { return IntervalScore(yPred, yStd, yTrue, true, DefaultIntervalScoreOptions()) },
	} {
		first, err := score()
		require.NoError(t, err)
		second, err := score()
		require.NoError(t, err)
		assert.Equal(t, first, second, "%s must be bitwise repeatable", name)
	}
}

func TestShapeMismatchRejected(t *testing.T) {
	b := cpu.New()

	yPred := fromSlice(t, b, []float64{1, 2, 3})
	yStd := fromSlice(t, b, []float64{1, 1, 1})
	short := fromSlice(t, b, []float64{1, 2})

	_, err := NLLGaussian(yPred, yStd, short, true)
	require.Error(t, err)

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Len(t, shapeErr.Shapes, 3)

	// Every score rejects mismatched inputs the same way.
	_, err = CRPSGaussian(yPred, yStd, short, true)
	assert.ErrorAs(t, err, &shapeErr)
	_, err = CheckScore(yPred, yStd, short, true, DefaultCheckScoreOptions())
	assert.ErrorAs(t, err, &shapeErr)
	_, err = IntervalScore(yPred, yStd, short, true, DefaultIntervalScoreOptions())
	assert.ErrorAs(t, err, &shapeErr)
}

func TestNonFlatInputsRejected(t *testing.T) {
	b := cpu.New()

	grid, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, b)
	require.NoError(t, err)

	_, err = NLLGaussian(grid, grid, grid, true)
	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
}

func TestNaNStdPropagates(t *testing.T) {
	b := cpu.New()

	yPred := fromSlice(t, b, []float64{1, 2})
	yTrue := fromSlice(t, b, []float64{1, 2})
	yStd := fromSlice(t, b, []float64{1, math.NaN()})

	got, err := NLLGaussian(yPred, yStd, yTrue, true)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got), "NaN std must poison the result, not error")

	got, err = CRPSGaussian(yPred, yStd, yTrue, true)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))
}

func TestFloat32Scores(t *testing.T) {
	b := cpu.New()

	n := 8
	yPred, err := tensor.FromSlice(make([]float32, n), tensor.Shape{n}, b)
	require.NoError(t, err)
	yTrue, err := tensor.FromSlice(make([]float32, n), tensor.Shape{n}, b)
	require.NoError(t, err)
	ones := make([]float32, n)
	for i := range ones {
		ones[i] = 1
	}
	yStd, err := tensor.FromSlice(ones, tensor.Shape{n}, b)
	require.NoError(t, err)

	nll, err := NLLGaussian(yPred, yStd, yTrue, true)
	require.NoError(t, err)
	assert.InDelta(t, 0.5*math.Log(2*math.Pi), nll, 1e-6)

	crps, err := CRPSGaussian(yPred, yStd, yTrue, true)
	require.NoError(t, err)
	assert.InDelta(t, (math.Sqrt2-1)/math.Sqrt(math.Pi), crps, 1e-5)
}

// The two execution paths must agree on every score.

func TestBackendAgreement(t *testing.T) {
	vec := cpu.New()
	ref := reference.New()
	rng := rand.New(rand.NewSource(17))

	p, s, y := randomPredictions(rng, 256)

	vecPred, vecStd, vecTrue := fromSlice(t, vec, p), fromSlice(t, vec, s), fromSlice(t, vec, y)

	refPred, err := tensor.FromSlice(p, tensor.Shape{len(p)}, ref)
	require.NoError(t, err)
	refStd, err := tensor.FromSlice(s, tensor.Shape{len(s)}, ref)
	require.NoError(t, err)
	refTrue, err := tensor.FromSlice(y, tensor.Shape{len(y)}, ref)
	require.NoError(t, err)

	for _, scaled := range []bool{false, true} {
		vecNLL, err := NLLGaussian(vecPred, vecStd, vecTrue, scaled)
		require.NoError(t, err)
		refNLL, err := NLLGaussian(refPred, refStd, refTrue, scaled)
		require.NoError(t, err)
		assertRelClose(t, refNLL, vecNLL, "nll")

		vecCRPS, err := CRPSGaussian(vecPred, vecStd, vecTrue, scaled)
		require.NoError(t, err)
		refCRPS, err := CRPSGaussian(refPred, refStd, refTrue, scaled)
		require.NoError(t, err)
		assertRelClose(t, refCRPS, vecCRPS, "crps")

		vecCheck, err := CheckScore(vecPred, vecStd, vecTrue, scaled, DefaultCheckScoreOptions())
		require.NoError(t, err)
		refCheck, err := CheckScore(refPred, refStd, refTrue, scaled, DefaultCheckScoreOptions())
		require.NoError(t, err)
		assertRelClose(t, refCheck, vecCheck, "check")

		vecInterval, err := IntervalScore(vecPred, vecStd, vecTrue, scaled, DefaultIntervalScoreOptions())
		require.NoError(t, err)
		refInterval, err := IntervalScore(refPred, refStd, refTrue, scaled, DefaultIntervalScoreOptions())
		require.NoError(t, err)
		assertRelClose(t, refInterval, vecInterval, "interval")
	}
}

func assertRelClose(t *testing.T, want, got float64, name string) {
	t.Helper()
	denom := math.Max(math.Abs(want), math.Abs(got))
	if denom < 1 {
		denom = 1
	}
	assert.LessOrEqual(t, math.Abs(want-got)/denom, 1e-6,
		"%s: reference %v vs cpu %v", name, want, got)
}
