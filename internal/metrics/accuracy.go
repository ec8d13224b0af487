package metrics

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/brier-ml/brier/internal/tensor"
)

// Accuracy metrics for the point predictions alone. They ignore the
// predicted uncertainty and share the flat-shape contract of the scoring
// rules.

// MAE returns the mean absolute error between predictions and true values.
func MAE[T tensor.Float, B tensor.Backend](yPred, yTrue *tensor.Tensor[T, B]) (float64, error) {
	if err := checkFlatSameShape(yPred.Raw(), yTrue.Raw()); err != nil {
		return 0, err
	}
	b := yPred.Backend()
	return itemFloat64(b.Mean(b.Abs(b.Sub(yPred.Raw(), yTrue.Raw())))), nil
}

// RMSE returns the root mean squared error between predictions and true values.
func RMSE[T tensor.Float, B tensor.Backend](yPred, yTrue *tensor.Tensor[T, B]) (float64, error) {
	if err := checkFlatSameShape(yPred.Raw(), yTrue.Raw()); err != nil {
		return 0, err
	}
	b := yPred.Backend()
	diff := b.Sub(yPred.Raw(), yTrue.Raw())
	return itemFloat64(b.Sqrt(b.Mean(b.Mul(diff, diff)))), nil
}

// MDAE returns the median absolute error between predictions and true values.
func MDAE[T tensor.Float, B tensor.Backend](yPred, yTrue *tensor.Tensor[T, B]) (float64, error) {
	if err := checkFlatSameShape(yPred.Raw(), yTrue.Raw()); err != nil {
		return 0, err
	}
	b := yPred.Backend()
	absRes := tensor.New[T, B](b.Abs(b.Sub(yPred.Raw(), yTrue.Raw())), b)
	return median(float64Data(absRes)), nil
}

// MARPD returns the mean absolute relative percent difference,
// mean of |2*(pred-true) / (|pred|+|true|)| expressed in percent.
func MARPD[T tensor.Float, B tensor.Backend](yPred, yTrue *tensor.Tensor[T, B]) (float64, error) {
	if err := checkFlatSameShape(yPred.Raw(), yTrue.Raw()); err != nil {
		return 0, err
	}
	b := yPred.Backend()

	diff := b.MulScalar(b.Sub(yPred.Raw(), yTrue.Raw()), scalar[T](2))
	denom := b.Add(b.Abs(yPred.Raw()), b.Abs(yTrue.Raw()))
	rel := b.Abs(b.Div(diff, denom))

	return itemFloat64(b.Mean(rel)) * 100, nil
}

// R2 returns the coefficient of determination of the predictions.
func R2[T tensor.Float, B tensor.Backend](yPred, yTrue *tensor.Tensor[T, B]) (float64, error) {
	if err := checkFlatSameShape(yPred.Raw(), yTrue.Raw()); err != nil {
		return 0, err
	}
	return stat.RSquaredFrom(float64Data(yPred), float64Data(yTrue), nil), nil
}

// Corr returns the Pearson correlation between predictions and true values.
func Corr[T tensor.Float, B tensor.Backend](yPred, yTrue *tensor.Tensor[T, B]) (float64, error) {
	if err := checkFlatSameShape(yPred.Raw(), yTrue.Raw()); err != nil {
		return 0, err
	}
	return stat.Correlation(float64Data(yPred), float64Data(yTrue), nil), nil
}

// median interpolates between the two middle elements for even lengths.
func median(s []float64) float64 {
	sort.Float64s(s)
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}
