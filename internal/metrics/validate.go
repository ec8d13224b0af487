package metrics

import "github.com/brier-ml/brier/internal/tensor"

// checkFlatSameShape verifies that every input is a one-dimensional tensor
// and that all inputs have the same length. It runs before any backend op,
// so a mismatch aborts the whole call with no partial work.
func checkFlatSameShape(ts ...*tensor.RawTensor) error {
	ok := true
	for _, t := range ts {
		if !t.Shape().IsFlat() || !t.Shape().Equal(ts[0].Shape()) {
			ok = false
			break
		}
	}
	if ok {
		return nil
	}

	shapes := make([]tensor.Shape, len(ts))
	for i, t := range ts {
		shapes[i] = t.Shape()
	}
	return &ShapeError{Shapes: shapes}
}
