package metrics

import (
	"fmt"

	"github.com/brier-ml/brier/internal/tensor"
)

// scalar converts v into a backend scalar argument of the tensor's
// element type.
func scalar[T tensor.Float](v float64) any {
	return any(T(v))
}

// itemFloat64 extracts the value of a Shape{1} reduction result.
func itemFloat64(r *tensor.RawTensor) float64 {
	switch r.DType() {
	case tensor.Float32:
		return float64(r.AsFloat32()[0])
	case tensor.Float64:
		return r.AsFloat64()[0]
	default:
		panic(fmt.Sprintf("itemFloat64: unsupported dtype %s", r.DType()))
	}
}

// float64Data returns a copy of the tensor's data widened to float64.
func float64Data[T tensor.Float, B tensor.Backend](t *tensor.Tensor[T, B]) []float64 {
	raw := t.Backend().Cast(t.Raw(), tensor.Float64)
	src := raw.AsFloat64()
	out := make([]float64, len(src))
	copy(out, src)
	return out
}
