package cpu

import (
	"fmt"

	"github.com/brier-ml/brier/internal/tensor"
)

// Cast converts the tensor to a different data type.
// Bool tensors cast to 1.0 for true and 0.0 for false, which is how the
// scoring rules turn comparison masks into indicator weights.
func (cpu *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	// No-op if same dtype
	if x.DType() == dtype {
		return x
	}

	result := cpu.newResult("cast", x.Shape(), dtype)
	castImpl(result, x)
	return result
}

func castImpl(result, x *tensor.RawTensor) {
	switch x.DType() {
	case tensor.Float32:
		src := x.AsFloat32()
		switch result.DType() {
		case tensor.Float64:
			dst := result.AsFloat64()
			for i, v := range src {
				dst[i] = float64(v)
			}
		case tensor.Bool:
			dst := result.AsBool()
			for i, v := range src {
				dst[i] = v != 0
			}
		}
	case tensor.Float64:
		src := x.AsFloat64()
		switch result.DType() {
		case tensor.Float32:
			dst := result.AsFloat32()
			for i, v := range src {
				dst[i] = float32(v)
			}
		case tensor.Bool:
			dst := result.AsBool()
			for i, v := range src {
				dst[i] = v != 0
			}
		}
	case tensor.Bool:
		src := x.AsBool()
		switch result.DType() {
		case tensor.Float32:
			dst := result.AsFloat32()
			for i, v := range src {
				if v {
					dst[i] = 1
				}
			}
		case tensor.Float64:
			dst := result.AsFloat64()
			for i, v := range src {
				if v {
					dst[i] = 1
				}
			}
		}
	default:
		panic(fmt.Sprintf("cast: unsupported source dtype %v", x.DType()))
	}
}
