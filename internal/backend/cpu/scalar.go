package cpu

import (
	"fmt"

	"github.com/brier-ml/brier/internal/tensor"
)

// Scalar operations - element-wise operations with a scalar value.
// The scalar's concrete type must match the tensor dtype.

// AddScalar adds a scalar value to each element of the tensor.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result := cpu.newResult("addScalar", x.Shape(), x.DType())

	switch x.DType() {
	case tensor.Float32:
		addScalarFloat32(result.AsFloat32(), x.AsFloat32(), scalar.(float32))
	case tensor.Float64:
		addScalarFloat64(result.AsFloat64(), x.AsFloat64(), scalar.(float64))
	default:
		panic(fmt.Sprintf("addScalar: unsupported dtype %v", x.DType()))
	}

	return result
}

// SubScalar subtracts a scalar value from each element of the tensor.
func (cpu *CPUBackend) SubScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	switch x.DType() {
	case tensor.Float32:
		return cpu.AddScalar(x, -scalar.(float32))
	case tensor.Float64:
		return cpu.AddScalar(x, -scalar.(float64))
	default:
		panic(fmt.Sprintf("subScalar: unsupported dtype %v", x.DType()))
	}
}

// MulScalar multiplies each element of the tensor by a scalar value.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result := cpu.newResult("mulScalar", x.Shape(), x.DType())

	switch x.DType() {
	case tensor.Float32:
		mulScalarFloat32(result.AsFloat32(), x.AsFloat32(), scalar.(float32))
	case tensor.Float64:
		mulScalarFloat64(result.AsFloat64(), x.AsFloat64(), scalar.(float64))
	default:
		panic(fmt.Sprintf("mulScalar: unsupported dtype %v", x.DType()))
	}

	return result
}

// DivScalar divides each element of the tensor by a scalar value.
// Division is exact (no reciprocal-multiply shortcut) so results match the
// reference backend bit for bit.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result := cpu.newResult("divScalar", x.Shape(), x.DType())

	switch x.DType() {
	case tensor.Float32:
		s := scalar.(float32)
		src := x.AsFloat32()
		dst := result.AsFloat32()
		for i, v := range src {
			dst[i] = v / s
		}
	case tensor.Float64:
		s := scalar.(float64)
		src := x.AsFloat64()
		dst := result.AsFloat64()
		for i, v := range src {
			dst[i] = v / s
		}
	default:
		panic(fmt.Sprintf("divScalar: unsupported dtype %v", x.DType()))
	}

	return result
}
