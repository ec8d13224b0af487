package cpu

import (
	"fmt"

	"github.com/brier-ml/brier/internal/tensor"
)

// Comparison operations - return bool tensors.

// Greater returns a > b element-wise.
func (cpu *CPUBackend) Greater(a, b *tensor.RawTensor) *tensor.RawTensor {
	checkSameShape("greater", a, b)
	result := cpu.newResult("greater", a.Shape(), tensor.Bool)
	dst := result.AsBool()

	switch a.DType() {
	case tensor.Float32:
		as, bs := a.AsFloat32(), b.AsFloat32()
		for i := range as {
			dst[i] = as[i] > bs[i]
		}
	case tensor.Float64:
		as, bs := a.AsFloat64(), b.AsFloat64()
		for i := range as {
			dst[i] = as[i] > bs[i]
		}
	default:
		panic(fmt.Sprintf("greater: unsupported dtype %s", a.DType()))
	}

	return result
}

// GreaterEqual returns a >= b element-wise.
func (cpu *CPUBackend) GreaterEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	checkSameShape("greaterEqual", a, b)
	result := cpu.newResult("greaterEqual", a.Shape(), tensor.Bool)
	dst := result.AsBool()

	switch a.DType() {
	case tensor.Float32:
		as, bs := a.AsFloat32(), b.AsFloat32()
		for i := range as {
			dst[i] = as[i] >= bs[i]
		}
	case tensor.Float64:
		as, bs := a.AsFloat64(), b.AsFloat64()
		for i := range as {
			dst[i] = as[i] >= bs[i]
		}
	default:
		panic(fmt.Sprintf("greaterEqual: unsupported dtype %s", a.DType()))
	}

	return result
}
