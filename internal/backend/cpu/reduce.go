package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/brier-ml/brier/internal/tensor"
)

// Reductions return a Shape{1} scalar tensor in the input dtype.
// Accumulation runs in float64 for both dtypes; float32 sums would
// otherwise drift away from the reference backend on long inputs.

// Sum returns the total sum of all elements.
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.newResult("sum", tensor.Shape{1}, x.DType())

	switch x.DType() {
	case tensor.Float32:
		var acc float64
		for _, v := range x.AsFloat32() {
			acc += float64(v)
		}
		result.AsFloat32()[0] = float32(acc)
	case tensor.Float64:
		result.AsFloat64()[0] = floats.Sum(x.AsFloat64())
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}

// Mean returns the arithmetic mean of all elements.
func (cpu *CPUBackend) Mean(x *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.newResult("mean", tensor.Shape{1}, x.DType())

	switch x.DType() {
	case tensor.Float32:
		var acc float64
		src := x.AsFloat32()
		for _, v := range src {
			acc += float64(v)
		}
		result.AsFloat32()[0] = float32(acc / float64(len(src)))
	case tensor.Float64:
		result.AsFloat64()[0] = stat.Mean(x.AsFloat64(), nil)
	default:
		panic(fmt.Sprintf("mean: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}
