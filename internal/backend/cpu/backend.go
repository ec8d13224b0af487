// Package cpu implements the vectorized CPU backend. Arithmetic kernels run
// over whole slices (gonum/floats for float64, math32-based loops for
// float32) and the Gaussian primitives are chunked across goroutines.
package cpu

import (
	"fmt"

	"github.com/brier-ml/brier/internal/parallel"
	"github.com/brier-ml/brier/internal/tensor"
)

// CPUBackend implements tensor operations on CPU with slice-level kernels.
type CPUBackend struct {
	device tensor.Device
	par    parallel.Config
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
		par:    parallel.DefaultConfig(),
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// checkSameShape panics unless a and b are elementwise-compatible.
// Shape validation for user inputs happens in the metrics package; a
// mismatch reaching a backend op is a programmer error.
func checkSameShape(op string, a, b *tensor.RawTensor) {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("%s: shape mismatch %v vs %v", op, a.Shape(), b.Shape()))
	}
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch %s vs %s", op, a.DType(), b.DType()))
	}
}

func (cpu *CPUBackend) newResult(op string, shape tensor.Shape, dtype tensor.DataType) *tensor.RawTensor {
	result, err := tensor.NewRaw(shape, dtype, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}
	return result
}

// Add performs element-wise addition.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	checkSameShape("add", a, b)
	result := cpu.newResult("add", a.Shape(), a.DType())

	switch a.DType() {
	case tensor.Float32:
		addFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		addFloat64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	default:
		panic(fmt.Sprintf("add: unsupported dtype %s", a.DType()))
	}
	return result
}

// Sub performs element-wise subtraction.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	checkSameShape("sub", a, b)
	result := cpu.newResult("sub", a.Shape(), a.DType())

	switch a.DType() {
	case tensor.Float32:
		subFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		subFloat64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	default:
		panic(fmt.Sprintf("sub: unsupported dtype %s", a.DType()))
	}
	return result
}

// Mul performs element-wise multiplication.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	checkSameShape("mul", a, b)
	result := cpu.newResult("mul", a.Shape(), a.DType())

	switch a.DType() {
	case tensor.Float32:
		mulFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		mulFloat64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	default:
		panic(fmt.Sprintf("mul: unsupported dtype %s", a.DType()))
	}
	return result
}

// Div performs element-wise division.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	checkSameShape("div", a, b)
	result := cpu.newResult("div", a.Shape(), a.DType())

	switch a.DType() {
	case tensor.Float32:
		divFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		divFloat64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	default:
		panic(fmt.Sprintf("div: unsupported dtype %s", a.DType()))
	}
	return result
}
