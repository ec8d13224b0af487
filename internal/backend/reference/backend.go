// Package reference implements the element-by-element reference backend.
// Every operation is a plain sequential loop over scalars with no slice
// kernels and no parallelism. It is the ground truth the vectorized cpu
// backend is checked against, and a readable record of each formula.
package reference

import (
	"fmt"
	"math"

	"github.com/brier-ml/brier/internal/tensor"
)

// Backend implements tensor operations as sequential scalar loops.
type Backend struct {
	device tensor.Device
}

// New creates a new reference backend.
func New() *Backend {
	return &Backend{device: tensor.CPU}
}

// Name returns the backend name.
func (r *Backend) Name() string {
	return "Reference"
}

// Device returns the compute device.
func (r *Backend) Device() tensor.Device {
	return r.device
}

func checkSameShape(op string, a, b *tensor.RawTensor) {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("%s: shape mismatch %v vs %v", op, a.Shape(), b.Shape()))
	}
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch %s vs %s", op, a.DType(), b.DType()))
	}
}

func (r *Backend) newResult(op string, shape tensor.Shape, dtype tensor.DataType) *tensor.RawTensor {
	result, err := tensor.NewRaw(shape, dtype, r.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}
	return result
}

// binary applies fn(a[i], b[i]) one element at a time.
func (r *Backend) binary(op string, a, b *tensor.RawTensor, fn func(x, y float64) float64) *tensor.RawTensor {
	checkSameShape(op, a, b)
	result := r.newResult(op, a.Shape(), a.DType())

	switch a.DType() {
	case tensor.Float32:
		as, bs := a.AsFloat32(), b.AsFloat32()
		dst := result.AsFloat32()
		for i := range as {
			dst[i] = float32(fn(float64(as[i]), float64(bs[i])))
		}
	case tensor.Float64:
		as, bs := a.AsFloat64(), b.AsFloat64()
		dst := result.AsFloat64()
		for i := range as {
			dst[i] = fn(as[i], bs[i])
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, a.DType()))
	}

	return result
}

// unary applies fn(x[i]) one element at a time.
func (r *Backend) unary(op string, x *tensor.RawTensor, fn func(v float64) float64) *tensor.RawTensor {
	result := r.newResult(op, x.Shape(), x.DType())

	switch x.DType() {
	case tensor.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		for i := range src {
			dst[i] = float32(fn(float64(src[i])))
		}
	case tensor.Float64:
		src := x.AsFloat64()
		dst := result.AsFloat64()
		for i := range src {
			dst[i] = fn(src[i])
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, x.DType()))
	}

	return result
}

// Add performs element-wise addition.
func (r *Backend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return r.binary("add", a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction.
func (r *Backend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return r.binary("sub", a, b, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication.
func (r *Backend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return r.binary("mul", a, b, func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division.
func (r *Backend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return r.binary("div", a, b, func(x, y float64) float64 { return x / y })
}

// AddScalar adds a scalar value to each element.
func (r *Backend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	s := scalarToFloat64(x, scalar, "addScalar")
	return r.unary("addScalar", x, func(v float64) float64 { return v + s })
}

// SubScalar subtracts a scalar value from each element.
func (r *Backend) SubScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	s := scalarToFloat64(x, scalar, "subScalar")
	return r.unary("subScalar", x, func(v float64) float64 { return v - s })
}

// MulScalar multiplies each element by a scalar value.
func (r *Backend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	s := scalarToFloat64(x, scalar, "mulScalar")
	return r.unary("mulScalar", x, func(v float64) float64 { return v * s })
}

// DivScalar divides each element by a scalar value.
func (r *Backend) DivScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	s := scalarToFloat64(x, scalar, "divScalar")
	return r.unary("divScalar", x, func(v float64) float64 { return v / s })
}

// Sqrt computes element-wise square root.
func (r *Backend) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	return r.unary("sqrt", x, math.Sqrt)
}

// Abs computes element-wise absolute value.
func (r *Backend) Abs(x *tensor.RawTensor) *tensor.RawTensor {
	return r.unary("abs", x, math.Abs)
}

func scalarToFloat64(x *tensor.RawTensor, scalar any, op string) float64 {
	switch x.DType() {
	case tensor.Float32:
		return float64(scalar.(float32))
	case tensor.Float64:
		return scalar.(float64)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %v", op, x.DType()))
	}
}
