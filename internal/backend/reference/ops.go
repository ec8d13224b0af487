package reference

import (
	"fmt"

	"github.com/brier-ml/brier/internal/tensor"
)

// Greater returns a > b element-wise as a bool tensor.
func (r *Backend) Greater(a, b *tensor.RawTensor) *tensor.RawTensor {
	return r.compare("greater", a, b, func(x, y float64) bool { return x > y })
}

// GreaterEqual returns a >= b element-wise as a bool tensor.
func (r *Backend) GreaterEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return r.compare("greaterEqual", a, b, func(x, y float64) bool { return x >= y })
}

func (r *Backend) compare(op string, a, b *tensor.RawTensor, fn func(x, y float64) bool) *tensor.RawTensor {
	checkSameShape(op, a, b)
	result := r.newResult(op, a.Shape(), tensor.Bool)
	dst := result.AsBool()

	switch a.DType() {
	case tensor.Float32:
		as, bs := a.AsFloat32(), b.AsFloat32()
		for i := range as {
			dst[i] = fn(float64(as[i]), float64(bs[i]))
		}
	case tensor.Float64:
		as, bs := a.AsFloat64(), b.AsFloat64()
		for i := range as {
			dst[i] = fn(as[i], bs[i])
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, a.DType()))
	}

	return result
}

// Cast converts the tensor to a different data type.
func (r *Backend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if x.DType() == dtype {
		return x
	}

	result := r.newResult("cast", x.Shape(), dtype)
	n := x.NumElements()
	for i := 0; i < n; i++ {
		setElem(result, i, elemAsFloat64(x, i))
	}
	return result
}

// Sum returns the total sum of all elements.
// Accumulation runs in float64 for both dtypes, matching the cpu backend.
func (r *Backend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result := r.newResult("sum", tensor.Shape{1}, x.DType())

	var acc float64
	n := x.NumElements()
	for i := 0; i < n; i++ {
		acc += elemAsFloat64(x, i)
	}
	setElem(result, 0, acc)
	return result
}

// Mean returns the arithmetic mean of all elements.
func (r *Backend) Mean(x *tensor.RawTensor) *tensor.RawTensor {
	result := r.newResult("mean", tensor.Shape{1}, x.DType())

	var acc float64
	n := x.NumElements()
	for i := 0; i < n; i++ {
		acc += elemAsFloat64(x, i)
	}
	setElem(result, 0, acc/float64(n))
	return result
}

// elemAsFloat64 reads element i widened to float64. Bool reads as 0/1.
func elemAsFloat64(x *tensor.RawTensor, i int) float64 {
	switch x.DType() {
	case tensor.Float32:
		return float64(x.AsFloat32()[i])
	case tensor.Float64:
		return x.AsFloat64()[i]
	case tensor.Bool:
		if x.AsBool()[i] {
			return 1
		}
		return 0
	default:
		panic(fmt.Sprintf("unsupported dtype %s", x.DType()))
	}
}

// setElem writes v into element i, narrowing to the tensor's dtype.
func setElem(x *tensor.RawTensor, i int, v float64) {
	switch x.DType() {
	case tensor.Float32:
		x.AsFloat32()[i] = float32(v)
	case tensor.Float64:
		x.AsFloat64()[i] = v
	case tensor.Bool:
		x.AsBool()[i] = v != 0
	default:
		panic(fmt.Sprintf("unsupported dtype %s", x.DType()))
	}
}
