package tensor

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a simple backend for testing.
// It implements all operations naively for correctness verification.
type MockBackend struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the device type.
func (m *MockBackend) Device() Device {
	return CPU
}

// Add performs element-wise addition.
func (m *MockBackend) Add(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction.
func (m *MockBackend) Sub(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication.
func (m *MockBackend) Mul(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division.
func (m *MockBackend) Div(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x / y })
}

// AddScalar adds a scalar to every element.
func (m *MockBackend) AddScalar(x *RawTensor, scalar any) *RawTensor {
	s := mockScalarFloat64(scalar)
	return m.unary(x, func(v float64) float64 { return v + s })
}

// SubScalar subtracts a scalar from every element.
func (m *MockBackend) SubScalar(x *RawTensor, scalar any) *RawTensor {
	s := mockScalarFloat64(scalar)
	return m.unary(x, func(v float64) float64 { return v - s })
}

// MulScalar multiplies every element by a scalar.
func (m *MockBackend) MulScalar(x *RawTensor, scalar any) *RawTensor {
	s := mockScalarFloat64(scalar)
	return m.unary(x, func(v float64) float64 { return v * s })
}

// DivScalar divides every element by a scalar.
func (m *MockBackend) DivScalar(x *RawTensor, scalar any) *RawTensor {
	s := mockScalarFloat64(scalar)
	return m.unary(x, func(v float64) float64 { return v / s })
}

// Sqrt computes the element-wise square root.
func (m *MockBackend) Sqrt(x *RawTensor) *RawTensor {
	return m.unary(x, math.Sqrt)
}

// Abs computes the element-wise absolute value.
func (m *MockBackend) Abs(x *RawTensor) *RawTensor {
	return m.unary(x, math.Abs)
}

// Greater returns a > b as a bool tensor.
func (m *MockBackend) Greater(a, b *RawTensor) *RawTensor {
	return m.compare(a, b, func(x, y float64) bool { return x > y })
}

// GreaterEqual returns a >= b as a bool tensor.
func (m *MockBackend) GreaterEqual(a, b *RawTensor) *RawTensor {
	return m.compare(a, b, func(x, y float64) bool { return x >= y })
}

// Cast converts a tensor to a different data type.
func (m *MockBackend) Cast(x *RawTensor, dtype DataType) *RawTensor {
	result, err := NewRaw(x.Shape(), dtype, m.Device())
	if err != nil {
		panic(err)
	}
	for i := 0; i < x.NumElements(); i++ {
		mockSetElem(result, i, mockElem(x, i))
	}
	return result
}

// Sum reduces to a single-element tensor holding the total sum.
func (m *MockBackend) Sum(x *RawTensor) *RawTensor {
	var total float64
	for i := 0; i < x.NumElements(); i++ {
		total += mockElem(x, i)
	}
	return m.scalarResult(total, x.DType())
}

// Mean reduces to a single-element tensor holding the arithmetic mean.
func (m *MockBackend) Mean(x *RawTensor) *RawTensor {
	var total float64
	n := x.NumElements()
	for i := 0; i < n; i++ {
		total += mockElem(x, i)
	}
	return m.scalarResult(total/float64(n), x.DType())
}

// Normal returns the Gaussian N(loc, scale) evaluated element-wise.
func (m *MockBackend) Normal(loc, scale *RawTensor) NormalDist {
	if !loc.Shape().Equal(scale.Shape()) {
		panic("Normal: loc and scale must have the same shape")
	}
	return &mockNormal{backend: m, loc: loc, scale: scale}
}

type mockNormal struct {
	backend *MockBackend
	loc     *RawTensor
	scale   *RawTensor
}

func (d *mockNormal) eval(x *RawTensor, fn func(distuv.Normal, float64) float64) *RawTensor {
	result, err := NewRaw(x.Shape(), x.DType(), d.backend.Device())
	if err != nil {
		panic(err)
	}
	for i := 0; i < x.NumElements(); i++ {
		n := distuv.Normal{Mu: mockElem(d.loc, i), Sigma: mockElem(d.scale, i)}
		mockSetElem(result, i, fn(n, mockElem(x, i)))
	}
	return result
}

func (d *mockNormal) PDF(x *RawTensor) *RawTensor {
	return d.eval(x, func(n distuv.Normal, v float64) float64 { return n.Prob(v) })
}

func (d *mockNormal) LogPDF(x *RawTensor) *RawTensor {
	return d.eval(x, func(n distuv.Normal, v float64) float64 { return n.LogProb(v) })
}

func (d *mockNormal) CDF(x *RawTensor) *RawTensor {
	return d.eval(x, func(n distuv.Normal, v float64) float64 { return n.CDF(v) })
}

func (d *mockNormal) Quantile(p *RawTensor) *RawTensor {
	return d.eval(p, func(n distuv.Normal, v float64) float64 {
		if v < 0 || v > 1 || math.IsNaN(v) {
			return math.NaN()
		}
		return n.Quantile(v)
	})
}

// Helpers

func (m *MockBackend) elementWise(a, b *RawTensor, op func(float64, float64) float64) *RawTensor {
	if !a.Shape().Equal(b.Shape()) {
		panic("mock: shape mismatch")
	}
	result, err := NewRaw(a.Shape(), a.DType(), m.Device())
	if err != nil {
		panic(err)
	}
	for i := 0; i < a.NumElements(); i++ {
		mockSetElem(result, i, op(mockElem(a, i), mockElem(b, i)))
	}
	return result
}

func (m *MockBackend) unary(x *RawTensor, op func(float64) float64) *RawTensor {
	result, err := NewRaw(x.Shape(), x.DType(), m.Device())
	if err != nil {
		panic(err)
	}
	for i := 0; i < x.NumElements(); i++ {
		mockSetElem(result, i, op(mockElem(x, i)))
	}
	return result
}

func (m *MockBackend) compare(a, b *RawTensor, op func(float64, float64) bool) *RawTensor {
	if !a.Shape().Equal(b.Shape()) {
		panic("mock: shape mismatch")
	}
	result, err := NewRaw(a.Shape(), Bool, m.Device())
	if err != nil {
		panic(err)
	}
	out := result.AsBool()
	for i := 0; i < a.NumElements(); i++ {
		out[i] = op(mockElem(a, i), mockElem(b, i))
	}
	return result
}

func (m *MockBackend) scalarResult(v float64, dtype DataType) *RawTensor {
	result, err := NewRaw(Shape{1}, dtype, m.Device())
	if err != nil {
		panic(err)
	}
	mockSetElem(result, 0, v)
	return result
}

func mockElem(r *RawTensor, i int) float64 {
	switch r.DType() {
	case Float32:
		return float64(r.AsFloat32()[i])
	case Float64:
		return r.AsFloat64()[i]
	case Bool:
		if r.AsBool()[i] {
			return 1
		}
		return 0
	default:
		panic("unsupported dtype")
	}
}

func mockSetElem(r *RawTensor, i int, v float64) {
	switch r.DType() {
	case Float32:
		r.AsFloat32()[i] = float32(v)
	case Float64:
		r.AsFloat64()[i] = v
	case Bool:
		r.AsBool()[i] = v != 0
	default:
		panic("unsupported dtype")
	}
}

func mockScalarFloat64(scalar any) float64 {
	switch s := scalar.(type) {
	case float32:
		return float64(s)
	case float64:
		return s
	default:
		panic("unsupported scalar type")
	}
}
