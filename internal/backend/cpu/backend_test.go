package cpu

import (
	"math"
	"testing"

	"github.com/brier-ml/brier/internal/tensor"
)

const epsilon = 1e-5

func newFloat64(t *testing.T, backend *CPUBackend, data []float64) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(tensor.Shape{len(data)}, tensor.Float64, backend.Device())
	if err != nil {
		t.Fatalf("Failed to create tensor: %v", err)
	}
	copy(raw.AsFloat64(), data)
	return raw
}

func newFloat32(t *testing.T, backend *CPUBackend, data []float32) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(tensor.Shape{len(data)}, tensor.Float32, backend.Device())
	if err != nil {
		t.Fatalf("Failed to create tensor: %v", err)
	}
	copy(raw.AsFloat32(), data)
	return raw
}

func TestBackendMetadata(t *testing.T) {
	backend := New()

	if backend.Name() != "CPU" {
		t.Errorf("Name() = %q, want %q", backend.Name(), "CPU")
	}
	if backend.Device() != tensor.CPU {
		t.Errorf("Device() = %v, want CPU", backend.Device())
	}
}

func TestArithmeticFloat64(t *testing.T) {
	backend := New()

	a := newFloat64(t, backend, []float64{1, 2, 3, 4})
	b := newFloat64(t, backend, []float64{4, 3, 2, 1})

	tests := []struct {
		name     string
		result   *tensor.RawTensor
		expected []float64
	}{
		{"add", backend.Add(a, b), []float64{5, 5, 5, 5}},
		{"sub", backend.Sub(a, b), []float64{-3, -1, 1, 3}},
		{"mul", backend.Mul(a, b), []float64{4, 6, 6, 4}},
		{"div", backend.Div(a, b), []float64{0.25, 2.0 / 3.0, 1.5, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.result.AsFloat64()
			for i, want := range tt.expected {
				if math.Abs(output[i]-want) > epsilon {
					t.Errorf("%s[%d] = %f, expected %f", tt.name, i, output[i], want)
				}
			}
		})
	}
}

func TestArithmeticFloat32(t *testing.T) {
	backend := New()

	a := newFloat32(t, backend, []float32{1, 2, 3, 4})
	b := newFloat32(t, backend, []float32{4, 3, 2, 1})

	tests := []struct {
		name     string
		result   *tensor.RawTensor
		expected []float32
	}{
		{"add", backend.Add(a, b), []float32{5, 5, 5, 5}},
		{"sub", backend.Sub(a, b), []float32{-3, -1, 1, 3}},
		{"mul", backend.Mul(a, b), []float32{4, 6, 6, 4}},
		{"div", backend.Div(a, b), []float32{0.25, 2.0 / 3.0, 1.5, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.result.AsFloat32()
			for i, want := range tt.expected {
				if math.Abs(float64(output[i]-want)) > epsilon {
					t.Errorf("%s[%d] = %f, expected %f", tt.name, i, output[i], want)
				}
			}
		})
	}
}

func TestScalarOps(t *testing.T) {
	backend := New()

	x := newFloat64(t, backend, []float64{1, 2, 3})

	tests := []struct {
		name     string
		result   *tensor.RawTensor
		expected []float64
	}{
		{"add scalar", backend.AddScalar(x, 10.0), []float64{11, 12, 13}},
		{"sub scalar", backend.SubScalar(x, 1.0), []float64{0, 1, 2}},
		{"mul scalar", backend.MulScalar(x, -1.0), []float64{-1, -2, -3}},
		{"div scalar", backend.DivScalar(x, 4.0), []float64{0.25, 0.5, 0.75}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.result.AsFloat64()
			for i, want := range tt.expected {
				if math.Abs(output[i]-want) > epsilon {
					t.Errorf("%s[%d] = %f, expected %f", tt.name, i, output[i], want)
				}
			}
		})
	}
}

func TestScalarOpsFloat32(t *testing.T) {
	backend := New()

	x := newFloat32(t, backend, []float32{2, 4, 8})

	result := backend.DivScalar(x, float32(2))
	output := result.AsFloat32()
	for i, want := range []float32{1, 2, 4} {
		if output[i] != want {
			t.Errorf("div scalar[%d] = %f, expected %f", i, output[i], want)
		}
	}
}

func TestShapeMismatchPanics(t *testing.T) {
	backend := New()

	a := newFloat64(t, backend, []float64{1, 2, 3})
	b := newFloat64(t, backend, []float64{1, 2})

	defer func() {
		if recover() == nil {
			t.Error("Add with mismatched shapes should panic")
		}
	}()
	backend.Add(a, b)
}

func TestOperandsUnchanged(t *testing.T) {
	backend := New()

	a := newFloat64(t, backend, []float64{1, 2, 3})
	b := newFloat64(t, backend, []float64{4, 5, 6})

	backend.Add(a, b)
	backend.Mul(a, b)

	for i, want := range []float64{1, 2, 3} {
		if a.AsFloat64()[i] != want {
			t.Errorf("operand a[%d] modified: got %f, want %f", i, a.AsFloat64()[i], want)
		}
	}
	for i, want := range []float64{4, 5, 6} {
		if b.AsFloat64()[i] != want {
			t.Errorf("operand b[%d] modified: got %f, want %f", i, b.AsFloat64()[i], want)
		}
	}
}

func TestComparisons(t *testing.T) {
	backend := New()

	a := newFloat64(t, backend, []float64{1, 2, 3})
	b := newFloat64(t, backend, []float64{2, 2, 2})

	gt := backend.Greater(a, b)
	if gt.DType() != tensor.Bool {
		t.Fatalf("Greater dtype = %v, want Bool", gt.DType())
	}
	for i, want := range []bool{false, false, true} {
		if gt.AsBool()[i] != want {
			t.Errorf("greater[%d] = %v, want %v", i, gt.AsBool()[i], want)
		}
	}

	ge := backend.GreaterEqual(a, b)
	for i, want := range []bool{false, true, true} {
		if ge.AsBool()[i] != want {
			t.Errorf("greater equal[%d] = %v, want %v", i, ge.AsBool()[i], want)
		}
	}
}

func TestCast(t *testing.T) {
	backend := New()

	x := newFloat64(t, backend, []float64{0.5, -1.5, 0})

	asF32 := backend.Cast(x, tensor.Float32)
	if asF32.DType() != tensor.Float32 {
		t.Fatalf("Cast dtype = %v, want Float32", asF32.DType())
	}
	for i, want := range []float32{0.5, -1.5, 0} {
		if asF32.AsFloat32()[i] != want {
			t.Errorf("cast to float32[%d] = %f, want %f", i, asF32.AsFloat32()[i], want)
		}
	}

	// Bool mask to float: the indicator conversion used by the quantile scores.
	mask, err := tensor.NewRaw(tensor.Shape{3}, tensor.Bool, backend.Device())
	if err != nil {
		t.Fatalf("Failed to create tensor: %v", err)
	}
	copy(mask.AsBool(), []bool{true, false, true})

	asF64 := backend.Cast(mask, tensor.Float64)
	for i, want := range []float64{1, 0, 1} {
		if asF64.AsFloat64()[i] != want {
			t.Errorf("cast bool to float64[%d] = %f, want %f", i, asF64.AsFloat64()[i], want)
		}
	}

	// Same dtype cast is a no-op.
	if same := backend.Cast(x, tensor.Float64); same != x {
		t.Error("Cast to same dtype should return the input unchanged")
	}
}
