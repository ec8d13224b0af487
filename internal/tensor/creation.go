package tensor

import "math/rand"

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float64](Shape{4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()

	var dummy T
	var one any
	switch any(dummy).(type) {
	case float32:
		one = float32(1)
	case float64:
		one = float64(1)
	case bool:
		one = true
	}

	for i := range data {
		data[i] = one.(T)
	}
	return t
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float64](Shape{3}, 0.5, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Linspace creates a 1D tensor of n evenly spaced values from start to end,
// both endpoints included. For n == 1 the result holds just start.
// Only works with float types.
//
// Example:
//
//	qs := tensor.Linspace[float64](0.01, 0.99, 99, backend)
func Linspace[T Float, B Backend](start, end float64, n int, b B) *Tensor[T, B] {
	if n <= 0 {
		panic("Linspace requires n > 0")
	}

	t := Zeros[T, B](Shape{n}, b)
	data := t.Data()

	if n == 1 {
		data[0] = T(start)
		return t
	}

	step := (end - start) / float64(n-1)
	for i := range data {
		data[i] = T(start + float64(i)*step)
	}
	// Pin the final endpoint to avoid accumulation drift.
	data[n-1] = T(end)
	return t
}

// Randn creates a tensor with random values from a normal distribution (mean=0, std=1).
// Only works with float types.
// Note: Uses math/rand (not crypto/rand) - appropriate for statistical purposes.
//
// Example:
//
//	t := tensor.Randn[float64](Shape{100}, backend)
func Randn[T Float, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = T(rand.NormFloat64()) //nolint:gosec // G404: statistical sampling, not crypto
	}
	return t
}

// Rand creates a tensor with random values uniformly distributed in [0, 1).
// Only works with float types.
func Rand[T Float, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = T(rand.Float64()) //nolint:gosec // G404: statistical sampling, not crypto
	}
	return t
}
