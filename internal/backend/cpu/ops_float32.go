package cpu

// Float32 kernels follow the same pattern as float64, as plain loops:
// gonum/floats is float64-only.

func addFloat32(dst, a, b []float32) {
	for i := range a {
		dst[i] = a[i] + b[i]
	}
}

func subFloat32(dst, a, b []float32) {
	for i := range a {
		dst[i] = a[i] - b[i]
	}
}

func mulFloat32(dst, a, b []float32) {
	for i := range a {
		dst[i] = a[i] * b[i]
	}
}

func divFloat32(dst, a, b []float32) {
	for i := range a {
		dst[i] = a[i] / b[i]
	}
}

func addScalarFloat32(dst, src []float32, s float32) {
	for i, v := range src {
		dst[i] = v + s
	}
}

func mulScalarFloat32(dst, src []float32, s float32) {
	for i, v := range src {
		dst[i] = v * s
	}
}
