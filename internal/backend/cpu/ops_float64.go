package cpu

import "gonum.org/v1/gonum/floats"

// Float64 kernels delegate to gonum/floats, whose loops are written to
// auto-vectorize.

func addFloat64(dst, a, b []float64) {
	floats.AddTo(dst, a, b)
}

func subFloat64(dst, a, b []float64) {
	floats.SubTo(dst, a, b)
}

func mulFloat64(dst, a, b []float64) {
	floats.MulTo(dst, a, b)
}

func divFloat64(dst, a, b []float64) {
	floats.DivTo(dst, a, b)
}

func addScalarFloat64(dst, src []float64, s float64) {
	copy(dst, src)
	floats.AddConst(s, dst)
}

func mulScalarFloat64(dst, src []float64, s float64) {
	floats.ScaleTo(dst, s, src)
}
