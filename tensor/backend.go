// Copyright 2026 The Brier Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/brier-ml/brier/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - backend/cpu: vectorized batch execution
//   - backend/reference: element-by-element scalar loops
//
// Example:
//
//	import (
//	    "github.com/brier-ml/brier/tensor"
//	    "github.com/brier-ml/brier/backend/cpu"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float64](tensor.Shape{3}, backend)
//	y := tensor.Ones[float64](tensor.Shape{3}, backend)
//	z := x.Add(y)  // Uses backend.Add under the hood
type Backend interface {
	// Element-wise binary operations.
	Add(a, b *RawTensor) *RawTensor // Element-wise addition.
	Sub(a, b *RawTensor) *RawTensor // Element-wise subtraction.
	Mul(a, b *RawTensor) *RawTensor // Element-wise multiplication.
	Div(a, b *RawTensor) *RawTensor // Element-wise division.

	// Scalar operations (element-wise with scalar).
	AddScalar(x *RawTensor, scalar any) *RawTensor // Add scalar.
	SubScalar(x *RawTensor, scalar any) *RawTensor // Subtract scalar.
	MulScalar(x *RawTensor, scalar any) *RawTensor // Multiply by scalar.
	DivScalar(x *RawTensor, scalar any) *RawTensor // Divide by scalar.

	// Math operations (element-wise).
	Sqrt(x *RawTensor) *RawTensor // Square root.
	Abs(x *RawTensor) *RawTensor  // Absolute value.

	// Comparison operations (element-wise, return bool tensor).
	Greater(a, b *RawTensor) *RawTensor      // a > b.
	GreaterEqual(a, b *RawTensor) *RawTensor // a >= b.

	// Type conversion.
	Cast(x *RawTensor, dtype DataType) *RawTensor // Cast to different data type.

	// Reduction operations (return a Shape{1} scalar tensor).
	Sum(x *RawTensor) *RawTensor  // Total sum.
	Mean(x *RawTensor) *RawTensor // Arithmetic mean.

	// Normal returns the Gaussian distribution N(loc, scale) with
	// per-element location and scale parameters.
	Normal(loc, scale *RawTensor) NormalDist

	// Metadata.
	Name() string   // Backend name (e.g., "CPU", "Reference").
	Device() Device // Device type.
}

// NormalDist evaluates a per-element Gaussian distribution.
//
// Example:
//
//	dist := backend.Normal(loc.Raw(), scale.Raw())
//	density := dist.PDF(x.Raw())
type NormalDist = tensor.NormalDist

// Compile-time check that internal Backend implements public Backend.
var _ Backend = tensor.Backend(nil)
