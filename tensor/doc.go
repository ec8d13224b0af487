// Copyright 2026 The Brier Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe tensor operations for the Brier library.
//
// # Overview
//
// Tensors carry the prediction and outcome vectors that the metrics
// package scores. This package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - Interchangeable execution backends behind one interface
//   - Zero-copy data access
//
// # Basic Usage
//
//	import (
//	    "github.com/brier-ml/brier/tensor"
//	    "github.com/brier-ml/brier/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    yPred, _ := tensor.FromSlice([]float64{0.1, 0.4, 0.9}, tensor.Shape{3}, backend)
//	    yStd := tensor.Ones[float64](tensor.Shape{3}, backend)
//
//	    z := yPred.Div(yStd)
//	}
//
// # Supported Data Types
//
// The tensor package supports the following data types via the DType constraint:
//   - float32, float64 (floating-point)
//   - bool (comparison masks)
//
// # Execution Backends
//
// Two interchangeable implementations exist:
//   - backend/cpu: vectorized batch execution
//   - backend/reference: element-by-element scalar loops
//
// Both produce results that agree to floating-point tolerance; the
// reference backend is the readable ground truth, the cpu backend is the
// one to use.
//
// # Memory Management
//
// The underlying data is reference-counted with copy-on-write semantics,
// so cloning a tensor does not copy its buffer.
package tensor
