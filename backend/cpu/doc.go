// Copyright 2026 The Brier Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the vectorized CPU backend for tensor operations.
//
// # Overview
//
// This package implements the batch execution path:
//   - Pure Go implementation (no CGO)
//   - float64 arithmetic and reductions via gonum/floats and gonum/stat
//   - float32 kernels via chewxy/math32
//   - Gaussian primitives from gonum/stat/distuv, chunked across
//     goroutines for large vectors
//
// # Basic Usage
//
//	import (
//	    "github.com/brier-ml/brier/backend/cpu"
//	    "github.com/brier-ml/brier/metrics"
//	    "github.com/brier-ml/brier/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    yPred, _ := tensor.FromSlice([]float64{0, 0, 0}, tensor.Shape{3}, backend)
//	    yStd := tensor.Ones[float64](tensor.Shape{3}, backend)
//	    yTrue, _ := tensor.FromSlice([]float64{0.1, -0.2, 0.3}, tensor.Shape{3}, backend)
//
//	    crps, err := metrics.CRPSGaussian(yPred, yStd, yTrue, true)
//	    _ = err
//	    _ = crps
//	}
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each tensor operation
// is isolated and does not share mutable state.
//
// For the sequential ground-truth implementation, see backend/reference.
package cpu
