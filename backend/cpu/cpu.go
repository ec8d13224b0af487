// Copyright 2026 The Brier Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/brier-ml/brier/internal/backend/cpu"
	"github.com/brier-ml/brier/tensor"
)

// Backend represents the vectorized CPU backend implementation.
//
// Arithmetic runs as slice-level kernels and distribution primitives are
// chunked across goroutines for large inputs.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/brier-ml/brier/backend/cpu"
//	    "github.com/brier-ml/brier/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros[float64](tensor.Shape{3}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}
