// Copyright 2026 The Brier Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package reference provides the element-by-element reference backend.
//
// Every operation is a sequential scalar loop. The package exists as the
// ground truth the vectorized cpu backend is verified against; prefer
// backend/cpu for real workloads.
package reference

import (
	internalref "github.com/brier-ml/brier/internal/backend/reference"
	"github.com/brier-ml/brier/tensor"
)

// Backend represents the reference backend implementation.
type Backend = internalref.Backend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new reference backend.
func New() *Backend {
	return internalref.New()
}
