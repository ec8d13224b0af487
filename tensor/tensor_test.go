// Copyright 2026 The Brier Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"math"
	"testing"

	"github.com/brier-ml/brier/backend/cpu"
	"github.com/brier-ml/brier/backend/reference"
	"github.com/brier-ml/brier/tensor"
)

func TestCreationAndOps(t *testing.T) {
	backend := cpu.New()

	x := tensor.Zeros[float64](tensor.Shape{3}, backend)
	y := tensor.Ones[float64](tensor.Shape{3}, backend)

	z := x.Add(y).MulScalar(2)
	for i, v := range z.Data() {
		if v != 2 {
			t.Errorf("z[%d] = %v, want 2", i, v)
		}
	}
}

func TestFromSliceAndReductions(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{4}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	if got := x.Sum().Item(); got != 10 {
		t.Errorf("Sum = %v, want 10", got)
	}
	if got := x.Mean().Item(); got != 2.5 {
		t.Errorf("Mean = %v, want 2.5", got)
	}
}

func TestLinspaceGrid(t *testing.T) {
	backend := cpu.New()

	qs := tensor.Linspace[float64](0.01, 0.99, 99, backend)
	if qs.NumElements() != 99 {
		t.Fatalf("NumElements = %d, want 99", qs.NumElements())
	}
	if qs.Data()[0] != 0.01 || qs.Data()[98] != 0.99 {
		t.Errorf("endpoints = %v, %v, want 0.01, 0.99", qs.Data()[0], qs.Data()[98])
	}
}

func TestNormalDistribution(t *testing.T) {
	backend := cpu.New()

	loc := tensor.Zeros[float64](tensor.Shape{1}, backend)
	scale := tensor.Ones[float64](tensor.Shape{1}, backend)
	dist := backend.Normal(loc.Raw(), scale.Raw())

	x := tensor.Zeros[float64](tensor.Shape{1}, backend)
	got := dist.PDF(x.Raw()).AsFloat64()[0]
	want := 1 / math.Sqrt(2*math.Pi)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("pdf(0) = %v, want %v", got, want)
	}
}

func TestBothBackendsSatisfyInterface(t *testing.T) {
	var _ tensor.Backend = cpu.New()
	var _ tensor.Backend = reference.New()
}
