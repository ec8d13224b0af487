// Copyright 2026 The Brier Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package metrics provides proper scoring rules and accuracy metrics for
// evaluating Gaussian predictive distributions.
//
// # Overview
//
// Each scoring rule reduces a batch of (predicted mean, predicted standard
// deviation, true value) triples to one scalar quality measure. All scores
// are negatively oriented: lower is better.
//
//   - NLLGaussian: negative log likelihood of the held-out targets
//   - CRPSGaussian: closed-form continuous ranked probability score
//   - CheckScore: pinball loss integrated over a quantile grid
//   - IntervalScore: interval score integrated over a coverage grid
//
// The accuracy metrics (MAE, RMSE, MDAE, MARPD, R2, Corr) score the point
// predictions alone and ignore the predicted uncertainty.
//
// # Basic Usage
//
//	backend := cpu.New()
//	yPred, _ := tensor.FromSlice(means, tensor.Shape{len(means)}, backend)
//	yStd, _ := tensor.FromSlice(stds, tensor.Shape{len(stds)}, backend)
//	yTrue, _ := tensor.FromSlice(obs, tensor.Shape{len(obs)}, backend)
//
//	nll, err := metrics.NLLGaussian(yPred, yStd, yTrue, true)
//	crps, err := metrics.CRPSGaussian(yPred, yStd, yTrue, true)
//	check, err := metrics.CheckScore(yPred, yStd, yTrue, true, metrics.DefaultCheckScoreOptions())
//
// # Input Contract
//
// The three inputs must be flat tensors of identical length; anything else
// returns a *ShapeError before any computation. Standard deviations must
// be positive and grid bounds must stay strictly inside (0, 1); violations
// are not trapped and surface as NaN or Inf scores.
package metrics

import (
	"github.com/brier-ml/brier/internal/metrics"
	"github.com/brier-ml/brier/tensor"
)

// ShapeError reports score inputs that are not flat, equal-length vectors.
type ShapeError = metrics.ShapeError

// CheckScoreOptions configures the quantile grid CheckScore integrates over.
type CheckScoreOptions = metrics.CheckScoreOptions

// IntervalScoreOptions configures the coverage grid IntervalScore integrates over.
type IntervalScoreOptions = metrics.IntervalScoreOptions

// DefaultCheckScoreOptions returns the standard grid of 99 quantile levels
// from 0.01 to 0.99.
func DefaultCheckScoreOptions() CheckScoreOptions {
	return metrics.DefaultCheckScoreOptions()
}

// DefaultIntervalScoreOptions returns the standard grid of 99 coverage
// probabilities from 0.01 to 0.99.
func DefaultIntervalScoreOptions() IntervalScoreOptions {
	return metrics.DefaultIntervalScoreOptions()
}

// NLLGaussian returns the negative log likelihood of the true values under
// per-point Gaussian predictive distributions N(yPred[i], yStd[i]).
// When scaled is true the sum over points becomes a mean.
func NLLGaussian[T tensor.Float, B tensor.Backend](yPred, yStd, yTrue *tensor.Tensor[T, B], scaled bool) (float64, error) {
	return metrics.NLLGaussian(yPred, yStd, yTrue, scaled)
}

// CRPSGaussian returns the closed-form continuous ranked probability score
// for Gaussian predictive distributions.
// When scaled is true the sum over points becomes a mean.
func CRPSGaussian[T tensor.Float, B tensor.Backend](yPred, yStd, yTrue *tensor.Tensor[T, B], scaled bool) (float64, error) {
	return metrics.CRPSGaussian(yPred, yStd, yTrue, scaled)
}

// CheckScore returns the pinball (check) loss integrated over a grid of
// quantile levels of the predictive distributions. Contributions are
// averaged over points per quantile level, then summed over levels (or
// averaged, when scaled).
func CheckScore[T tensor.Float, B tensor.Backend](yPred, yStd, yTrue *tensor.Tensor[T, B], scaled bool, opts CheckScoreOptions) (float64, error) {
	return metrics.CheckScore(yPred, yStd, yTrue, scaled, opts)
}

// IntervalScore returns the interval score integrated over a grid of
// central prediction intervals. Same two-stage reduction as CheckScore.
func IntervalScore[T tensor.Float, B tensor.Backend](yPred, yStd, yTrue *tensor.Tensor[T, B], scaled bool, opts IntervalScoreOptions) (float64, error) {
	return metrics.IntervalScore(yPred, yStd, yTrue, scaled, opts)
}

// MAE returns the mean absolute error between predictions and true values.
func MAE[T tensor.Float, B tensor.Backend](yPred, yTrue *tensor.Tensor[T, B]) (float64, error) {
	return metrics.MAE(yPred, yTrue)
}

// RMSE returns the root mean squared error between predictions and true values.
func RMSE[T tensor.Float, B tensor.Backend](yPred, yTrue *tensor.Tensor[T, B]) (float64, error) {
	return metrics.RMSE(yPred, yTrue)
}

// MDAE returns the median absolute error between predictions and true values.
func MDAE[T tensor.Float, B tensor.Backend](yPred, yTrue *tensor.Tensor[T, B]) (float64, error) {
	return metrics.MDAE(yPred, yTrue)
}

// MARPD returns the mean absolute relative percent difference.
func MARPD[T tensor.Float, B tensor.Backend](yPred, yTrue *tensor.Tensor[T, B]) (float64, error) {
	return metrics.MARPD(yPred, yTrue)
}

// R2 returns the coefficient of determination of the predictions.
func R2[T tensor.Float, B tensor.Backend](yPred, yTrue *tensor.Tensor[T, B]) (float64, error) {
	return metrics.R2(yPred, yTrue)
}

// Corr returns the Pearson correlation between predictions and true values.
func Corr[T tensor.Float, B tensor.Backend](yPred, yTrue *tensor.Tensor[T, B]) (float64, error) {
	return metrics.Corr(yPred, yTrue)
}
