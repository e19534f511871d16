// Package model provides additional interfaces and types for statistical estimators.
// This file complements the existing interfaces in estimator.go and transformer.go
package model

import (
	"github.com/YuminosukeSato/statgo/dataset"
)

// Scorer is the interface for models that can compute a goodness-of-fit score.
type Scorer interface {
	// Score returns a family-appropriate score for predictions on x against y:
	// the coefficient of determination for linear fits, classification accuracy
	// for logistic fits.
	Score(x *dataset.Table, y []float64) (float64, error)
}

// Estimator combines the fit lifecycle with prediction and scoring.
type Estimator interface {
	Fitter
	Predictor
	Scorer
}
