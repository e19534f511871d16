// Package log defines standard attribute keys for statistical estimation operations.
//
// This file contains predefined attribute keys that provide consistency across
// all logging operations in StatGo. Using these standard keys enables better
// log analysis, monitoring, and debugging of estimation workflows.
//
// The attributes are organized into categories:
//   - Model and Operation Context
//   - Data Shape and Characteristics
//   - Optimization Progress
//   - Performance Metrics
//   - Error Context
//
// These keys follow a hierarchical naming convention (e.g., "model.family",
// "data.observations") to enable structured log analysis and filtering.

package log

// Model and Operation Context
// These attributes identify the model, its estimation family, and the operation
// being performed.
const (
	// ModelNameKey identifies the estimator type.
	// Examples: "Model", "StandardScaler"
	ModelNameKey = "model.name"

	// FamilyKey identifies the estimation family of a model.
	// Standard values: "ols", "logit"
	FamilyKey = "model.family"

	// OperationKey specifies the estimation operation being performed.
	// Standard values: "fit", "predict", "score", "summary"
	OperationKey = "estimation.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "regression", "dataset", "preprocessing", "metrics"
	ComponentKey = "estimation.component"
)

// Data Shape and Characteristics
// These attributes describe the structure of the data being estimated on.
const (
	// ObservationsKey indicates the number of observations (rows) in the dataset.
	ObservationsKey = "data.observations"

	// RegressorsKey indicates the number of design-matrix columns, including
	// the intercept when one is appended.
	RegressorsKey = "data.regressors"

	// ResponseKey records the name of the response variable.
	ResponseKey = "data.response"
)

// Optimization Progress
// These attributes capture the state of the numerical optimizer used by
// likelihood-based estimators.
const (
	// AlgorithmKey identifies the minimization algorithm.
	// Examples: "BFGS"
	AlgorithmKey = "optimizer.algorithm"

	// IterationsKey records the number of major iterations performed.
	IterationsKey = "optimizer.iterations"

	// ConvergedKey records whether the optimizer reported convergence.
	ConvergedKey = "optimizer.converged"

	// ObjectiveKey records the objective value at the returned point,
	// i.e. the negative log-likelihood at the optimum.
	ObjectiveKey = "optimizer.objective"
)

// Performance Metrics
// These attributes capture timing and goodness-of-fit information.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// R2ScoreKey records the coefficient of determination for linear fits.
	R2ScoreKey = "metrics.r2_score"

	// AccuracyKey records classification accuracy for logistic fits.
	AccuracyKey = "metrics.accuracy"

	// LogLossKey records the logistic loss for probability predictions.
	LogLossKey = "metrics.log_loss"
)

// Error and Warning Context
// These attributes provide additional context for error and warning messages.
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	// Examples: "SINGULAR_MATRIX", "NOT_FITTED", "CONVERGENCE_FAILURE"
	ErrorCodeKey = "error.code"

	// SuggestionKey provides helpful suggestions for resolving issues.
	// Examples: "Check for collinear regressors", "Increase max_iterations"
	SuggestionKey = "error.suggestion"
)

// Standard attribute value constants for common operations.
// Using these constants ensures consistency across the codebase.
const (
	// Standard estimation operations
	OperationFit     = "fit"
	OperationPredict = "predict"
	OperationScore   = "score"
	OperationSummary = "summary"

	// Standard error codes
	ErrorNotFitted          = "NOT_FITTED"
	ErrorDimensionMismatch  = "DIMENSION_MISMATCH"
	ErrorEmptyData          = "EMPTY_DATA"
	ErrorInvalidInput       = "INVALID_INPUT"
	ErrorConvergence        = "CONVERGENCE_FAILURE"
	ErrorSingularMatrix     = "SINGULAR_MATRIX"
	ErrorInsufficientData   = "INSUFFICIENT_DATA"
	ErrorNumericDomain      = "NUMERIC_DOMAIN"
	ErrorOptimizationFailed = "OPTIMIZATION_FAILED"
)
