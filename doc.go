// Package statgo provides a statistical estimation engine for Go,
// covering ordinary least squares and binary logit regression behind a
// single model object with full inference output.
//
// StatGo builds named design matrices from labeled columns, estimates
// coefficients in closed form (OLS) or by numerical likelihood
// maximization (logit), and assembles per-variable inference records:
// estimate, standard error, test statistic and two-sided p-value, plus
// whole-fit statistics and a rendered summary table.
//
// # Installation
//
// Install StatGo using go get:
//
//	go get github.com/YuminosukeSato/statgo
//
// # Quick Start
//
// Here's a linear fit with a summary table:
//
//	package main
//
//	import (
//	    "log"
//	    "os"
//
//	    "github.com/YuminosukeSato/statgo/dataset"
//	    "github.com/YuminosukeSato/statgo/regression"
//	)
//
//	func main() {
//	    tab := dataset.NewTable()
//	    if err := tab.Add("age", []float64{23, 31, 45, 52, 28, 36}); err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := tab.Add("educ", []float64{12, 16, 12, 14, 18, 12}); err != nil {
//	        log.Fatal(err)
//	    }
//	    wage, err := dataset.NewColumn("wage", []float64{11.2, 18.4, 14.1, 16.9, 22.5, 13.0})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    model, err := regression.NewModel(tab, wage)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := model.Fit(); err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := model.WriteSummary(os.Stdout); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// A binary outcome uses the same model with the logit family:
//
//	model, err := regression.NewModel(tab, member,
//	    regression.WithFamily(regression.Logit),
//	)
//
// # Packages
//
// The library is organized into several packages:
//
//   - regression: OLS and logit estimation, inference records, summaries
//   - dataset: labeled columns and design matrix construction
//   - metrics: evaluation metrics (MSE, RMSE, MAE, R², accuracy, log-loss)
//   - preprocessing: table scaling utilities
//   - diagnostics: residual plots rendered through gonum/plot
//   - core/model: estimator interfaces and fitted-state management
//   - core/parallel: parallel processing utilities
//   - pkg/errors: typed estimation errors and the warning system
//   - pkg/log: structured logging interfaces and slog integration
//
// # Error Handling
//
// Estimation failures return typed errors (SingularMatrixError,
// InsufficientDataError, OptimizationFailedError and friends) that can
// be inspected with errors.As. Non-fatal conditions such as an
// optimizer stopping at its iteration limit surface as warnings
// attached to the results and routed through the pkg/errors warning
// handler.
//
// # License
//
// StatGo is released under the MIT License.
package statgo
