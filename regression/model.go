// Package regression estimates linear and binary-logit models behind a
// single Model type.
//
// A Model is constructed from a dataset.Table of regressors and a
// response column, configured through functional options, and fitted
// once or repeatedly. Fitting produces an immutable Results value with
// one inference record per design-matrix column: estimate, standard
// error, test statistic and two-sided p-value, plus whole-fit
// statistics and a rendered summary table.
//
// The two families share everything except the estimation strategy.
// OLS solves the normal equations in closed form and reports Student's
// t inference; Logit maximizes the clamped log-likelihood with a
// numerical Minimizer (BFGS by default) and reports normal-based
// inference from a variance-scaled cross-product covariance.
package regression

import (
	"fmt"
	"io"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/statgo/core/model"
	"github.com/YuminosukeSato/statgo/dataset"
	"github.com/YuminosukeSato/statgo/metrics"
	"github.com/YuminosukeSato/statgo/pkg/errors"
	"github.com/YuminosukeSato/statgo/pkg/log"
)

// estimate is the raw outcome an estimator hands back to the model:
// aligned per-coefficient vectors plus whole-fit statistics.
type estimate struct {
	coefs    []float64
	ses      []float64
	stats    []float64
	pvals    []float64
	warnings []error
	fit      FitStats
}

// estimator is the per-family fitting strategy. fit consumes the
// assembled design matrix and the response vector and returns aligned
// inference vectors in design-column order.
type estimator interface {
	fit(x *mat.Dense, y []float64) (*estimate, error)
}

// estimators maps each family to its strategy constructor. Adding a
// family means registering a strategy here; Fit itself carries no
// family switch.
var estimators = map[Family]func(cfg config) estimator{
	OLS: func(config) estimator { return &olsEstimator{} },
	Logit: func(cfg config) estimator {
		m := cfg.minimizer
		if m == nil {
			m = NewBFGSMinimizer(cfg.maxIter, cfg.gradTol)
		}
		return &logitEstimator{minimizer: m}
	},
}

// Model binds a frozen design matrix and response to an estimation
// family. The numeric state is copied out of the input dataset at
// construction, so later mutation of the caller's table cannot change
// what Fit sees. A Model is not safe for concurrent mutation; fit it
// from one goroutine, then share the Results value freely.
type Model struct {
	state *model.StateManager // fit lifecycle (composition)

	cfg    config
	design *dataset.Design
	y      []float64

	results *Results
}

var (
	_ model.Estimator  = (*Model)(nil)
	_ model.Summarizer = (*Model)(nil)
)

// NewModel validates the configuration and inputs and assembles the
// design matrix. The regressor columns enter in table insertion order;
// when an intercept is requested (the default) a constant column named
// dataset.InterceptName is appended after them.
//
// Validation failures are typed: option contradictions are
// InvalidConfigurationError, an empty table surfaces ErrEmptyData, a
// response length disagreeing with the table is a DimensionError, and
// a Logit response outside {0, 1} is a ValueError.
func NewModel(regressors *dataset.Table, response *dataset.Column, opts ...Option) (*Model, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if regressors == nil {
		return nil, errors.NewValueError("NewModel", "regressors table is nil")
	}
	if response == nil {
		return nil, errors.NewValueError("NewModel", "response column is nil")
	}

	design, err := regressors.Design(cfg.intercept)
	if err != nil {
		return nil, err
	}
	if response.Len() != design.NumRows() {
		return nil, errors.NewDimensionError("NewModel", design.NumRows(), response.Len(), 0)
	}

	y := make([]float64, response.Len())
	copy(y, response.Values)

	if cfg.family == Logit {
		if err := validateBinaryResponse("NewModel", y); err != nil {
			return nil, err
		}
	}

	return &Model{
		state:  model.NewStateManager(),
		cfg:    cfg,
		design: design,
		y:      y,
	}, nil
}

// validateBinaryResponse rejects responses unusable for Logit: values
// outside {0, 1} and responses where only one class is present.
func validateBinaryResponse(op string, y []float64) error {
	ones := 0
	for i, v := range y {
		if v != 0 && v != 1 {
			return errors.NewValueError(op, fmt.Sprintf("binary response must contain only 0 and 1 values, found %g at row %d", v, i))
		}
		if v == 1 {
			ones++
		}
	}
	if ones == 0 || ones == len(y) {
		return errors.NewNumericDomainError(op, "response contains a single class: likelihood maximization cannot identify the coefficients")
	}
	return nil
}

// Fit estimates the coefficients with the family's strategy and stores
// the assembled Results. Refitting overwrites the previous results; a
// failed fit returns the typed error and leaves any previous results
// untouched.
func (m *Model) Fit() error {
	newEstimator, ok := estimators[m.cfg.family]
	if !ok {
		return errors.NewInvalidConfigurationError("family", "no estimation strategy registered", int(m.cfg.family))
	}

	start := time.Now()
	est, err := newEstimator(m.cfg).fit(m.design.Matrix, m.y)
	if err != nil {
		return err
	}

	res, err := newResults(m.cfg.family, m.design.Names, est.coefs, est.ses, est.stats, est.pvals, est.fit, est.warnings)
	if err != nil {
		return err
	}

	m.results = res
	m.state.SetFitted()
	m.state.SetDimensions(est.fit.Observations, est.fit.Regressors)

	logger := log.GetLoggerWithName("regression.model")
	logger.Info("Fit completed",
		log.OperationKey, log.OperationFit,
		log.FamilyKey, m.cfg.family.String(),
		log.ObservationsKey, est.fit.Observations,
		log.RegressorsKey, est.fit.Regressors,
		log.IterationsKey, est.fit.Iterations,
		log.ConvergedKey, est.fit.Converged,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// Results returns the outcome of the latest successful fit.
func (m *Model) Results() (*Results, error) {
	if !m.state.IsFitted() {
		return nil, errors.NewNotFittedError("Model", "Results")
	}
	return m.results, nil
}

// Predict evaluates the fitted model on new regressor rows. The table
// must carry exactly the columns the model was built from, with the
// same names in the same order; the intercept column is appended
// automatically under the same setting used at construction. Logit
// predictions are probabilities, OLS predictions are conditional
// means.
func (m *Model) Predict(x *dataset.Table) ([]float64, error) {
	if !m.state.IsFitted() {
		return nil, errors.NewNotFittedError("Model", "Predict")
	}
	if x == nil {
		return nil, errors.NewValueError("Model.Predict", "regressors table is nil")
	}

	d, err := x.Design(m.cfg.intercept)
	if err != nil {
		return nil, err
	}
	if d.NumColumns() != len(m.design.Names) {
		return nil, errors.NewDimensionError("Model.Predict", len(m.design.Names), d.NumColumns(), 1)
	}
	for j, name := range d.Names {
		if name != m.design.Names[j] {
			return nil, errors.NewValueError("Model.Predict",
				fmt.Sprintf("column %d is %q, want %q", j, name, m.design.Names[j]))
		}
	}

	beta := make([]float64, len(m.design.Names))
	for j, c := range m.results.coefs {
		beta[j] = c.Estimate
	}

	var xb mat.VecDense
	xb.MulVec(d.Matrix, mat.NewVecDense(len(beta), beta))

	out := make([]float64, d.NumRows())
	for i := range out {
		out[i] = m.cfg.family.transform(xb.AtVec(i))
	}

	log.GetLoggerWithName("regression.model").Debug("Predict completed",
		log.OperationKey, log.OperationPredict,
		log.FamilyKey, m.cfg.family.String(),
		log.ObservationsKey, len(out),
	)
	return out, nil
}

// transform maps a linear predictor onto the response scale of the
// family: identity for OLS, sigmoid for Logit.
func (f Family) transform(xb float64) float64 {
	if f == Logit {
		return sigmoid(xb)
	}
	return xb
}

// Score evaluates predictive quality on labeled data: R² for OLS,
// classification accuracy at the 0.5 threshold for Logit.
func (m *Model) Score(x *dataset.Table, y []float64) (float64, error) {
	preds, err := m.Predict(x)
	if err != nil {
		return 0, err
	}
	if len(y) != len(preds) {
		return 0, errors.NewDimensionError("Model.Score", len(preds), len(y), 0)
	}

	var score float64
	scoreKey := log.R2ScoreKey
	if m.cfg.family == Logit {
		scoreKey = log.AccuracyKey
		score, err = metrics.Accuracy(y, preds, 0.5)
	} else {
		score, err = metrics.R2Score(y, preds)
	}
	if err != nil {
		return 0, err
	}

	log.GetLoggerWithName("regression.model").Debug("Score computed",
		log.OperationKey, log.OperationScore,
		log.FamilyKey, m.cfg.family.String(),
		scoreKey, score,
	)
	return score, nil
}

// Summary renders the fixed-layout coefficient table of the latest
// fit.
func (m *Model) Summary() (string, error) {
	res, err := m.Results()
	if err != nil {
		return "", err
	}
	return res.Summary()
}

// WriteSummary renders the summary of the latest fit to w.
func (m *Model) WriteSummary(w io.Writer) error {
	res, err := m.Results()
	if err != nil {
		return err
	}
	return res.WriteSummary(w)
}
