package regression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/statgo/dataset"
	"github.com/YuminosukeSato/statgo/pkg/errors"
)

func fitSurveyLogit(t *testing.T, opts ...Option) *Results {
	t.Helper()
	opts = append([]Option{WithFamily(Logit), WithMaxIterations(500)}, opts...)
	m, err := NewModel(surveyRegressors(t), surveyWhiteColumn(t), opts...)
	require.NoError(t, err)
	require.NoError(t, m.Fit())
	res, err := m.Results()
	require.NoError(t, err)
	return res
}

func TestLogitSurveyWhite(t *testing.T) {
	res := fitSurveyLogit(t)

	assert.Equal(t, surveyNames, res.Names())
	assert.Equal(t, Logit, res.Family())
	assert.Equal(t, "z-stat", res.StatisticLabel())

	for j, c := range res.Coefficients() {
		assert.InDelta(t, logitRefCoef[j], c.Estimate, 1e-3, "coefficient %s", c.Name)
		assert.InDelta(t, logitRefSE[j], c.StdErr, 1e-4, "standard error %s", c.Name)
		assert.InDelta(t, logitRefZ[j], c.Statistic, 1e-3, "z statistic %s", c.Name)
		assert.InDelta(t, logitRefP[j], c.PValue, 1e-3, "p-value %s", c.Name)
	}

	// The survey was built so that sex matters for the outcome while
	// age clearly does not.
	sex, ok := res.Lookup("sex")
	require.True(t, ok)
	assert.Less(t, sex.PValue, 0.05)
	age, ok := res.Lookup("age")
	require.True(t, ok)
	assert.Greater(t, age.PValue, 0.3)

	stats := res.Stats()
	assert.Equal(t, 101, stats.Observations)
	assert.Equal(t, 4, stats.Regressors)
	assert.True(t, stats.Converged)
	assert.Greater(t, stats.Iterations, 0)
	assert.Less(t, stats.Iterations, 500)
	assert.InDelta(t, -logitRefNLL, stats.LogLik, 1e-3)
	assert.InDelta(t, logitRefAIC, stats.AIC, 1e-2)
	assert.InDelta(t, logitRefBIC, stats.BIC, 1e-2)
	assert.Empty(t, res.Warnings())
}

func TestLogitSurveyConfidenceIntervals(t *testing.T) {
	res := fitSurveyLogit(t)

	cis, err := res.ConfInt(0.05)
	require.NoError(t, err)
	require.Len(t, cis, 4)

	for j, ci := range cis {
		assert.Equal(t, surveyNames[j], ci.Name)
		assert.InDelta(t, logitRefCILow[j], ci.Lower, 1e-3, "lower bound %s", ci.Name)
		assert.InDelta(t, logitRefCIHigh[j], ci.Upper, 1e-3, "upper bound %s", ci.Name)
	}
}

// The optimum must improve on the flat starting point and reproduce
// the reference likelihood.
func TestLogitObjectiveDecrease(t *testing.T) {
	res := fitSurveyLogit(t)

	design, err := surveyRegressors(t).Design(true)
	require.NoError(t, err)

	beta := make([]float64, 4)
	for j, c := range res.Coefficients() {
		beta[j] = c.Estimate
	}

	nllFitted, err := NegLogLikelihood(design.Matrix, surveyWhite, beta)
	require.NoError(t, err)
	assert.Less(t, nllFitted, logitRefNLLAtStart)
	assert.InDelta(t, logitRefNLL, nllFitted, 1e-3)

	start := []float64{0.1, 0.1, 0.1, 0.1}
	nllStart, err := NegLogLikelihood(design.Matrix, surveyWhite, start)
	require.NoError(t, err)
	assert.InDelta(t, logitRefNLLAtStart, nllStart, 1e-6)
}

func TestNegLogLikelihoodValidation(t *testing.T) {
	design, err := surveyRegressors(t).Design(true)
	require.NoError(t, err)

	var dimErr *errors.DimensionError

	_, err = NegLogLikelihood(design.Matrix, surveyWhite[:50], make([]float64, 4))
	require.ErrorAs(t, err, &dimErr)
	assert.Equal(t, 0, dimErr.Axis)

	_, err = NegLogLikelihood(design.Matrix, surveyWhite, make([]float64, 3))
	require.ErrorAs(t, err, &dimErr)
	assert.Equal(t, 1, dimErr.Axis)

	bad := make([]float64, len(surveyWhite))
	copy(bad, surveyWhite)
	bad[7] = 0.5
	var valErr *errors.ValueError
	_, err = NegLogLikelihood(design.Matrix, bad, make([]float64, 4))
	assert.ErrorAs(t, err, &valErr)
}

func TestLogitSingleClassResponse(t *testing.T) {
	ones := make([]float64, len(surveySex))
	for i := range ones {
		ones[i] = 1
	}

	for _, tc := range []struct {
		name   string
		values []float64
	}{
		{"all ones", ones},
		{"all zeros", make([]float64, len(surveySex))},
	} {
		t.Run(tc.name, func(t *testing.T) {
			y := surveyColumn(t, "white", tc.values)

			_, err := NewModel(surveyRegressors(t), y, WithFamily(Logit))
			require.Error(t, err)
			var domainErr *errors.NumericDomainError
			assert.ErrorAs(t, err, &domainErr)
		})
	}
}

func TestLogitNonBinaryResponse(t *testing.T) {
	vals := make([]float64, len(surveyWhite))
	copy(vals, surveyWhite)
	vals[3] = 2

	y := surveyColumn(t, "white", vals)
	_, err := NewModel(surveyRegressors(t), y, WithFamily(Logit))
	require.Error(t, err)
	var valErr *errors.ValueError
	assert.ErrorAs(t, err, &valErr)
}

// Perfectly separated data has no finite likelihood maximum. The clamp
// keeps the objective finite, so the fit must either report
// non-convergence or walk to visibly extreme coefficients; it must
// never return an error or non-finite estimates.
func TestLogitSeparableData(t *testing.T) {
	tab := dataset.NewTable()
	require.NoError(t, tab.Add("x", []float64{-2, -1, 1, 2}))
	y := surveyColumn(t, "hit", []float64{0, 0, 1, 1})

	m, err := NewModel(tab, y, WithFamily(Logit), WithMaxIterations(300))
	require.NoError(t, err)
	require.NoError(t, m.Fit())

	res, err := m.Results()
	require.NoError(t, err)

	slope, ok := res.Lookup("x")
	require.True(t, ok)
	assert.False(t, math.IsNaN(slope.Estimate))
	assert.False(t, math.IsInf(slope.Estimate, 0))
	if res.Stats().Converged {
		assert.Greater(t, math.Abs(slope.Estimate), 5.0,
			"a converged fit on separated data can only happen far out on the likelihood plateau")
	}
	// The aggregate-variance covariance depends only on the design, so
	// standard errors stay finite even under separation.
	assert.False(t, math.IsInf(slope.StdErr, 0))
	assert.Greater(t, slope.StdErr, 0.0)
}

func TestLogitConvergenceWarning(t *testing.T) {
	var captured []error
	errors.SetWarningHandler(func(w error) {
		captured = append(captured, w)
	})
	defer errors.SetWarningHandler(func(w error) {})

	m, err := NewModel(surveyRegressors(t), surveyWhiteColumn(t),
		WithFamily(Logit), WithMaxIterations(1))
	require.NoError(t, err)
	require.NoError(t, m.Fit(), "running out of iterations is a warning, not an error")

	res, err := m.Results()
	require.NoError(t, err)
	assert.False(t, res.Stats().Converged)

	warnings := res.Warnings()
	require.Len(t, warnings, 1)
	var convWarn *errors.ConvergenceWarning
	require.ErrorAs(t, warnings[0], &convWarn)
	assert.Equal(t, "BFGS", convWarn.Algorithm)

	require.Len(t, captured, 1)
	assert.ErrorAs(t, captured[0], &convWarn)

	// The estimates are still usable numbers.
	for _, c := range res.Coefficients() {
		assert.False(t, math.IsNaN(c.Estimate), "coefficient %s", c.Name)
	}
}

type stubMinimizer struct {
	res *MinimizeResult
	err error
}

func (s *stubMinimizer) Name() string { return "stub" }

func (s *stubMinimizer) Minimize(Objective, []float64) (*MinimizeResult, error) {
	return s.res, s.err
}

func TestLogitCustomMinimizer(t *testing.T) {
	stub := &stubMinimizer{
		res: &MinimizeResult{
			X:          []float64{0, 0, 0, 0},
			Value:      70,
			Iterations: 3,
			Converged:  true,
		},
	}

	m, err := NewModel(surveyRegressors(t), surveyWhiteColumn(t),
		WithFamily(Logit), WithMinimizer(stub))
	require.NoError(t, err)
	require.NoError(t, m.Fit())

	res, err := m.Results()
	require.NoError(t, err)
	assert.Equal(t, 3, res.Stats().Iterations)
	for _, c := range res.Coefficients() {
		assert.Zero(t, c.Estimate)
		assert.Zero(t, c.Statistic)
		assert.InDelta(t, 1.0, c.PValue, 1e-12, "a zero statistic has a two-sided p-value of one")
	}
}

func TestLogitMinimizerFailure(t *testing.T) {
	var optErr *errors.OptimizationFailedError

	t.Run("minimizer error", func(t *testing.T) {
		stub := &stubMinimizer{err: errors.New("no usable point")}
		m, err := NewModel(surveyRegressors(t), surveyWhiteColumn(t),
			WithFamily(Logit), WithMinimizer(stub))
		require.NoError(t, err)
		err = m.Fit()
		require.Error(t, err)
		assert.ErrorAs(t, err, &optErr)
	})

	t.Run("non-finite optimum", func(t *testing.T) {
		stub := &stubMinimizer{
			res: &MinimizeResult{
				X:          []float64{math.NaN(), 0, 0, 0},
				Value:      math.NaN(),
				Iterations: 12,
				Converged:  false,
			},
		}
		m, err := NewModel(surveyRegressors(t), surveyWhiteColumn(t),
			WithFamily(Logit), WithMinimizer(stub))
		require.NoError(t, err)
		err = m.Fit()
		require.Error(t, err)
		require.ErrorAs(t, err, &optErr)
		assert.Equal(t, 12, optErr.Iterations)
	})

	t.Run("empty result", func(t *testing.T) {
		stub := &stubMinimizer{}
		m, err := NewModel(surveyRegressors(t), surveyWhiteColumn(t),
			WithFamily(Logit), WithMinimizer(stub))
		require.NoError(t, err)
		err = m.Fit()
		require.Error(t, err)
		assert.ErrorAs(t, err, &optErr)
	})
}
