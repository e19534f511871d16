package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/YuminosukeSato/statgo/pkg/errors"
	"github.com/YuminosukeSato/statgo/pkg/log"
)

// logitStartValue is the flat starting point of the likelihood
// maximization: every coefficient begins at 0.1. The negative
// log-likelihood is convex, so the optimum does not depend on the
// start, only the iteration count does.
const logitStartValue = 0.1

// sigmoid maps a linear predictor to a probability. StabilizeExp caps
// the exponent so extreme predictors saturate instead of overflowing.
func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + errors.StabilizeExp(-z))
}

// NegLogLikelihood evaluates the binary-logit negative log-likelihood
//
//	-Σ ( yᵢ·log pᵢ + (1-yᵢ)·log(1-pᵢ) ),  pᵢ = sigmoid(xᵢ·beta)
//
// with probabilities clamped away from 0 and 1 through StabilizeLog,
// so the value stays finite even for separating coefficients. The
// response must contain only 0 and 1 values.
func NegLogLikelihood(x mat.Matrix, y, beta []float64) (float64, error) {
	n, k := x.Dims()
	if len(y) != n {
		return 0, errors.NewDimensionError("NegLogLikelihood", n, len(y), 0)
	}
	if len(beta) != k {
		return 0, errors.NewDimensionError("NegLogLikelihood", k, len(beta), 1)
	}
	for i, v := range y {
		if v != 0 && v != 1 {
			return 0, errors.NewValueError("NegLogLikelihood", fmt.Sprintf("binary response must contain only 0 and 1 values, found %g at row %d", v, i))
		}
	}
	return negLogLik(x, y, beta), nil
}

// negLogLik is the unchecked evaluation core shared with the
// optimizer closures, which run after inputs were validated once.
func negLogLik(x mat.Matrix, y, beta []float64) float64 {
	n, k := x.Dims()
	nll := 0.0
	for i := 0; i < n; i++ {
		z := 0.0
		for j := 0; j < k; j++ {
			z += x.At(i, j) * beta[j]
		}
		p := sigmoid(z)
		nll -= y[i]*errors.StabilizeLog(p) + (1-y[i])*errors.StabilizeLog(1-p)
	}
	return nll
}

// negLogLikGrad writes the analytic gradient Xᵀ(sigmoid(X·beta)-y)
// into grad.
func negLogLikGrad(grad []float64, x mat.Matrix, y, beta []float64) {
	n, k := x.Dims()
	for j := 0; j < k; j++ {
		grad[j] = 0
	}
	for i := 0; i < n; i++ {
		z := 0.0
		for j := 0; j < k; j++ {
			z += x.At(i, j) * beta[j]
		}
		diff := sigmoid(z) - y[i]
		for j := 0; j < k; j++ {
			grad[j] += diff * x.At(i, j)
		}
	}
}

// logitEstimator fits binary logistic regression by handing the
// clamped negative log-likelihood and its analytic gradient to a
// Minimizer, then derives large-sample inference from the
// variance-scaled cross-product approximation of the coefficient
// covariance.
type logitEstimator struct {
	minimizer Minimizer
}

// fit maximizes the likelihood and assembles coefficient inference.
//
// The coefficient covariance is the deliberate approximation
//
//	Cov ≈ n·ȳ·(1-ȳ) · (XᵀX)⁻¹
//
// which prices every observation at the overall response variance
// instead of weighting rows by their fitted variance. It keeps the
// covariance free of the optimum and makes standard errors cheap and
// reproducible; they are conservative compared to the observed
// information matrix.
//
// Failure modes: a non-binary response is a ValueError, a response
// without both classes a NumericDomainError, a non-finite optimum an
// OptimizationFailedError. Running out of iterations at a finite
// point is not fatal; it is reported as a ConvergenceWarning on the
// results and through the package warning handler.
func (e *logitEstimator) fit(x *mat.Dense, y []float64) (*estimate, error) {
	n, k := x.Dims()

	ones := 0
	for i, v := range y {
		if v != 0 && v != 1 {
			return nil, errors.NewValueError("Logit.Fit", fmt.Sprintf("binary response must contain only 0 and 1 values, found %g at row %d", v, i))
		}
		if v == 1 {
			ones++
		}
	}
	if ones == 0 || ones == n {
		return nil, errors.NewNumericDomainError("Logit.Fit", "response contains a single class: likelihood maximization cannot identify the coefficients")
	}

	obj := Objective{
		Func: func(beta []float64) float64 {
			return negLogLik(x, y, beta)
		},
		Grad: func(grad, beta []float64) {
			negLogLikGrad(grad, x, y, beta)
		},
	}

	start := make([]float64, k)
	for j := range start {
		start[j] = logitStartValue
	}

	res, err := e.minimizer.Minimize(obj, start)
	if err != nil {
		return nil, errors.NewOptimizationFailedError(e.minimizer.Name(), 0, err.Error())
	}
	if res == nil || len(res.X) != k {
		return nil, errors.NewOptimizationFailedError(e.minimizer.Name(), 0, "minimizer returned no usable point")
	}
	if !finiteAll(res.X) || math.IsNaN(res.Value) || math.IsInf(res.Value, 0) {
		return nil, errors.NewOptimizationFailedError(e.minimizer.Name(), res.Iterations, "optimum contains non-finite values")
	}

	var warnings []error
	if !res.Converged {
		w := errors.NewConvergenceWarning(e.minimizer.Name(), res.Iterations, "gradient still above tolerance when the iteration budget ran out")
		errors.Warn(w)
		warnings = append(warnings, w)
	}

	log.GetLoggerWithName("regression.logit").Debug("Minimization finished",
		log.AlgorithmKey, e.minimizer.Name(),
		log.IterationsKey, res.Iterations,
		log.ConvergedKey, res.Converged,
		log.ObjectiveKey, res.Value,
	)

	xtxInv, err := crossProductInverse("Logit.Fit", x)
	if err != nil {
		return nil, err
	}

	ybar := float64(ones) / float64(n)
	s2 := float64(n) * ybar * (1 - ybar)

	coefs := make([]float64, k)
	ses := make([]float64, k)
	stats := make([]float64, k)
	pvals := make([]float64, k)
	normal := distuv.Normal{Mu: 0, Sigma: 1}
	for j := 0; j < k; j++ {
		coefs[j] = res.X[j]
		ses[j] = math.Sqrt(s2 * xtxInv.At(j, j))
		stats[j] = coefs[j] / ses[j]
		// Two-sided p-value through the symmetric |z| convention.
		pvals[j] = 2 * normal.Survival(math.Abs(stats[j]))
	}

	logLik := -res.Value

	return &estimate{
		coefs:    coefs,
		ses:      ses,
		stats:    stats,
		pvals:    pvals,
		warnings: warnings,
		fit: FitStats{
			Observations: n,
			Regressors:   k,
			DF:           n - k,
			LogLik:       logLik,
			AIC:          -2*logLik + 2*float64(k),
			BIC:          -2*logLik + float64(k)*math.Log(float64(n)),
			Iterations:   res.Iterations,
			Converged:    res.Converged,
		},
	}, nil
}
