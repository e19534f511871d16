package regression

import (
	"math"

	"gonum.org/v1/gonum/optimize"

	"github.com/YuminosukeSato/statgo/pkg/errors"
)

// Objective is an unconstrained smooth function handed to a Minimizer.
// Func evaluates the objective at beta. Grad writes the gradient at
// beta into grad, which has the same length as beta. Both callbacks
// must be safe for repeated calls with varying inputs.
type Objective struct {
	Func func(beta []float64) float64
	Grad func(grad, beta []float64)
}

// MinimizeResult carries the outcome of a minimization run. X is the
// best point found, Value the objective there. Converged reports
// whether the minimizer's own stopping criterion was met; an exhausted
// iteration budget or a line-search breakdown leaves it false while X
// still holds the best point seen.
type MinimizeResult struct {
	X          []float64
	Value      float64
	Iterations int
	Converged  bool
}

// Minimizer is the capability the Logit family needs from a numerical
// optimizer: drive an Objective from an initial point to a minimum.
// Implementations return an error only when no usable point was
// produced at all; running out of iterations is reported through
// MinimizeResult.Converged instead.
type Minimizer interface {
	// Name identifies the algorithm in results and warnings.
	Name() string
	Minimize(obj Objective, initial []float64) (*MinimizeResult, error)
}

// BFGSMinimizer minimizes with the quasi-Newton BFGS method from
// gonum.org/v1/gonum/optimize. It is the default Minimizer of the
// Logit family.
type BFGSMinimizer struct {
	MaxIterations     int
	GradientTolerance float64
}

// NewBFGSMinimizer returns a BFGSMinimizer with the given iteration
// budget and gradient infinity-norm threshold. Non-positive arguments
// fall back to the package defaults.
func NewBFGSMinimizer(maxIter int, gradTol float64) *BFGSMinimizer {
	if maxIter <= 0 {
		maxIter = defaultMaxIterations
	}
	if gradTol <= 0 {
		gradTol = defaultGradientTolerance
	}
	return &BFGSMinimizer{MaxIterations: maxIter, GradientTolerance: gradTol}
}

// Name returns "BFGS".
func (m *BFGSMinimizer) Name() string { return "BFGS" }

// Minimize runs BFGS from initial until the gradient threshold is met
// or the iteration budget runs out. The initial slice is not modified.
func (m *BFGSMinimizer) Minimize(obj Objective, initial []float64) (res *MinimizeResult, err error) {
	defer errors.Recover(&err, "BFGSMinimizer.Minimize")

	problem := optimize.Problem{
		Func: obj.Func,
		Grad: obj.Grad,
	}
	settings := &optimize.Settings{
		GradientThreshold: m.GradientTolerance,
		MajorIterations:   m.MaxIterations,
	}

	start := make([]float64, len(initial))
	copy(start, initial)

	result, optErr := optimize.Minimize(problem, start, settings, &optimize.BFGS{})
	if result == nil || len(result.X) == 0 {
		if optErr != nil {
			return nil, errors.Wrap(optErr, "statgo: BFGSMinimizer.Minimize: optimizer produced no point")
		}
		return nil, errors.New("statgo: BFGSMinimizer.Minimize: optimizer produced no point")
	}

	converged := false
	switch result.Status {
	case optimize.Success, optimize.FunctionThreshold, optimize.FunctionConvergence,
		optimize.GradientThreshold, optimize.StepConvergence, optimize.MethodConverge:
		converged = true
	}
	// A line-search breakdown surfaces as an error alongside the best
	// point found so far. Keep the point, report non-convergence.
	if optErr != nil {
		converged = false
	}
	if !finiteAll(result.X) || math.IsNaN(result.F) {
		converged = false
	}

	return &MinimizeResult{
		X:          result.X,
		Value:      result.F,
		Iterations: result.Stats.MajorIterations,
		Converged:  converged,
	}, nil
}

func finiteAll(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
