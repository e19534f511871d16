package regression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/statgo/pkg/errors"
)

// A strictly convex quadratic with its minimum at (3, -1).
func quadraticObjective() Objective {
	return Objective{
		Func: func(beta []float64) float64 {
			d0 := beta[0] - 3
			d1 := beta[1] + 1
			return d0*d0 + 2*d1*d1
		},
		Grad: func(grad, beta []float64) {
			grad[0] = 2 * (beta[0] - 3)
			grad[1] = 4 * (beta[1] + 1)
		},
	}
}

func TestBFGSMinimizerQuadratic(t *testing.T) {
	m := NewBFGSMinimizer(100, 1e-10)

	initial := []float64{0, 0}
	res, err := m.Minimize(quadraticObjective(), initial)
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.InDelta(t, 3.0, res.X[0], 1e-6)
	assert.InDelta(t, -1.0, res.X[1], 1e-6)
	assert.InDelta(t, 0.0, res.Value, 1e-10)
	assert.Greater(t, res.Iterations, 0)

	// The caller's starting point must survive the run.
	assert.Equal(t, []float64{0, 0}, initial)
}

func TestBFGSMinimizerIterationLimit(t *testing.T) {
	// Rosenbrock needs far more than two iterations from this start.
	obj := Objective{
		Func: func(b []float64) float64 {
			a := 1 - b[0]
			c := b[1] - b[0]*b[0]
			return a*a + 100*c*c
		},
		Grad: func(grad, b []float64) {
			grad[0] = -2*(1-b[0]) - 400*b[0]*(b[1]-b[0]*b[0])
			grad[1] = 200 * (b[1] - b[0]*b[0])
		},
	}

	m := NewBFGSMinimizer(2, 1e-12)
	res, err := m.Minimize(obj, []float64{-1.2, 1})
	require.NoError(t, err)

	assert.False(t, res.Converged)
	assert.Len(t, res.X, 2)
	assert.True(t, finiteAll(res.X))
}

func TestBFGSMinimizerPanicRecovery(t *testing.T) {
	obj := Objective{
		Func: func([]float64) float64 {
			panic("objective blew up")
		},
		Grad: func(grad, _ []float64) {
			for i := range grad {
				grad[i] = 0
			}
		},
	}

	m := NewBFGSMinimizer(10, 1e-8)
	res, err := m.Minimize(obj, []float64{1})
	require.Error(t, err)
	assert.Nil(t, res)

	var panicErr *errors.PanicError
	require.ErrorAs(t, err, &panicErr)
	assert.Equal(t, "BFGSMinimizer.Minimize", panicErr.Operation)
}

func TestNewBFGSMinimizerDefaults(t *testing.T) {
	m := NewBFGSMinimizer(0, 0)
	assert.Equal(t, defaultMaxIterations, m.MaxIterations)
	assert.Equal(t, defaultGradientTolerance, m.GradientTolerance)
	assert.Equal(t, "BFGS", m.Name())
}
