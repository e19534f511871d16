package regression

import (
	"github.com/YuminosukeSato/statgo/pkg/errors"
)

// Default optimizer settings for the Logit family. OLS has a closed
// form and never consults them.
const (
	defaultMaxIterations     = 200
	defaultGradientTolerance = 1e-8
)

// config collects everything a Model needs to know before fitting.
// It is populated by Option values and frozen at construction.
type config struct {
	family    Family
	intercept bool      // append a constant column to the design matrix
	maxIter   int       // iteration budget for numerical minimization
	gradTol   float64   // gradient infinity-norm convergence threshold
	minimizer Minimizer // nil means a BFGS minimizer built from maxIter/gradTol
}

func defaultConfig() config {
	return config{
		family:    OLS,
		intercept: true,
		maxIter:   defaultMaxIterations,
		gradTol:   defaultGradientTolerance,
	}
}

// validate reports the first invalid setting as an
// InvalidConfigurationError. Called once by NewModel after all options
// have been applied.
func (c *config) validate() error {
	if !c.family.valid() {
		return errors.NewInvalidConfigurationError("family", "must be one of: ols, logit", int(c.family))
	}
	if c.maxIter <= 0 {
		return errors.NewInvalidConfigurationError("maxIterations", "must be a positive integer", c.maxIter)
	}
	if c.gradTol <= 0 {
		return errors.NewInvalidConfigurationError("gradientTolerance", "must be strictly positive", c.gradTol)
	}
	return nil
}

// Option is a functional option that configures a Model at
// construction time.
type Option func(*config)

// WithFamily selects the estimation family. The default is OLS.
func WithFamily(f Family) Option {
	return func(c *config) {
		c.family = f
	}
}

// WithIntercept sets whether a constant column is appended to the
// design matrix. The default is true; the column is always the last
// one and is named after dataset.InterceptName.
func WithIntercept(on bool) Option {
	return func(c *config) {
		c.intercept = on
	}
}

// WithMaxIterations sets the iteration budget for the numerical
// minimizer used by the Logit family.
func WithMaxIterations(n int) Option {
	return func(c *config) {
		c.maxIter = n
	}
}

// WithGradientTolerance sets the gradient infinity-norm threshold
// below which the numerical minimizer declares convergence.
func WithGradientTolerance(tol float64) Option {
	return func(c *config) {
		c.gradTol = tol
	}
}

// WithMinimizer replaces the default BFGS minimizer with a custom
// implementation. Passing nil restores the default.
func WithMinimizer(m Minimizer) Option {
	return func(c *config) {
		c.minimizer = m
	}
}
