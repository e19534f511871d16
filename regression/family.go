package regression

import (
	"strings"

	"github.com/YuminosukeSato/statgo/pkg/errors"
)

// Family identifies the estimation family of a Model. It selects both
// the fitting algorithm and the inference conventions (reference
// distribution, statistic label) used when assembling results.
type Family int

const (
	// OLS is ordinary least squares for a continuous response.
	// Coefficients come from the normal equations and inference uses
	// the Student's t distribution.
	OLS Family = iota

	// Logit is binary logistic regression for a 0/1 response.
	// Coefficients come from numerical likelihood maximization and
	// inference uses the standard normal distribution.
	Logit
)

// String returns the canonical lowercase name of the family.
func (f Family) String() string {
	switch f {
	case OLS:
		return "ols"
	case Logit:
		return "logit"
	default:
		return "unknown"
	}
}

// statisticLabel returns the column label of the per-coefficient test
// statistic in summaries: "t-stat" for OLS, "z-stat" for Logit.
func (f Family) statisticLabel() string {
	if f == Logit {
		return "z-stat"
	}
	return "t-stat"
}

func (f Family) valid() bool {
	return f == OLS || f == Logit
}

// ParseFamily converts a case-insensitive family name ("ols", "logit")
// into a Family. Unknown names return an InvalidConfigurationError.
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ols":
		return OLS, nil
	case "logit":
		return Logit, nil
	default:
		return OLS, errors.NewInvalidConfigurationError("family", "must be one of: ols, logit", s)
	}
}
