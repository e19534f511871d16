package regression

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/YuminosukeSato/statgo/pkg/errors"
)

// Coefficient is the complete inference record of one design-matrix
// column: the point estimate, its standard error, the test statistic
// of the zero-coefficient hypothesis and the two-sided p-value.
type Coefficient struct {
	Name      string  `json:"name"`
	Estimate  float64 `json:"estimate"`
	StdErr    float64 `json:"std_err"`
	Statistic float64 `json:"statistic"`
	PValue    float64 `json:"p_value"`
}

// FitStats summarizes the fit as a whole. Observations, Regressors,
// DF, LogLik, AIC and BIC are filled for both families. RSS,
// ResidualVariance, R2 and AdjR2 are meaningful for OLS only;
// Iterations is meaningful for Logit only. Converged is always true
// for OLS since the solution is closed form.
type FitStats struct {
	Observations     int     `json:"observations"`
	Regressors       int     `json:"regressors"`
	DF               int     `json:"df_residual"`
	RSS              float64 `json:"rss"`
	ResidualVariance float64 `json:"residual_variance"`
	R2               float64 `json:"r2"`
	AdjR2            float64 `json:"adj_r2"`
	LogLik           float64 `json:"log_likelihood"`
	AIC              float64 `json:"aic"`
	BIC              float64 `json:"bic"`
	Iterations       int     `json:"iterations"`
	Converged        bool    `json:"converged"`
}

// ConfidenceInterval is a two-sided interval for one coefficient.
type ConfidenceInterval struct {
	Name  string  `json:"name"`
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Results holds the outcome of a successful fit: the ordered
// coefficient records, fit statistics and any non-fatal warnings
// collected during estimation. Results values are immutable; all
// accessors return copies.
type Results struct {
	family   Family
	coefs    []Coefficient
	index    map[string]int
	stats    FitStats
	warnings []error
}

// newResults assembles the aligned estimation outputs into a Results
// value. All four value slices must have exactly one entry per name;
// any length disagreement is a ShapeMismatchError. The defense exists
// because estimators hand over independently built slices.
func newResults(family Family, names []string, coefs, ses, stats, pvals []float64, fs FitStats, warnings []error) (*Results, error) {
	k := len(names)
	if len(coefs) != k {
		return nil, errors.NewShapeMismatchError("Results", "coefficients", k, len(coefs))
	}
	if len(ses) != k {
		return nil, errors.NewShapeMismatchError("Results", "standard errors", k, len(ses))
	}
	if len(stats) != k {
		return nil, errors.NewShapeMismatchError("Results", "statistics", k, len(stats))
	}
	if len(pvals) != k {
		return nil, errors.NewShapeMismatchError("Results", "p-values", k, len(pvals))
	}

	records := make([]Coefficient, k)
	index := make(map[string]int, k)
	for j := 0; j < k; j++ {
		records[j] = Coefficient{
			Name:      names[j],
			Estimate:  coefs[j],
			StdErr:    ses[j],
			Statistic: stats[j],
			PValue:    pvals[j],
		}
		index[names[j]] = j
	}

	return &Results{
		family:   family,
		coefs:    records,
		index:    index,
		stats:    fs,
		warnings: warnings,
	}, nil
}

// Family returns the estimation family that produced these results.
func (r *Results) Family() Family { return r.family }

// StatisticLabel returns the header label of the statistic column:
// "t-stat" for OLS, "z-stat" for Logit.
func (r *Results) StatisticLabel() string { return r.family.statisticLabel() }

// Coefficients returns the per-variable records in design-matrix
// column order, with the intercept last when one was fitted.
func (r *Results) Coefficients() []Coefficient {
	out := make([]Coefficient, len(r.coefs))
	copy(out, r.coefs)
	return out
}

// Names returns the variable names in design-matrix column order.
func (r *Results) Names() []string {
	out := make([]string, len(r.coefs))
	for j, c := range r.coefs {
		out[j] = c.Name
	}
	return out
}

// Lookup returns the record of the named variable. The second return
// value is false when the name was not part of the design matrix.
func (r *Results) Lookup(name string) (Coefficient, bool) {
	j, ok := r.index[name]
	if !ok {
		return Coefficient{}, false
	}
	return r.coefs[j], true
}

// Stats returns the whole-fit statistics.
func (r *Results) Stats() FitStats { return r.stats }

// Warnings returns the non-fatal warnings collected during the fit,
// such as a ConvergenceWarning from the minimizer. Empty on a clean
// fit.
func (r *Results) Warnings() []error {
	out := make([]error, len(r.warnings))
	copy(out, r.warnings)
	return out
}

// ConfInt returns two-sided (1-alpha) confidence intervals for every
// coefficient, in design-matrix column order. The critical value comes
// from the family's reference distribution: Student's t with DF
// degrees of freedom for OLS, the standard normal for Logit.
func (r *Results) ConfInt(alpha float64) ([]ConfidenceInterval, error) {
	if alpha <= 0 || alpha >= 1 {
		return nil, errors.NewInvalidConfigurationError("alpha", "must lie strictly between 0 and 1", alpha)
	}

	var crit float64
	switch r.family {
	case Logit:
		crit = distuv.Normal{Mu: 0, Sigma: 1}.Quantile(1 - alpha/2)
	default:
		t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(r.stats.DF)}
		crit = t.Quantile(1 - alpha/2)
	}

	out := make([]ConfidenceInterval, len(r.coefs))
	for j, c := range r.coefs {
		out[j] = ConfidenceInterval{
			Name:  c.Name,
			Lower: c.Estimate - crit*c.StdErr,
			Upper: c.Estimate + crit*c.StdErr,
		}
	}
	return out, nil
}

// WriteSummary renders the fixed-layout text summary to w: a short
// preamble of fit statistics followed by one aligned row per variable
// with coefficient, standard error, test statistic and p-value.
func (r *Results) WriteSummary(w io.Writer) error {
	// Preamble lines carry no tabs, so the tabwriter passes them
	// through verbatim and only the coefficient rows get aligned.
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Family: %s\n", r.family)
	fmt.Fprintf(tw, "Observations: %d\n", r.stats.Observations)
	fmt.Fprintf(tw, "Regressors: %d\n", r.stats.Regressors)
	switch r.family {
	case Logit:
		fmt.Fprintf(tw, "Converged: %t (%d iterations)\n", r.stats.Converged, r.stats.Iterations)
		fmt.Fprintf(tw, "Log-likelihood: %.6f\n", r.stats.LogLik)
	default:
		fmt.Fprintf(tw, "R-squared: %.6f\n", r.stats.R2)
		fmt.Fprintf(tw, "Adj. R-squared: %.6f\n", r.stats.AdjR2)
	}
	fmt.Fprintf(tw, "AIC: %.6f  BIC: %.6f\n\n", r.stats.AIC, r.stats.BIC)

	fmt.Fprintf(tw, "Variable\tCoefficient\tStd. Error\t%s\tP-value\n", r.family.statisticLabel())
	for _, c := range r.coefs {
		fmt.Fprintf(tw, "%s\t%.6f\t%.6f\t%.6f\t%.6f\n", c.Name, c.Estimate, c.StdErr, c.Statistic, c.PValue)
	}
	if err := tw.Flush(); err != nil {
		return errors.Wrap(err, "statgo: Results.WriteSummary")
	}
	return nil
}

// Summary returns the text summary as a string.
func (r *Results) Summary() (string, error) {
	var sb strings.Builder
	if err := r.WriteSummary(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
