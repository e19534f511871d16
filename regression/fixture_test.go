package regression

import (
	"testing"

	"github.com/YuminosukeSato/statgo/dataset"
)

// Synthetic worker survey used across the estimation tests: 101
// respondents with sex, age and years of education as regressors, a
// white/non-white race indicator as the binary outcome and hourly wage
// as the continuous outcome. Reference estimates were produced by an
// independent Newton-Raphson implementation in Python, iterated until
// the gradient infinity norm fell below 1e-12, with p-values and
// critical values from incomplete-beta and erfc expansions validated
// against published t tables.

var surveySex = []float64{
	1, 0, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0,
	0, 1, 1, 0, 1, 1, 1, 0, 1, 0, 1, 0, 1, 0, 0, 0, 0, 0, 1, 0,
	1, 0, 1, 0, 0, 1, 1, 0, 0, 0, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0,
	1, 0, 0, 0, 0, 1, 0, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1, 0,
	0, 1, 1, 0, 1, 1, 0, 1, 0, 1, 1, 0, 0, 1, 0, 1, 0, 1, 1, 1,
	0,
}

var surveyAge = []float64{
	37, 63, 21, 38, 28, 36, 24, 68, 55, 44, 37, 61, 23, 65, 29, 40, 41, 29, 50, 42,
	53, 41, 42, 51, 37, 59, 37, 27, 53, 65, 19, 43, 21, 48, 40, 63, 22, 45, 28, 22,
	29, 52, 31, 42, 57, 57, 40, 33, 25, 47, 62, 68, 30, 54, 19, 26, 69, 42, 64, 42,
	52, 59, 54, 24, 68, 51, 19, 24, 42, 25, 43, 57, 69, 42, 66, 56, 44, 29, 59, 33,
	58, 24, 66, 69, 18, 29, 37, 44, 59, 36, 37, 51, 58, 43, 25, 42, 65, 29, 35, 23,
	64,
}

var surveyEduc = []float64{
	17, 14, 12, 15, 14, 10, 18, 15, 8, 13, 19, 11, 8, 18, 10, 14, 16, 15, 14, 19,
	16, 12, 9, 14, 19, 16, 16, 19, 13, 12, 11, 18, 12, 11, 17, 11, 17, 14, 10, 17,
	9, 19, 11, 14, 16, 15, 11, 20, 20, 10, 20, 8, 15, 14, 20, 13, 11, 14, 9, 16,
	17, 10, 15, 14, 18, 14, 17, 17, 15, 10, 11, 19, 9, 18, 14, 11, 15, 19, 10, 14,
	13, 20, 13, 10, 14, 13, 17, 19, 16, 10, 17, 19, 16, 8, 16, 10, 20, 12, 13, 16,
	15,
}

var surveyWhite = []float64{
	1, 1, 1, 1, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1,
}

var surveyWage = []float64{
	18.858993, 19.600916, 11.620038, 17.942765, 14.176789, 17.059446, 19.554867, 22.328914,
	14.423095, 17.985644, 17.975976, 17.571832, 14.842384, 22.472283, 10.725521, 14.593522,
	18.992021, 15.740190, 20.893530, 20.081173, 19.571897, 15.840153, 12.897242, 19.061061,
	17.151206, 21.164482, 17.124717, 20.363748, 18.660509, 17.438860, 8.802248, 21.619905,
	13.791600, 17.721988, 18.031952, 19.926140, 16.749471, 17.950849, 15.112634, 19.514179,
	14.414530, 24.014691, 13.907557, 19.884111, 19.679509, 18.604657, 16.320349, 20.653856,
	19.519413, 14.007229, 21.343397, 20.727728, 16.192993, 18.854721, 21.367564, 12.822544,
	19.523595, 19.590528, 15.868651, 20.534760, 18.104550, 16.733054, 18.051113, 17.898290,
	21.607744, 17.213590, 19.003765, 16.405541, 18.304690, 15.471702, 13.455198, 23.037587,
	18.927807, 19.234053, 19.376750, 17.594805, 15.011653, 22.720690, 19.787504, 17.357501,
	18.666903, 20.568557, 17.363567, 16.628985, 14.661960, 16.220954, 23.047681, 21.439926,
	20.795688, 16.602191, 18.460422, 23.128050, 19.506677, 14.309464, 18.874100, 13.826211,
	24.793000, 11.265223, 13.015500, 16.648969, 23.539090,
}

// Reference order matches the design matrix: sex, age, educ, intercept.

var logitRefCoef = []float64{
	-1.123348426771, -0.008243989394, -0.087452209938, 5.735051061130,
}

var logitRefSE = []float64{
	0.397905129256, 0.012757015159, 0.054808078877, 1.191513468873,
}

var logitRefZ = []float64{
	-2.823156436491, -0.646231841206, -1.595608014921, 4.813249040782,
}

var logitRefP = []float64{
	0.004755336218, 0.518129221380, 0.110576336963, 0.000001484960,
}

var logitRefCILow = []float64{
	-1.9032281494, -0.0332472797, -0.1948740706, 3.3997275750,
}

var logitRefCIHigh = []float64{
	-0.3434687042, 0.0167593009, 0.0199696507, 8.0703745472,
}

const (
	logitRefNLLAtStart = 18.0809445534 // objective at the flat 0.1 start
	logitRefNLL        = 13.1375406761
	logitRefAIC        = 34.2750813523
	logitRefBIC        = 44.7355634196
)

var olsRefCoef = []float64{
	-1.470311378095, 0.087704620576, 0.559190550739, 6.850272612488,
}

var olsRefSE = []float64{
	0.393238430130, 0.012607398712, 0.054165280393, 1.177539195977,
}

var olsRefT = []float64{
	-3.738981913870, 6.956599261744, 10.323782073693, 5.817447636472,
}

var olsRefP = []float64{
	3.125602683582e-04, 4.100167105702e-10, 2.684012634320e-17, 7.680132462236e-08,
}

var olsRefCILow = []float64{
	-2.2507808080, 0.0626824240, 0.4516874629, 4.5131832678,
}

var olsRefCIHigh = []float64{
	-0.6898419482, 0.1127268171, 0.6666936386, 9.1873619572,
}

const (
	olsRefRSS    = 275.7722250315
	olsRefSigma2 = 2.8430126292
	olsRefR2     = 0.7121750775
	olsRefAdjR2  = 0.7032732757
	olsRefLogLik = -194.0377560483
	olsRefAIC    = 396.0755120966
	olsRefBIC    = 406.5359941639
)

// surveyNames is the expected design column order for the survey
// regressors with an intercept.
var surveyNames = []string{"sex", "age", "educ", dataset.InterceptName}

// surveyRegressors assembles the three survey regressors in their
// canonical insertion order.
func surveyRegressors(t *testing.T) *dataset.Table {
	t.Helper()
	tab := dataset.NewTable()
	for _, col := range []struct {
		name   string
		values []float64
	}{
		{"sex", surveySex},
		{"age", surveyAge},
		{"educ", surveyEduc},
	} {
		if err := tab.Add(col.name, col.values); err != nil {
			t.Fatalf("Add(%s): %v", col.name, err)
		}
	}
	return tab
}

func surveyColumn(t *testing.T, name string, values []float64) *dataset.Column {
	t.Helper()
	c, err := dataset.NewColumn(name, values)
	if err != nil {
		t.Fatalf("NewColumn(%s): %v", name, err)
	}
	return c
}

func surveyWhiteColumn(t *testing.T) *dataset.Column {
	return surveyColumn(t, "white", surveyWhite)
}

func surveyWageColumn(t *testing.T) *dataset.Column {
	return surveyColumn(t, "wage", surveyWage)
}
