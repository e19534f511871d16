package errors

import (
	"math"
)

// StabilizeLog returns log(max(value, 1e-10)). Applied to p and 1-p this
// realizes the probability clamp into [epsilon, 1-epsilon] used by the
// logistic log-likelihood, so the objective never evaluates log(0).
func StabilizeLog(value float64) float64 {
	const epsilon = 1e-10
	if value < epsilon {
		value = epsilon
	}
	return math.Log(value)
}

// StabilizeExp returns exp(value) with the argument capped at 700, near
// the largest input exp can take before overflowing float64; inputs below
// -700 return 0. The result is finite for any argument.
func StabilizeExp(value float64) float64 {
	const maxExp = 700.0
	switch {
	case value > maxExp:
		return math.Exp(maxExp)
	case value < -maxExp:
		return 0
	}
	return math.Exp(value)
}
