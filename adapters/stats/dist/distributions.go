package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Thin wrappers over gonum's distributions so the diagnostics share one place
// for p-values and critical values instead of fragmented CDF calls.

// ChiSquarePValue computes the survival-function p-value for a chi-square
// statistic with the given degrees of freedom.
func ChiSquarePValue(statistic float64, degreesOfFreedom int) float64 {
	if degreesOfFreedom <= 0 {
		return 1.0
	}
	chiDist := distuv.ChiSquared{K: float64(degreesOfFreedom)}
	return 1 - chiDist.CDF(statistic)
}

// ChiSquareCritical returns the chi-square critical value at significance
// level alpha (upper tail).
func ChiSquareCritical(alpha float64, degreesOfFreedom int) float64 {
	if degreesOfFreedom <= 0 {
		return 0
	}
	chiDist := distuv.ChiSquared{K: float64(degreesOfFreedom)}
	return chiDist.Quantile(1 - alpha)
}

// NormalTwoSidedPValue computes the two-sided p-value for a z statistic.
func NormalTwoSidedPValue(z float64) float64 {
	return 2 * (1 - distuv.UnitNormal.CDF(math.Abs(z)))
}

// NormalTwoSidedCritical returns the two-sided normal critical value at
// significance level alpha (1.96 for alpha = 0.05).
func NormalTwoSidedCritical(alpha float64) float64 {
	return distuv.UnitNormal.Quantile(1 - alpha/2)
}
