package tests

import (
	"context"

	"randlab/adapters/stats/dist"
	"randlab/domain/battery"
	"randlab/domain/sample"
)

// IndependenceTest detects short-range correlation between adjacent values
// with a serial chi-square test over an N x N contingency table of pairs.
//
// Convention, recorded in the result detail: pairs are overlapping
// (s[i], s[i+1]), the null baseline is uniform independence (every pair
// equally likely), and degrees of freedom are N^2 - 1.
type IndependenceTest struct{}

// NewIndependenceTest creates a new serial independence test
func NewIndependenceTest() *IndependenceTest {
	return &IndependenceTest{}
}

// Kind returns the diagnostic identifier
func (t *IndependenceTest) Kind() battery.Kind {
	return battery.KindIndependence
}

// Description returns a human-readable description
func (t *IndependenceTest) Description() string {
	return "Serial chi-square test of adjacent pair frequencies against the uniform-independence baseline"
}

// Run builds the pair contingency table and compares it cell by cell against
// the equal-likelihood expectation.
func (t *IndependenceTest) Run(ctx context.Context, s sample.Sample, freq sample.FrequencyTable, cfg battery.Config) battery.TestResult {
	pairs := s.Count() - 1
	if pairs < 1 {
		return inconclusive(t.Kind(), "sequence too short to form adjacent pairs")
	}
	if s.RangeN == 1 {
		return battery.TestResult{
			Name:             string(t.Kind()),
			Statistic:        0,
			DegreesOfFreedom: battery.DF(0),
			PValue:           1.0,
			Passed:           battery.Verdict(true),
			Detail: map[string]interface{}{
				"reason": "degenerate range N=1, single contingency cell",
			},
		}
	}

	n := s.RangeN
	cells := make([]int, n*n)
	for i := 0; i < pairs; i++ {
		cells[s.Values[i]*n+s.Values[i+1]]++
	}

	expected := float64(pairs) / float64(n*n)
	chiSq := 0.0
	lowExpected := 0
	for _, observed := range cells {
		d := float64(observed) - expected
		chiSq += d * d / expected
		if expected < 5 {
			lowExpected++
		}
	}

	df := n*n - 1
	pValue := dist.ChiSquarePValue(chiSq, df)
	critical := dist.ChiSquareCritical(cfg.SignificanceLevel, df)

	detail := map[string]interface{}{
		"pairing":            "overlapping",
		"df_convention":      "N^2-1",
		"pairs":              pairs,
		"expected_per_cell":  expected,
		"significance_level": cfg.SignificanceLevel,
	}
	// Standard chi-square validity heuristic: near-zero expected counts
	// inflate the statistic.
	lowFraction := float64(lowExpected) / float64(len(cells))
	if lowFraction > cfg.LowExpectedWarnFraction {
		detail["warning"] = "low_expected_counts"
		detail["low_expected_fraction"] = lowFraction
	}

	return battery.TestResult{
		Name:             string(t.Kind()),
		Statistic:        chiSq,
		DegreesOfFreedom: battery.DF(df),
		PValue:           pValue,
		Threshold:        critical,
		Passed:           battery.Verdict(chiSq <= critical),
		Detail:           detail,
	}
}
