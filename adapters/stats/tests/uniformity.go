package tests

import (
	"context"

	"randlab/adapters/stats/dist"
	"randlab/domain/battery"
	"randlab/domain/sample"
)

// UniformityTest checks the value distribution against the discrete uniform
// law with a chi-square goodness-of-fit statistic.
type UniformityTest struct{}

// NewUniformityTest creates a new uniformity test
func NewUniformityTest() *UniformityTest {
	return &UniformityTest{}
}

// Kind returns the diagnostic identifier
func (t *UniformityTest) Kind() battery.Kind {
	return battery.KindUniformity
}

// Description returns a human-readable description
func (t *UniformityTest) Description() string {
	return "Chi-square goodness-of-fit of value frequencies against the discrete uniform distribution"
}

// Run compares observed bin counts against count/N per bin.
func (t *UniformityTest) Run(ctx context.Context, s sample.Sample, freq sample.FrequencyTable, cfg battery.Config) battery.TestResult {
	if s.RangeN == 1 {
		// All mass in one bin is exactly what the uniform law over a single
		// value predicts; nothing to test.
		return battery.TestResult{
			Name:             string(t.Kind()),
			Statistic:        0,
			DegreesOfFreedom: battery.DF(0),
			PValue:           1.0,
			Passed:           battery.Verdict(true),
			Detail: map[string]interface{}{
				"reason": "degenerate range N=1, trivially uniform",
			},
		}
	}

	expected := float64(freq.Total) / float64(s.RangeN)
	chiSq := 0.0
	for _, observed := range freq.Counts {
		d := float64(observed) - expected
		chiSq += d * d / expected
	}

	df := s.RangeN - 1
	pValue := dist.ChiSquarePValue(chiSq, df)
	critical := dist.ChiSquareCritical(cfg.SignificanceLevel, df)

	return battery.TestResult{
		Name:             string(t.Kind()),
		Statistic:        chiSq,
		DegreesOfFreedom: battery.DF(df),
		PValue:           pValue,
		Threshold:        critical,
		Passed:           battery.Verdict(chiSq <= critical),
		Detail: map[string]interface{}{
			"expected_per_bin":   expected,
			"significance_level": cfg.SignificanceLevel,
		},
	}
}
