package tests

import (
	"context"
	"math"

	"randlab/adapters/stats/dist"
	"randlab/domain/battery"
	"randlab/domain/sample"
)

// RunsTest checks up/down run counts against the classical expectation for an
// independent sequence: for an effective length m, expected runs (2m-1)/3 with
// variance (16m-29)/90, compared through a two-sided z statistic.
type RunsTest struct{}

// NewRunsTest creates a new runs test
func NewRunsTest() *RunsTest {
	return &RunsTest{}
}

// Kind returns the diagnostic identifier
func (t *RunsTest) Kind() battery.Kind {
	return battery.KindRuns
}

// Description returns a human-readable description
func (t *RunsTest) Description() string {
	return "Two-sided z-test of up/down run counts against the expectation for an independent sequence"
}

// Run partitions the movement sequence into maximal same-direction runs and
// normalizes the observed run count.
func (t *RunsTest) Run(ctx context.Context, s sample.Sample, freq sample.FrequencyTable, cfg battery.Config) battery.TestResult {
	rs := s.Runs(cfg.RunEqualPolicy)
	if rs.Movements < 1 {
		return inconclusive(t.Kind(), "no up/down movement after applying equal-value policy")
	}

	// Effective sequence length after the equal policy: movements plus one,
	// as if ties had been removed from the value sequence.
	m := float64(rs.Movements + 1)
	expectedRuns := (2*m - 1) / 3
	variance := (16*m - 29) / 90
	if variance <= 0 {
		return inconclusive(t.Kind(), "sequence too short for run-count variance")
	}

	z := (float64(rs.Count()) - expectedRuns) / math.Sqrt(variance)
	critical := dist.NormalTwoSidedCritical(cfg.SignificanceLevel)
	pValue := dist.NormalTwoSidedPValue(z)

	return battery.TestResult{
		Name:      string(t.Kind()),
		Statistic: z,
		PValue:    pValue,
		Threshold: critical,
		Passed:    battery.Verdict(math.Abs(z) <= critical),
		Detail: map[string]interface{}{
			"equal_policy":         string(rs.Policy),
			"runs":                 rs.Count(),
			"movements":            rs.Movements,
			"expected_runs":        expectedRuns,
			"variance":             variance,
			"run_length_histogram": rs.LengthHistogram(),
			"significance_level":   cfg.SignificanceLevel,
		},
	}
}
