package tests

import (
	"context"
	"math"

	"randlab/domain/battery"
	"randlab/domain/sample"
)

// EntropyTest estimates the empirical Shannon entropy of the value
// distribution and compares the ratio against the maximum log2(N).
//
// This is a heuristic quality signal with a configurable threshold, not an
// exact-distribution hypothesis test; the result detail says so.
type EntropyTest struct{}

// NewEntropyTest creates a new entropy test
func NewEntropyTest() *EntropyTest {
	return &EntropyTest{}
}

// Kind returns the diagnostic identifier
func (t *EntropyTest) Kind() battery.Kind {
	return battery.KindEntropy
}

// Description returns a human-readable description
func (t *EntropyTest) Description() string {
	return "Empirical Shannon entropy of the value distribution as a fraction of the log2(N) maximum"
}

// Run computes H = -sum p*log2(p) over the frequency table and reports the
// ratio H / log2(N).
func (t *EntropyTest) Run(ctx context.Context, s sample.Sample, freq sample.FrequencyTable, cfg battery.Config) battery.TestResult {
	if s.RangeN == 1 {
		// log2(1) = 0: the single-value distribution is exactly uniform over
		// its range, so the ratio is 1 by convention.
		return battery.TestResult{
			Name:      string(t.Kind()),
			Statistic: 1.0,
			PValue:    1.0,
			Threshold: cfg.EntropyPassThreshold,
			Passed:    battery.Verdict(true),
			Detail: map[string]interface{}{
				"reason":    "degenerate range N=1, zero maximum entropy",
				"heuristic": true,
			},
		}
	}

	entropy := 0.0
	for v := range freq.Counts {
		p := freq.Probability(v)
		if p == 0 {
			// Zero-probability terms contribute 0, not NaN.
			continue
		}
		entropy -= p * math.Log2(p)
	}

	maxEntropy := math.Log2(float64(s.RangeN))
	ratio := entropy / maxEntropy
	if ratio > 1 {
		ratio = 1 // guard against rounding just above the maximum
	}

	return battery.TestResult{
		Name:      string(t.Kind()),
		Statistic: ratio,
		PValue:    1.0,
		Threshold: cfg.EntropyPassThreshold,
		Passed:    battery.Verdict(ratio >= cfg.EntropyPassThreshold),
		Detail: map[string]interface{}{
			"entropy_bits":     entropy,
			"max_entropy_bits": maxEntropy,
			"deficit_bits":     maxEntropy - entropy,
			"heuristic":        true,
			"note":             "threshold quality signal, not an exact-distribution test",
		},
	}
}
