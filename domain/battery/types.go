package battery

import (
	"randlab/domain/core"
	"randlab/domain/sample"
)

// Kind identifies one member of the fixed five-test battery. The battery is a
// closed set of variants, not an extensible registry: no new diagnostic is
// anticipated by the domain.
type Kind string

const (
	KindUniformity   Kind = "uniformity"
	KindIndependence Kind = "independence"
	KindGap          Kind = "gap"
	KindRuns         Kind = "runs"
	KindEntropy      Kind = "entropy"
)

// Kinds returns the battery members in canonical report order.
func Kinds() []Kind {
	return []Kind{KindUniformity, KindIndependence, KindGap, KindRuns, KindEntropy}
}

// Config carries the tunable parameters shared by the diagnostics.
type Config struct {
	// SignificanceLevel is the alpha for the hypothesis-test diagnostics.
	SignificanceLevel float64 `json:"significance_level"`
	// GapBucketSize is the width of the closed gap-length buckets; 0 picks a
	// width from the range automatically.
	GapBucketSize int `json:"gap_bucket_size"`
	// RunEqualPolicy controls equal-value transitions in the runs test.
	RunEqualPolicy sample.EqualPolicy `json:"run_equal_policy"`
	// EntropyPassThreshold is the minimum entropy ratio for the heuristic
	// entropy verdict.
	EntropyPassThreshold float64 `json:"entropy_pass_threshold"`
	// LowExpectedWarnFraction flags the independence test when more than this
	// fraction of contingency cells have expected count below 5.
	LowExpectedWarnFraction float64 `json:"low_expected_warn_fraction"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		SignificanceLevel:       0.05,
		GapBucketSize:           0,
		RunEqualPolicy:          sample.EqualDrop,
		EntropyPassThreshold:    0.95,
		LowExpectedWarnFraction: 0.2,
	}
}

// TestResult is the immutable outcome of one diagnostic. A nil Passed means
// the diagnostic could not produce a meaningful statistic (inconclusive), with
// the reason recorded in Detail. Statistical failure is a data value here,
// never an error.
type TestResult struct {
	Name             string                 `json:"name"`
	Statistic        float64                `json:"statistic"`
	DegreesOfFreedom *int                   `json:"degrees_of_freedom,omitempty"`
	PValue           float64                `json:"p_value"`
	Threshold        float64                `json:"threshold"`
	Passed           *bool                  `json:"passed"`
	Detail           map[string]interface{} `json:"detail,omitempty"`
}

// Inconclusive reports whether the diagnostic produced no verdict.
func (r TestResult) Inconclusive() bool {
	return r.Passed == nil
}

// Verdict wraps a boolean verdict for the Passed field.
func Verdict(ok bool) *bool {
	return &ok
}

// DF wraps a degrees-of-freedom value.
func DF(df int) *int {
	return &df
}

// Report is the terminal artifact of the engine: the ordered test results plus
// the shared frequency table. Read-only to downstream consumers.
type Report struct {
	RunID       core.ID               `json:"run_id"`
	Source      string                `json:"source,omitempty"`
	RangeN      int                   `json:"range_n"`
	SampleSize  int                   `json:"sample_size"`
	Results     []TestResult          `json:"results"`
	Frequencies sample.FrequencyTable `json:"frequencies"`
	ComputedAt  core.Timestamp        `json:"computed_at"`
}

// Result returns the result for the given diagnostic, if present.
func (r *Report) Result(kind Kind) (TestResult, bool) {
	for _, res := range r.Results {
		if res.Name == string(kind) {
			return res, true
		}
	}
	return TestResult{}, false
}

// AllPassed reports whether every conclusive diagnostic passed.
// Inconclusive results do not count as failures.
func (r *Report) AllPassed() bool {
	for _, res := range r.Results {
		if res.Passed != nil && !*res.Passed {
			return false
		}
	}
	return true
}
