package tests

import (
	"context"
	"math"

	"github.com/montanaflynn/stats"

	"randlab/adapters/stats/dist"
	"randlab/domain/battery"
	"randlab/domain/sample"
)

// gapBuckets is the number of gap-length buckets: closed fixed-width buckets
// plus one final open-ended bucket keeping the bin count tractable.
const gapBuckets = 8

// GapTest checks the distribution of distances between repeated occurrences of
// each value against the geometric law of a uniform source: a gap of length g
// (g intervening draws) has probability (1-1/N)^g * 1/N.
type GapTest struct{}

// NewGapTest creates a new gap-length test
func NewGapTest() *GapTest {
	return &GapTest{}
}

// Kind returns the diagnostic identifier
func (t *GapTest) Kind() battery.Kind {
	return battery.KindGap
}

// Description returns a human-readable description
func (t *GapTest) Description() string {
	return "Chi-square comparison of bucketed gap lengths against the geometric distribution with hit probability 1/N"
}

// Run aggregates gap lengths across all values and compares the bucketed
// empirical distribution against the identically bucketed geometric law.
func (t *GapTest) Run(ctx context.Context, s sample.Sample, freq sample.FrequencyTable, cfg battery.Config) battery.TestResult {
	if s.RangeN == 1 {
		// Hit probability 1: every gap is 0 with certainty, which is what a
		// single-value sample always shows.
		return battery.TestResult{
			Name:             string(t.Kind()),
			Statistic:        0,
			DegreesOfFreedom: battery.DF(0),
			PValue:           1.0,
			Passed:           battery.Verdict(true),
			Detail: map[string]interface{}{
				"reason": "degenerate range N=1, all gaps are zero by construction",
			},
		}
	}

	gaps := s.AllGaps()
	if len(gaps) == 0 {
		return inconclusive(t.Kind(), "no value repeats, no gaps to test")
	}

	bucketSize := cfg.GapBucketSize
	if bucketSize <= 0 {
		// Width scaled to the mean gap N-1 so the closed buckets carry most
		// of the geometric mass.
		bucketSize = (s.RangeN + 3) / 4
	}

	observed := make([]int, gapBuckets)
	for _, g := range gaps {
		idx := g / bucketSize
		if idx >= gapBuckets-1 {
			idx = gapBuckets - 1
		}
		observed[idx]++
	}

	// Theoretical bucket mass in closed form: P(a <= g < b) = q^a - q^b for
	// the geometric law with q = 1 - 1/N; the final bucket is open-ended.
	q := 1 - 1/float64(s.RangeN)
	total := float64(len(gaps))
	chiSq := 0.0
	expectedCounts := make([]float64, gapBuckets)
	for i := 0; i < gapBuckets; i++ {
		low := float64(i * bucketSize)
		var prob float64
		if i == gapBuckets-1 {
			prob = math.Pow(q, low)
		} else {
			prob = math.Pow(q, low) - math.Pow(q, float64((i+1)*bucketSize))
		}
		expected := prob * total
		expectedCounts[i] = expected
		d := float64(observed[i]) - expected
		chiSq += d * d / expected
	}

	df := gapBuckets - 1
	pValue := dist.ChiSquarePValue(chiSq, df)
	critical := dist.ChiSquareCritical(cfg.SignificanceLevel, df)

	gapFloats := make([]float64, len(gaps))
	for i, g := range gaps {
		gapFloats[i] = float64(g)
	}
	meanGap, _ := stats.Mean(gapFloats)
	stdGap, _ := stats.StandardDeviation(gapFloats)

	detail := map[string]interface{}{
		"bucket_size":        bucketSize,
		"buckets":            gapBuckets,
		"total_gaps":         len(gaps),
		"mean_gap":           meanGap,
		"gap_std":            stdGap,
		"significance_level": cfg.SignificanceLevel,
	}
	lowExpected := 0
	for _, e := range expectedCounts {
		if e < 5 {
			lowExpected++
		}
	}
	if float64(lowExpected)/float64(gapBuckets) > cfg.LowExpectedWarnFraction {
		detail["warning"] = "low_expected_counts"
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
