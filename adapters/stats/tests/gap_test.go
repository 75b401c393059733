package tests

import (
	"testing"

	"randlab/domain/battery"
)

func TestGap_NoRepeatsIsInconclusive(t *testing.T) {
	res := runDiagnostic(t, NewGapTest(), []int{0, 1, 2, 3}, 8, battery.DefaultConfig())

	if !res.Inconclusive() {
		t.Errorf("no repeated value: expected inconclusive, got passed=%v", *res.Passed)
	}
	if res.Detail["reason"] == "" {
		t.Error("inconclusive gap result should explain itself")
	}
}

func TestGap_PeriodicSequenceFails(t *testing.T) {
	// A strictly periodic sequence piles every gap onto a single length,
	// nothing like the geometric spread of a uniform source.
	values := make([]int, 400)
	for i := range values {
		values[i] = i % 4
	}
	res := runDiagnostic(t, NewGapTest(), values, 4, battery.DefaultConfig())

	if res.Passed == nil || *res.Passed {
		t.Errorf("periodic sequence must fail the gap test, stat=%v", res.Statistic)
	}
	if res.DegreesOfFreedom == nil || *res.DegreesOfFreedom != gapBuckets-1 {
		t.Errorf("df = %v, want %d", res.DegreesOfFreedom, gapBuckets-1)
	}
	if res.Detail["total_gaps"] != 396 {
		t.Errorf("total gaps = %v, want 396", res.Detail["total_gaps"])
	}
	// Every gap in the periodic sequence has 3 intervening draws.
	if res.Detail["mean_gap"] != 3.0 {
		t.Errorf("mean gap = %v, want 3", res.Detail["mean_gap"])
	}
}

func TestGap_BucketSizeOverride(t *testing.T) {
	values := make([]int, 100)
	for i := range values {
		values[i] = i % 4
	}
	cfg := battery.DefaultConfig()
	cfg.GapBucketSize = 2

	res := runDiagnostic(t, NewGapTest(), values, 4, cfg)
	if res.Detail["bucket_size"] != 2 {
		t.Errorf("bucket size = %v, want 2", res.Detail["bucket_size"])
	}
}

func TestGap_DegenerateRange(t *testing.T) {
	res := runDiagnostic(t, NewGapTest(), []int{0, 0, 0, 0}, 1, battery.DefaultConfig())
	if res.Passed == nil || !*res.Passed {
		t.Error("N=1: all gaps are zero by construction, trivially passed")
	}
}
