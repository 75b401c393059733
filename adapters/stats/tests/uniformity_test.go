package tests

import (
	"context"
	"math"
	"testing"

	"randlab/domain/battery"
	"randlab/domain/sample"
)

func runDiagnostic(t *testing.T, d Diagnostic, values []int, rangeN int, cfg battery.Config) battery.TestResult {
	t.Helper()
	s, err := sample.New(values, rangeN)
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	return d.Run(context.Background(), s, s.Frequencies(), cfg)
}

func TestUniformity_ExactUniformScoresZero(t *testing.T) {
	// Every value appears count/N times: the statistic must be exactly 0.
	values := make([]int, 0, 20)
	for rep := 0; rep < 4; rep++ {
		for v := 0; v < 5; v++ {
			values = append(values, v)
		}
	}
	res := runDiagnostic(t, NewUniformityTest(), values, 5, battery.DefaultConfig())

	if res.Statistic != 0 {
		t.Errorf("statistic = %v, want 0", res.Statistic)
	}
	if res.Passed == nil || !*res.Passed {
		t.Error("exactly uniform sample must pass")
	}
	if res.DegreesOfFreedom == nil || *res.DegreesOfFreedom != 4 {
		t.Errorf("df = %v, want 4", res.DegreesOfFreedom)
	}
	if math.Abs(res.PValue-1.0) > 1e-9 {
		t.Errorf("p-value = %v, want 1", res.PValue)
	}
}

func TestUniformity_HeavySkewFails(t *testing.T) {
	// 90 zeros, 10 ones with N=2: chi2 = 64 against critical 3.84.
	values := make([]int, 100)
	for i := 90; i < 100; i++ {
		values[i] = 1
	}
	res := runDiagnostic(t, NewUniformityTest(), values, 2, battery.DefaultConfig())

	if math.Abs(res.Statistic-64.0) > 1e-9 {
		t.Errorf("statistic = %v, want 64", res.Statistic)
	}
	if res.Passed == nil || *res.Passed {
		t.Error("heavily skewed sample must fail")
	}
}

func TestUniformity_DegenerateRange(t *testing.T) {
	res := runDiagnostic(t, NewUniformityTest(), []int{0, 0, 0}, 1, battery.DefaultConfig())

	if res.Passed == nil || !*res.Passed {
		t.Error("N=1 must be trivially passed")
	}
	if res.DegreesOfFreedom == nil || *res.DegreesOfFreedom != 0 {
		t.Errorf("N=1 df = %v, want 0", res.DegreesOfFreedom)
	}
}
