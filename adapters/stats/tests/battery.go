package tests

import (
	"context"

	"randlab/domain/battery"
	"randlab/domain/core"
	"randlab/domain/sample"
)

// Diagnostic is one member of the fixed five-test battery.
type Diagnostic interface {
	Kind() battery.Kind
	Description() string
	Run(ctx context.Context, s sample.Sample, freq sample.FrequencyTable, cfg battery.Config) battery.TestResult
}

// Battery evaluates the five randomness diagnostics over one sample.
type Battery struct {
	diagnostics []Diagnostic
}

// NewBattery creates the battery with its five diagnostics in report order.
func NewBattery() *Battery {
	return &Battery{
		diagnostics: []Diagnostic{
			NewUniformityTest(),
			NewIndependenceTest(),
			NewGapTest(),
			NewRunsTest(),
			NewEntropyTest(),
		},
	}
}

// ListDiagnostics returns the names of the battery members in order.
func (b *Battery) ListDiagnostics() []string {
	names := make([]string, len(b.diagnostics))
	for i, d := range b.diagnostics {
		names[i] = string(d.Kind())
	}
	return names
}

// RunAll validates the raw sequence and evaluates every diagnostic against it.
// The frequency table is computed once and shared read-only; the diagnostics
// have no data dependency between them and run concurrently. Malformed input
// is the only error path - a statistically failed or inconclusive diagnostic
// is data in the report, not an error.
func (b *Battery) RunAll(ctx context.Context, values []int, rangeN int, cfg battery.Config) (*battery.Report, error) {
	s, err := sample.New(values, rangeN)
	if err != nil {
		return nil, err
	}
	cfg = withDefaults(cfg)
	freq := s.Frequencies()

	results := make([]battery.TestResult, len(b.diagnostics))

	type indexedResult struct {
		result battery.TestResult
		index  int
	}
	resultChan := make(chan indexedResult, len(b.diagnostics))

	for i, d := range b.diagnostics {
		go func(d Diagnostic, idx int) {
			resultChan <- indexedResult{result: d.Run(ctx, s, freq, cfg), index: idx}
		}(d, i)
	}
	for range b.diagnostics {
		res := <-resultChan
		results[res.index] = res.result
	}

	return &battery.Report{
		RunID:       core.NewID(),
		RangeN:      rangeN,
		SampleSize:  s.Count(),
		Results:     results,
		Frequencies: freq,
		ComputedAt:  core.Now(),
	}, nil
}

// withDefaults fills zero-valued config fields with the standard settings so a
// partially specified config stays usable.
func withDefaults(cfg battery.Config) battery.Config {
	def := battery.DefaultConfig()
	if cfg.SignificanceLevel <= 0 || cfg.SignificanceLevel >= 1 {
		cfg.SignificanceLevel = def.SignificanceLevel
	}
	if !cfg.RunEqualPolicy.Valid() {
		cfg.RunEqualPolicy = def.RunEqualPolicy
	}
	if cfg.EntropyPassThreshold <= 0 || cfg.EntropyPassThreshold > 1 {
		cfg.EntropyPassThreshold = def.EntropyPassThreshold
	}
	if cfg.LowExpectedWarnFraction <= 0 || cfg.LowExpectedWarnFraction > 1 {
		cfg.LowExpectedWarnFraction = def.LowExpectedWarnFraction
	}
	return cfg
}

// inconclusive builds the no-verdict result shared by the diagnostics.
func inconclusive(kind battery.Kind, reason string) battery.TestResult {
	return battery.TestResult{
		Name:   string(kind),
		PValue: 1.0,
		Detail: map[string]interface{}{"reason": reason},
	}
}
