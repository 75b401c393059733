package config

import (
	"testing"

	"randlab/domain/sample"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Analysis.RangeN != 100 || cfg.Analysis.Count != 10000 {
		t.Errorf("analysis defaults = %d/%d", cfg.Analysis.RangeN, cfg.Analysis.Count)
	}
	if cfg.Battery.SignificanceLevel != 0.05 {
		t.Errorf("significance = %v", cfg.Battery.SignificanceLevel)
	}
	if cfg.Battery.RunEqualPolicy != sample.EqualDrop {
		t.Errorf("equal policy = %q", cfg.Battery.RunEqualPolicy)
	}
	if cfg.Store.DSN != "" {
		t.Errorf("persistence should be off by default, got DSN %q", cfg.Store.DSN)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RANDLAB_N", "16")
	t.Setenv("RANDLAB_COUNT", "500")
	t.Setenv("RANDLAB_EQUAL_POLICY", "extend")
	t.Setenv("RANDLAB_ENTROPY_THRESHOLD", "0.9")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Analysis.RangeN != 16 || cfg.Analysis.Count != 500 {
		t.Errorf("analysis = %d/%d", cfg.Analysis.RangeN, cfg.Analysis.Count)
	}
	if cfg.Battery.RunEqualPolicy != sample.EqualExtend {
		t.Errorf("equal policy = %q", cfg.Battery.RunEqualPolicy)
	}
	if cfg.Battery.EntropyPassThreshold != 0.9 {
		t.Errorf("entropy threshold = %v", cfg.Battery.EntropyPassThreshold)
	}
}

func TestLoad_RejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"RANDLAB_N":            "0",
		"RANDLAB_COUNT":        "-5",
		"RANDLAB_EQUAL_POLICY": "average",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("%s=%s must not validate", key, value)
			}
		})
	}
}
