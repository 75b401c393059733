package config

import (
	"os"
	"strconv"

	"randlab/domain/battery"
	"randlab/domain/sample"
	"randlab/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Analysis AnalysisConfig
	Battery  battery.Config
	Store    StoreConfig
	Server   ServerConfig
}

// AnalysisConfig holds sequence-generation and output settings
type AnalysisConfig struct {
	RangeN    int
	Count     int
	OutputDir string
	Seed      int64
}

// StoreConfig holds optional report-persistence settings
type StoreConfig struct {
	DSN string // empty disables persistence
}

// ServerConfig holds the report-browser settings
type ServerConfig struct {
	Addr string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Analysis: AnalysisConfig{
			RangeN:    getEnvInt("RANDLAB_N", 100),
			Count:     getEnvInt("RANDLAB_COUNT", 10000),
			OutputDir: getEnv("RANDLAB_OUTPUT", "output"),
			Seed:      int64(getEnvInt("RANDLAB_SEED", 1)),
		},
		Battery: battery.Config{
			SignificanceLevel:       getEnvFloat("RANDLAB_SIGNIFICANCE", 0.05),
			GapBucketSize:           getEnvInt("RANDLAB_GAP_BUCKET", 0),
			RunEqualPolicy:          sample.EqualPolicy(getEnv("RANDLAB_EQUAL_POLICY", string(sample.EqualDrop))),
			EntropyPassThreshold:    getEnvFloat("RANDLAB_ENTROPY_THRESHOLD", 0.95),
			LowExpectedWarnFraction: getEnvFloat("RANDLAB_LOW_EXPECTED_WARN", 0.2),
		},
		Store: StoreConfig{
			DSN: getEnv("RANDLAB_STORE_DSN", ""),
		},
		Server: ServerConfig{
			Addr: getEnv("RANDLAB_ADDR", ":8095"),
		},
	}

	if cfg.Analysis.RangeN < 1 {
		return nil, errors.New("CONFIG_INVALID", "RANDLAB_N must be >= 1")
	}
	if cfg.Analysis.Count < 1 {
		return nil, errors.New("CONFIG_INVALID", "RANDLAB_COUNT must be >= 1")
	}
	if !cfg.Battery.RunEqualPolicy.Valid() {
		return nil, errors.New("CONFIG_INVALID", "RANDLAB_EQUAL_POLICY must be drop or extend")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
