package generator

import (
	"github.com/montanaflynn/stats"
)

// Summary holds the basic descriptive statistics printed per source.
type Summary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
}

// Describe computes descriptive statistics for a generated sequence.
func Describe(values []int) (Summary, error) {
	data := make([]float64, len(values))
	for i, v := range values {
		data[i] = float64(v)
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return Summary{}, err
	}
	stdDev, err := stats.StandardDeviation(data)
	if err != nil {
		return Summary{}, err
	}
	min, err := stats.Min(data)
	if err != nil {
		return Summary{}, err
	}
	max, err := stats.Max(data)
	if err != nil {
		return Summary{}, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return Summary{}, err
	}

	return Summary{Mean: mean, StdDev: stdDev, Min: min, Max: max, Median: median}, nil
}
