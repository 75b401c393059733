package sample

import (
	"randlab/domain/core"
)

// Sample is a finite ordered sequence of non-negative integers, each strictly
// below RangeN. Build one through New so the range invariants hold; the engine
// never mutates it after construction.
type Sample struct {
	Values []int
	RangeN int
}

// New validates the raw sequence against the declared range and wraps it.
// Violations are fatal: no partial sample is returned.
func New(values []int, rangeN int) (Sample, error) {
	if rangeN < 1 {
		return Sample{}, core.ErrRangeTooSmall
	}
	if len(values) == 0 {
		return Sample{}, core.ErrEmptySample
	}
	for i, v := range values {
		if v < 0 || v >= rangeN {
			return Sample{}, core.NewOutOfRangeError(i, v, rangeN)
		}
	}
	return Sample{Values: values, RangeN: rangeN}, nil
}

// Count returns the sequence length.
func (s Sample) Count() int {
	return len(s.Values)
}

// Frequencies counts occurrences of every value in [0, RangeN).
// Every value is present, zero-filled if it never occurs.
func (s Sample) Frequencies() FrequencyTable {
	counts := make([]int, s.RangeN)
	for _, v := range s.Values {
		counts[v]++
	}
	return FrequencyTable{Counts: counts, Total: len(s.Values)}
}

// FrequencyTable maps each value in [0, N) to its occurrence count.
// Invariant: sum(Counts) == Total.
type FrequencyTable struct {
	Counts []int `json:"counts"`
	Total  int   `json:"total"`
}

// RangeN returns the number of bins.
func (ft FrequencyTable) RangeN() int {
	return len(ft.Counts)
}

// Probability returns the empirical probability of value v.
func (ft FrequencyTable) Probability(v int) float64 {
	if ft.Total == 0 {
		return 0
	}
	return float64(ft.Counts[v]) / float64(ft.Total)
}

// Gaps returns, per value, the lengths of the gaps between consecutive
// occurrences of that value. A gap length is the number of intervening draws:
// two adjacent occurrences have gap 0.
func (s Sample) Gaps() [][]int {
	gaps := make([][]int, s.RangeN)
	lastPos := make([]int, s.RangeN)
	for i := range lastPos {
		lastPos[i] = -1
	}
	for i, v := range s.Values {
		if lastPos[v] >= 0 {
			gaps[v] = append(gaps[v], i-lastPos[v]-1)
		}
		lastPos[v] = i
	}
	return gaps
}

// AllGaps aggregates gap lengths across all values into a single list.
// Values that never repeat contribute nothing.
func (s Sample) AllGaps() []int {
	var all []int
	for _, g := range s.Gaps() {
		all = append(all, g...)
	}
	return all
}
