package sample

// EqualPolicy controls how equal-value transitions are classified when
// partitioning a sequence into up/down runs. The choice changes the expected
// run counts, so it is surfaced as configuration rather than a constant.
type EqualPolicy string

const (
	// EqualDrop removes zero-delta transitions from the movement sequence.
	EqualDrop EqualPolicy = "drop"
	// EqualExtend folds a zero-delta transition into the direction of the
	// preceding movement. Leading ties, with no direction yet, are dropped.
	EqualExtend EqualPolicy = "extend"
)

// Valid reports whether the policy is one of the supported values.
func (p EqualPolicy) Valid() bool {
	return p == EqualDrop || p == EqualExtend
}

// RunSequence is the partition of a sample's up/down movements into maximal
// same-direction runs.
type RunSequence struct {
	Lengths   []int       // length of each maximal run, in order
	Movements int         // classified transitions after applying the policy
	Policy    EqualPolicy // policy used for equal-value transitions
}

// Count returns the number of runs.
func (rs RunSequence) Count() int {
	return len(rs.Lengths)
}

// LengthHistogram buckets run lengths into 1, 2, 3 and >=4.
func (rs RunSequence) LengthHistogram() map[string]int {
	hist := map[string]int{"1": 0, "2": 0, "3": 0, ">=4": 0}
	for _, l := range rs.Lengths {
		switch {
		case l == 1:
			hist["1"]++
		case l == 2:
			hist["2"]++
		case l == 3:
			hist["3"]++
		default:
			hist[">=4"]++
		}
	}
	return hist
}

// Runs classifies each consecutive pair as up or down and partitions the
// resulting sign sequence into maximal same-sign runs.
func (s Sample) Runs(policy EqualPolicy) RunSequence {
	rs := RunSequence{Policy: policy}

	prev := 0 // -1 down, +1 up, 0 no direction yet
	current := 0
	for i := 1; i < len(s.Values); i++ {
		delta := s.Values[i] - s.Values[i-1]
		sign := 0
		switch {
		case delta > 0:
			sign = 1
		case delta < 0:
			sign = -1
		default:
			if policy == EqualDrop || prev == 0 {
				continue
			}
			sign = prev // extend: tie continues the prior direction
		}

		rs.Movements++
		if sign == prev {
			current++
		} else {
			if current > 0 {
				rs.Lengths = append(rs.Lengths, current)
			}
			current = 1
			prev = sign
		}
	}
	if current > 0 {
		rs.Lengths = append(rs.Lengths, current)
	}
	return rs
}
