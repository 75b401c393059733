package ports

// SequenceSource produces a finite ordered sequence of integers in [0, rangeN).
// The testing engine is agnostic to how the sequence was produced; this is the
// whole contract between generation and analysis.
type SequenceSource interface {
	// Name returns the stable identifier used in filenames and reports.
	Name() string
	// Generate draws count integers, each in [0, rangeN).
	Generate(rangeN, count int) ([]int, error)
}
