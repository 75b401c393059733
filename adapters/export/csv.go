package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"randlab/domain/sample"
)

// EnsureDir creates the output directory if it does not exist.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// WriteFrequencyCSV writes the per-value frequency table as
// Value,Count,Frequency rows.
func WriteFrequencyCSV(path string, freq sample.FrequencyTable) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create frequency csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Value", "Count", "Frequency"}); err != nil {
		return err
	}
	for v, count := range freq.Counts {
		row := []string{
			strconv.Itoa(v),
			strconv.Itoa(count),
			strconv.FormatFloat(freq.Probability(v), 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteGapCSV writes one row per value with its comma-joined gap lengths.
func WriteGapCSV(path string, s sample.Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create gap csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Value", "Gaps"}); err != nil {
		return err
	}
	for v, gaps := range s.Gaps() {
		parts := make([]string, len(gaps))
		for i, g := range gaps {
			parts[i] = strconv.Itoa(g)
		}
		if err := w.Write([]string{strconv.Itoa(v), strings.Join(parts, ",")}); err != nil {
			return err
		}
	}
	return w.Error()
}
