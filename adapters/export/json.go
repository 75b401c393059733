package export

import (
	"encoding/json"
	"fmt"
	"os"

	"randlab/domain/battery"
)

// WriteReportJSON writes the full report as indented JSON, the format the
// HTTP read surface serves back.
func WriteReportJSON(path string, report *battery.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
