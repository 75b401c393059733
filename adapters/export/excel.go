package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"randlab/domain/battery"
)

// WriteReportXLSX writes a workbook with a frequency sheet and a test-results
// sheet for one report.
func WriteReportXLSX(path string, report *battery.Report) error {
	f := excelize.NewFile()

	freqSheet := "Frequencies"
	idx, err := f.NewSheet(freqSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	headers := []string{"Value", "Count", "Frequency"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(freqSheet, cell, h); err != nil {
			return err
		}
	}
	for v, count := range report.Frequencies.Counts {
		row := v + 2
		values := []interface{}{v, count, report.Frequencies.Probability(v)}
		for c, val := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, row)
			if err := f.SetCellValue(freqSheet, cell, val); err != nil {
				return err
			}
		}
	}

	resultSheet := "Results"
	if _, err := f.NewSheet(resultSheet); err != nil {
		return err
	}
	resultHeaders := []string{"Test", "Statistic", "DF", "PValue", "Threshold", "Verdict"}
	for i, h := range resultHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(resultSheet, cell, h); err != nil {
			return err
		}
	}
	for i, res := range report.Results {
		row := i + 2
		df := ""
		if res.DegreesOfFreedom != nil {
			df = fmt.Sprintf("%d", *res.DegreesOfFreedom)
		}
		verdict := "inconclusive"
		if res.Passed != nil {
			if *res.Passed {
				verdict = "passed"
			} else {
				verdict = "failed"
			}
		}
		values := []interface{}{res.Name, res.Statistic, df, res.PValue, res.Threshold, verdict}
		for c, val := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, row)
			if err := f.SetCellValue(resultSheet, cell, val); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}
