package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/ChrisLanks/nest-egg-sub003/internal/domain"
)

// CSVFormatter exports one row per projection year for spreadsheet use.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(summary *domain.SimulationSummary) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{
		"Year", "P10", "P25", "Median", "P75", "P90",
		"Real Median", "Real P10", "Real P90", "Depletion Rate",
	}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for _, year := range summary.Projection {
		row := []string{
			strconv.Itoa(year.Year),
			year.Percentile10.StringFixed(2),
			year.Percentile25.StringFixed(2),
			year.Median.StringFixed(2),
			year.Percentile75.StringFixed(2),
			year.Percentile90.StringFixed(2),
			year.InflationAdjustedMedian.StringFixed(2),
			year.InflationAdjustedP10.StringFixed(2),
			year.InflationAdjustedP90.StringFixed(2),
			year.DepletionRate.StringFixed(2),
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write data row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
