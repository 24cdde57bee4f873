package output

import (
	"bytes"
	"fmt"

	"github.com/ChrisLanks/nest-egg-sub003/internal/domain"
)

// ConsoleFormatter renders a fixed-width percentile band table plus the
// aggregate success metrics.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(summary *domain.SimulationSummary) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "PORTFOLIO PROJECTION")
	fmt.Fprintln(&buf, "====================")
	fmt.Fprintf(&buf, "%-6s %14s %14s %14s %14s %14s %10s\n",
		"Year", "P10", "P25", "Median", "P75", "P90", "Depleted")

	for _, year := range summary.Projection {
		fmt.Fprintf(&buf, "%-6d %14s %14s %14s %14s %14s %10s\n",
			year.Year,
			FormatAmount(year.Percentile10),
			FormatAmount(year.Percentile25),
			FormatAmount(year.Median),
			FormatAmount(year.Percentile75),
			FormatAmount(year.Percentile90),
			FormatPercentage(year.DepletionRate),
		)
	}

	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Success Rate: %s\n", FormatPercentage(summary.SuccessRate))
	if summary.MedianDepletionYear != nil {
		fmt.Fprintf(&buf, "Median Depletion Year: %d\n", *summary.MedianDepletionYear)
	} else {
		fmt.Fprintln(&buf, "Median Depletion Year: n/a (most paths survive the horizon)")
	}
	return buf.Bytes(), nil
}
