package output

import (
	json "github.com/goccy/go-json"

	"github.com/ChrisLanks/nest-egg-sub003/internal/domain"
)

// JSONFormatter serializes the simulation summary as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(summary *domain.SimulationSummary) ([]byte, error) {
	return json.MarshalIndent(summary, "", "  ")
}
