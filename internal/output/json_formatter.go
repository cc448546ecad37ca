package output

import (
	json "github.com/goccy/go-json"

	"github.com/rpgo/claim-calculator/internal/domain"
)

// JSONFormatter serializes the run result as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.RunResult) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
