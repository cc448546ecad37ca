package output_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	stddec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/claim-calculator/internal/domain"
	"github.com/rpgo/claim-calculator/internal/output"
)

func sampleResult() *domain.RunResult {
	o := domain.Option{ClaimAge: 62, Monthly: stddec.NewFromInt(1000)}
	return &domain.RunResult{
		StartAge:   62,
		ThroughAge: 63,
		MaxAge:     63,
		StepMonths: 12,
		Options:    []domain.OptionResult{{Option: o, Label: o.Label(), Total: stddec.NewFromInt(13000)}},
	}
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "$123.45", output.FormatCurrency(stddec.NewFromFloat(123.45)))
	assert.Equal(t, "$1,234,568", output.FormatWholeCurrency(stddec.NewFromFloat(1234567.5)))
	assert.Equal(t, "12.34%", output.FormatPercentage(stddec.NewFromFloat(12.34)))
	assert.Equal(t, "80.6667", output.FormatAge(80.66666667))
	assert.Equal(t, "70", output.FormatClaimAge(70))
	assert.Equal(t, "62.50", output.FormatClaimAge(62.5))
}

func TestSaveConfiguration(t *testing.T) {
	cfg := domain.NewDefaultConfiguration()
	cfg.Compare = []int{62, 70}
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, output.SaveConfiguration(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var back domain.Configuration
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, []int{62, 70}, back.Compare)
	assert.Equal(t, 12, back.StepMonths)
}

func TestGenerateReport_ConsoleWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.GenerateReport(sampleResult(), "table", &buf, ""))
	assert.Contains(t, buf.String(), "Best by age 63.0: claim at 62")
}

func TestGenerateReport_FileFormats(t *testing.T) {
	dir := t.TempDir()
	for _, format := range []string{"json", "csv", "html"} {
		var buf bytes.Buffer
		path := filepath.Join(dir, "report."+format)
		require.NoError(t, output.GenerateReport(sampleResult(), format, &buf, path), format)
		assert.True(t, strings.HasPrefix(buf.String(), "Wrote "), format)
		info, err := os.Stat(path)
		require.NoError(t, err, format)
		assert.Positive(t, info.Size(), format)
	}
}

func TestGenerateReport_UnknownFormat(t *testing.T) {
	err := output.GenerateReport(sampleResult(), "pdf", &bytes.Buffer{}, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, output.ErrUnsupportedFormat))
	assert.Contains(t, err.Error(), "series-csv")
}
