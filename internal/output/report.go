package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rpgo/claim-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// LookupFormatter resolves a format name, enriching the error with available formatters and aliases.
func LookupFormatter(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// GenerateReport renders results in format. Console formats are written to
// w; every other format is saved to filename (timestamped when empty) and
// the saved name is reported on w.
func GenerateReport(results *domain.RunResult, format string, w io.Writer, filename string) error {
	f, err := LookupFormatter(format)
	if err != nil {
		return err
	}
	if IsConsoleFormat(format) && filename == "" {
		data, err := f.Format(results)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	written, err := WriteFormatted(f, results, filename)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %s report to %s\n", f.Name(), written)
	return nil
}

// SaveConfiguration writes a run configuration as YAML so a run can be repeated.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	return os.WriteFile(filename, b, 0644)
}
