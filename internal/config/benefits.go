package config

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rpgo/claim-calculator/internal/domain"
	money "github.com/rpgo/claim-calculator/pkg/decimal"
)

// Required benefit table columns
const (
	ageColumn     = "age"
	monthlyColumn = "monthly"
)

// LoadBenefitsCSV loads a benefit table from a CSV file with headers age,monthly
func LoadBenefitsCSV(path string) (domain.BenefitTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	table, err := ReadBenefitsCSV(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load benefits from %s: %w", path, err)
	}
	return table, nil
}

// ReadBenefitsCSV reads a benefit table from CSV data. Columns may appear in
// any order and extra columns are ignored. Monthly amounts may carry "$" and
// thousands separators. A repeated age keeps its last row.
func ReadBenefitsCSV(r io.Reader) (domain.BenefitTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: CSV must have headers: age,monthly", domain.ErrMalformedInput)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %v", domain.ErrMalformedInput, err)
	}

	ageIdx, monthlyIdx := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.Trim(strings.TrimSpace(col), `"`)) {
		case ageColumn:
			ageIdx = i
		case monthlyColumn:
			monthlyIdx = i
		}
	}
	if ageIdx < 0 || monthlyIdx < 0 {
		return nil, fmt.Errorf("%w: CSV must have headers: age,monthly", domain.ErrMalformedInput)
	}

	table := make(domain.BenefitTable)
	for row := 2; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", domain.ErrMalformedInput, row, err)
		}
		if ageIdx >= len(record) || monthlyIdx >= len(record) {
			return nil, fmt.Errorf("%w: row %d: expected %d columns, got %d", domain.ErrMalformedInput, row, len(header), len(record))
		}

		age, err := strconv.Atoi(strings.TrimSpace(record[ageIdx]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: invalid age %q", domain.ErrMalformedInput, row, record[ageIdx])
		}
		monthly, err := money.NewMoneyFromString(record[monthlyIdx])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: invalid monthly amount %q", domain.ErrMalformedInput, row, record[monthlyIdx])
		}
		if age < 0 || !monthly.IsPositive() {
			return nil, fmt.Errorf("%w: row %d: age must be non-negative and monthly positive", domain.ErrMalformedInput, row)
		}
		table[age] = monthly.Decimal
	}

	if len(table) == 0 {
		return nil, fmt.Errorf("%w: CSV contained no rows", domain.ErrMalformedInput)
	}
	return table, nil
}
