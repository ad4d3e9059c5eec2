// Package dataset turns a flat file into the immutable survey table and holds
// that table for the lifetime of the process.
package dataset

import (
	"strings"

	"pulsex/adapters/datareadiness/coercer"
	"pulsex/adapters/excel"
	"pulsex/domain/survey"
	"pulsex/internal"
	"pulsex/internal/errors"
)

// Loader reads and validates a pulse table
type Loader struct {
	reasonPrefix string
	coercer      *coercer.TypeCoercer
	logger       *internal.Logger
}

// NewLoader creates a loader that coerces columns starting with reasonPrefix
// as indicator columns
func NewLoader(reasonPrefix string, logger *internal.Logger) *Loader {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Loader{
		reasonPrefix: reasonPrefix,
		coercer:      coercer.NewTypeCoercer(coercer.DefaultCoercionConfig()),
		logger:       logger,
	}
}

// LoadFile reads a CSV or XLSX file into a validated table
func (l *Loader) LoadFile(path string) (*survey.Table, error) {
	raw, err := excel.NewDataReader(path).WithLogger(l.logger).ReadData()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	table, err := l.BuildTable(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build survey table from %s", path)
	}

	l.logger.Info("[Loader] Loaded %d rows, %d columns (%d %s* indicator columns) from %s",
		table.Len(), len(table.Columns()), len(table.ColumnsWithPrefix(l.reasonPrefix)), l.reasonPrefix, path)
	return table, nil
}

// BuildTable validates required columns and coerces every cell to its type.
// A non-numeric age or outcome value is rejected, naming the row id and field.
func (l *Loader) BuildTable(raw *excel.RawData) (*survey.Table, error) {
	present := make(map[string]bool, len(raw.Headers))
	for _, h := range raw.Headers {
		present[h] = true
	}
	for _, field := range survey.RequiredFields {
		if !present[field] {
			return nil, errors.MissingColumn(field)
		}
	}

	kinds := make([]survey.ValueType, len(raw.Headers))
	strict := make([]bool, len(raw.Headers))
	for c, header := range raw.Headers {
		kinds[c], strict[c] = l.columnType(raw, c, header)
	}

	rows := make([][]survey.Value, len(raw.Rows))
	for r, rawRow := range raw.Rows {
		row := make([]survey.Value, len(raw.Headers))
		for c, cell := range rawRow {
			value, err := l.coerceCell(kinds[c], strict[c], raw.Headers[c], r, cell)
			if err != nil {
				return nil, err
			}
			row[c] = value
		}
		rows[r] = row
	}

	return survey.NewTable(raw.Headers, rows)
}

// columnType fixes the type of known columns (strict) and infers the rest;
// cells of inferred columns that fail to parse become missing
func (l *Loader) columnType(raw *excel.RawData, c int, header string) (survey.ValueType, bool) {
	switch {
	case contains(survey.NumericFields, header), strings.HasPrefix(header, l.reasonPrefix):
		return survey.ValueTypeNumeric, true
	case contains(survey.BooleanFields, header):
		return survey.ValueTypeBoolean, true
	case contains(survey.RequiredFields, header):
		return survey.ValueTypeString, true
	}

	sample := make([]string, 0, len(raw.Rows))
	for _, row := range raw.Rows {
		sample = append(sample, row[c])
	}
	analysis := l.coercer.AnalyzeTypeDistribution(sample)
	l.logger.Debug("[Loader] Column %s inferred as %s (numeric %.2f, boolean %.2f)",
		header, analysis.RecommendedType, analysis.NumericRatio, analysis.BooleanRatio)
	if analysis.RecommendedType == survey.ValueTypeMissing {
		return survey.ValueTypeString, false
	}
	return analysis.RecommendedType, false
}

func (l *Loader) coerceCell(kind survey.ValueType, strict bool, field string, row int, cell string) (survey.Value, error) {
	var (
		value survey.Value
		ok    bool
	)
	switch kind {
	case survey.ValueTypeNumeric:
		value, ok = l.coercer.CoerceNumeric(cell)
	case survey.ValueTypeBoolean:
		value, ok = l.coercer.CoerceBoolean(cell)
	default:
		return l.coercer.CoerceString(cell), nil
	}
	if !ok && strict {
		return value, errors.InvalidValue(field, row, cell)
	}
	return value, nil
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
