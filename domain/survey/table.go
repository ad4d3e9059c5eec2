package survey

import (
	"fmt"
	"strings"

	"pulsex/internal/errors"
)

// Table is an immutable, column-oriented record table.
// Row identity is the positional index and never changes.
type Table struct {
	columns []string
	index   map[string]int
	cells   [][]Value // cells[column][row]
	rows    int
}

// NewTable builds a table from row-major values. Every row must have one
// value per column and column names must be unique.
func NewTable(columns []string, rows [][]Value) (*Table, error) {
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if _, dup := index[name]; dup {
			return nil, errors.InvalidInput(fmt.Sprintf("duplicate column %q", name))
		}
		index[name] = i
	}

	cells := make([][]Value, len(columns))
	for c := range cells {
		cells[c] = make([]Value, len(rows))
	}
	for r, row := range rows {
		if len(row) != len(columns) {
			return nil, errors.InvalidInput(fmt.Sprintf("row %d has %d values, expected %d", r, len(row), len(columns)))
		}
		for c, v := range row {
			cells[c][r] = v
		}
	}

	return &Table{
		columns: append([]string(nil), columns...),
		index:   index,
		cells:   cells,
		rows:    len(rows),
	}, nil
}

// Len returns the number of rows
func (t *Table) Len() int {
	return t.rows
}

// Columns returns the column names in source order
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// HasColumn reports whether the named column exists
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// RequireColumns returns a MISSING_COLUMN error naming the first absent column
func (t *Table) RequireColumns(names ...string) error {
	for _, name := range names {
		if !t.HasColumn(name) {
			return errors.MissingColumn(name)
		}
	}
	return nil
}

// ColumnsWithPrefix returns, in source order, every column starting with prefix
func (t *Table) ColumnsWithPrefix(prefix string) []string {
	var matched []string
	for _, name := range t.columns {
		if strings.HasPrefix(name, prefix) {
			matched = append(matched, name)
		}
	}
	return matched
}

// Value returns the cell at (row, column); a missing column yields a missing value
func (t *Table) Value(row int, column string) Value {
	c, ok := t.index[column]
	if !ok {
		return NewMissingValue()
	}
	return t.cells[c][row]
}

// Column returns a read-only accessor over one column
func (t *Table) Column(name string) (Column, bool) {
	c, ok := t.index[name]
	if !ok {
		return Column{}, false
	}
	return Column{name: name, values: t.cells[c]}, true
}

// Record returns all fields of one row keyed by column name
func (t *Table) Record(row int) map[string]Value {
	record := make(map[string]Value, len(t.columns))
	for c, name := range t.columns {
		record[name] = t.cells[c][row]
	}
	return record
}

// Column is a read-only view of one table column
type Column struct {
	name   string
	values []Value
}

// Name returns the column name
func (c Column) Name() string {
	return c.name
}

// Len returns the number of rows
func (c Column) Len() int {
	return len(c.values)
}

// At returns the value at row
func (c Column) At(row int) Value {
	return c.values[row]
}
