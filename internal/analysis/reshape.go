package analysis

import (
	"strings"

	"pulsex/domain/survey"
)

// ReshapeIndicators melts every column starting with prefix into a long-form
// table. One row is emitted per (row id, column) whose value is present; the
// reason label is the column name with prefix stripped and agree is always 1.
// Rows come out ordered by row id, then by column order.
func ReshapeIndicators(table *survey.Table, prefix string) *survey.LongTable {
	return ReshapeMasked(table, prefix, nil)
}

// ReshapeMasked is ReshapeIndicators restricted to rows where mask is true.
// A nil mask selects every row. Ids remain the original row positions.
func ReshapeMasked(table *survey.Table, prefix string, mask survey.Membership) *survey.LongTable {
	names := table.ColumnsWithPrefix(prefix)

	long := &survey.LongTable{
		Reasons: make([]string, 0, len(names)),
		Rows:    []survey.ReasonRow{},
	}

	columns := make([]survey.Column, 0, len(names))
	for _, name := range names {
		column, _ := table.Column(name)
		columns = append(columns, column)
		long.Reasons = append(long.Reasons, strings.TrimPrefix(name, prefix))
	}
	if len(columns) == 0 {
		return long
	}

	for id := 0; id < table.Len(); id++ {
		if mask != nil && !mask[id] {
			continue
		}
		for c, column := range columns {
			if column.At(id).IsMissing() {
				continue
			}
			long.Rows = append(long.Rows, survey.ReasonRow{
				ID:     id,
				Reason: long.Reasons[c],
				Agree:  1,
			})
		}
	}

	return long
}
