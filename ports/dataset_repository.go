package ports

import "pulsex/domain/survey"

// DatasetPort provides read-only access to the loaded survey table
type DatasetPort interface {
	// Table returns the immutable table, or nil before loading
	Table() *survey.Table

	// Source describes where the table came from (file path or demo)
	Source() string
}
