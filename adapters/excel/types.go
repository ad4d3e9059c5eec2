package excel

// RawData represents a delimited or spreadsheet table as untyped strings
type RawData struct {
	Headers []string   // Column headers
	Rows    [][]string // Data rows, each padded or truncated to len(Headers)
}
