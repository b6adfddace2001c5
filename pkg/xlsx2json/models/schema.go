package models

// Visibility markers used in the mark row.
const (
	MarkBoth   = "b"
	MarkServer = "s"
	MarkClient = "c"
)

// Schema describes the valid columns of a sheet. All slices share the same length.
type Schema struct {
	// Marks holds the lower-cased visibility token of each column.
	Marks []string
	// Types holds the declared type token of each column as written in the sheet.
	Types []string
	// Kinds holds the decoded ValueType of each column.
	Kinds []ValueType
	// Headers holds the output field name of each column.
	Headers []string
}

// Len returns the number of valid columns.
func (s *Schema) Len() int {
	return len(s.Headers)
}

// Row is one converted data row, aligned with the schema columns.
type Row []any
