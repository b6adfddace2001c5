package models

// OutputDocument is the JSON artifact written for one side of a sheet.
type OutputDocument struct {
	// Headers lists the column names included in this side.
	Headers []string `json:"headers"`
	// Types lists the declared type token of each included column.
	Types []string `json:"types"`
	// Data holds one row per data row, each the same length as Headers.
	Data []Row `json:"data"`
}

// IsEmpty reports whether the document has no columns and should not be persisted.
func (d *OutputDocument) IsEmpty() bool {
	return len(d.Headers) == 0
}
