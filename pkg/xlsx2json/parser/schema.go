package parser

import (
	"errors"
	"strings"

	"github.com/roowe/xlsx2json-go/pkg/xlsx2json/models"
)

// ErrTooFewRows indicates the sheet lacks the reserved schema rows.
var ErrTooFewRows = errors.New("must contain mark row, type row, header row, and at least one data row")

// Reserved row positions. Row 0 is a free-form title row.
const (
	markRow   = 1
	typeRow   = 2
	headerRow = 3

	// DataRow is the index of the first data row.
	DataRow = 4
)

// ExtractSchema derives the column schema from the reserved rows of a sheet.
// Columns end at the first empty header; anything to its right is ignored.
func ExtractSchema(rows [][]string) (*models.Schema, error) {
	if len(rows) < DataRow {
		return nil, ErrTooFewRows
	}

	headers := rows[headerRow]
	count := len(headers)
	for i, h := range headers {
		if strings.TrimSpace(h) == "" {
			count = i
			break
		}
	}

	schema := &models.Schema{
		Marks:   make([]string, count),
		Types:   make([]string, count),
		Kinds:   make([]models.ValueType, count),
		Headers: make([]string, count),
	}
	for i := 0; i < count; i++ {
		schema.Marks[i] = strings.ToLower(strings.TrimSpace(cellAt(rows[markRow], i)))
		schema.Types[i] = strings.TrimSpace(cellAt(rows[typeRow], i))
		schema.Kinds[i] = models.ParseValueType(schema.Types[i])
		schema.Headers[i] = strings.TrimSpace(headers[i])
	}

	return schema, nil
}
