package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/roowe/xlsx2json-go/pkg/xlsx2json/models"
)

// Conversion failure messages.
const (
	msgInvalidInteger  = "not a valid integer"
	msgInvalidFloat    = "not a valid float"
	msgInvalidBoolean  = "not a valid boolean"
	msgInvalidJSON     = "not valid JSON"
	msgUnsupportedType = "unsupported data type"
)

// ConversionError reports a cell whose text cannot be coerced to its declared type.
type ConversionError struct {
	Row      int // 1-based sheet row
	Header   string
	Value    string
	TypeName string
	Message  string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("row %d column %q: cannot convert %q to %s: %s",
		e.Row, e.Header, e.Value, e.TypeName, e.Message)
}

// ConvertValue coerces raw cell text to a JSON-compatible value.
// Blank text is null for every type, including unsupported ones. typeToken is
// only echoed back when kind is TypeUnsupported.
func ConvertValue(raw string, kind models.ValueType, typeToken string, row int, header string) (any, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	fail := func(typeName, msg string) error {
		return &ConversionError{Row: row, Header: header, Value: raw, TypeName: typeName, Message: msg}
	}

	switch kind {
	case models.TypeInteger:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fail(kind.String(), msgInvalidInteger)
		}
		return n, nil
	case models.TypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fail(kind.String(), msgInvalidFloat)
		}
		return f, nil
	case models.TypeBoolean:
		switch {
		case strings.EqualFold(raw, "true"):
			return true, nil
		case strings.EqualFold(raw, "false"):
			return false, nil
		}
		return nil, fail(kind.String(), msgInvalidBoolean)
	case models.TypeJSON:
		if !json.Valid([]byte(raw)) {
			return nil, fail(kind.String(), msgInvalidJSON)
		}
		return json.RawMessage(raw), nil
	case models.TypeString:
		return raw, nil
	default:
		return nil, fail(typeToken, msgUnsupportedType)
	}
}

// ConvertRows converts every non-empty data row against the schema.
// All failing cells are collected; when any cell fails no rows are returned.
func ConvertRows(schema *models.Schema, rows [][]string) ([]models.Row, []*ConversionError) {
	var (
		result []models.Row
		errs   []*ConversionError
	)
	if len(rows) <= DataRow {
		return []models.Row{}, nil
	}

	for i, raw := range rows[DataRow:] {
		if isEmptyRow(raw) {
			continue
		}
		rowNum := DataRow + i + 1
		row := make(models.Row, schema.Len())
		for j := range row {
			v, err := ConvertValue(cellAt(raw, j), schema.Kinds[j], schema.Types[j], rowNum, schema.Headers[j])
			if err != nil {
				var convErr *ConversionError
				if errors.As(err, &convErr) {
					errs = append(errs, convErr)
				}
				continue
			}
			row[j] = v
		}
		result = append(result, row)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	if result == nil {
		result = []models.Row{}
	}
	return result, nil
}
