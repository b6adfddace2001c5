package parser

import (
	"encoding/json"
	"testing"

	"github.com/roowe/xlsx2json-go/pkg/xlsx2json/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertValue(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		token string
		want  any
	}{
		{name: "empty int", raw: "", token: "int", want: nil},
		{name: "whitespace unsupported", raw: "   ", token: "date", want: nil},
		{name: "integer", raw: "42", token: "int", want: int64(42)},
		{name: "negative integer", raw: "-7", token: "Integer", want: int64(-7)},
		{name: "float", raw: "1.5", token: "float", want: 1.5},
		{name: "double exponent", raw: "2e3", token: "DOUBLE", want: 2000.0},
		{name: "number from integer text", raw: "3", token: "number", want: 3.0},
		{name: "bool true", raw: "true", token: "bool", want: true},
		{name: "bool mixed case", raw: "FALSE", token: "boolean", want: false},
		{name: "json array", raw: "[1,2]", token: "array", want: json.RawMessage("[1,2]")},
		{name: "json object", raw: `{"a":1}`, token: "object", want: json.RawMessage(`{"a":1}`)},
		{name: "string kept verbatim", raw: "  padded ", token: "str", want: "  padded "},
		{name: "text", raw: "<b>&", token: "text", want: "<b>&"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertValue(tt.raw, models.ParseValueType(tt.token), tt.token, 5, "Col")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertValueErrors(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		token    string
		typeName string
		message  string
	}{
		{name: "non numeric int", raw: "abc", token: "int", typeName: "int", message: "not a valid integer"},
		{name: "fractional int", raw: "1.5", token: "int", typeName: "int", message: "not a valid integer"},
		{name: "int overflow", raw: "9223372036854775808", token: "int", typeName: "int", message: "not a valid integer"},
		{name: "bad float", raw: "1.2.3", token: "float", typeName: "float", message: "not a valid float"},
		{name: "nan", raw: "NaN", token: "float", typeName: "float", message: "not a valid float"},
		{name: "infinity", raw: "Inf", token: "number", typeName: "float", message: "not a valid float"},
		{name: "float overflow", raw: "1e400", token: "double", typeName: "float", message: "not a valid float"},
		{name: "numeric bool", raw: "1", token: "bool", typeName: "bool", message: "not a valid boolean"},
		{name: "yes bool", raw: "yes", token: "bool", typeName: "bool", message: "not a valid boolean"},
		{name: "bad json", raw: "{a:1}", token: "json", typeName: "json", message: "not valid JSON"},
		{name: "unsupported", raw: "2024-01-01", token: "Date", typeName: "Date", message: "unsupported data type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ConvertValue(tt.raw, models.ParseValueType(tt.token), tt.token, 7, "Col")
			var convErr *ConversionError
			require.ErrorAs(t, err, &convErr)
			assert.Equal(t, 7, convErr.Row)
			assert.Equal(t, "Col", convErr.Header)
			assert.Equal(t, tt.raw, convErr.Value)
			assert.Equal(t, tt.typeName, convErr.TypeName)
			assert.Equal(t, tt.message, convErr.Message)
		})
	}
}

func TestConvertRows(t *testing.T) {
	schema := &models.Schema{
		Marks:   []string{"b", "s"},
		Types:   []string{"string", "int"},
		Kinds:   []models.ValueType{models.TypeString, models.TypeInteger},
		Headers: []string{"Name", "Level"},
	}

	t.Run("skips empty rows and pads short rows", func(t *testing.T) {
		rows := [][]string{{}, {}, {}, {},
			{"Fire", "3", "ignored"},
			{},
			{"Ice"},
		}
		got, errs := ConvertRows(schema, rows)
		require.Empty(t, errs)
		assert.Equal(t, []models.Row{{"Fire", int64(3)}, {"Ice", nil}}, got)
	})

	t.Run("collects every failing cell", func(t *testing.T) {
		rows := [][]string{{}, {}, {}, {},
			{"Fire", "abc"},
			{"", ""},
			{"Ice", "x"},
		}
		got, errs := ConvertRows(schema, rows)
		assert.Nil(t, got)
		require.Len(t, errs, 2)
		assert.Equal(t, 5, errs[0].Row)
		assert.Equal(t, "Level", errs[0].Header)
		assert.Equal(t, 7, errs[1].Row)
	})

	t.Run("no data rows", func(t *testing.T) {
		got, errs := ConvertRows(schema, [][]string{{}, {}, {}, {}})
		assert.Empty(t, errs)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
