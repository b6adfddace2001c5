// Package models defines data structures for spreadsheet to JSON conversion.
package models

import "strings"

// ValueType is the declared coercion target of a column.
type ValueType int

const (
	// TypeUnsupported is any declared type token outside the known vocabulary.
	TypeUnsupported ValueType = iota
	// TypeInteger converts cells to signed 64-bit integers.
	TypeInteger
	// TypeFloat converts cells to finite 64-bit floats.
	TypeFloat
	// TypeBoolean converts cells to true or false.
	TypeBoolean
	// TypeJSON embeds cells as parsed JSON values of any shape.
	TypeJSON
	// TypeString passes cells through verbatim.
	TypeString
)

// ParseValueType decodes a declared type token. Matching ignores case and
// surrounding whitespace.
func ParseValueType(token string) ValueType {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "int", "integer":
		return TypeInteger
	case "float", "double", "number":
		return TypeFloat
	case "bool", "boolean":
		return TypeBoolean
	case "json", "array", "object":
		return TypeJSON
	case "string", "str", "text":
		return TypeString
	default:
		return TypeUnsupported
	}
}

// String returns the canonical name reported in conversion errors.
func (t ValueType) String() string {
	switch t {
	case TypeInteger:
		return "int"
	case TypeFloat:
		return "float"
	case TypeBoolean:
		return "bool"
	case TypeJSON:
		return "json"
	case TypeString:
		return "string"
	default:
		return "unsupported"
	}
}
