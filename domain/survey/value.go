package survey

import (
	"encoding/json"
	"strconv"
)

// Value represents a typed cell of the survey table
type Value struct {
	Type       ValueType
	StringVal  string
	NumericVal float64
	BooleanVal bool
}

// ValueType defines the storage type for values
type ValueType string

const (
	ValueTypeString  ValueType = "string"
	ValueTypeNumeric ValueType = "numeric"
	ValueTypeBoolean ValueType = "boolean"
	ValueTypeMissing ValueType = "missing"
)

// NewStringValue creates a string value; an empty string is missing
func NewStringValue(s string) Value {
	if s == "" {
		return NewMissingValue()
	}
	return Value{Type: ValueTypeString, StringVal: s}
}

// NewNumericValue creates a numeric value
func NewNumericValue(n float64) Value {
	return Value{Type: ValueTypeNumeric, NumericVal: n}
}

// NewBooleanValue creates a boolean value
func NewBooleanValue(b bool) Value {
	return Value{Type: ValueTypeBoolean, BooleanVal: b}
}

// NewMissingValue creates a missing value
func NewMissingValue() Value {
	return Value{Type: ValueTypeMissing}
}

// IsMissing reports whether the cell holds no value
func (v Value) IsMissing() bool {
	return v.Type == ValueTypeMissing || v.Type == ""
}

// IsNumeric returns true if the value represents a number
func (v Value) IsNumeric() bool {
	return v.Type == ValueTypeNumeric
}

// Float returns the value as a number. Booleans map to 0/1.
func (v Value) Float() (float64, bool) {
	switch v.Type {
	case ValueTypeNumeric:
		return v.NumericVal, true
	case ValueTypeBoolean:
		if v.BooleanVal {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// Truthy reports whether a present value counts as "yes"
func (v Value) Truthy() bool {
	switch v.Type {
	case ValueTypeBoolean:
		return v.BooleanVal
	case ValueTypeNumeric:
		return v.NumericVal > 0
	case ValueTypeString:
		return v.StringVal != ""
	}
	return false
}

// AsString returns the string value, or empty string if not a string
func (v Value) AsString() string {
	if v.Type == ValueTypeString {
		return v.StringVal
	}
	return ""
}

// String returns the display representation of the value
func (v Value) String() string {
	switch v.Type {
	case ValueTypeString:
		return v.StringVal
	case ValueTypeNumeric:
		return strconv.FormatFloat(v.NumericVal, 'f', -1, 64)
	case ValueTypeBoolean:
		return strconv.FormatBool(v.BooleanVal)
	}
	return ""
}

// MarshalJSON encodes the value as its natural JSON type, missing as null
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Type {
	case ValueTypeString:
		return json.Marshal(v.StringVal)
	case ValueTypeNumeric:
		return json.Marshal(v.NumericVal)
	case ValueTypeBoolean:
		return json.Marshal(v.BooleanVal)
	}
	return []byte("null"), nil
}
