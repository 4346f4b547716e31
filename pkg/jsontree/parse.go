package jsontree

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
)

// ErrInvalidJSON is returned when the input is not a single JSON document.
var ErrInvalidJSON = errors.New("invalid JSON document")

// Parse decodes data into a Value, preserving object key order.
func Parse(data []byte) (Value, error) {
	if !json.Valid(data) {
		return Value{}, ErrInvalidJSON
	}

	raw, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return convert(raw, dataType)
}

func convert(raw []byte, dataType jsonparser.ValueType) (Value, error) {
	switch dataType {
	case jsonparser.Null:
		return NullValue(), nil

	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(raw)
		if err != nil {
			return Value{}, fmt.Errorf("parse boolean: %w", err)
		}
		return BoolValue(b), nil

	case jsonparser.Number:
		n, err := jsonparser.ParseFloat(raw)
		if err != nil {
			// Out of float64 range: keep the literal rather than reject the document.
			return StringValue(string(raw)), nil
		}
		return NumberValue(n), nil

	case jsonparser.String:
		s, err := parseString(raw)
		if err != nil {
			return Value{}, fmt.Errorf("parse string: %w", err)
		}
		return StringValue(s), nil

	case jsonparser.Object:
		obj := NewObject()
		err := jsonparser.ObjectEach(raw, func(key []byte, value []byte, vt jsonparser.ValueType, _ int) error {
			child, err := convert(value, vt)
			if err != nil {
				return err
			}
			obj.Set(string(key), child)
			return nil
		})
		if err != nil {
			return Value{}, fmt.Errorf("parse object: %w", err)
		}
		return ObjectValue(obj), nil

	case jsonparser.Array:
		items := []Value{}
		var itemErr error
		_, err := jsonparser.ArrayEach(raw, func(value []byte, vt jsonparser.ValueType, _ int, _ error) {
			if itemErr != nil {
				return
			}
			child, err := convert(value, vt)
			if err != nil {
				itemErr = err
				return
			}
			items = append(items, child)
		})
		if err != nil {
			return Value{}, fmt.Errorf("parse array: %w", err)
		}
		if itemErr != nil {
			return Value{}, itemErr
		}
		return ArrayValue(items...), nil
	}

	return Value{}, fmt.Errorf("%w: unexpected value type %v", ErrInvalidJSON, dataType)
}

// parseString unescapes a string body. encoding/json maps escapes jsonparser
// rejects, such as lone surrogates, to U+FFFD.
func parseString(raw []byte) (string, error) {
	if s, err := jsonparser.ParseString(raw); err == nil {
		return s, nil
	}

	quoted := make([]byte, 0, len(raw)+2)
	quoted = append(quoted, '"')
	quoted = append(quoted, raw...)
	quoted = append(quoted, '"')

	var s string
	if err := json.Unmarshal(quoted, &s); err != nil {
		return "", err
	}
	return s, nil
}
