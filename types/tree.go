package types

import (
	"encoding/json"
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// Object is a decoded JSON object. Values are the types produced by a
// json.Decoder with UseNumber enabled, or any value encoding/json can marshal
// once the migration has replaced them.
type Object map[string]any

// Array is a decoded JSON array.
type Array []any

// AsObject returns v as an Object, failing with ErrInvalidType when v is a
// different kind of value. path names v in the error.
func AsObject(v any, path string) (Object, error) {
	switch o := v.(type) {
	case Object:
		return o, nil
	case map[string]any:
		return Object(o), nil
	default:
		return nil, errorsmod.Wrapf(ErrInvalidType, "%s: expected object, got %s", path, kindOf(v))
	}
}

// AsArray returns v as an Array.
func AsArray(v any, path string) (Array, error) {
	switch a := v.(type) {
	case Array:
		return a, nil
	case []any:
		return Array(a), nil
	default:
		return nil, errorsmod.Wrapf(ErrInvalidType, "%s: expected array, got %s", path, kindOf(v))
	}
}

// AsString returns v as a string.
func AsString(v any, path string) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errorsmod.Wrapf(ErrInvalidType, "%s: expected string, got %s", path, kindOf(v))
	}
	return s, nil
}

// AsInt parses an integer amount. Amounts are encoded as decimal strings but
// plain JSON numbers are accepted as well.
func AsInt(v any, path string) (sdkmath.Int, error) {
	var s string
	switch n := v.(type) {
	case string:
		s = n
	case json.Number:
		s = n.String()
	default:
		return sdkmath.Int{}, errorsmod.Wrapf(ErrInvalidType, "%s: expected integer, got %s", path, kindOf(v))
	}

	amt, ok := sdkmath.NewIntFromString(s)
	if !ok {
		return sdkmath.Int{}, errorsmod.Wrapf(ErrInvalidAmount, "%s: %q", path, s)
	}
	return amt, nil
}

// ValueAt walks the nested objects named by keys and returns the value found
// at the end. A missing key fails with ErrKeyNotFound.
func (o Object) ValueAt(keys ...string) (any, error) {
	var (
		cur  = o
		val  any
		path string
	)
	for i, key := range keys {
		path = strings.Join(keys[:i+1], ".")
		v, ok := cur[key]
		if !ok {
			return nil, errorsmod.Wrap(ErrKeyNotFound, path)
		}
		val = v
		if i == len(keys)-1 {
			break
		}

		next, err := AsObject(v, path)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return val, nil
}

// ObjectAt returns the object at the given key path.
func (o Object) ObjectAt(keys ...string) (Object, error) {
	v, err := o.ValueAt(keys...)
	if err != nil {
		return nil, err
	}
	return AsObject(v, strings.Join(keys, "."))
}

// ArrayAt returns the array at the given key path.
func (o Object) ArrayAt(keys ...string) (Array, error) {
	v, err := o.ValueAt(keys...)
	if err != nil {
		return nil, err
	}
	return AsArray(v, strings.Join(keys, "."))
}

// StringAt returns the string at the given key path.
func (o Object) StringAt(keys ...string) (string, error) {
	v, err := o.ValueAt(keys...)
	if err != nil {
		return "", err
	}
	return AsString(v, strings.Join(keys, "."))
}

// IntAt returns the integer amount at the given key path.
func (o Object) IntAt(keys ...string) (sdkmath.Int, error) {
	v, err := o.ValueAt(keys...)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return AsInt(v, strings.Join(keys, "."))
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case Object, map[string]any:
		return "object"
	case Array, []any:
		return "array"
	case string:
		return "string"
	case json.Number, float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return "value"
	}
}
