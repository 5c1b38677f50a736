package domain

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
)

// PropBag holds loosely typed component properties keyed by prop name.
// Values come from markup attributes or prop files and are not guaranteed
// to be strings.
type PropBag map[string]any

// PropValue is a present value taken out of a PropBag.
type PropValue struct {
	Raw any
}

// String returns the value as a string, or its fmt rendering when the raw
// value is not a string.
func (v PropValue) String() string {
	if s, ok := v.Raw.(string); ok {
		return s
	}
	return fmt.Sprint(v.Raw)
}

// Text returns the raw value when it is a string.
func (v PropValue) Text() (string, bool) {
	s, ok := v.Raw.(string)
	return s, ok
}

// Lookup returns the value stored under key. Unset values and values that
// carry nothing (nil, "", false, numeric zero) are reported as absent.
func (b PropBag) Lookup(key string) (PropValue, bool) {
	raw, ok := b[key]
	if !ok || isEmptyValue(raw) {
		return PropValue{}, false
	}
	return PropValue{Raw: raw}, true
}

// Keys returns the bag's keys sorted lexically.
func (b PropBag) Keys() []string {
	return slices.Sorted(maps.Keys(b))
}

func isEmptyValue(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	}
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return rv.IsZero()
	}
	return false
}
