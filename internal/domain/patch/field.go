// Package patch provides the optional field type used by partial updates.
package patch

import (
	"bytes"
	"encoding/json"
)

// Field is one optional member of an update payload. It distinguishes a
// key that was absent, a key sent as null, and a key carrying a value.
// Only a value is applied; absent and null leave the stored column alone.
type Field[T any] struct {
	value   T
	present bool
	null    bool
}

// Set builds a Field carrying v.
func Set[T any](v T) Field[T] {
	return Field[T]{value: v, present: true}
}

// Null builds a Field that was sent as an explicit null.
func Null[T any]() Field[T] {
	return Field[T]{present: true, null: true}
}

// Present reports whether the key appeared in the payload at all.
func (f Field[T]) Present() bool { return f.present }

// IsNull reports whether the key was sent as null.
func (f Field[T]) IsNull() bool { return f.present && f.null }

// Get returns the value and whether it should be applied.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.present && !f.null
}

// Apply writes the value into dst when it should be applied.
func (f Field[T]) Apply(dst *T) bool {
	v, ok := f.Get()
	if ok {
		*dst = v
	}

	return ok
}

// UnmarshalJSON is only invoked for keys present in the document, which is
// what lets an absent key stay distinguishable from null.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.null = true

		var zero T
		f.value = zero

		return nil
	}

	f.null = false

	return json.Unmarshal(data, &f.value)
}

// MarshalJSON renders null for absent and null fields.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if v, ok := f.Get(); ok {
		return json.Marshal(v)
	}

	return []byte("null"), nil
}

// Columns collects column assignments for a targeted UPDATE.
type Columns map[string]any

// Put records column = f's value when f should be applied.
func Put[T any](cols Columns, column string, f Field[T]) {
	if v, ok := f.Get(); ok {
		cols[column] = v
	}
}

// PutPtr is Put for nullable columns stored as *T.
func PutPtr[T any](cols Columns, column string, f Field[T]) {
	if v, ok := f.Get(); ok {
		cols[column] = &v
	}
}
