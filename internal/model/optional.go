package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Optional distinguishes a JSON field that was omitted from one that was
// sent, including one sent as null. The zero value is "omitted".
type Optional[T any] struct {
	Set   bool
	Value *T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// IsNull reports whether the field was sent as an explicit null.
func (o Optional[T]) IsNull() bool {
	return o.Set && o.Value == nil
}

// Interface returns the held value, or an untyped nil when null.
func (o Optional[T]) Interface() any {
	if o.Value == nil {
		return nil
	}
	return *o.Value
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true

	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v

	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte(`null`), nil
	}
	return json.Marshal(*o.Value)
}

func (o Optional[T]) String() string {
	switch {
	case !o.Set:
		return "<unset>"
	case o.Value == nil:
		return "null"
	default:
		return fmt.Sprint(*o.Value)
	}
}
