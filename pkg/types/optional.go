package types

import "encoding/json"

// Optional is a JSON member that remembers whether its key was present.
// A present null leaves Value nil with Present true. Fields of this type are
// tagged omitzero so an absent member stays absent on re-encoding.
type Optional[T any] struct {
	Value   *T
	Present bool
}

// Some returns a present Optional holding v
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: &v, Present: true}
}

// Null returns a present Optional holding JSON null
func Null[T any]() Optional[T] {
	return Optional[T]{Present: true}
}

// IsZero reports whether the key was absent
func (o Optional[T]) IsZero() bool {
	return !o.Present
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	o.Value = nil
	if isJSONNull(data) {
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// Bool returns a pointer to v, for optional boolean fields such as APICallResult.OK
func Bool(v bool) *bool {
	return &v
}

// Int returns a pointer to v, for optional numeric fields such as Paging.Total
func Int(v int) *int {
	return &v
}
