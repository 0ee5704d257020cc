package bookshelf

import (
	"bytes"
	"encoding/json"
)

// Opt holds a field the API may omit. A JSON null, a missing key and the zero
// value all decode to absent, so presence checks match what the backend means
// by "not set".
type Opt[T comparable] struct {
	value T
	ok    bool
}

// Some returns a present Opt. Zero values are treated as absent.
func Some[T comparable](v T) Opt[T] {
	var zero T
	if v == zero {
		return Opt[T]{}
	}
	return Opt[T]{value: v, ok: true}
}

// None returns an absent Opt.
func None[T comparable]() Opt[T] {
	return Opt[T]{}
}

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Present reports whether a value is set.
func (o Opt[T]) Present() bool {
	return o.ok
}

// Or returns the value when present, otherwise fallback.
func (o Opt[T]) Or(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// IsZero lets encoding/json drop absent values under the omitzero tag.
func (o Opt[T]) IsZero() bool {
	return !o.ok
}

func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o *Opt[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Opt[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
