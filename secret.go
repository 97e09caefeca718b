package config

import "encoding/json"

// secretPlaceholder is the fixed text used for every textual representation
// of a Secret, regardless of the wrapped value.
const secretPlaceholder = `Secret("*****")`

// Secret wraps a value and hides it from every standard textual
// representation. It is intended for sensitive information, such as API
// secrets, so that the value cannot be accidentally logged or otherwise
// exposed by code that formats values generically.
//
// Equality is structural: two Secrets are equal if and only if their inner
// values are, so a Secret of a comparable type can be used as a map key.
// Expose is the only way to read the value back.
type Secret[T comparable] struct {
	value T
}

// NewSecret wraps a value in a Secret.
func NewSecret[T comparable](value T) Secret[T] {
	return Secret[T]{value: value}
}

// Expose returns the wrapped value.
//
// Use this with extreme care; once exposed, the value has none of the
// protections of the wrapper.
func (s Secret[T]) Expose() T {
	return s.value
}

// String implements fmt.Stringer. It always returns the fixed placeholder
// Secret("*****"), so %v and %s never show the wrapped value.
func (s Secret[T]) String() string {
	return secretPlaceholder
}

// GoString implements fmt.GoStringer with the same fixed placeholder, so
// %#v never shows the wrapped value either.
func (s Secret[T]) GoString() string {
	return secretPlaceholder
}

// UnmarshalJSON populates the Secret transparently from the JSON form of the
// inner value; the wrapper adds no nesting to the serialized shape.
//
// There is deliberately no MarshalJSON counterpart. The value field is
// unexported, so marshaling a Secret with encoding/json produces {} rather
// than the value. Callers that genuinely need to serialize the value must
// opt in explicitly by serializing the result of Expose themselves.
func (s *Secret[T]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &s.value)
}
