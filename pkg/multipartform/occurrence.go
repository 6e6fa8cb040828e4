package multipartform

// Cardinality tells whether a field was received once or several times.
type Cardinality uint8

const (
	CardinalitySingle Cardinality = iota + 1
	CardinalityMultiple
)

func (c Cardinality) String() string {
	if c == CardinalityMultiple {
		return "multiple"
	}
	return "single"
}

// Occurrence groups the values received under one field name.
// It is either Single (exactly one value) or Multiple (two or more values,
// in arrival order). A name that was never received has no Occurrence.
// Values are only created by this package, so the zero Occurrence never
// escapes to callers.
type Occurrence[T any] struct {
	values []T
}

func single[T any](v T) Occurrence[T] {
	return Occurrence[T]{values: []T{v}}
}

// add returns the occurrence extended by v: Single becomes Multiple.
func (o Occurrence[T]) add(v T) Occurrence[T] {
	values := make([]T, len(o.values), len(o.values)+1)
	copy(values, o.values)
	return Occurrence[T]{values: append(values, v)}
}

// Cardinality reports Single or Multiple.
func (o Occurrence[T]) Cardinality() Cardinality {
	if len(o.values) > 1 {
		return CardinalityMultiple
	}
	return CardinalitySingle
}

// IsMultiple reports whether the field was received more than once.
func (o Occurrence[T]) IsMultiple() bool {
	return len(o.values) > 1
}

// Single returns the value when the occurrence is Single.
func (o Occurrence[T]) Single() (T, bool) {
	if len(o.values) != 1 {
		var zero T
		return zero, false
	}
	return o.values[0], true
}

// All returns every received value in arrival order.
func (o Occurrence[T]) All() []T {
	out := make([]T, len(o.values))
	copy(out, o.values)
	return out
}

// Len returns the number of received values.
func (o Occurrence[T]) Len() int {
	return len(o.values)
}
