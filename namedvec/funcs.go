package namedvec

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates an empty NamedVec.
func New[T Named]() *NamedVec[T] {
	return &NamedVec[T]{
		items: []T{},
		index: map[string]int{},
	}
}

// WithCapacity creates an empty NamedVec pre-sized to hold n elements:
// both the sequence and the name index are allocated up front, so the first
// n pushes require no reallocation. The hint affects amortized cost only,
// never observable behavior.
func WithCapacity[T Named](n int) *NamedVec[T] {
	return &NamedVec[T]{
		items: make([]T, 0, n),
		index: make(map[string]int, n),
	}
}

// From creates a NamedVec from a slice, pushing each element in order.
// Upsert semantics apply: a later element with a name already seen replaces
// the earlier one at its original position. The input slice is not retained.
func From[T Named](items []T) *NamedVec[T] {
	v := WithCapacity[T](len(items))
	for _, item := range items {
		v.Push(item)
	}
	return v
}

// Collect creates a NamedVec from a variadic list of elements.
// It is shorthand for [From].
func Collect[T Named](items ...T) *NamedVec[T] {
	return From(items)
}
