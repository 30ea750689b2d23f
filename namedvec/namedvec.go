package namedvec

import (
	"fmt"
	"slices"
)

// Named is the one capability an element type must provide: a pure accessor
// returning the element's name.
//
// Names must be non-empty, unique within a vec (uniqueness is enforced by
// [NamedVec.Push]), and stable: mutating an element in place —
// for example through [NamedVec.GetMut] — such that its reported name
// changes leaves the vec's index inconsistent. That is a caller obligation,
// not something the vec guards against.
type Named interface {
	Name() string
}

// NamedVec is an ordered collection of T, dual-indexed by position and by
// name.
//
// Internally it is a slice of elements plus a map from each element's name
// to its current position. Every mutating method keeps the two in lockstep:
// after any method returns, the element at position i satisfies
// index[element.Name()] == i, and the index holds no other entries.
//
// The zero value is not usable; construct with [New], [WithCapacity],
// [From], or [Collect].
type NamedVec[T Named] struct {
	items []T
	index map[string]int
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Push appends item to the back of the vec, or replaces the element with the
// same name if one exists (order and position are preserved on replacement).
func (v *NamedVec[T]) Push(item T) {
	if i, ok := v.index[item.Name()]; ok {
		v.items[i] = item
		return
	}
	v.index[item.Name()] = len(v.items)
	v.items = append(v.items, item)
}

// Pop removes and returns the last element.
// Returns the zero value and false if the vec is empty.
func (v *NamedVec[T]) Pop() (T, bool) {
	var zero T
	if len(v.items) == 0 {
		return zero, false
	}
	last := v.items[len(v.items)-1]
	delete(v.index, last.Name())
	v.items[len(v.items)-1] = zero // release the slot's references
	v.items = v.items[:len(v.items)-1]
	return last, true
}

// PopOrFail removes and returns the last element, or [ErrEmptyVec].
func (v *NamedVec[T]) PopOrFail() (T, error) {
	item, ok := v.Pop()
	if !ok {
		return item, ErrEmptyVec
	}
	return item, nil
}

// Truncate shortens the vec to n elements, keeping the first n and dropping
// the rest. The name of every dropped element is removed from the index.
//
// If n is greater than or equal to the current length this has no effect;
// in particular, truncating an empty vec is a no-op. Panics if n is
// negative.
func (v *NamedVec[T]) Truncate(n int) {
	if n < 0 {
		panic(fmt.Sprintf("namedvec: Truncate: negative length %d", n))
	}
	if n >= len(v.items) {
		return
	}
	// The discard range is derived from the current length, never from the
	// index map's contents: map iteration order guarantees nothing.
	for _, item := range v.items[n:] {
		delete(v.index, item.Name())
	}
	clear(v.items[n:])
	v.items = v.items[:n]
}

// Clear removes all elements and all index entries, keeping allocated
// capacity.
func (v *NamedVec[T]) Clear() {
	clear(v.index)
	clear(v.items)
	v.items = v.items[:0]
}

// Swap exchanges the positions of two elements, each identified by either
// form of [Lookup]. Swapping a key with itself is a no-op.
//
// Panics if either key does not resolve to an element. The two keys are
// resolved independently before anything is mutated, so a swap never
// half-completes.
func (v *NamedVec[T]) Swap(first, second Lookup) {
	i, ok := v.resolve(first)
	if !ok {
		panic("namedvec: Swap: " + lookupString(first) + " does not resolve to an element")
	}
	j, ok := v.resolve(second)
	if !ok {
		panic("namedvec: Swap: " + lookupString(second) + " does not resolve to an element")
	}
	if i == j {
		return
	}
	// Read both names before mutating anything.
	ni, nj := v.items[i].Name(), v.items[j].Name()
	v.index[ni], v.index[nj] = j, i
	v.items[i], v.items[j] = v.items[j], v.items[i]
}

// ─────────────────────────────────────────────────────────────────────────────
// Lookup
// ─────────────────────────────────────────────────────────────────────────────

// Get returns a copy of the element identified by key.
// Returns the zero value and false when a [Name] key is not in use or an
// [Index] key is out of range.
func (v *NamedVec[T]) Get(key Lookup) (T, bool) {
	var zero T
	i, ok := v.resolve(key)
	if !ok {
		return zero, false
	}
	return v.items[i], true
}

// GetMut returns a pointer to the element identified by key, or nil and
// false on a miss.
//
// The pointer aliases the vec's backing storage: it is valid until the next
// mutating call and must not be retained past it. Mutations through the
// pointer must not change the element's reported name (see [Named]).
func (v *NamedVec[T]) GetMut(key Lookup) (*T, bool) {
	i, ok := v.resolve(key)
	if !ok {
		return nil, false
	}
	return &v.items[i], true
}

// GetOrFail returns the element identified by key, or a sentinel error:
// [ErrNameNotFound] for an unused name, [ErrIndexOutOfRange] for a bad
// position.
func (v *NamedVec[T]) GetOrFail(key Lookup) (T, error) {
	item, ok := v.Get(key)
	if !ok {
		switch k := key.(type) {
		case Name:
			return item, fmt.Errorf("%w: %q", ErrNameNotFound, string(k))
		default:
			return item, fmt.Errorf("%w: %d", ErrIndexOutOfRange, k)
		}
	}
	return item, nil
}

// IndexOf returns the current position of the element with the given name,
// together with a presence flag.
func (v *NamedVec[T]) IndexOf(name string) (int, bool) {
	i, ok := v.index[name]
	return i, ok
}

// ContainsName reports whether an element with the given name is present.
func (v *NamedVec[T]) ContainsName(name string) bool {
	_, ok := v.index[name]
	return ok
}

func (v *NamedVec[T]) resolve(key Lookup) (int, bool) {
	switch k := key.(type) {
	case Name:
		i, ok := v.index[string(k)]
		return i, ok
	case Index:
		return int(k), int(k) >= 0 && int(k) < len(v.items)
	}
	return 0, false // unreachable: Lookup is a closed sum
}

// ─────────────────────────────────────────────────────────────────────────────
// Views & iteration
// ─────────────────────────────────────────────────────────────────────────────

// Items returns a read-only view of all elements in position order.
//
// The view aliases the backing storage (its capacity is clipped so appends
// cannot write through); treat it as valid only until the next mutating
// call.
func (v *NamedVec[T]) Items() []T {
	return v.items[: len(v.items) : len(v.items)]
}

// Slice returns the view of elements in positions [i, j).
// Panics if the bounds are out of range, like ordinary slicing.
func (v *NamedVec[T]) Slice(i, j int) []T {
	return v.items[i:j:j]
}

// SliceFrom returns the view of elements from position i to the end.
func (v *NamedVec[T]) SliceFrom(i int) []T {
	return v.items[i:len(v.items):len(v.items)]
}

// SliceTo returns the view of elements from the start up to position j
// (exclusive).
func (v *NamedVec[T]) SliceTo(j int) []T {
	return v.items[:j:j]
}

// Names returns the element names in position order.
func (v *NamedVec[T]) Names() []string {
	names := make([]string, len(v.items))
	for i, item := range v.items {
		names[i] = item.Name()
	}
	return names
}

// Each calls fn(item, position) for every element in position order.
func (v *NamedVec[T]) Each(fn func(T, int)) {
	for i, item := range v.items {
		fn(item, i)
	}
}

// String returns a human-readable representation of the elements in
// position order. It implements [fmt.Stringer].
func (v *NamedVec[T]) String() string {
	return fmt.Sprintf("%v", v.items)
}

// ─────────────────────────────────────────────────────────────────────────────
// Size & capacity
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of elements in the vec.
func (v *NamedVec[T]) Len() int { return len(v.items) }

// IsEmpty reports whether the vec contains no elements.
func (v *NamedVec[T]) IsEmpty() bool { return len(v.items) == 0 }

// Cap returns the number of elements the vec can hold without reallocating
// its sequence storage.
func (v *NamedVec[T]) Cap() int { return cap(v.items) }

// Reserve ensures there is room for at least additional more elements
// without reallocating. It never changes length, ordering, or lookup
// results — only allocation headroom.
//
// Panics if additional is negative or the resulting capacity overflows.
func (v *NamedVec[T]) Reserve(additional int) {
	v.items = slices.Grow(v.items, additional)
	// Go maps have no in-place reserve; rebuild with the larger size hint.
	index := make(map[string]int, len(v.items)+additional)
	for name, i := range v.index {
		index[name] = i
	}
	v.index = index
}

// ShrinkToFit drops excess capacity from both internal structures.
// Observable state is unchanged.
func (v *NamedVec[T]) ShrinkToFit() {
	v.items = slices.Clip(v.items)
	index := make(map[string]int, len(v.items))
	for name, i := range v.index {
		index[name] = i
	}
	v.index = index
}
