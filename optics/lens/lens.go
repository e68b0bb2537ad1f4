// Package lens provides generic lens optics for immutable data access.
//
// A Lens pairs a getter and a setter focused on one part of a value. Setters
// never mutate their input: they return a fresh root with the focus
// replaced. Setters take the root first and the new focus second.
package lens

// Lens provides access to part of an immutable structure.
type Lens[S, A any] struct {
	get func(S) A
	set func(S, A) S
}

// NewLens creates a lens from get and set functions.
// set must return a new S and leave its argument untouched.
func NewLens[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return Lens[S, A]{get: get, set: set}
}

// Get retrieves the focused value.
func (l Lens[S, A]) Get(source S) A {
	return l.get(source)
}

// Set returns a new structure with the focused value replaced.
func (l Lens[S, A]) Set(source S, value A) S {
	return l.set(source, value)
}

// Modify applies fn to the focused value.
func (l Lens[S, A]) Modify(source S, fn func(A) A) S {
	return l.set(source, fn(l.get(source)))
}

// Compose creates a lens from the root of outer to the focus of inner.
//
// The setter reads the current intermediate value before updating it, so
// fields of A that inner does not focus on are kept.
func Compose[S, A, B any](outer Lens[S, A], inner Lens[A, B]) Lens[S, B] {
	return Lens[S, B]{
		get: func(s S) B {
			return inner.get(outer.get(s))
		},
		set: func(s S, b B) S {
			return outer.set(s, inner.set(outer.get(s), b))
		},
	}
}

// Compose3 chains three lenses. It is Compose(Compose(first, second), third).
func Compose3[S, A, B, C any](first Lens[S, A], second Lens[A, B], third Lens[B, C]) Lens[S, C] {
	return Compose(Compose(first, second), third)
}

// Identity focuses on the whole value.
func Identity[S any]() Lens[S, S] {
	return Lens[S, S]{
		get: func(s S) S { return s },
		set: func(_ S, s S) S { return s },
	}
}

// Pair is a plain two-element product.
type Pair[A, B any] struct {
	First  A
	Second B
}

// First focuses on the first element of a Pair.
func First[A, B any]() Lens[Pair[A, B], A] {
	return Lens[Pair[A, B], A]{
		get: func(p Pair[A, B]) A { return p.First },
		set: func(p Pair[A, B], a A) Pair[A, B] { return Pair[A, B]{First: a, Second: p.Second} },
	}
}

// Second focuses on the second element of a Pair.
func Second[A, B any]() Lens[Pair[A, B], B] {
	return Lens[Pair[A, B], B]{
		get: func(p Pair[A, B]) B { return p.Second },
		set: func(p Pair[A, B], b B) Pair[A, B] { return Pair[A, B]{First: p.First, Second: b} },
	}
}

// MapAt focuses on the value stored under key, reading defaultVal when the
// key is absent. Set copies the map.
func MapAt[K comparable, V any](key K, defaultVal V) Lens[map[K]V, V] {
	return Lens[map[K]V, V]{
		get: func(m map[K]V) V {
			if v, ok := m[key]; ok {
				return v
			}
			return defaultVal
		},
		set: func(m map[K]V, v V) map[K]V {
			result := make(map[K]V, len(m)+1)
			for k, val := range m {
				result[k] = val
			}
			result[key] = v
			return result
		},
	}
}

// SliceAt focuses on the element at index, reading defaultVal when index is
// out of range. An out-of-range Set returns the source as is; an in-range Set
// copies the slice.
func SliceAt[T any](index int, defaultVal T) Lens[[]T, T] {
	return Lens[[]T, T]{
		get: func(s []T) T {
			if index >= 0 && index < len(s) {
				return s[index]
			}
			return defaultVal
		},
		set: func(s []T, v T) []T {
			if index < 0 || index >= len(s) {
				return s
			}
			result := make([]T, len(s))
			copy(result, s)
			result[index] = v
			return result
		},
	}
}
