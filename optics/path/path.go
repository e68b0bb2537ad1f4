// Package path addresses lenses by dotted names so they can be driven from
// text, as the CLI does.
package path

import (
	"slices"
	"strconv"
	"strings"

	apperrors "github.com/authcorp/lenskit/errors"
	"github.com/authcorp/lenskit/optics/lens"
	"github.com/authcorp/lenskit/patterns/registry"
)

// Accessor reads and writes one focus of S as text.
type Accessor[S any] struct {
	get func(S) string
	set func(S, string) (S, error)
}

// Parsed adapts a typed lens using format and parse for the text form.
func Parsed[S, A any](l lens.Lens[S, A], format func(A) string, parse func(string) (A, error)) Accessor[S] {
	return Accessor[S]{
		get: func(s S) string { return format(l.Get(s)) },
		set: func(s S, text string) (S, error) {
			value, err := parse(text)
			if err != nil {
				return s, err
			}
			return l.Set(s, value), nil
		},
	}
}

// Text adapts a string lens.
func Text[S any](l lens.Lens[S, string]) Accessor[S] {
	return Parsed(l,
		func(s string) string { return s },
		func(s string) (string, error) { return s, nil },
	)
}

// Int adapts an int lens using base-10 text.
func Int[S any](l lens.Lens[S, int]) Accessor[S] {
	return Parsed(l, strconv.Itoa, func(s string) (int, error) {
		return strconv.Atoi(strings.TrimSpace(s))
	})
}

// Family builds the accessor for one key below a family prefix.
type Family[S any] func(key string) Accessor[S]

// Table maps dotted paths to accessors over S. Besides fixed paths it holds
// families, which answer every "<prefix>.<key>" path with a non-empty key.
type Table[S any] struct {
	entries  *registry.Registry[string, Accessor[S]]
	families *registry.Registry[string, Family[S]]
}

// NewTable creates an empty table.
func NewTable[S any]() *Table[S] {
	return &Table[S]{
		entries:  registry.New[string, Accessor[S]](),
		families: registry.New[string, Family[S]](),
	}
}

// Register adds an accessor under path. Paths are unique.
func (t *Table[S]) Register(path string, a Accessor[S]) error {
	if strings.TrimSpace(path) == "" {
		return apperrors.Validation("path must not be empty")
	}
	if !t.entries.TryRegister(path, a) {
		return apperrors.Conflict("path already registered").WithDetail("path", path)
	}
	return nil
}

// MustRegister is Register that panics on error. For package-level tables.
func (t *Table[S]) MustRegister(path string, a Accessor[S]) *Table[S] {
	if err := t.Register(path, a); err != nil {
		panic(err)
	}
	return t
}

// RegisterFamily adds build under prefix. Fixed paths take precedence over
// families, and the longest matching prefix wins among families.
func (t *Table[S]) RegisterFamily(prefix string, build Family[S]) error {
	if strings.TrimSpace(prefix) == "" {
		return apperrors.Validation("path prefix must not be empty")
	}
	if !t.families.TryRegister(prefix, build) {
		return apperrors.Conflict("path family already registered").WithDetail("prefix", prefix)
	}
	return nil
}

// MustRegisterFamily is RegisterFamily that panics on error.
func (t *Table[S]) MustRegisterFamily(prefix string, build Family[S]) *Table[S] {
	if err := t.RegisterFamily(prefix, build); err != nil {
		panic(err)
	}
	return t
}

// Get returns the text form of the focus at path.
func (t *Table[S]) Get(root S, path string) (string, error) {
	a, err := t.lookup(path)
	if err != nil {
		return "", err
	}
	return a.get(root), nil
}

// Set returns a copy of root with the focus at path replaced by the parsed
// text. root itself is not modified; on error root is returned as is.
func (t *Table[S]) Set(root S, path, text string) (S, error) {
	a, err := t.lookup(path)
	if err != nil {
		return root, err
	}
	updated, err := a.set(root, text)
	if err != nil {
		return root, apperrors.Validation("cannot parse value").
			WithDetail("path", path).
			WithDetail("value", text).
			WithCause(err)
	}
	return updated, nil
}

// Paths returns the registered paths in sorted order. A family is listed
// as "<prefix>.*".
func (t *Table[S]) Paths() []string {
	out := make([]string, 0, t.entries.Len()+t.families.Len())
	out = append(out, t.entries.Keys()...)
	for _, prefix := range t.families.Keys() {
		out = append(out, prefix+".*")
	}
	slices.Sort(out)
	return out
}

func (t *Table[S]) lookup(path string) (Accessor[S], error) {
	if a, ok := t.entries.Get(path); ok {
		return a, nil
	}
	var (
		longest string
		build   Family[S]
	)
	t.families.ForEach(func(prefix string, b Family[S]) {
		key, ok := strings.CutPrefix(path, prefix+".")
		if ok && key != "" && len(prefix) > len(longest) {
			longest, build = prefix, b
		}
	})
	if build == nil {
		return Accessor[S]{}, apperrors.NotFound("path " + strconv.Quote(path)).WithDetail("path", path)
	}
	return build(path[len(longest)+1:]), nil
}
