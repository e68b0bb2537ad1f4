// Package testutil provides rapid generators and lens-law checks shared by
// the package tests.
package testutil

import (
	"reflect"
	"testing"

	"pgregory.net/rapid"

	"github.com/authcorp/lenskit/optics/lens"
)

// GetSetHolds reports whether writing back what was read leaves s unchanged.
func GetSetHolds[S, A any](l lens.Lens[S, A], s S) bool {
	return reflect.DeepEqual(l.Set(s, l.Get(s)), s)
}

// SetGetHolds reports whether reading after writing a returns a.
func SetGetHolds[S, A any](l lens.Lens[S, A], s S, a A) bool {
	return reflect.DeepEqual(l.Get(l.Set(s, a)), a)
}

// SetSetHolds reports whether the second of two writes wins outright.
func SetSetHolds[S, A any](l lens.Lens[S, A], s S, a1, a2 A) bool {
	return reflect.DeepEqual(l.Set(l.Set(s, a1), a2), l.Set(s, a2))
}

// CheckLaws runs GetSet, SetGet and SetSet for l as subtests, drawing roots
// from sources and foci from values.
func CheckLaws[S, A any](t *testing.T, l lens.Lens[S, A], sources *rapid.Generator[S], values *rapid.Generator[A]) {
	t.Helper()

	t.Run("GetSet", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			s := sources.Draw(t, "source")
			if !GetSetHolds(l, s) {
				t.Fatalf("Set(s, Get(s)) = %v, want %v", l.Set(s, l.Get(s)), s)
			}
		})
	})

	t.Run("SetGet", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			s := sources.Draw(t, "source")
			a := values.Draw(t, "value")
			if !SetGetHolds(l, s, a) {
				t.Fatalf("Get(Set(s, a)) = %v, want %v", l.Get(l.Set(s, a)), a)
			}
		})
	})

	t.Run("SetSet", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			s := sources.Draw(t, "source")
			a1 := values.Draw(t, "first")
			a2 := values.Draw(t, "second")
			if !SetSetHolds(l, s, a1, a2) {
				t.Fatalf("Set(Set(s, a1), a2) = %v, want %v", l.Set(l.Set(s, a1), a2), l.Set(s, a2))
			}
		})
	})
}

// AssertUnchanged fails t if after differs from before. Use it to check that
// a setter left its input alone.
func AssertUnchanged[S any](t testing.TB, before S, after S) {
	t.Helper()
	if !reflect.DeepEqual(before, after) {
		t.Errorf("source was modified: before %v, after %v", before, after)
	}
}
