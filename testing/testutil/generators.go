package testutil

import (
	"pgregory.net/rapid"

	"github.com/authcorp/lenskit/domain/user"
	"github.com/authcorp/lenskit/optics/lens"
)

// StreetGen generates street names.
func StreetGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Z][a-z]{2,15}( [A-Z][a-z]{2,10})?`)
}

// HouseNumberGen generates house numbers.
func HouseNumberGen() *rapid.Generator[int] {
	return rapid.IntRange(1, 9999)
}

// AddressGen generates addresses.
func AddressGen() *rapid.Generator[user.Address] {
	return rapid.Custom(func(t *rapid.T) user.Address {
		return user.NewAddress(
			StreetGen().Draw(t, "street"),
			HouseNumberGen().Draw(t, "number"),
		)
	})
}

// LabelKeyGen generates label keys.
func LabelKeyGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-z][a-z0-9-]{0,15}`)
}

// UserGen generates users, some of them labelled.
func UserGen() *rapid.Generator[user.User] {
	return rapid.Custom(func(t *rapid.T) user.User {
		u := user.New(
			rapid.String().Draw(t, "name"),
			AddressGen().Draw(t, "address"),
		)
		if rapid.Bool().Draw(t, "labelled") {
			u = u.WithLabels(rapid.MapOfN(LabelKeyGen(), rapid.String(), 1, 4).Draw(t, "labels"))
		}
		return u
	})
}

// PairGen generates lens.Pair values.
func PairGen[A, B any](firstGen *rapid.Generator[A], secondGen *rapid.Generator[B]) *rapid.Generator[lens.Pair[A, B]] {
	return rapid.Custom(func(t *rapid.T) lens.Pair[A, B] {
		return lens.Pair[A, B]{
			First:  firstGen.Draw(t, "first"),
			Second: secondGen.Draw(t, "second"),
		}
	})
}

// NonEmptySliceGen generates slices of at least one element.
func NonEmptySliceGen[T any](elemGen *rapid.Generator[T], maxSize int) *rapid.Generator[[]T] {
	return rapid.SliceOfN(elemGen, 1, maxSize)
}
