// Package user holds the sample records that the lens library is exercised
// against, together with their field lenses.
package user

import (
	"fmt"

	"github.com/authcorp/lenskit/optics/lens"
)

// Address is an immutable street address.
type Address struct {
	Street string `json:"street" yaml:"street"`
	Number int    `json:"number" yaml:"number"`
}

// NewAddress creates an Address.
func NewAddress(street string, number int) Address {
	return Address{Street: street, Number: number}
}

// WithStreet returns a copy of a with the street replaced.
func (a Address) WithStreet(street string) Address {
	return Address{Street: street, Number: a.Number}
}

// WithNumber returns a copy of a with the number replaced.
func (a Address) WithNumber(number int) Address {
	return Address{Street: a.Street, Number: number}
}

func (a Address) String() string {
	return fmt.Sprintf("%s %d", a.Street, a.Number)
}

// User is an immutable user record. The address is held by value.
// Labels is free-form metadata; copies share the map, so it is replaced
// rather than written to.
type User struct {
	Name    string            `json:"name" yaml:"name"`
	Address Address           `json:"address" yaml:"address"`
	Labels  map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// New creates a User without labels.
func New(name string, address Address) User {
	return User{Name: name, Address: address}
}

// WithName returns a copy of u with the name replaced.
func (u User) WithName(name string) User {
	return User{Name: name, Address: u.Address, Labels: u.Labels}
}

// WithAddress returns a copy of u with the address replaced.
func (u User) WithAddress(address Address) User {
	return User{Name: u.Name, Address: address, Labels: u.Labels}
}

// WithLabels returns a copy of u with the labels replaced.
func (u User) WithLabels(labels map[string]string) User {
	return User{Name: u.Name, Address: u.Address, Labels: labels}
}

func (u User) String() string {
	return fmt.Sprintf("User: %s from %s", u.Name, u.Address)
}

// Field lenses.
var (
	AddressStreet = lens.NewLens(
		func(a Address) string { return a.Street },
		Address.WithStreet,
	)

	AddressNumber = lens.NewLens(
		func(a Address) int { return a.Number },
		Address.WithNumber,
	)

	UserName = lens.NewLens(
		func(u User) string { return u.Name },
		User.WithName,
	)

	UserAddress = lens.NewLens(
		func(u User) Address { return u.Address },
		User.WithAddress,
	)

	UserLabels = lens.NewLens(
		func(u User) map[string]string { return u.Labels },
		User.WithLabels,
	)

	// UserStreet focuses on the street of the user's address.
	UserStreet = lens.Compose(UserAddress, AddressStreet)

	// UserNumber focuses on the house number of the user's address.
	UserNumber = lens.Compose(UserAddress, AddressNumber)
)

// UserLabel focuses on one label. A missing label reads as "".
func UserLabel(key string) lens.Lens[User, string] {
	return lens.Compose(UserLabels, lens.MapAt(key, ""))
}
