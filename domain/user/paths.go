package user

import "github.com/authcorp/lenskit/optics/path"

// Paths returns the text-addressable lenses over User.
func Paths() *path.Table[User] {
	return path.NewTable[User]().
		MustRegister("name", path.Text(UserName)).
		MustRegister("address.street", path.Text(UserStreet)).
		MustRegister("address.number", path.Int(UserNumber)).
		MustRegisterFamily("labels", func(key string) path.Accessor[User] {
			return path.Text(UserLabel(key))
		})
}
