package cli

import (
	"os"

	"github.com/authcorp/lenskit/codec"
	"github.com/authcorp/lenskit/domain/user"
	apperrors "github.com/authcorp/lenskit/errors"
)

func readUser(file string) (user.User, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return user.User{}, apperrors.Wrap(err, apperrors.ErrCodeNotFound, "document not found")
		}
		return user.User{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to read document")
	}
	u, err := codec.For[user.User](codec.FormatOf(file)).Decode(data)
	if err != nil {
		return user.User{}, apperrors.Wrap(err, apperrors.ErrCodeValidation, "failed to decode document")
	}
	return u, nil
}

func encodeUser(u user.User, format codec.Format) ([]byte, error) {
	data, err := codec.For[user.User](format).Encode(u)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to encode document")
	}
	return data, nil
}

// writeUser replaces file, keeping its permissions.
func writeUser(file string, u user.User) error {
	info, err := os.Stat(file)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to stat document")
	}
	data, err := encodeUser(u, codec.FormatOf(file))
	if err != nil {
		return err
	}
	if err := os.WriteFile(file, data, info.Mode().Perm()); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to write document")
	}
	return nil
}
