package factory

import (
	"errors"
)

var (
	ErrTypeMismatch = errors.New("not a subtype")
	ErrUnknownKey   = errors.New("unknown key")
	ErrInvalidKey   = errors.New("invalid key")
)

func CheckTypeMismatch(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}

func CheckUnknownKey(err error) bool {
	return errors.Is(err, ErrUnknownKey)
}
