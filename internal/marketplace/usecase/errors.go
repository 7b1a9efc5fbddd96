package usecase

import "errors"

var (
	ErrForbidden          = errors.New("operation not allowed for this user")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidInput       = errors.New("invalid input")
	ErrAlreadyDecided     = errors.New("seller request already decided")
	ErrAlreadySeller      = errors.New("user already has seller privileges")
)
