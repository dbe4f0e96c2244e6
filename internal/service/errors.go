package service

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so callers cannot tell them apart.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrItemNotFound = errors.New("item not found")
	ErrInvalidItem  = errors.New("invalid item")

	ErrUnknownPasswordHashing = errors.New("unknown password hashing")
)
