package service

import (
	"crypto/subtle"
	"fmt"

	"github.com/MKhiriev/item-api/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// PasswordMatcher compares a configured password with a supplied one.
type PasswordMatcher interface {
	Match(stored, supplied string) bool
}

// NewPasswordMatcher returns the matcher for the given hashing mode
// ([config.HashingPlain] or [config.HashingBcrypt]).
func NewPasswordMatcher(hashing string) (PasswordMatcher, error) {
	switch hashing {
	case config.HashingPlain, "":
		return plainMatcher{}, nil
	case config.HashingBcrypt:
		return bcryptMatcher{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPasswordHashing, hashing)
	}
}

type plainMatcher struct{}

func (plainMatcher) Match(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

// bcryptMatcher treats stored values as bcrypt hashes.
type bcryptMatcher struct{}

func (bcryptMatcher) Match(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}
