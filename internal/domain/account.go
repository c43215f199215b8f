package domain

import (
	"errors"
	"strings"
)

// Password length requirement for registration.
const MinPasswordLength = 4

// Common validation errors for Account
var (
	ErrBlankUsername    = errors.New("username cannot be blank")
	ErrBlankPassword    = errors.New("password cannot be blank")
	ErrPasswordTooShort = errors.New("password must be at least 4 characters long")
)

// Account represents a registered user of the application.
//
// The password is stored and compared as plaintext. That is the documented
// contract of this API (clients receive the full account back on register
// and login); do not reuse these credentials anywhere that matters.
type Account struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// NewAccount creates an Account candidate from registration input.
// The ID is zero until the store assigns one.
// Returns an error if validation fails.
func NewAccount(username, password string) (*Account, error) {
	account := &Account{
		Username: username,
		Password: password,
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks registration constraints: a non-blank username and a
// password of at least MinPasswordLength characters.
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Username) == "" {
		return ErrBlankUsername
	}

	if len(a.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	return nil
}

// ValidateCredentials checks login constraints, which are looser than
// registration: both fields merely have to be non-blank. Whether the pair
// matches an account is the store's call.
func (a *Account) ValidateCredentials() error {
	if strings.TrimSpace(a.Username) == "" {
		return ErrBlankUsername
	}

	if strings.TrimSpace(a.Password) == "" {
		return ErrBlankPassword
	}

	return nil
}
