package domain

import (
	"testing"
)

func TestNewAccount(t *testing.T) {
	t.Parallel() // Enable parallel execution
	// Test valid account creation
	validUsername := "testuser"
	validPassword := "password123"

	account, err := NewAccount(validUsername, validPassword)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if account.ID != 0 {
		t.Errorf("Expected zero ID before persistence, got %d", account.ID)
	}

	if account.Username != validUsername {
		t.Errorf("Expected username %s, got %s", validUsername, account.Username)
	}

	if account.Password != validPassword {
		t.Errorf("Expected password %s, got %s", validPassword, account.Password)
	}

	// Test blank username
	_, err = NewAccount("", validPassword)
	if err != ErrBlankUsername {
		t.Errorf("Expected error %v, got %v", ErrBlankUsername, err)
	}

	_, err = NewAccount("   ", validPassword)
	if err != ErrBlankUsername {
		t.Errorf("Expected error %v, got %v", ErrBlankUsername, err)
	}

	// Test short password
	_, err = NewAccount(validUsername, "abc")
	if err != ErrPasswordTooShort {
		t.Errorf("Expected error %v, got %v", ErrPasswordTooShort, err)
	}
}

func TestAccountValidate(t *testing.T) {
	t.Parallel() // Enable parallel execution
	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{
			name:     "valid account",
			username: "testuser",
			password: "password123",
			wantErr:  nil,
		},
		{
			name:     "password at minimum length",
			username: "testuser",
			password: "abcd",
			wantErr:  nil,
		},
		{
			name:     "blank username",
			username: "",
			password: "password123",
			wantErr:  ErrBlankUsername,
		},
		{
			name:     "whitespace username",
			username: " \t ",
			password: "password123",
			wantErr:  ErrBlankUsername,
		},
		{
			name:     "password below minimum length",
			username: "testuser",
			password: "abc",
			wantErr:  ErrPasswordTooShort,
		},
		{
			name:     "empty password",
			username: "testuser",
			password: "",
			wantErr:  ErrPasswordTooShort,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			account := Account{Username: tc.username, Password: tc.password}
			if err := account.Validate(); err != tc.wantErr {
				t.Errorf("Expected error %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestAccountValidateCredentials(t *testing.T) {
	t.Parallel() // Enable parallel execution
	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{
			name:     "valid credentials",
			username: "testuser",
			password: "password123",
			wantErr:  nil,
		},
		{
			// Login only requires non-blank fields; a password shorter than
			// the registration minimum is still a well-formed login attempt.
			name:     "short but non-blank password",
			username: "testuser",
			password: "ab",
			wantErr:  nil,
		},
		{
			name:     "blank username",
			username: "",
			password: "password123",
			wantErr:  ErrBlankUsername,
		},
		{
			name:     "blank password",
			username: "testuser",
			password: "",
			wantErr:  ErrBlankPassword,
		},
		{
			name:     "whitespace password",
			username: "testuser",
			password: "   ",
			wantErr:  ErrBlankPassword,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			account := Account{Username: tc.username, Password: tc.password}
			if err := account.ValidateCredentials(); err != tc.wantErr {
				t.Errorf("Expected error %v, got %v", tc.wantErr, err)
			}
		})
	}
}
