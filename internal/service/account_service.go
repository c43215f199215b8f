package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/kfalter/chirper-api/internal/domain"
	"github.com/kfalter/chirper-api/internal/store"
)

// AccountService provides account-related operations.
type AccountService interface {
	// Register validates and persists a new account.
	// Returns a domain validation error if the username is blank or the
	// password is too short, or ErrDuplicateUsername if the username is taken.
	// On success the returned account carries its store-assigned ID.
	Register(ctx context.Context, username, password string) (*domain.Account, error)

	// Login returns the account matching the exact username+password pair.
	// Returns a domain validation error if either field is blank, or
	// ErrInvalidCredentials if no account matches.
	Login(ctx context.Context, username, password string) (*domain.Account, error)

	// UsernameExists reports whether the username is taken. No side effects.
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// accountServiceImpl implements the AccountService interface.
type accountServiceImpl struct {
	db       *sql.DB
	accounts store.AccountStore
	logger   *slog.Logger
}

// NewAccountService creates a new AccountService.
// It returns an error if any of the required dependencies are nil.
func NewAccountService(
	db *sql.DB,
	accounts store.AccountStore,
	logger *slog.Logger,
) (AccountService, error) {
	if db == nil {
		return nil, &ServiceError{
			Operation: "create_service",
			Message:   "db cannot be nil",
		}
	}
	if accounts == nil {
		return nil, &ServiceError{
			Operation: "create_service",
			Message:   "accounts store cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &accountServiceImpl{
		db:       db,
		accounts: accounts,
		logger:   logger.With("component", "account_service"),
	}, nil
}

// Register validates the candidate account and persists it.
// The existence check and insert run in one transaction; the accounts table's
// unique constraint is the real arbiter when two registrations race, and a
// constraint violation surfaces as ErrDuplicateUsername all the same.
func (s *accountServiceImpl) Register(
	ctx context.Context,
	username, password string,
) (*domain.Account, error) {
	account, err := domain.NewAccount(username, password)
	if err != nil {
		s.logger.Warn("account validation failed during registration",
			"error", err,
			"username", username)
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txAccounts := s.accounts.WithTx(tx)

		exists, err := txAccounts.UsernameExists(ctx, account.Username)
		if err != nil {
			return NewServiceError("register", "failed to check username", err)
		}
		if exists {
			return ErrDuplicateUsername
		}

		if err := txAccounts.Create(ctx, account); err != nil {
			if errors.Is(err, store.ErrUsernameExists) {
				return ErrDuplicateUsername
			}
			return NewServiceError("register", "failed to save account", err)
		}
		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrDuplicateUsername) {
			s.logger.Error("failed to register account",
				"error", err,
				"username", username)
		}
		return nil, err
	}

	s.logger.Info("account registered successfully",
		"account_id", account.ID,
		"username", account.Username)
	return account, nil
}

// Login checks the credentials for blank fields and asks the store for the
// matching account. Comparison is exact equality, as documented on
// domain.Account.
func (s *accountServiceImpl) Login(
	ctx context.Context,
	username, password string,
) (*domain.Account, error) {
	candidate := &domain.Account{Username: username, Password: password}
	if err := candidate.ValidateCredentials(); err != nil {
		s.logger.Warn("credential validation failed during login",
			"error", err,
			"username", username)
		return nil, err
	}

	account, err := s.accounts.GetByCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			s.logger.Debug("login rejected", "username", username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to look up credentials",
			"error", err,
			"username", username)
		return nil, NewServiceError("login", "failed to look up credentials", err)
	}

	s.logger.Info("login successful",
		"account_id", account.ID,
		"username", account.Username)
	return account, nil
}

// UsernameExists reports whether the username is taken.
func (s *accountServiceImpl) UsernameExists(
	ctx context.Context,
	username string,
) (bool, error) {
	exists, err := s.accounts.UsernameExists(ctx, username)
	if err != nil {
		s.logger.Error("failed to check username existence",
			"error", err,
			"username", username)
		return false, NewServiceError("username_exists", "failed to check username", err)
	}
	return exists, nil
}
