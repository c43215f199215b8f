package store

import (
	"context"
	"database/sql"

	"github.com/kfalter/chirper-api/internal/domain"
)

// AccountStore defines the interface for account data persistence.
type AccountStore interface {
	// Create saves a new account to the store and fills in the
	// store-assigned ID on the passed account.
	// Returns ErrUsernameExists if the username is already taken.
	Create(ctx context.Context, account *domain.Account) error

	// GetByID retrieves an account by its unique ID.
	// Returns ErrAccountNotFound if the account does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Account, error)

	// GetByUsername retrieves an account by its username.
	// Returns ErrAccountNotFound if the account does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)

	// UsernameExists reports whether an account with the given username
	// exists. It has no side effects.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// GetByCredentials retrieves the account matching the exact
	// username+password pair. Returns ErrAccountNotFound if no account
	// matches. The comparison is plain equality; see domain.Account.
	GetByCredentials(ctx context.Context, username, password string) (*domain.Account, error)

	// WithTx returns a new AccountStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller
	// (typically a service).
	WithTx(tx *sql.Tx) AccountStore
}
