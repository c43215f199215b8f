package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kfalter/chirper-api/internal/domain"
	"github.com/kfalter/chirper-api/internal/platform/logger"
	"github.com/kfalter/chirper-api/internal/store"
)

// AccountStore implements the store.AccountStore interface
// using a PostgreSQL database as the storage backend.
type AccountStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewAccountStore creates a new PostgreSQL implementation of the AccountStore interface.
// It accepts a database connection or transaction that should be initialized and
// managed by the caller. If logger is nil, a default logger will be used.
func NewAccountStore(db store.DBTX, logger *slog.Logger) *AccountStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &AccountStore{
		db:     db,
		logger: logger.With(slog.String("component", "account_store")),
	}
}

// Ensure AccountStore implements store.AccountStore interface
var _ store.AccountStore = (*AccountStore)(nil)

// WithTx implements store.AccountStore.WithTx
func (s *AccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return &AccountStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.AccountStore.Create
// It validates the account, inserts it, and fills in the assigned ID.
// Returns store.ErrUsernameExists if the username is already taken.
func (s *AccountStore) Create(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		log.Warn("account validation failed during create",
			slog.String("error", err.Error()),
			slog.String("username", account.Username))
		return err
	}

	query := `
		INSERT INTO accounts (username, password)
		VALUES ($1, $2)
		RETURNING account_id
	`

	err := s.db.QueryRowContext(ctx, query, account.Username, account.Password).
		Scan(&account.ID)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate username during account creation",
				slog.String("username", account.Username))
			return fmt.Errorf("%w: %v", store.ErrUsernameExists, err)
		}

		log.Error("failed to create account",
			slog.String("error", err.Error()),
			slog.String("username", account.Username))
		return MapError(err)
	}

	log.Info("account created successfully",
		slog.Int64("account_id", account.ID),
		slog.String("username", account.Username))
	return nil
}

// GetByID implements store.AccountStore.GetByID
// Returns store.ErrAccountNotFound if the account does not exist.
func (s *AccountStore) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT account_id, username, password
		FROM accounts
		WHERE account_id = $1
	`

	var account domain.Account
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&account.ID,
		&account.Username,
		&account.Password,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("account not found", slog.Int64("account_id", id))
			return nil, store.ErrAccountNotFound
		}
		log.Error("failed to get account by ID",
			slog.String("error", err.Error()),
			slog.Int64("account_id", id))
		return nil, MapError(err)
	}

	return &account, nil
}

// GetByUsername implements store.AccountStore.GetByUsername
// Returns store.ErrAccountNotFound if the account does not exist.
func (s *AccountStore) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT account_id, username, password
		FROM accounts
		WHERE username = $1
	`

	var account domain.Account
	err := s.db.QueryRowContext(ctx, query, username).Scan(
		&account.ID,
		&account.Username,
		&account.Password,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("account not found", slog.String("username", username))
			return nil, store.ErrAccountNotFound
		}
		log.Error("failed to get account by username",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return nil, MapError(err)
	}

	return &account, nil
}

// UsernameExists implements store.AccountStore.UsernameExists
func (s *AccountStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM accounts WHERE username = $1
		)
	`

	var exists bool
	err := s.db.QueryRowContext(ctx, query, username).Scan(&exists)
	if err != nil {
		log.Error("failed to check username existence",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return false, MapError(err)
	}

	return exists, nil
}

// GetByCredentials implements store.AccountStore.GetByCredentials
// The username+password pair is matched by plain equality; credentials are
// stored as given. Returns store.ErrAccountNotFound if no account matches.
func (s *AccountStore) GetByCredentials(
	ctx context.Context,
	username, password string,
) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT account_id, username, password
		FROM accounts
		WHERE username = $1 AND password = $2
	`

	var account domain.Account
	err := s.db.QueryRowContext(ctx, query, username, password).Scan(
		&account.ID,
		&account.Username,
		&account.Password,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("no account matches credentials",
				slog.String("username", username))
			return nil, store.ErrAccountNotFound
		}
		log.Error("failed to get account by credentials",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return nil, MapError(err)
	}

	return &account, nil
}
