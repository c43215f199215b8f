package store

import (
	"context"
	"database/sql"

	"github.com/kfalter/chirper-api/internal/domain"
)

// MessageStore defines the interface for message data persistence.
type MessageStore interface {
	// Create saves a new message to the store and fills in the
	// store-assigned ID on the passed message.
	// Returns ErrInvalidEntity if the posting account does not exist
	// (foreign key violation).
	Create(ctx context.Context, message *domain.Message) error

	// GetByID retrieves a message by its unique ID.
	// Returns ErrMessageNotFound if the message does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Message, error)

	// Exists reports whether a message with the given ID exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// DeleteByID removes a message by its ID and returns the number of
	// rows deleted. Deleting a missing message is not an error; it
	// reports zero rows.
	DeleteByID(ctx context.Context, id int64) (int64, error)

	// UpdateText overwrites the text of an existing message in place and
	// returns the number of rows updated.
	// Returns ErrMessageNotFound if no message has that ID.
	UpdateText(ctx context.Context, id int64, text string) (int64, error)

	// ListAll returns every message in the store's natural order.
	// Returns an empty slice if there are none.
	ListAll(ctx context.Context) ([]*domain.Message, error)

	// ListByPostedBy returns all messages posted by the given account.
	// Returns an empty slice if there are none.
	ListByPostedBy(ctx context.Context, accountID int64) ([]*domain.Message, error)

	// WithTx returns a new MessageStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) MessageStore
}
