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

// MessageStore implements the store.MessageStore interface
// using a PostgreSQL database as the storage backend.
type MessageStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewMessageStore creates a new PostgreSQL implementation of the MessageStore interface.
// It accepts a database connection or transaction that should be initialized and
// managed by the caller. If logger is nil, a default logger will be used.
func NewMessageStore(db store.DBTX, logger *slog.Logger) *MessageStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &MessageStore{
		db:     db,
		logger: logger.With(slog.String("component", "message_store")),
	}
}

// Ensure MessageStore implements store.MessageStore interface
var _ store.MessageStore = (*MessageStore)(nil)

// WithTx implements store.MessageStore.WithTx
func (s *MessageStore) WithTx(tx *sql.Tx) store.MessageStore {
	return &MessageStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.MessageStore.Create
// It validates the message, inserts it, and fills in the assigned ID.
// Returns store.ErrInvalidEntity if the posting account doesn't exist
// (foreign key violation).
func (s *MessageStore) Create(ctx context.Context, message *domain.Message) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := message.Validate(); err != nil {
		log.Warn("message validation failed during create",
			slog.String("error", err.Error()),
			slog.Int64("posted_by", message.PostedBy))
		return err
	}

	query := `
		INSERT INTO messages (posted_by, message_text, time_posted_epoch)
		VALUES ($1, $2, $3)
		RETURNING message_id
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		message.PostedBy,
		message.MessageText,
		message.TimePostedEpoch,
	).Scan(&message.ID)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during message creation",
				slog.Int64("posted_by", message.PostedBy))
			return fmt.Errorf("%w: account with ID %d not found",
				store.ErrInvalidEntity, message.PostedBy)
		}

		log.Error("failed to create message",
			slog.String("error", err.Error()),
			slog.Int64("posted_by", message.PostedBy))
		return MapError(err)
	}

	log.Info("message created successfully",
		slog.Int64("message_id", message.ID),
		slog.Int64("posted_by", message.PostedBy))
	return nil
}

// GetByID implements store.MessageStore.GetByID
// Returns store.ErrMessageNotFound if the message does not exist.
func (s *MessageStore) GetByID(ctx context.Context, id int64) (*domain.Message, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT message_id, posted_by, message_text, time_posted_epoch
		FROM messages
		WHERE message_id = $1
	`

	var message domain.Message
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&message.ID,
		&message.PostedBy,
		&message.MessageText,
		&message.TimePostedEpoch,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("message not found", slog.Int64("message_id", id))
			return nil, store.ErrMessageNotFound
		}
		log.Error("failed to get message by ID",
			slog.String("error", err.Error()),
			slog.Int64("message_id", id))
		return nil, MapError(err)
	}

	return &message, nil
}

// Exists implements store.MessageStore.Exists
func (s *MessageStore) Exists(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM messages WHERE message_id = $1
		)
	`

	var exists bool
	err := s.db.QueryRowContext(ctx, query, id).Scan(&exists)
	if err != nil {
		log.Error("failed to check message existence",
			slog.String("error", err.Error()),
			slog.Int64("message_id", id))
		return false, MapError(err)
	}

	return exists, nil
}

// DeleteByID implements store.MessageStore.DeleteByID
// Deleting a missing message reports zero rows, not an error.
func (s *MessageStore) DeleteByID(ctx context.Context, id int64) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM messages
		WHERE message_id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete message",
			slog.String("error", err.Error()),
			slog.Int64("message_id", id))
		return 0, MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("message_id", id))
		return 0, err
	}

	if rowsAffected > 0 {
		log.Info("message deleted successfully",
			slog.Int64("message_id", id))
	}
	return rowsAffected, nil
}

// UpdateText implements store.MessageStore.UpdateText
// Returns store.ErrMessageNotFound if no message has that ID.
func (s *MessageStore) UpdateText(ctx context.Context, id int64, text string) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateMessageText(text); err != nil {
		log.Warn("message text validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("message_id", id))
		return 0, err
	}

	query := `
		UPDATE messages
		SET message_text = $1
		WHERE message_id = $2
	`

	result, err := s.db.ExecContext(ctx, query, text, id)
	if err != nil {
		log.Error("failed to update message text",
			slog.String("error", err.Error()),
			slog.Int64("message_id", id))
		return 0, MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("message_id", id))
		return 0, err
	}

	if rowsAffected == 0 {
		log.Debug("message not found for text update",
			slog.Int64("message_id", id))
		return 0, store.ErrMessageNotFound
	}

	log.Info("message text updated successfully",
		slog.Int64("message_id", id))
	return rowsAffected, nil
}

// ListAll implements store.MessageStore.ListAll
// Messages come back in insertion order. Returns an empty slice, not nil,
// when there are none.
func (s *MessageStore) ListAll(ctx context.Context) ([]*domain.Message, error) {
	query := `
		SELECT message_id, posted_by, message_text, time_posted_epoch
		FROM messages
		ORDER BY message_id
	`

	return s.queryMessages(ctx, query)
}

// ListByPostedBy implements store.MessageStore.ListByPostedBy
func (s *MessageStore) ListByPostedBy(
	ctx context.Context,
	accountID int64,
) ([]*domain.Message, error) {
	query := `
		SELECT message_id, posted_by, message_text, time_posted_epoch
		FROM messages
		WHERE posted_by = $1
		ORDER BY message_id
	`

	return s.queryMessages(ctx, query, accountID)
}

// queryMessages runs a message SELECT and scans the rows.
func (s *MessageStore) queryMessages(
	ctx context.Context,
	query string,
	args ...any,
) ([]*domain.Message, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query messages",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var messages []*domain.Message
	for rows.Next() {
		var message domain.Message
		err := rows.Scan(
			&message.ID,
			&message.PostedBy,
			&message.MessageText,
			&message.TimePostedEpoch,
		)
		if err != nil {
			log.Error("failed to scan message row",
				slog.String("error", err.Error()))
			return nil, err
		}
		messages = append(messages, &message)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	if messages == nil {
		messages = []*domain.Message{}
	}

	return messages, nil
}
