package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/kfalter/chirper-api/internal/domain"
	"github.com/kfalter/chirper-api/internal/store"
)

// MessageService provides message-related operations.
//
// Missing messages are not failures for reads and deletes: GetByID returns
// (nil, nil) and DeleteByID returns (0, nil) when the ID doesn't exist. Only
// UpdateText treats a missing message as an error. This mirrors the API
// contract, where those endpoints answer 200 with an empty body.
type MessageService interface {
	// Create validates and persists a new message.
	// Returns a domain validation error for bad text or a missing poster
	// reference, or ErrPosterNotFound if the referenced account does not
	// resolve to an existing username.
	Create(ctx context.Context, postedBy int64, text string) (*domain.Message, error)

	// GetByID returns the message, or (nil, nil) if it doesn't exist.
	GetByID(ctx context.Context, id int64) (*domain.Message, error)

	// DeleteByID deletes the message and reports the number of rows
	// affected; deleting a missing message is a no-op success.
	DeleteByID(ctx context.Context, id int64) (int64, error)

	// UpdateText overwrites the message's text in place and reports the
	// number of rows affected. Returns ErrMessageNotFound if no message has
	// that ID, or a domain validation error for bad text.
	UpdateText(ctx context.Context, id int64, text string) (int64, error)

	// ListAll returns every message.
	ListAll(ctx context.Context) ([]*domain.Message, error)

	// ListByAccount returns all messages posted by the given account;
	// empty slice if none.
	ListByAccount(ctx context.Context, accountID int64) ([]*domain.Message, error)
}

// messageServiceImpl implements the MessageService interface.
type messageServiceImpl struct {
	messages store.MessageStore
	accounts store.AccountStore
	logger   *slog.Logger
}

// NewMessageService creates a new MessageService.
// It returns an error if any of the required dependencies are nil.
func NewMessageService(
	messages store.MessageStore,
	accounts store.AccountStore,
	logger *slog.Logger,
) (MessageService, error) {
	if messages == nil {
		return nil, &ServiceError{
			Operation: "create_service",
			Message:   "messages store cannot be nil",
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

	return &messageServiceImpl{
		messages: messages,
		accounts: accounts,
		logger:   logger.With("component", "message_service"),
	}, nil
}

// Create validates the message and confirms the poster resolves to an
// existing username before persisting.
func (s *messageServiceImpl) Create(
	ctx context.Context,
	postedBy int64,
	text string,
) (*domain.Message, error) {
	message, err := domain.NewMessage(postedBy, text)
	if err != nil {
		s.logger.Warn("message validation failed during create",
			"error", err,
			"posted_by", postedBy)
		return nil, err
	}

	// Resolve the poster to a username and confirm that username exists.
	// Both misses collapse into the same result for the caller.
	account, err := s.accounts.GetByID(ctx, postedBy)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			s.logger.Debug("message rejected, unknown poster",
				"posted_by", postedBy)
			return nil, ErrPosterNotFound
		}
		s.logger.Error("failed to resolve posting account",
			"error", err,
			"posted_by", postedBy)
		return nil, NewServiceError("create_message", "failed to resolve posting account", err)
	}

	exists, err := s.accounts.UsernameExists(ctx, account.Username)
	if err != nil {
		s.logger.Error("failed to check poster username",
			"error", err,
			"posted_by", postedBy)
		return nil, NewServiceError("create_message", "failed to check poster username", err)
	}
	if !exists {
		s.logger.Debug("message rejected, poster username missing",
			"posted_by", postedBy)
		return nil, ErrPosterNotFound
	}

	if err := s.messages.Create(ctx, message); err != nil {
		if errors.Is(err, store.ErrInvalidEntity) {
			// The FK check lost a race with an account deletion.
			return nil, ErrPosterNotFound
		}
		s.logger.Error("failed to save message",
			"error", err,
			"posted_by", postedBy)
		return nil, NewServiceError("create_message", "failed to save message", err)
	}

	s.logger.Info("message created successfully",
		"message_id", message.ID,
		"posted_by", message.PostedBy)
	return message, nil
}

// GetByID returns the message, or (nil, nil) when it doesn't exist.
func (s *messageServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Message, error) {
	message, err := s.messages.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrMessageNotFound) {
			return nil, nil
		}
		s.logger.Error("failed to retrieve message",
			"error", err,
			"message_id", id)
		return nil, NewServiceError("get_message", "failed to retrieve message", err)
	}

	return message, nil
}

// DeleteByID deletes the message if it exists and reports rows affected.
func (s *messageServiceImpl) DeleteByID(ctx context.Context, id int64) (int64, error) {
	rows, err := s.messages.DeleteByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete message",
			"error", err,
			"message_id", id)
		return 0, NewServiceError("delete_message", "failed to delete message", err)
	}

	return rows, nil
}

// UpdateText checks the message exists, validates the replacement text, and
// overwrites it. The existence check comes first so a bad update to a missing
// message reports the missing message, not the bad text.
func (s *messageServiceImpl) UpdateText(
	ctx context.Context,
	id int64,
	text string,
) (int64, error) {
	exists, err := s.messages.Exists(ctx, id)
	if err != nil {
		s.logger.Error("failed to check message existence",
			"error", err,
			"message_id", id)
		return 0, NewServiceError("update_message_text", "failed to check message", err)
	}
	if !exists {
		return 0, ErrMessageNotFound
	}

	if err := domain.ValidateMessageText(text); err != nil {
		s.logger.Warn("message text validation failed during update",
			"error", err,
			"message_id", id)
		return 0, err
	}

	rows, err := s.messages.UpdateText(ctx, id, text)
	if err != nil {
		if errors.Is(err, store.ErrMessageNotFound) {
			return 0, ErrMessageNotFound
		}
		s.logger.Error("failed to update message text",
			"error", err,
			"message_id", id)
		return 0, NewServiceError("update_message_text", "failed to update message", err)
	}

	s.logger.Info("message text updated successfully",
		"message_id", id)
	return rows, nil
}

// ListAll returns every message.
func (s *messageServiceImpl) ListAll(ctx context.Context) ([]*domain.Message, error) {
	messages, err := s.messages.ListAll(ctx)
	if err != nil {
		s.logger.Error("failed to list messages", "error", err)
		return nil, NewServiceError("list_messages", "failed to list messages", err)
	}
	return messages, nil
}

// ListByAccount returns all messages posted by the given account.
func (s *messageServiceImpl) ListByAccount(
	ctx context.Context,
	accountID int64,
) ([]*domain.Message, error) {
	messages, err := s.messages.ListByPostedBy(ctx, accountID)
	if err != nil {
		s.logger.Error("failed to list messages by account",
			"error", err,
			"account_id", accountID)
		return nil, NewServiceError("list_messages_by_account", "failed to list messages", err)
	}
	return messages, nil
}
