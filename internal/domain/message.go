package domain

import (
	"errors"
	"strings"
	"time"
)

// MaxMessageTextLength is the longest message text the API accepts.
// The limit applies to the raw text as submitted, not the trimmed form.
const MaxMessageTextLength = 255

// Common validation errors for Message
var (
	ErrMissingPostedBy  = errors.New("message must reference a posting account")
	ErrBlankMessageText = errors.New("message text cannot be empty")
	ErrMessageTextTooLong = errors.New(
		"message text must have a length of at most 255 characters",
	)
)

// Message represents a text post owned by exactly one account.
type Message struct {
	ID              int64  `json:"id"`
	PostedBy        int64  `json:"postedBy"`
	MessageText     string `json:"messageText"`
	TimePostedEpoch int64  `json:"timePostedEpoch"`
}

// NewMessage creates a Message candidate from creation input, stamping the
// posting time. The ID is zero until the store assigns one. The text is kept
// exactly as submitted; trimming only happens for the blankness check.
// Returns an error if validation fails.
func NewMessage(postedBy int64, text string) (*Message, error) {
	message := &Message{
		PostedBy:        postedBy,
		MessageText:     text,
		TimePostedEpoch: time.Now().UTC().Unix(),
	}

	if err := message.Validate(); err != nil {
		return nil, err
	}

	return message, nil
}

// Validate checks if the Message has valid data.
// Returns an error if any field fails validation.
func (m *Message) Validate() error {
	if m.PostedBy <= 0 {
		return ErrMissingPostedBy
	}

	return ValidateMessageText(m.MessageText)
}

// ValidateMessageText checks the message-text constraints shared by creation
// and text updates: non-blank after trimming, raw length at most
// MaxMessageTextLength.
func ValidateMessageText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrBlankMessageText
	}

	if len(text) > MaxMessageTextLength {
		return ErrMessageTextTooLong
	}

	return nil
}
