package api

import "github.com/kfalter/chirper-api/internal/domain"

// Common request/response structures

// RegisterRequest defines the payload for the registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=4"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateMessageRequest defines the payload for the message creation endpoint.
// PostedBy is a pointer so a missing field is distinguishable from account 0.
type CreateMessageRequest struct {
	PostedBy    *int64 `json:"postedBy"    validate:"required"`
	MessageText string `json:"messageText"`
}

// UpdateMessageTextRequest defines the payload for the message text update endpoint.
type UpdateMessageTextRequest struct {
	MessageText string `json:"messageText"`
}

// AccountResponse defines the account representation returned by the API.
// The password comes back verbatim; see domain.Account.
type AccountResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// MessageResponse defines the message representation returned by the API.
type MessageResponse struct {
	ID              int64  `json:"id"`
	PostedBy        int64  `json:"postedBy"`
	MessageText     string `json:"messageText"`
	TimePostedEpoch int64  `json:"timePostedEpoch"`
}

// accountToResponse converts a domain.Account to an AccountResponse.
func accountToResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		ID:       account.ID,
		Username: account.Username,
		Password: account.Password,
	}
}

// messageToResponse converts a domain.Message to a MessageResponse.
func messageToResponse(message *domain.Message) MessageResponse {
	return MessageResponse{
		ID:              message.ID,
		PostedBy:        message.PostedBy,
		MessageText:     message.MessageText,
		TimePostedEpoch: message.TimePostedEpoch,
	}
}

// messagesToResponse converts a slice of messages, keeping an empty slice
// (not nil) so the JSON body is always an array.
func messagesToResponse(messages []*domain.Message) []MessageResponse {
	responses := make([]MessageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, messageToResponse(message))
	}
	return responses
}
