package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/kfalter/chirper-api/internal/api/shared"
	"github.com/kfalter/chirper-api/internal/service"
)

// MessageHandler handles message-related HTTP requests.
type MessageHandler struct {
	messageService service.MessageService
	validator      *validator.Validate
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		validator:      validator.New(),
	}
}

// CreateMessage handles POST /messages requests.
// Invalid text, a missing postedBy, and an unknown poster all answer 400
// with no body; success is 200 with the stored message.
func (h *MessageHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req CreateMessageRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "", err)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "", err)
		return
	}

	message, err := h.messageService.Create(r.Context(), *req.PostedBy, req.MessageText)
	if err != nil {
		// Creation failures answer with a bare status code. Only the text
		// update endpoint explains its refusals in the body.
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), "", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, messageToResponse(message))
}

// ListMessages handles GET /messages requests.
func (h *MessageHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messageService.ListAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, messagesToResponse(messages))
}

// GetMessage handles GET /messages/{id} requests.
// A missing message is not an error: the response is 200 with an empty body.
func (h *MessageHandler) GetMessage(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	message, err := h.messageService.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if message == nil {
		shared.RespondWithText(w, r, http.StatusOK, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, messageToResponse(message))
}

// DeleteMessage handles DELETE /messages/{id} requests.
// The body reports rows deleted: the literal text "1", or nothing when the
// message was already gone. Both are 200.
func (h *MessageHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	rows, err := h.messageService.DeleteByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if rows == 0 {
		shared.RespondWithText(w, r, http.StatusOK, "")
		return
	}

	shared.RespondWithText(w, r, http.StatusOK, "1")
}

// UpdateMessageText handles PATCH /messages/{id} requests.
// Unlike reads and deletes, updating a missing message is a 400, and this
// endpoint explains its refusals in the body.
func (h *MessageHandler) UpdateMessageText(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req UpdateMessageTextRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "", err)
		return
	}

	if _, err := h.messageService.UpdateText(r.Context(), id, req.MessageText); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithText(w, r, http.StatusOK, "1")
}

// ListMessagesByAccount handles GET /accounts/{id}/messages requests.
// An unknown account simply has no messages; the response is an empty list.
func (h *MessageHandler) ListMessagesByAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	messages, err := h.messageService.ListByAccount(r.Context(), accountID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, messagesToResponse(messages))
}
