package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/kfalter/chirper-api/internal/api/shared"
	"github.com/kfalter/chirper-api/internal/service"
)

// AccountHandler handles account-related API requests.
type AccountHandler struct {
	accountService service.AccountService
	validator      *validator.Validate
}

// NewAccountHandler creates a new AccountHandler with the given dependencies.
func NewAccountHandler(accountService service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		validator:      validator.New(),
	}
}

// Register handles the POST /register endpoint.
//
// Rejections carry no body: 400 for a blank username or short password,
// 409 for a taken username. Success is 200 with the stored account,
// assigned ID included.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "", err)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "", err)
		return
	}

	account, err := h.accountService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, accountToResponse(account))
}

// Login handles the POST /login endpoint.
//
// 400 with no body for blank fields, 401 with no body when the pair matches
// no account, 200 with the account on success.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "", err)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "", err)
		return
	}

	account, err := h.accountService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, accountToResponse(account))
}
