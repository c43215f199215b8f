package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	RespondWithJSON(w, req, http.StatusOK, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "world", body["hello"])
}

func TestRespondWithText(t *testing.T) {
	t.Run("non-empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/messages/1", nil)
		w := httptest.NewRecorder()

		RespondWithText(w, req, http.StatusOK, "1")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, "1", w.Body.String())
	})

	t.Run("empty body sends only the status", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/messages/404", nil)
		w := httptest.NewRecorder()

		RespondWithText(w, req, http.StatusOK, "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Run("writes status and user message only", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/messages/1", nil)
		w := httptest.NewRecorder()

		internal := errors.New("pq: deadlock detected on relation messages")
		RespondWithErrorAndLog(w, req, http.StatusBadRequest, "Message not found", internal)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Message not found", w.Body.String())
	})

	t.Run("internal error never reaches the client", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/register", nil)
		w := httptest.NewRecorder()

		internal := errors.New("INSERT INTO accounts failed: password=secret123")
		RespondWithErrorAndLog(w, req, http.StatusInternalServerError, "", internal)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("nil error is tolerated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		w := httptest.NewRecorder()

		RespondWithErrorAndLog(w, req, http.StatusUnauthorized, "", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, w.Body.String())
	})
}
