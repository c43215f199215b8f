package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kfalter/chirper-api/internal/domain"
	"github.com/kfalter/chirper-api/internal/service"
)

// MockAccountService is a mock implementation of service.AccountService for testing
type MockAccountService struct {
	RegisterFn       func(ctx context.Context, username, password string) (*domain.Account, error)
	LoginFn          func(ctx context.Context, username, password string) (*domain.Account, error)
	UsernameExistsFn func(ctx context.Context, username string) (bool, error)
}

// Register implements service.AccountService
func (m *MockAccountService) Register(
	ctx context.Context,
	username, password string,
) (*domain.Account, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, username, password)
	}
	return nil, nil
}

// Login implements service.AccountService
func (m *MockAccountService) Login(
	ctx context.Context,
	username, password string,
) (*domain.Account, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, username, password)
	}
	return nil, nil
}

// UsernameExists implements service.AccountService
func (m *MockAccountService) UsernameExists(ctx context.Context, username string) (bool, error) {
	if m.UsernameExistsFn != nil {
		return m.UsernameExistsFn(ctx, username)
	}
	return false, nil
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestAccountHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockAccountService)
		expectedStatus int
		expectedBody   string // empty string means the body must be empty
		checkAccount   bool
	}{
		{
			name:        "successful_registration",
			requestBody: RegisterRequest{Username: "testuser", Password: "password123"},
			setupMock: func(ms *MockAccountService) {
				ms.RegisterFn = func(ctx context.Context, username, password string) (*domain.Account, error) {
					return &domain.Account{ID: 1, Username: username, Password: password}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkAccount:   true,
		},
		{
			name:           "malformed_json",
			requestBody:    `{"username": "testuser", `,
			setupMock:      func(ms *MockAccountService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing_username",
			requestBody:    RegisterRequest{Password: "password123"},
			setupMock:      func(ms *MockAccountService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "password_too_short",
			requestBody:    RegisterRequest{Username: "testuser", Password: "abc"},
			setupMock:      func(ms *MockAccountService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "whitespace_username_rejected_by_service",
			requestBody: RegisterRequest{Username: "   ", Password: "password123"},
			setupMock: func(ms *MockAccountService) {
				ms.RegisterFn = func(ctx context.Context, username, password string) (*domain.Account, error) {
					return nil, domain.ErrBlankUsername
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "duplicate_username",
			requestBody: RegisterRequest{Username: "testuser", Password: "password123"},
			setupMock: func(ms *MockAccountService) {
				ms.RegisterFn = func(ctx context.Context, username, password string) (*domain.Account, error) {
					return nil, service.ErrDuplicateUsername
				}
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:        "internal_error",
			requestBody: RegisterRequest{Username: "testuser", Password: "password123"},
			setupMock: func(ms *MockAccountService) {
				ms.RegisterFn = func(ctx context.Context, username, password string) (*domain.Account, error) {
					return nil, errors.New("connection refused")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockAccountService{}
			tc.setupMock(mockService)
			handler := NewAccountHandler(mockService)

			w := postJSON(t, handler.Register, "/register", tc.requestBody)

			assert.Equal(t, tc.expectedStatus, w.Code)

			if tc.checkAccount {
				var resp AccountResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, int64(1), resp.ID)
				assert.Equal(t, "testuser", resp.Username)
				assert.Equal(t, "password123", resp.Password)
			} else {
				assert.Equal(t, tc.expectedBody, w.Body.String())
			}
		})
	}
}

func TestAccountHandler_Register_SerializesPassword(t *testing.T) {
	// The account comes back in full, password included. Anyone building on
	// this contract should know what they are signing up for.
	mockService := &MockAccountService{
		RegisterFn: func(ctx context.Context, username, password string) (*domain.Account, error) {
			return &domain.Account{ID: 9, Username: username, Password: password}, nil
		},
	}
	handler := NewAccountHandler(mockService)

	w := postJSON(t, handler.Register, "/register",
		RegisterRequest{Username: "testuser", Password: "password123"})

	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&raw))
	assert.Equal(t, "password123", raw["password"])
	assert.Contains(t, raw, "id")
	assert.Contains(t, raw, "username")
}

func TestAccountHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockAccountService)
		expectedStatus int
		checkAccount   bool
	}{
		{
			name:        "successful_login",
			requestBody: LoginRequest{Username: "testuser", Password: "password123"},
			setupMock: func(ms *MockAccountService) {
				ms.LoginFn = func(ctx context.Context, username, password string) (*domain.Account, error) {
					return &domain.Account{ID: 1, Username: username, Password: password}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkAccount:   true,
		},
		{
			name:           "malformed_json",
			requestBody:    `not json`,
			setupMock:      func(ms *MockAccountService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing_password",
			requestBody:    LoginRequest{Username: "testuser"},
			setupMock:      func(ms *MockAccountService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "whitespace_password_rejected_by_service",
			requestBody: LoginRequest{Username: "testuser", Password: "  "},
			setupMock: func(ms *MockAccountService) {
				ms.LoginFn = func(ctx context.Context, username, password string) (*domain.Account, error) {
					return nil, domain.ErrBlankPassword
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "wrong_credentials",
			requestBody: LoginRequest{Username: "testuser", Password: "wrongpass"},
			setupMock: func(ms *MockAccountService) {
				ms.LoginFn = func(ctx context.Context, username, password string) (*domain.Account, error) {
					return nil, service.ErrInvalidCredentials
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:        "internal_error",
			requestBody: LoginRequest{Username: "testuser", Password: "password123"},
			setupMock: func(ms *MockAccountService) {
				ms.LoginFn = func(ctx context.Context, username, password string) (*domain.Account, error) {
					return nil, errors.New("connection refused")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockAccountService{}
			tc.setupMock(mockService)
			handler := NewAccountHandler(mockService)

			w := postJSON(t, handler.Login, "/login", tc.requestBody)

			assert.Equal(t, tc.expectedStatus, w.Code)

			if tc.checkAccount {
				var resp AccountResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, "testuser", resp.Username)
			} else {
				assert.Empty(t, w.Body.String())
			}
		})
	}
}
