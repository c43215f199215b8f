package service

import (
	"context"
	"database/sql"

	"github.com/stretchr/testify/mock"

	"github.com/kfalter/chirper-api/internal/domain"
	"github.com/kfalter/chirper-api/internal/store"
)

// MockAccountStore mocks the store.AccountStore interface
type MockAccountStore struct {
	mock.Mock
}

func (m *MockAccountStore) Create(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountStore) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountStore) GetByUsername(
	ctx context.Context,
	username string,
) (*domain.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountStore) GetByCredentials(
	ctx context.Context,
	username, password string,
) (*domain.Account, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	args := m.Called(tx)
	return args.Get(0).(store.AccountStore)
}

// MockMessageStore mocks the store.MessageStore interface
type MockMessageStore struct {
	mock.Mock
}

func (m *MockMessageStore) Create(ctx context.Context, message *domain.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockMessageStore) GetByID(ctx context.Context, id int64) (*domain.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Message), args.Error(1)
}

func (m *MockMessageStore) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockMessageStore) DeleteByID(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMessageStore) UpdateText(ctx context.Context, id int64, text string) (int64, error) {
	args := m.Called(ctx, id, text)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMessageStore) ListAll(ctx context.Context) ([]*domain.Message, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Message), args.Error(1)
}

func (m *MockMessageStore) ListByPostedBy(
	ctx context.Context,
	accountID int64,
) ([]*domain.Message, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Message), args.Error(1)
}

func (m *MockMessageStore) WithTx(tx *sql.Tx) store.MessageStore {
	args := m.Called(tx)
	return args.Get(0).(store.MessageStore)
}
