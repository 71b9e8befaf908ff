package endpoints

import (
	"github.com/stretchr/testify/mock"

	"github.com/Torxed/coreborn-api/pkg/model"
	"github.com/Torxed/coreborn-api/pkg/server/store"
)

// MockIdentityStore implements store.IdentityStore for testing using testify/mock
type MockIdentityStore struct {
	mock.Mock
}

func NewMockIdentityStore() *MockIdentityStore {
	return &MockIdentityStore{}
}

func (m *MockIdentityStore) ResolveOrCreate(identityHash string) (*model.Identity, error) {
	args := m.Called(identityHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Identity), args.Error(1)
}

func (m *MockIdentityStore) IsBlocked(identityHash string) (bool, error) {
	args := m.Called(identityHash)
	return args.Bool(0), args.Error(1)
}

// MockSessionStore implements store.SessionStore for testing using testify/mock
type MockSessionStore struct {
	mock.Mock
}

func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{}
}

func (m *MockSessionStore) UpsertAccount(profile store.AccountProfile) (int64, error) {
	args := m.Called(profile)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionStore) CreateSession(accountID int64, originIdentity string) (string, error) {
	args := m.Called(accountID, originIdentity)
	return args.String(0), args.Error(1)
}

func (m *MockSessionStore) Resolve(token string) (*store.Account, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Account), args.Error(1)
}

func (m *MockSessionStore) Revoke(token string) error {
	args := m.Called(token)
	return args.Error(0)
}

// MockPositionsStore implements store.PositionsStore for testing using testify/mock
type MockPositionsStore struct {
	mock.Mock
}

func NewMockPositionsStore() *MockPositionsStore {
	return &MockPositionsStore{}
}

func (m *MockPositionsStore) ListAll() (map[string]map[string]store.ResourceEntry, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]map[string]store.ResourceEntry), args.Error(1)
}

func (m *MockPositionsStore) ListResource(name string) (store.ResourceEntry, error) {
	args := m.Called(name)
	return args.Get(0).(store.ResourceEntry), args.Error(1)
}

func (m *MockPositionsStore) Add(resourceName string, coord store.Coordinate, identityID int64) error {
	args := m.Called(resourceName, coord, identityID)
	return args.Error(0)
}

// MockModerationStore implements store.ModerationStore for testing using testify/mock
type MockModerationStore struct {
	mock.Mock
}

func NewMockModerationStore() *MockModerationStore {
	return &MockModerationStore{}
}

func (m *MockModerationStore) Report(resourceName string, positionID int64, reporterID int64, quorum int, force bool) (store.Decision, error) {
	args := m.Called(resourceName, positionID, reporterID, quorum, force)
	return args.Get(0).(store.Decision), args.Error(1)
}

// MockAuthzStore implements store.AuthzStore for testing using testify/mock
type MockAuthzStore struct {
	mock.Mock
}

func NewMockAuthzStore() *MockAuthzStore {
	return &MockAuthzStore{}
}

func (m *MockAuthzStore) HasRole(accountID int64, role string) bool {
	args := m.Called(accountID, role)
	return args.Bool(0)
}
