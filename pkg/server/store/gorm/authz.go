package gorm

import (
	"gorm.io/gorm"

	"github.com/Torxed/coreborn-api/pkg/db"
	"github.com/Torxed/coreborn-api/pkg/server/store"
)

// Ensure AuthzStore implements store.AuthzStore
var _ store.AuthzStore = (*AuthzStore)(nil)

// AuthzStore implements store.AuthzStore using GORM
type AuthzStore struct {
	db *gorm.DB
}

// NewAuthzStore creates a new AuthzStore
func NewAuthzStore(db *gorm.DB) *AuthzStore {
	return &AuthzStore{db: db}
}

// HasRole checks the permissions table on every call. Errors count as no.
func (s *AuthzStore) HasRole(accountID int64, role string) bool {
	var held bool
	err := db.RetryOnce(func() error {
		return s.db.Raw(
			`SELECT EXISTS (
			   SELECT 1 FROM permissions pe
			   JOIN accounts a ON a.id = pe.account_id
			   WHERE pe.account_id = ? AND pe.role = ? AND NOT a.blocked
			 )`,
			accountID, role,
		).Scan(&held).Error
	})
	if err != nil {
		return false
	}
	return held
}
