package gorm

import (
	"gorm.io/gorm"

	"github.com/Torxed/coreborn-api/pkg/db"
	"github.com/Torxed/coreborn-api/pkg/model"
	"github.com/Torxed/coreborn-api/pkg/server/store"
)

// Ensure IdentityStore implements store.IdentityStore
var _ store.IdentityStore = (*IdentityStore)(nil)

// IdentityStore implements store.IdentityStore using GORM
type IdentityStore struct {
	db *gorm.DB
}

// NewIdentityStore creates a new IdentityStore
func NewIdentityStore(db *gorm.DB) *IdentityStore {
	return &IdentityStore{db: db}
}

// ResolveOrCreate upserts the identity row for a hash. The conflict clause
// keeps an existing row untouched, so a blocked identity stays blocked.
func (s *IdentityStore) ResolveOrCreate(identityHash string) (*model.Identity, error) {
	err := db.RetryOnce(func() error {
		return s.db.Exec(
			`INSERT INTO identities (identity_hash, blocked) VALUES (?, false) ON CONFLICT (identity_hash) DO NOTHING`,
			identityHash,
		).Error
	})
	if err != nil {
		return nil, storageErr(err)
	}

	var ident model.Identity
	err = db.RetryOnce(func() error {
		return s.db.Where(&model.Identity{IdentityHash: identityHash}).First(&ident).Error
	})
	if err != nil {
		return nil, storageErr(err)
	}
	return &ident, nil
}

// IsBlocked reports whether an identity hash is blocked. A missing row
// counts as blocked; callers additionally fail closed on error.
func (s *IdentityStore) IsBlocked(identityHash string) (bool, error) {
	var blocked bool
	err := db.RetryOnce(func() error {
		return s.db.Raw(
			`SELECT COALESCE((SELECT blocked FROM identities WHERE identity_hash = ?), true)`,
			identityHash,
		).Scan(&blocked).Error
	})
	if err != nil {
		return true, storageErr(err)
	}
	return blocked, nil
}
