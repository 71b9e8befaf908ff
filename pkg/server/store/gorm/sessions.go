package gorm

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"gorm.io/gorm"

	"github.com/Torxed/coreborn-api/pkg/db"
	"github.com/Torxed/coreborn-api/pkg/server/store"
)

// Ensure SessionStore implements store.SessionStore
var _ store.SessionStore = (*SessionStore)(nil)

// SessionStore implements store.SessionStore using GORM
type SessionStore struct {
	db *gorm.DB
}

// NewSessionStore creates a new SessionStore
func NewSessionStore(db *gorm.DB) *SessionStore {
	return &SessionStore{db: db}
}

// UpsertAccount creates or refreshes the account row for a Steam id and
// returns its id. Profile fields are overwritten on every login; the
// blocked flag is left alone.
func (s *SessionStore) UpsertAccount(profile store.AccountProfile) (int64, error) {
	var id int64
	err := db.RetryOnce(func() error {
		return s.db.Raw(
			`INSERT INTO accounts (steam_id, display_name, avatar, avatar_hash, primary_group)
			 VALUES (?, ?, ?, ?, ?)
			 ON CONFLICT (steam_id) DO UPDATE SET
			   display_name = EXCLUDED.display_name,
			   avatar = EXCLUDED.avatar,
			   avatar_hash = EXCLUDED.avatar_hash,
			   primary_group = EXCLUDED.primary_group
			 RETURNING id`,
			profile.SteamID, profile.DisplayName, profile.Avatar, profile.AvatarHash, profile.PrimaryGroup,
		).Scan(&id).Error
	})
	if err != nil {
		return 0, storageErr(err)
	}
	return id, nil
}

// CreateSession mints a fresh access token bound to an account. A token
// collision on the unique constraint triggers regeneration.
func (s *SessionStore) CreateSession(accountID int64, originIdentity string) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		token, err := newToken()
		if err != nil {
			return "", err
		}
		err = db.RetryOnce(func() error {
			return s.db.Exec(
				`INSERT INTO sessions (account_id, access_token, origin_identity) VALUES (?, ?, ?)`,
				accountID, token, originIdentity,
			).Error
		})
		if err == nil {
			return token, nil
		}
		if isUniqueViolation(err) {
			continue
		}
		return "", storageErr(err)
	}
	return "", fmt.Errorf("token space exhausted")
}

// Resolve maps an access token to its account. The shape check happens
// before any storage round trip.
func (s *SessionStore) Resolve(token string) (*store.Account, error) {
	if !store.ValidTokenShape(token) {
		return nil, fmt.Errorf("%w: bad token shape", store.ErrMalformedInput)
	}

	var row struct {
		ID          int64
		SteamID     string
		DisplayName string
		Avatar      string
	}
	var found int64
	err := db.RetryOnce(func() error {
		tx := s.db.Raw(
			`SELECT a.id, a.steam_id, a.display_name, a.avatar
			 FROM sessions s
			 JOIN accounts a ON a.id = s.account_id
			 WHERE s.access_token = ? AND NOT a.blocked`,
			token,
		).Scan(&row)
		found = tx.RowsAffected
		return tx.Error
	})
	if err != nil {
		return nil, storageErr(err)
	}
	if found == 0 {
		return nil, store.ErrUnauthenticated
	}
	return &store.Account{
		ID:      row.ID,
		SteamID: row.SteamID,
		Name:    row.DisplayName,
		Avatar:  row.Avatar,
	}, nil
}

// Revoke deletes the session for a token. Unknown tokens are a no-op.
func (s *SessionStore) Revoke(token string) error {
	if !store.ValidTokenShape(token) {
		return fmt.Errorf("%w: bad token shape", store.ErrMalformedInput)
	}
	err := db.RetryOnce(func() error {
		return s.db.Exec(`DELETE FROM sessions WHERE access_token = ?`, token).Error
	})
	return storageErr(err)
}

func newToken() (string, error) {
	raw := make([]byte, store.TokenLength/2)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(raw), nil
}
