package store

import "regexp"

// TokenLength is the exact length of an access token.
const TokenLength = 64

var tokenPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// ValidTokenShape reports whether a token has the fixed length and hex
// alphabet of a minted session token. Anything else is rejected before a
// storage lookup.
func ValidTokenShape(token string) bool {
	return len(token) == TokenLength && tokenPattern.MatchString(token)
}

// AccountProfile is the external profile written to the accounts table on
// each successful login.
type AccountProfile struct {
	SteamID      string
	DisplayName  string
	Avatar       string
	AvatarHash   string
	PrimaryGroup string
}

// Account is the session-resolved view of an account.
type Account struct {
	ID      int64
	SteamID string
	Name    string
	Avatar  string
}

// SessionStore abstracts account and session persistence.
type SessionStore interface {
	// UpsertAccount creates the account for a Steam id or refreshes its
	// profile fields, and returns its id.
	UpsertAccount(profile AccountProfile) (int64, error)

	// CreateSession mints a fresh access token bound to an account. A
	// token collision on the unique constraint triggers regeneration,
	// not an error.
	CreateSession(accountID int64, originIdentity string) (string, error)

	// Resolve maps an access token to its account. It returns
	// ErrMalformedInput for tokens of the wrong shape (checked before
	// any lookup) and ErrUnauthenticated when no session matches or the
	// account is blocked.
	Resolve(token string) (*Account, error)

	// Revoke deletes the session for a token. Revoking an unknown token
	// is a no-op success.
	Revoke(token string) error
}
