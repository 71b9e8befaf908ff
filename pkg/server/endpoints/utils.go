package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Torxed/coreborn-api/pkg/identity"
	"github.com/Torxed/coreborn-api/pkg/server/store"
)

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, payload)
}

// respondOpaque writes the single opaque error body used for every
// externally visible failure. The precise kind stays in logs and audit.
func respondOpaque(w http.ResponseWriter, code int) {
	respondWithError(w, code, map[string]string{"error": "Unknown database error"})
}

// statusForError maps an internal error kind to a response status.
func statusForError(err error) int {
	switch {
	case errors.Is(err, store.ErrMalformedInput):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrUnknownCategory),
		errors.Is(err, store.ErrUnknownResource),
		errors.Is(err, store.ErrUnknownContribution):
		return http.StatusNotFound
	case errors.Is(err, store.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, store.ErrBlocked), errors.Is(err, store.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, store.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// caller is the resolved identity behind a request: an authenticated
// account when a valid access token was supplied, otherwise the hashed
// client address.
type caller struct {
	// IdentityHash is the ledger identity the request acts as.
	IdentityHash string

	// Account is non-nil for authenticated callers.
	Account *store.Account

	// ClientIP is the resolved client address, for audit records.
	ClientIP string
}

// resolveCaller determines who a request acts as. A present access token
// must resolve; a missing token falls back to the client address identity.
func resolveCaller(r *http.Request, sessions store.SessionStore) (*caller, error) {
	c := &caller{}
	if origin, ok := identity.Get(r.Context()); ok {
		c.IdentityHash = origin.Hash
		c.ClientIP = origin.RemoteIP.String()
	}

	token := accessToken(r)
	if token == "" {
		if c.IdentityHash == "" {
			return nil, store.ErrUnauthenticated
		}
		return c, nil
	}

	account, err := sessions.Resolve(token)
	if err != nil {
		return nil, err
	}
	c.Account = account
	c.IdentityHash = identity.HashAccount(account.SteamID)
	return c, nil
}

// accessToken extracts the access token from the query string or, as a
// fallback, the Authorization bearer header.
func accessToken(r *http.Request) string {
	if token := r.URL.Query().Get("access_token"); token != "" {
		return token
	}
	const prefix = "Bearer "
	auth := r.Header.Get("Authorization")
	if len(auth) > len(prefix) && auth[:len(prefix)] == prefix {
		return auth[len(prefix):]
	}
	return ""
}
