package endpoints

import (
	"errors"
	"net/http"

	"github.com/Torxed/coreborn-api/pkg/audit"
	"github.com/Torxed/coreborn-api/pkg/config"
	"github.com/Torxed/coreborn-api/pkg/identity"
	"github.com/Torxed/coreborn-api/pkg/openid"
	"github.com/Torxed/coreborn-api/pkg/server"
	"github.com/Torxed/coreborn-api/pkg/server/store"
)

func RegisterAuthEndpoints(s *server.Server) {
	router := s.Router

	// GET /auth - OpenID assertion callback
	router.HandleFunc("/auth", handleAuthCallback(s.Config, s.Verifier, s.Profiles, s.IdentityStore, s.SessionStore)).Methods("GET")

	// GET /whoami - Resolve an access token to a public profile
	router.HandleFunc("/whoami", handleWhoami(s.SessionStore)).Methods("GET")

	// GET /logout - Revoke an access token
	router.HandleFunc("/logout", handleLogout(s.SessionStore)).Methods("GET")
}

func handleAuthCallback(
	cfg *config.Config,
	verifier *openid.Verifier,
	profiles *openid.ProfileClient,
	identityStore store.IdentityStore,
	sessionStore store.SessionStore,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientIP := ""
		if origin, ok := identity.Get(r.Context()); ok {
			clientIP = origin.RemoteIP.String()
		}

		assertion := openid.ParseAssertion(r.URL.Query())
		if err := assertion.Validate(cfg.CallbackURL); err != nil {
			audit.Log(audit.LoginEvent{ClientIP: clientIP, Success: false, ErrorMessage: err.Error()})
			respondOpaque(w, http.StatusUnauthorized)
			return
		}

		if err := verifier.CheckAuthentication(r.Context(), assertion); err != nil {
			audit.Log(audit.LoginEvent{ClientIP: clientIP, Success: false, ErrorMessage: err.Error()})
			respondOpaque(w, http.StatusUnauthorized)
			return
		}

		steamID, err := assertion.SteamID()
		if err != nil {
			audit.Log(audit.LoginEvent{ClientIP: clientIP, Success: false, ErrorMessage: err.Error()})
			respondOpaque(w, http.StatusUnauthorized)
			return
		}

		accountHash := identity.HashAccount(steamID)
		if _, err := identityStore.ResolveOrCreate(accountHash); err != nil {
			respondOpaque(w, statusForError(err))
			return
		}
		blocked, err := identityStore.IsBlocked(accountHash)
		if err != nil || blocked {
			audit.Log(audit.BlockedEvent{IdentityHash: accountHash, Action: "login"})
			respondOpaque(w, http.StatusForbidden)
			return
		}

		profile, err := profiles.PlayerSummary(r.Context(), steamID)
		if err != nil {
			audit.Log(audit.LoginEvent{SteamID: steamID, ClientIP: clientIP, Success: false, ErrorMessage: err.Error()})
			respondOpaque(w, http.StatusUnauthorized)
			return
		}

		accountID, err := sessionStore.UpsertAccount(store.AccountProfile{
			SteamID:      steamID,
			DisplayName:  profile.PersonaName,
			Avatar:       profile.Avatar,
			AvatarHash:   profile.AvatarHash,
			PrimaryGroup: profile.PrimaryGroup,
		})
		if err != nil {
			respondOpaque(w, statusForError(err))
			return
		}

		originHash := ""
		if origin, ok := identity.Get(r.Context()); ok {
			originHash = origin.Hash
		}
		token, err := sessionStore.CreateSession(accountID, originHash)
		if err != nil {
			respondOpaque(w, statusForError(err))
			return
		}

		audit.Log(audit.LoginEvent{SteamID: steamID, ClientIP: clientIP, Success: true})
		http.Redirect(w, r, cfg.FrontendURL+"?access_token="+token, http.StatusFound)
	}
}

func handleWhoami(sessionStore store.SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := accessToken(r)
		if token == "" {
			respondWithJSON(w, http.StatusOK, map[string]string{"name": "anonymous", "avatar": ""})
			return
		}

		account, err := sessionStore.Resolve(token)
		if err != nil {
			if errors.Is(err, store.ErrUnauthenticated) {
				respondWithJSON(w, http.StatusOK, map[string]string{"name": "anonymous", "avatar": ""})
				return
			}
			respondOpaque(w, statusForError(err))
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]string{
			"name":   account.Name,
			"avatar": account.Avatar,
		})
	}
}

func handleLogout(sessionStore store.SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Logout always succeeds, whatever the token looked like.
		if token := accessToken(r); token != "" {
			_ = sessionStore.Revoke(token)
		}
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
