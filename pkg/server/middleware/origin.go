package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Torxed/coreborn-api/pkg/config"
	"github.com/Torxed/coreborn-api/pkg/identity"
)

// Origin resolves the caller's client address and stores the derived
// identity on the request context. X-Forwarded-For is only honored when
// the direct peer is a trusted reverse proxy.
func Origin(cfg *config.Config) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := identity.RealIP(r, cfg.IsTrustedProxy)
			if ip != nil {
				r = r.WithContext(identity.Set(r.Context(), identity.FromIP(ip)))
			}
			next.ServeHTTP(w, r)
		})
	}
}
