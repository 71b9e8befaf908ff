package identity

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net"
	"net/http"
	"strings"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// Key is the context key for Origin.
const Key ContextKey = "origin"

// Origin is the resolved caller of a request.
type Origin struct {
	// RemoteIP is the resolved client address.
	RemoteIP net.IP

	// Hash is the storage-level identity: hex SHA-256 of the client
	// address.
	Hash string
}

// Hash computes the storage-level digest of a raw identity value.
func Hash(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// HashAccount computes the identity digest for an external account id.
// The digest is namespaced so an account id can never collide with a
// network address.
func HashAccount(steamID string) string {
	return Hash("steam:" + steamID)
}

// FromIP builds an Origin for a client address.
func FromIP(ip net.IP) *Origin {
	return &Origin{
		RemoteIP: ip,
		Hash:     Hash(ip.String()),
	}
}

// RealIP resolves the client address of a request. The X-Forwarded-For
// header is only honored when the direct peer is a trusted reverse proxy;
// otherwise the socket peer address wins, so an untrusted client cannot
// spoof its identity by supplying the header itself.
func RealIP(r *http.Request, trusted func(ip string) bool) net.IP {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	peer := net.ParseIP(host)

	if peer == nil || trusted == nil || !trusted(peer.String()) {
		return peer
	}

	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded == "" {
		return peer
	}

	// The client address is the first entry; later entries are proxies.
	first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
	if ip := net.ParseIP(first); ip != nil {
		return ip
	}
	return peer
}

// Get retrieves the Origin from context.
func Get(ctx context.Context) (*Origin, bool) {
	o, ok := ctx.Value(Key).(*Origin)
	return o, ok
}

// Set stores the Origin in context.
func Set(ctx context.Context, o *Origin) context.Context {
	return context.WithValue(ctx, Key, o)
}
