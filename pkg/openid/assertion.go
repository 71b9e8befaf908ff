package openid

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	// Namespace is the OpenID 2.0 protocol identifier.
	Namespace = "http://specs.openid.net/auth/2.0"

	// ProviderEndpoint is the only accepted OpenID provider.
	ProviderEndpoint = "https://steamcommunity.com/openid/login"

	// IdentityPrefix is the required prefix of claimed_id and identity.
	// The Steam id is the trailing path segment.
	IdentityPrefix = "https://steamcommunity.com/openid/id/"
)

// requiredSigned is the exact field set the provider must have signed.
// Assertions signing more or fewer fields are rejected.
var requiredSigned = map[string]bool{
	"signed":         true,
	"op_endpoint":    true,
	"claimed_id":     true,
	"identity":       true,
	"return_to":      true,
	"response_nonce": true,
	"assoc_handle":   true,
}

// ErrInvalidAssertion is the terminal kind for any assertion that fails
// structural validation or provider verification.
var ErrInvalidAssertion = errors.New("invalid openid assertion")

// Assertion is the signed callback payload from the provider.
type Assertion struct {
	NS            string
	Mode          string
	OpEndpoint    string
	ClaimedID     string
	Identity      string
	ReturnTo      string
	ResponseNonce string
	AssocHandle   string
	Signed        string
	Sig           string
}

// ParseAssertion extracts the openid.* fields from callback query values.
func ParseAssertion(query url.Values) *Assertion {
	return &Assertion{
		NS:            query.Get("openid.ns"),
		Mode:          query.Get("openid.mode"),
		OpEndpoint:    query.Get("openid.op_endpoint"),
		ClaimedID:     query.Get("openid.claimed_id"),
		Identity:      query.Get("openid.identity"),
		ReturnTo:      query.Get("openid.return_to"),
		ResponseNonce: query.Get("openid.response_nonce"),
		AssocHandle:   query.Get("openid.assoc_handle"),
		Signed:        query.Get("openid.signed"),
		Sig:           query.Get("openid.sig"),
	}
}

// Validate checks the assertion structurally, in order: protocol
// namespace, provider endpoint, identity URL prefixes, exact return
// address, nonce and association handle presence, the exact signed field
// set, and signature presence. It does not talk to the provider.
func (a *Assertion) Validate(returnTo string) error {
	if a.NS != Namespace {
		return fmt.Errorf("%w: invalid ns %q", ErrInvalidAssertion, a.NS)
	}
	if a.OpEndpoint != ProviderEndpoint {
		return fmt.Errorf("%w: invalid op_endpoint %q", ErrInvalidAssertion, a.OpEndpoint)
	}
	if !strings.HasPrefix(a.ClaimedID, IdentityPrefix) {
		return fmt.Errorf("%w: invalid claimed_id", ErrInvalidAssertion)
	}
	if !strings.HasPrefix(a.Identity, IdentityPrefix) {
		return fmt.Errorf("%w: invalid identity", ErrInvalidAssertion)
	}
	if a.ReturnTo != returnTo {
		return fmt.Errorf("%w: invalid return_to %q", ErrInvalidAssertion, a.ReturnTo)
	}
	if a.ResponseNonce == "" {
		return fmt.Errorf("%w: missing response_nonce", ErrInvalidAssertion)
	}
	if a.AssocHandle == "" {
		return fmt.Errorf("%w: missing assoc_handle", ErrInvalidAssertion)
	}
	if err := a.validateSigned(); err != nil {
		return err
	}
	if a.Sig == "" {
		return fmt.Errorf("%w: missing sig", ErrInvalidAssertion)
	}
	return nil
}

// validateSigned checks that the signed field set is exactly the required
// set: any extra or missing field rejects the assertion.
func (a *Assertion) validateSigned() error {
	seen := make(map[string]bool)
	for _, field := range strings.Split(a.Signed, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		if !requiredSigned[field] {
			return fmt.Errorf("%w: unexpected signed field %q", ErrInvalidAssertion, field)
		}
		seen[field] = true
	}
	for field := range requiredSigned {
		if !seen[field] {
			return fmt.Errorf("%w: missing signed field %q", ErrInvalidAssertion, field)
		}
	}
	return nil
}

// SteamID extracts the Steam id64 from the claimed identity URL. The
// trailing path segment must be a plain decimal number.
func (a *Assertion) SteamID() (string, error) {
	id := strings.TrimPrefix(a.ClaimedID, IdentityPrefix)
	id = strings.TrimSuffix(id, "/")
	if id == "" || strings.Contains(id, "/") {
		return "", fmt.Errorf("%w: malformed claimed_id", ErrInvalidAssertion)
	}
	for _, c := range id {
		if c < '0' || c > '9' {
			return "", fmt.Errorf("%w: malformed steam id", ErrInvalidAssertion)
		}
	}
	return id, nil
}
