package openid

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Verifier confirms assertions with the provider's check_authentication
// endpoint.
type Verifier struct {
	// Endpoint is the provider login URL (defaults to ProviderEndpoint).
	Endpoint string

	// Client is the HTTP client used for verification calls.
	Client *http.Client
}

// NewVerifier creates a Verifier against the given provider endpoint.
func NewVerifier(endpoint string) *Verifier {
	if endpoint == "" {
		endpoint = ProviderEndpoint
	}
	return &Verifier{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// CheckAuthentication re-submits the assertion to the provider with
// mode=check_authentication and parses the textual key:value response.
// Only an explicit "is_valid:true" accepts; absence, "false" or a parse
// failure all reject.
func (v *Verifier) CheckAuthentication(ctx context.Context, a *Assertion) error {
	form := url.Values{}
	form.Set("openid.ns", a.NS)
	form.Set("openid.mode", "check_authentication")
	form.Set("openid.op_endpoint", a.OpEndpoint)
	form.Set("openid.claimed_id", a.ClaimedID)
	form.Set("openid.identity", a.Identity)
	form.Set("openid.return_to", a.ReturnTo)
	form.Set("openid.response_nonce", a.ResponseNonce)
	form.Set("openid.assoc_handle", a.AssocHandle)
	form.Set("openid.signed", a.Signed)
	form.Set("openid.sig", a.Sig)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAssertion, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.Client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: verification call failed: %v", ErrInvalidAssertion, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: verification endpoint returned %d", ErrInvalidAssertion, resp.StatusCode)
	}

	fields, err := parseKeyValues(resp)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAssertion, err)
	}

	if fields["is_valid"] != "true" {
		return fmt.Errorf("%w: provider rejected assertion", ErrInvalidAssertion)
	}
	return nil
}

// parseKeyValues parses the OpenID key:value response format, one pair
// per line.
func parseKeyValues(resp *http.Response) (map[string]string, error) {
	fields := make(map[string]string)
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			return nil, fmt.Errorf("malformed response line %q", line)
		}
		fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return fields, nil
}
