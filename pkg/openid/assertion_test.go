package openid

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testReturnTo = "http://beta.coreborn.app/auth"

func validQuery() url.Values {
	q := url.Values{}
	q.Set("openid.ns", Namespace)
	q.Set("openid.mode", "id_res")
	q.Set("openid.op_endpoint", ProviderEndpoint)
	q.Set("openid.claimed_id", IdentityPrefix+"76561197960287930")
	q.Set("openid.identity", IdentityPrefix+"76561197960287930")
	q.Set("openid.return_to", testReturnTo)
	q.Set("openid.response_nonce", "2023-10-01T12:00:00Zabcdef")
	q.Set("openid.assoc_handle", "1234567890")
	q.Set("openid.signed", "signed,op_endpoint,claimed_id,identity,return_to,response_nonce,assoc_handle")
	q.Set("openid.sig", "dGVzdHNpZ25hdHVyZQ==")
	return q
}

func TestAssertionValidate(t *testing.T) {
	t.Run("accepts a well formed assertion", func(t *testing.T) {
		a := ParseAssertion(validQuery())
		assert.NoError(t, a.Validate(testReturnTo))
	})

	tests := []struct {
		name   string
		mangle func(url.Values)
	}{
		{"wrong namespace", func(q url.Values) { q.Set("openid.ns", "http://specs.openid.net/auth/1.1") }},
		{"wrong endpoint", func(q url.Values) { q.Set("openid.op_endpoint", "https://evil.example.com/openid/login") }},
		{"claimed_id outside provider", func(q url.Values) { q.Set("openid.claimed_id", "https://evil.example.com/id/1") }},
		{"identity outside provider", func(q url.Values) { q.Set("openid.identity", "https://evil.example.com/id/1") }},
		{"wrong return address", func(q url.Values) { q.Set("openid.return_to", "http://elsewhere.example.com/auth") }},
		{"missing nonce", func(q url.Values) { q.Del("openid.response_nonce") }},
		{"missing assoc_handle", func(q url.Values) { q.Del("openid.assoc_handle") }},
		{"missing signed field", func(q url.Values) {
			q.Set("openid.signed", "signed,op_endpoint,claimed_id,identity,return_to,response_nonce")
		}},
		{"extra signed field", func(q url.Values) {
			q.Set("openid.signed", "signed,op_endpoint,claimed_id,identity,return_to,response_nonce,assoc_handle,email")
		}},
		{"missing signature", func(q url.Values) { q.Del("openid.sig") }},
	}

	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			q := validQuery()
			tt.mangle(q)

			err := ParseAssertion(q).Validate(testReturnTo)
			assert.ErrorIs(t, err, ErrInvalidAssertion)
		})
	}
}

func TestAssertionSteamID(t *testing.T) {
	t.Run("extracts the trailing path segment", func(t *testing.T) {
		a := ParseAssertion(validQuery())

		id, err := a.SteamID()
		require.NoError(t, err)
		assert.Equal(t, "76561197960287930", id)
	})

	t.Run("accepts a trailing slash", func(t *testing.T) {
		q := validQuery()
		q.Set("openid.claimed_id", IdentityPrefix+"76561197960287930/")

		id, err := ParseAssertion(q).SteamID()
		require.NoError(t, err)
		assert.Equal(t, "76561197960287930", id)
	})

	t.Run("rejects a non numeric id", func(t *testing.T) {
		q := validQuery()
		q.Set("openid.claimed_id", IdentityPrefix+"not-a-steamid")

		_, err := ParseAssertion(q).SteamID()
		assert.ErrorIs(t, err, ErrInvalidAssertion)
	})

	t.Run("rejects an empty id", func(t *testing.T) {
		q := validQuery()
		q.Set("openid.claimed_id", IdentityPrefix)

		_, err := ParseAssertion(q).SteamID()
		assert.ErrorIs(t, err, ErrInvalidAssertion)
	})
}
