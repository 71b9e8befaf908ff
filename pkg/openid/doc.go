// Package openid verifies Steam OpenID 2.0 login assertions.
//
// The provider redirects the browser back to the service with a signed
// assertion in the query string. The assertion is first checked
// structurally, then confirmed out-of-band with the provider's
// check_authentication endpoint. Only after both steps is the Steam id
// trusted.
package openid
