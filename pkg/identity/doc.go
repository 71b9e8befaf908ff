// Package identity resolves and represents the caller of a request.
//
// Callers are identified by a one-way hash of their origin: the client
// network address for anonymous contributors, or the external account id
// for authenticated ones. The raw origin never reaches storage.
package identity
