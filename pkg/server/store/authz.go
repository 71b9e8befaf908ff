package store

// AuthzStore abstracts role/permission checks.
type AuthzStore interface {
	// HasRole reports whether a non-blocked account holds a named role.
	// Evaluated fresh on every call; never cached across requests.
	HasRole(accountID int64, role string) bool
}
