package store

import "github.com/Torxed/coreborn-api/pkg/model"

// IdentityStore abstracts the identity ledger.
type IdentityStore interface {
	// ResolveOrCreate upserts the identity row for a hash and returns it.
	// An existing row is returned untouched; blocked is never reset.
	ResolveOrCreate(identityHash string) (*model.Identity, error)

	// IsBlocked reports whether an identity is blocked. Callers must
	// treat any error as blocked (fail closed).
	IsBlocked(identityHash string) (bool, error)
}
