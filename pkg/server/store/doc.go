// Package store defines the storage interfaces and error kinds used by
// the HTTP endpoints. Implementations live in the gorm subpackage; tests
// substitute testify mocks.
package store
