// Package db provides the database connection helper and the transient
// failure retry policy shared by the stores.
package db
