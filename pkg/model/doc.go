// Package model contains the database models for the coreborn API.
//
// All uniqueness rules (identity hashes, session tokens, exact position
// duplicates, one report per reporter) are enforced by database
// constraints rather than in-process locks, so multiple server instances
// can run against the same database.
package model
