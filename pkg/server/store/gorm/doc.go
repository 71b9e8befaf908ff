// Package gorm contains the GORM/Postgres implementations of the store
// interfaces. All uniqueness and dedup rules ride on database
// constraints so concurrent server instances stay correct.
package gorm
