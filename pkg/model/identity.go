package model

import "time"

// Identity is the stored form of a caller origin, either a network address
// or an external account id. Only a one-way hash is kept; the raw value is
// never written to the database.
type Identity struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	IdentityHash string    `gorm:"column:identity_hash;not null;unique"`
	Blocked      bool      `gorm:"column:blocked;not null;default:false"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Identity) TableName() string {
	return "identities"
}
