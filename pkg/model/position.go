package model

import "time"

// Position is one contributed map placement of a resource. Coordinates are
// normalized map-relative values in the open interval (0,1). The
// (resource_id, x, y) tuple is unique; exact duplicates are absorbed on
// insert.
type Position struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	ResourceID int64     `gorm:"column:resource_id;not null"`
	X          float64   `gorm:"column:x;not null"`
	Y          float64   `gorm:"column:y;not null"`
	IdentityID int64     `gorm:"column:identity_id;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Position) TableName() string {
	return "positions"
}
