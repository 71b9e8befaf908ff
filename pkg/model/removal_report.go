package model

import "time"

// RemovalReport is one vote to delete a position. A reporter can hold at
// most one active report per position; reports are purged together with
// the position once the consensus engine deletes it.
type RemovalReport struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	PositionID int64     `gorm:"column:position_id;not null"`
	ReporterID int64     `gorm:"column:reporter_id;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (RemovalReport) TableName() string {
	return "removal_reports"
}
