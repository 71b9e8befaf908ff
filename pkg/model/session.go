package model

import "time"

// Session binds an opaque access token to an account. One token is minted
// per login and destroyed on logout; tokens are never renewed.
type Session struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	AccountID      int64     `gorm:"column:account_id;not null"`
	AccessToken    string    `gorm:"column:access_token;not null;unique"`
	OriginIdentity string    `gorm:"column:origin_identity"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Session) TableName() string {
	return "sessions"
}
