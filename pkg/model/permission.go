package model

// Permission grants a named role (e.g. "admin") to an account.
type Permission struct {
	Role      string `gorm:"column:role;primaryKey"`
	AccountID int64  `gorm:"column:account_id;primaryKey"`
}

func (Permission) TableName() string {
	return "permissions"
}
