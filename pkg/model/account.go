package model

// Account is a Steam-backed user account. Profile fields are refreshed on
// every successful login.
type Account struct {
	ID           int64  `gorm:"column:id;primaryKey"`
	SteamID      string `gorm:"column:steam_id;not null;unique"`
	DisplayName  string `gorm:"column:display_name"`
	Avatar       string `gorm:"column:avatar"`
	AvatarHash   string `gorm:"column:avatar_hash"`
	PrimaryGroup string `gorm:"column:primary_group"`
	Blocked      bool   `gorm:"column:blocked;not null;default:false"`
}

func (Account) TableName() string {
	return "accounts"
}
