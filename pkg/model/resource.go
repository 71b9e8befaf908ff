package model

// Resource is one harvestable resource from the static catalog, mirrored
// into the database so positions can reference it by id. Rows are synced
// from the catalog at startup and are otherwise immutable.
type Resource struct {
	ID       int64  `gorm:"column:id;primaryKey"`
	Name     string `gorm:"column:name;not null;unique"`
	Category string `gorm:"column:category;not null"`
	Icon     string `gorm:"column:icon"`
}

func (Resource) TableName() string {
	return "resources"
}
