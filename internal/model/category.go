package model

import "gorm.io/gorm"

// Category represents an asset category
type Category struct {
	BaseModel
	Name      string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Slug      string         `gorm:"type:varchar(255);index" json:"slug"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Category model
func (Category) TableName() string {
	return "categories"
}
