package model

import "gorm.io/gorm"

// Company represents a company that owns assets
type Company struct {
	BaseModel
	Name      string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Code      string         `gorm:"type:varchar(64);uniqueIndex;not null" json:"code"`
	Logo      string         `gorm:"type:varchar(255)" json:"logo"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Company model
func (Company) TableName() string {
	return "companies"
}
