package model

import "gorm.io/gorm"

// Employee represents an employee record
type Employee struct {
	BaseModel
	Name       string         `gorm:"type:varchar(255);not null" json:"name"`
	Department string         `gorm:"type:varchar(255)" json:"department"`
	IsActive   bool           `gorm:"not null" json:"is_active"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Employee model
func (Employee) TableName() string {
	return "employees"
}
