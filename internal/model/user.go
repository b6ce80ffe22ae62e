package model

import "gorm.io/gorm"

// Role represents a user's access-control role
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// ValidRole reports whether r is one of the known roles
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleStaff
}

// User represents a user in the system. Accounts are never hard-deleted;
// removal is a soft delete, which also bars the account from logging in.
type User struct {
	BaseModel
	Name         string         `gorm:"type:varchar(255);not null" json:"name"`
	Username     string         `gorm:"type:varchar(64);uniqueIndex;not null" json:"username"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	Role         Role           `gorm:"type:varchar(32);default:'staff'" json:"role"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}
