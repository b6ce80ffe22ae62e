package model

import "gorm.io/gorm"

// ServerAccount holds credentials for an internal server login
type ServerAccount struct {
	BaseModel
	Name           string         `gorm:"type:varchar(255);not null" json:"name"`
	Department     string         `gorm:"type:varchar(255);not null" json:"department"`
	ServerUser     string         `gorm:"type:varchar(255);not null" json:"server_user"`
	ServerPassword string         `gorm:"type:varchar(255)" json:"server_password,omitempty"`
	Status         string         `gorm:"type:varchar(50);not null" json:"status"`
	Remarks        string         `gorm:"type:text" json:"remarks"`
	CompanyID      *int           `gorm:"index" json:"company_id"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for ServerAccount model
func (ServerAccount) TableName() string {
	return "server_accounts"
}
