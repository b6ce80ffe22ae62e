package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Asset represents a tracked inventory asset.
// Company and Category are non-owning references; the asset exclusively
// owns its AssetCode and BatchTag rows.
type Asset struct {
	BaseModel
	PersonInCharge string         `gorm:"type:varchar(255);not null" json:"person_in_charge"`
	Department     string         `gorm:"type:varchar(255);not null" json:"department"`
	CompanyID      int            `gorm:"index;not null" json:"company_id"`
	CategoryID     int            `gorm:"index;not null" json:"category_id"`
	Cost           *float64       `gorm:"type:decimal(12,2)" json:"cost"`
	Supplier       string         `gorm:"type:varchar(255)" json:"supplier"`
	ModelNumber    string         `gorm:"type:varchar(255)" json:"model_number"`
	Specifications string         `gorm:"type:text" json:"specifications"`
	AssetInfo      datatypes.JSON `json:"asset_info"`
	InvoiceNumber  string         `gorm:"type:varchar(255)" json:"invoice_number"`
	InvoiceDate    *time.Time     `gorm:"type:date" json:"invoice_date"`
	DateDeployed   *time.Time     `gorm:"type:date" json:"date_deployed"`
	DateReturned   *time.Time     `gorm:"type:date" json:"date_returned"`
	IsActive       bool           `gorm:"not null" json:"is_active"`
	Remarks        string         `gorm:"type:text" json:"remarks"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	Company   *Company   `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Category  *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	AssetCode *AssetCode `gorm:"foreignKey:AssetID" json:"asset_code,omitempty"`
}

// TableName specifies the table name for Asset model
func (Asset) TableName() string {
	return "assets"
}
