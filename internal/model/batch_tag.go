package model

import (
	"time"

	"gorm.io/gorm"
)

// PrintStatus represents a tag's print state
type PrintStatus string

const (
	PrintStatusNotPrinted PrintStatus = "not_printed"
	PrintStatusPrinted    PrintStatus = "printed"
)

// BatchTag is an archived, rendered tag image for an asset's unique code
type BatchTag struct {
	ID          int            `gorm:"primaryKey;autoIncrement" json:"id"`
	AssetID     int            `gorm:"index;not null" json:"asset_id"`
	UniqueCode  string         `gorm:"type:varchar(50);index;not null" json:"unique_code"`
	FilePath    string         `gorm:"type:varchar(255);not null" json:"file_path"`
	PrintStatus PrintStatus    `gorm:"type:varchar(32);default:'not_printed'" json:"print_status"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for BatchTag model
func (BatchTag) TableName() string {
	return "batch_tags"
}
