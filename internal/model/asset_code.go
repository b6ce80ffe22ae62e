package model

// AssetCode maps an asset to its human-assigned unique code.
// Both columns carry unique indexes: a code is unique across all time,
// and an asset holds at most one code.
type AssetCode struct {
	ID         int    `gorm:"primaryKey;autoIncrement" json:"id"`
	AssetID    int    `gorm:"uniqueIndex;not null" json:"asset_id"`
	UniqueCode string `gorm:"type:varchar(50);uniqueIndex;not null" json:"unique_code"`
}

// TableName specifies the table name for AssetCode model
func (AssetCode) TableName() string {
	return "asset_codes"
}
