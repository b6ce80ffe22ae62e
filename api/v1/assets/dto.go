package assets

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// CreateRequest represents create asset request. Fields are an explicit
// allow-list; anything else in the body is ignored.
type CreateRequest struct {
	PersonInCharge string         `json:"person_in_charge" binding:"required,max=255"`
	Department     string         `json:"department" binding:"required,max=255"`
	CompanyID      int            `json:"company_id" binding:"required"`
	CategoryID     int            `json:"category_id" binding:"required"`
	Cost           *float64       `json:"cost" binding:"omitempty,gte=0"`
	Supplier       string         `json:"supplier" binding:"max=255"`
	ModelNumber    string         `json:"model_number" binding:"max=255"`
	Specifications string         `json:"specifications"`
	AssetInfo      datatypes.JSON `json:"asset_info"`
	InvoiceNumber  string         `json:"invoice_number" binding:"max=255"`
	InvoiceDate    *string        `json:"invoice_date"`
	DateDeployed   *string        `json:"date_deployed"`
	Remarks        string         `json:"remarks"`
}

// UpdateRequest represents a partial asset update
type UpdateRequest struct {
	PersonInCharge *string        `json:"person_in_charge" binding:"omitempty,max=255"`
	Department     *string        `json:"department" binding:"omitempty,max=255"`
	CompanyID      *int           `json:"company_id"`
	CategoryID     *int           `json:"category_id"`
	Cost           *float64       `json:"cost" binding:"omitempty,gte=0"`
	Supplier       *string        `json:"supplier" binding:"omitempty,max=255"`
	ModelNumber    *string        `json:"model_number" binding:"omitempty,max=255"`
	Specifications *string        `json:"specifications"`
	AssetInfo      datatypes.JSON `json:"asset_info"`
	InvoiceNumber  *string        `json:"invoice_number" binding:"omitempty,max=255"`
	InvoiceDate    *string        `json:"invoice_date"`
	DateDeployed   *string        `json:"date_deployed"`
	IsActive       *bool          `json:"is_active"`
	Remarks        *string        `json:"remarks"`
}

// ListRequest represents list assets request
type ListRequest struct {
	Page     int  `form:"page"`
	PageSize int  `form:"pageSize"`
	HasCode  bool `form:"has_code"`
}

const dateLayout = "2006-01-02"

// parseDate parses an optional YYYY-MM-DD date string
func parseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", *value)
	}
	return &t, nil
}
