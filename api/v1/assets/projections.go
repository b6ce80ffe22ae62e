package assets

import (
	"go_assettag/internal/httpx"
	"go_assettag/internal/model"

	"github.com/gin-gonic/gin"
)

// ListItem is the lightweight projection served by the asset_list endpoints
type ListItem struct {
	ID             int    `json:"id"`
	PersonInCharge string `json:"person_in_charge"`
	Company        string `json:"company"`
	IsActive       bool   `json:"is_active"`
}

// AssetList handles GET /api/v1/asset_list (active assets only)
func (h *Handler) AssetList(c *gin.Context) {
	h.projectedList(c, true)
}

// AssetListAll handles GET /api/v1/asset_list_all (includes inactive)
func (h *Handler) AssetListAll(c *gin.Context) {
	h.projectedList(c, false)
}

func (h *Handler) projectedList(c *gin.Context, activeOnly bool) {
	// These feed live dropdowns, so intermediaries must not cache them
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")

	query := h.db.Model(&model.Asset{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var assets []model.Asset
	if err := query.Preload("Company").Order("id ASC").Find(&assets).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to fetch asset list", err))
		return
	}

	items := make([]ListItem, len(assets))
	for i, asset := range assets {
		company := ""
		if asset.Company != nil {
			company = asset.Company.Name
		}
		items[i] = ListItem{
			ID:             asset.ID,
			PersonInCharge: asset.PersonInCharge,
			Company:        company,
			IsActive:       asset.IsActive,
		}
	}

	httpx.OK(c, items)
}
