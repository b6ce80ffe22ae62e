package assets

import (
	"errors"
	"regexp"

	"go_assettag/internal/httpx"
	"go_assettag/internal/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const suggestionLimit = 10

// Codes end up in file paths and URLs, so the charset excludes path
// separators and anything else that could change where a tag image lands.
var codePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// SaveCodeRequest represents a unique-code assignment request
type SaveCodeRequest struct {
	AssetID    int    `json:"asset_id" binding:"required"`
	UniqueCode string `json:"unique_code" binding:"required,max=50"`
}

// SaveUniqueCode handles POST /api/v1/assets/unique-code.
// Uniqueness (globally for the code, at-most-one per asset) is enforced by
// the storage constraints, not by a pre-check, so concurrent assignments of
// the same code cannot both succeed.
func (h *Handler) SaveUniqueCode(c *gin.Context) {
	var req SaveCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}
	if !codePattern.MatchString(req.UniqueCode) {
		httpx.FailErr(c, httpx.ErrParamIllegal("unique code must start with a letter or digit and may only contain letters, digits, dots, dashes and underscores"))
		return
	}

	var count int64
	if err := h.db.Model(&model.Asset{}).Where("id = ?", req.AssetID).Count(&count).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to check asset", err))
		return
	}
	if count == 0 {
		httpx.FailErr(c, httpx.ErrNotFound("asset not found"))
		return
	}

	code := model.AssetCode{
		AssetID:    req.AssetID,
		UniqueCode: req.UniqueCode,
	}
	if err := h.db.Create(&code).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httpx.FailErr(c, httpx.ErrAlreadyExists("unique code already taken or asset already has a code"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to save unique code", err))
		return
	}

	httpx.Created(c, code)
}

// ByUniqueCode handles GET /api/v1/assets/by-unique-code?unique_code=.
// The match is exact as stored. A code whose asset has been soft-deleted
// answers 404, the same as an unknown code.
func (h *Handler) ByUniqueCode(c *gin.Context) {
	value := c.Query("unique_code")
	if value == "" {
		httpx.FailErr(c, httpx.ErrParamMissing("unique_code is required"))
		return
	}

	var code model.AssetCode
	if err := h.db.Where("unique_code = ?", value).First(&code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.FailErr(c, httpx.ErrNotFound("unique code not found"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to look up unique code", err))
		return
	}

	var asset model.Asset
	if err := h.db.
		Preload("Company").
		Preload("Category").
		Preload("AssetCode").
		First(&asset, code.AssetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.FailErr(c, httpx.ErrNotFound("unique code not found"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to fetch asset", err))
		return
	}

	httpx.OK(c, asset)
}

// SuggestUniqueCodes handles GET /api/v1/assets/unique-code-suggestions?q=.
// Substring match, capped at 10 results.
func (h *Handler) SuggestUniqueCodes(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		httpx.OK(c, []model.AssetCode{})
		return
	}

	var codes []model.AssetCode
	if err := h.db.
		Where("unique_code LIKE ?", "%"+q+"%").
		Order("unique_code ASC").
		Limit(suggestionLimit).
		Find(&codes).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to fetch suggestions", err))
		return
	}

	httpx.OK(c, codes)
}
