package companies

import (
	"errors"
	"strconv"

	"go_assettag/internal/httpx"
	"go_assettag/internal/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateRequest represents create company request
type CreateRequest struct {
	Name string `json:"name" binding:"required,max=255"`
	Code string `json:"code" binding:"required,max=64"`
	Logo string `json:"logo" binding:"max=255"`
}

// UpdateRequest represents update company request
type UpdateRequest struct {
	Name *string `json:"name" binding:"omitempty,max=255"`
	Code *string `json:"code" binding:"omitempty,max=64"`
	Logo *string `json:"logo" binding:"omitempty,max=255"`
}

// Handler handles companies API
type Handler struct {
	db *gorm.DB
}

// NewHandler creates a new companies handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// List handles GET /api/v1/companies
func (h *Handler) List(c *gin.Context) {
	var companies []model.Company
	if err := h.db.Order("id ASC").Find(&companies).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to fetch companies", err))
		return
	}
	httpx.OK(c, companies)
}

// Show handles GET /api/v1/companies/:id
func (h *Handler) Show(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid("invalid company id"))
		return
	}

	var company model.Company
	if err := h.db.First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.FailErr(c, httpx.ErrNotFound("company not found"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to fetch company", err))
		return
	}
	httpx.OK(c, company)
}

// Create handles POST /api/v1/companies
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}

	company := model.Company{
		Name: req.Name,
		Code: req.Code,
		Logo: req.Logo,
	}
	if err := h.db.Create(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httpx.FailErr(c, httpx.ErrAlreadyExists("company name or code already exists"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to create company", err))
		return
	}

	httpx.Created(c, company)
}

// Update handles PUT /api/v1/companies/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid("invalid company id"))
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}

	var company model.Company
	if err := h.db.First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.FailErr(c, httpx.ErrNotFound("company not found"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to fetch company", err))
		return
	}

	if req.Name != nil {
		company.Name = *req.Name
	}
	if req.Code != nil {
		company.Code = *req.Code
	}
	if req.Logo != nil {
		company.Logo = *req.Logo
	}

	if err := h.db.Save(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httpx.FailErr(c, httpx.ErrAlreadyExists("company name or code already exists"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to update company", err))
		return
	}

	httpx.OK(c, company)
}

// Delete handles DELETE /api/v1/companies/:id.
// The company and all assets referencing it are soft-deleted in one
// transaction, so no live asset is left with a dangling reference.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid("invalid company id"))
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		var company model.Company
		if err := tx.First(&company, id).Error; err != nil {
			return err
		}
		if err := tx.Where("company_id = ?", id).Delete(&model.Asset{}).Error; err != nil {
			return err
		}
		return tx.Delete(&company).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.FailErr(c, httpx.ErrNotFound("company not found"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to delete company", err))
		return
	}

	httpx.NoContent(c)
}
