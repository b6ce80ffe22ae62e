package assets

import (
	"errors"
	"strconv"
	"time"

	"go_assettag/internal/assetsvc"
	"go_assettag/internal/httpx"
	"go_assettag/internal/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler handles assets API
type Handler struct {
	db *gorm.DB
}

// NewHandler creates a new assets handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// List handles GET /api/v1/assets. Soft-deleted assets are excluded;
// has_code=true restricts the listing to assets with an assigned unique code.
func (h *Handler) List(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 15
	}

	query := h.db.Model(&model.Asset{})
	if req.HasCode {
		subQuery := h.db.Model(&model.AssetCode{}).Select("asset_id")
		query = query.Where("id IN (?)", subQuery)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to count assets", err))
		return
	}

	var items []model.Asset
	offset := (req.Page - 1) * req.PageSize
	if err := query.
		Preload("Company").
		Preload("Category").
		Preload("AssetCode").
		Offset(offset).
		Limit(req.PageSize).
		Order("id DESC").
		Find(&items).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to fetch assets", err))
		return
	}

	httpx.OKItems(c, items, total, req.Page, req.PageSize)
}

// Show handles GET /api/v1/assets/:id.
// Soft-deleted assets stay reachable by primary key for audit.
func (h *Handler) Show(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid("invalid asset id"))
		return
	}

	var asset model.Asset
	if err := h.db.Unscoped().
		Preload("Company").
		Preload("Category").
		Preload("AssetCode").
		First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.FailErr(c, httpx.ErrNotFound("asset not found"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to fetch asset", err))
		return
	}

	httpx.OK(c, asset)
}

// Create handles POST /api/v1/assets
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}

	if appErr := h.checkReferences(req.CompanyID, req.CategoryID); appErr != nil {
		httpx.FailErr(c, appErr)
		return
	}

	invoiceDate, err := parseDate(req.InvoiceDate)
	if err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}
	dateDeployed, err := parseDate(req.DateDeployed)
	if err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}

	asset := model.Asset{
		PersonInCharge: req.PersonInCharge,
		Department:     req.Department,
		CompanyID:      req.CompanyID,
		CategoryID:     req.CategoryID,
		Cost:           req.Cost,
		Supplier:       req.Supplier,
		ModelNumber:    req.ModelNumber,
		Specifications: req.Specifications,
		AssetInfo:      req.AssetInfo,
		InvoiceNumber:  req.InvoiceNumber,
		InvoiceDate:    invoiceDate,
		DateDeployed:   dateDeployed,
		IsActive:       true,
		Remarks:        req.Remarks,
	}
	if err := h.db.Create(&asset).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to create asset", err))
		return
	}

	httpx.Created(c, asset)
}

// Update handles PUT /api/v1/assets/:id. The whole read-modify-write runs in
// one transaction so concurrent updates cannot interleave with the
// returned-date stamping.
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid("invalid asset id"))
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}

	invoiceDate, err := parseDate(req.InvoiceDate)
	if err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}
	dateDeployed, err := parseDate(req.DateDeployed)
	if err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}

	var asset model.Asset
	txErr := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&asset, id).Error; err != nil {
			return err
		}

		if req.PersonInCharge != nil {
			asset.PersonInCharge = *req.PersonInCharge
		}
		if req.Department != nil {
			asset.Department = *req.Department
		}
		if req.CompanyID != nil {
			asset.CompanyID = *req.CompanyID
		}
		if req.CategoryID != nil {
			asset.CategoryID = *req.CategoryID
		}
		if req.Cost != nil {
			asset.Cost = req.Cost
		}
		if req.Supplier != nil {
			asset.Supplier = *req.Supplier
		}
		if req.ModelNumber != nil {
			asset.ModelNumber = *req.ModelNumber
		}
		if req.Specifications != nil {
			asset.Specifications = *req.Specifications
		}
		if req.AssetInfo != nil {
			asset.AssetInfo = req.AssetInfo
		}
		if req.InvoiceNumber != nil {
			asset.InvoiceNumber = *req.InvoiceNumber
		}
		if invoiceDate != nil {
			asset.InvoiceDate = invoiceDate
		}
		if dateDeployed != nil {
			asset.DateDeployed = dateDeployed
		}
		if req.Remarks != nil {
			asset.Remarks = *req.Remarks
		}
		if req.IsActive != nil {
			assetsvc.ApplyActiveTransition(&asset, *req.IsActive, time.Now())
		}

		if appErr := h.checkReferencesTx(tx, asset.CompanyID, asset.CategoryID); appErr != nil {
			return appErr
		}

		return tx.Save(&asset).Error
	})
	if txErr != nil {
		var appErr *httpx.AppError
		if errors.As(txErr, &appErr) {
			httpx.FailErr(c, appErr)
			return
		}
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			httpx.FailErr(c, httpx.ErrNotFound("asset not found"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to update asset", txErr))
		return
	}

	httpx.OK(c, asset)
}

// Delete handles DELETE /api/v1/assets/:id (soft delete)
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid("invalid asset id"))
		return
	}

	res := h.db.Delete(&model.Asset{}, id)
	if res.Error != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to delete asset", res.Error))
		return
	}
	if res.RowsAffected == 0 {
		httpx.FailErr(c, httpx.ErrNotFound("asset not found"))
		return
	}

	httpx.NoContent(c)
}

func (h *Handler) checkReferences(companyID, categoryID int) *httpx.AppError {
	return h.checkReferencesTx(h.db, companyID, categoryID)
}

// checkReferencesTx verifies that company and category point at live rows
func (h *Handler) checkReferencesTx(tx *gorm.DB, companyID, categoryID int) *httpx.AppError {
	var count int64
	if err := tx.Model(&model.Company{}).Where("id = ?", companyID).Count(&count).Error; err != nil {
		return httpx.ErrDatabaseError("failed to check company reference", err)
	}
	if count == 0 {
		return httpx.ErrParamIllegal("company_id does not reference an existing company")
	}

	if err := tx.Model(&model.Category{}).Where("id = ?", categoryID).Count(&count).Error; err != nil {
		return httpx.ErrDatabaseError("failed to check category reference", err)
	}
	if count == 0 {
		return httpx.ErrParamIllegal("category_id does not reference an existing category")
	}
	return nil
}
