package categories

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"go_assettag/internal/httpx"
	"go_assettag/internal/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateRequest represents create category request
type CreateRequest struct {
	Name string `json:"name" binding:"required,max=255"`
	Slug string `json:"slug" binding:"omitempty,max=255"`
}

// UpdateRequest represents update category request
type UpdateRequest struct {
	Name *string `json:"name" binding:"omitempty,max=255"`
	Slug *string `json:"slug" binding:"omitempty,max=255"`
}

// Handler handles categories API
type Handler struct {
	db *gorm.DB
}

// NewHandler creates a new categories handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// List handles GET /api/v1/categories
func (h *Handler) List(c *gin.Context) {
	var categories []model.Category
	if err := h.db.Order("id ASC").Find(&categories).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to fetch categories", err))
		return
	}
	httpx.OK(c, categories)
}

// Show handles GET /api/v1/categories/:id
func (h *Handler) Show(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid("invalid category id"))
		return
	}

	var category model.Category
	if err := h.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.FailErr(c, httpx.ErrNotFound("category not found"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to fetch category", err))
		return
	}
	httpx.OK(c, category)
}

// Create handles POST /api/v1/categories.
// The slug is derived from the name when not provided.
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		httpx.FailErr(c, httpx.ErrParamInvalid("name cannot be empty"))
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Name)
	}

	category := model.Category{
		Name: req.Name,
		Slug: slug,
	}
	if err := h.db.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httpx.FailErr(c, httpx.ErrAlreadyExists("category name already exists"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to create category", err))
		return
	}

	httpx.Created(c, category)
}

// Update handles PUT /api/v1/categories/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid("invalid category id"))
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}

	var category model.Category
	if err := h.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.FailErr(c, httpx.ErrNotFound("category not found"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to fetch category", err))
		return
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			httpx.FailErr(c, httpx.ErrParamInvalid("name cannot be empty"))
			return
		}
		category.Name = *req.Name
		if req.Slug == nil {
			category.Slug = Slugify(*req.Name)
		}
	}
	if req.Slug != nil {
		category.Slug = *req.Slug
	}

	if err := h.db.Save(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httpx.FailErr(c, httpx.ErrAlreadyExists("category name already exists"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to update category", err))
		return
	}

	httpx.OK(c, category)
}

// Delete handles DELETE /api/v1/categories/:id.
// Dependent assets are soft-deleted with the category in one transaction.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid("invalid category id"))
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		var category model.Category
		if err := tx.First(&category, id).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", id).Delete(&model.Asset{}).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.FailErr(c, httpx.ErrNotFound("category not found"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to delete category", err))
		return
	}

	httpx.NoContent(c)
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases a name and collapses runs of non-alphanumerics to dashes
func Slugify(name string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
