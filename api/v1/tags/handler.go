package tags

import (
	"errors"
	"strconv"

	"go_assettag/internal/httpx"
	"go_assettag/internal/model"
	"go_assettag/internal/tag"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateRequest represents a tag render/archive request
type CreateRequest struct {
	AssetID    int    `json:"asset_id" binding:"required"`
	UniqueCode string `json:"unique_code" binding:"required,max=50"`
}

// TagItem is a batch tag with its public URL
type TagItem struct {
	model.BatchTag
	URL string `json:"url"`
}

// Handler handles batch tag API
type Handler struct {
	db       *gorm.DB
	renderer tag.Renderer
	archive  tag.Archive
}

// NewHandler creates a new tags handler
func NewHandler(db *gorm.DB, renderer tag.Renderer, archive tag.Archive) *Handler {
	return &Handler{db: db, renderer: renderer, archive: archive}
}

// List handles GET /api/v1/tags (non-deleted, newest first)
func (h *Handler) List(c *gin.Context) {
	var rows []model.BatchTag
	if err := h.db.Order("created_at DESC").Find(&rows).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to fetch tags", err))
		return
	}

	items := make([]TagItem, len(rows))
	for i, row := range rows {
		items[i] = TagItem{BatchTag: row, URL: "/storage/" + row.FilePath}
	}

	httpx.OK(c, items)
}

// Create handles POST /api/v1/tags. The unique code must already be assigned
// to the asset; the rendered image is archived at a path derived from the
// code and recorded as not yet printed.
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}

	var count int64
	if err := h.db.Model(&model.AssetCode{}).
		Where("asset_id = ? AND unique_code = ?", req.AssetID, req.UniqueCode).
		Count(&count).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to check unique code", err))
		return
	}
	if count == 0 {
		httpx.FailErr(c, httpx.ErrNotFound("unique code is not assigned to this asset"))
		return
	}

	png, err := h.renderer.Render(req.UniqueCode)
	if err != nil {
		httpx.FailErr(c, httpx.ErrExternalError("failed to render tag image", err))
		return
	}

	relPath, err := h.archive.Save(req.UniqueCode, png)
	if err != nil {
		httpx.FailErr(c, httpx.ErrInternalError("failed to archive tag image", err))
		return
	}

	row := model.BatchTag{
		AssetID:     req.AssetID,
		UniqueCode:  req.UniqueCode,
		FilePath:    relPath,
		PrintStatus: model.PrintStatusNotPrinted,
	}
	if err := h.db.Create(&row).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to save tag", err))
		return
	}

	httpx.Created(c, TagItem{BatchTag: row, URL: "/storage/" + row.FilePath})
}

// MarkPrinted handles POST /api/v1/tags/mark-printed.
// Every live unprinted tag transitions to printed in one statement.
func (h *Handler) MarkPrinted(c *gin.Context) {
	res := h.db.Model(&model.BatchTag{}).
		Where("print_status = ?", model.PrintStatusNotPrinted).
		Update("print_status", model.PrintStatusPrinted)
	if res.Error != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to mark tags printed", res.Error))
		return
	}

	httpx.OKMsg(c, "all tags marked as printed", gin.H{"updated": res.RowsAffected})
}

// Delete handles DELETE /api/v1/tags/:id (soft delete)
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid("invalid tag id"))
		return
	}

	res := h.db.Delete(&model.BatchTag{}, id)
	if res.Error != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to delete tag", res.Error))
		return
	}
	if res.RowsAffected == 0 {
		httpx.FailErr(c, httpx.ErrNotFound("tag not found"))
		return
	}

	httpx.NoContent(c)
}

// DownloadTag handles GET /api/v1/assets/:id/download-tag, streaming the
// archived PNG. The route param carries the unique code, not a numeric id;
// gin requires the same param name as the sibling asset routes.
func (h *Handler) DownloadTag(c *gin.Context) {
	code := c.Param("id")

	var row model.BatchTag
	if err := h.db.
		Where("unique_code = ?", code).
		Order("created_at DESC").
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.FailErr(c, httpx.ErrNotFound("no tag archived for this code"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to look up tag", err))
		return
	}

	png, err := h.archive.Read(row.FilePath)
	if err != nil {
		httpx.FailErr(c, httpx.ErrNotFound("tag image not found"))
		return
	}

	c.Data(200, "image/png", png)
}
