package servers

import (
	"errors"
	"strconv"

	"go_assettag/internal/httpx"
	"go_assettag/internal/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SaveRequest represents create/update server account request
type SaveRequest struct {
	Name           string `json:"name" binding:"required,max=255"`
	Department     string `json:"department" binding:"required,max=255"`
	ServerUser     string `json:"server_user" binding:"required,max=255"`
	ServerPassword string `json:"server_password" binding:"max=255"`
	Status         string `json:"status" binding:"required,max=50"`
	Remarks        string `json:"remarks"`
	CompanyID      *int   `json:"company_id"`
}

// ListItem is the server account projection returned by listings.
// The stored password is never included.
type ListItem struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	ServerUser string `json:"server_user"`
	Status     string `json:"status"`
	Remarks    string `json:"remarks"`
}

// Handler handles server accounts API
type Handler struct {
	db *gorm.DB
}

// NewHandler creates a new server accounts handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// List handles GET /api/v1/servers
func (h *Handler) List(c *gin.Context) {
	var servers []ListItem
	if err := h.db.Model(&model.ServerAccount{}).
		Select("id", "name", "department", "server_user", "status", "remarks").
		Order("id DESC").
		Find(&servers).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to fetch server accounts", err))
		return
	}
	httpx.OK(c, servers)
}

// Show handles GET /api/v1/servers/:id
func (h *Handler) Show(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid("invalid server account id"))
		return
	}

	var server model.ServerAccount
	if err := h.db.First(&server, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.FailErr(c, httpx.ErrNotFound("server account not found"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to fetch server account", err))
		return
	}
	httpx.OK(c, server)
}

// Create handles POST /api/v1/servers
func (h *Handler) Create(c *gin.Context) {
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}

	server := model.ServerAccount{
		Name:           req.Name,
		Department:     req.Department,
		ServerUser:     req.ServerUser,
		ServerPassword: req.ServerPassword,
		Status:         req.Status,
		Remarks:        req.Remarks,
		CompanyID:      req.CompanyID,
	}
	if err := h.db.Create(&server).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to create server account", err))
		return
	}

	httpx.Created(c, server)
}

// Update handles PUT /api/v1/servers/:id.
// An empty password in the request keeps the stored one.
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid("invalid server account id"))
		return
	}

	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}

	var server model.ServerAccount
	if err := h.db.First(&server, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.FailErr(c, httpx.ErrNotFound("server account not found"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to fetch server account", err))
		return
	}

	server.Name = req.Name
	server.Department = req.Department
	server.ServerUser = req.ServerUser
	server.Status = req.Status
	server.Remarks = req.Remarks
	server.CompanyID = req.CompanyID
	if req.ServerPassword != "" {
		server.ServerPassword = req.ServerPassword
	}

	if err := h.db.Save(&server).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to update server account", err))
		return
	}

	httpx.OK(c, server)
}

// Delete handles DELETE /api/v1/servers/:id (soft delete)
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid("invalid server account id"))
		return
	}

	res := h.db.Delete(&model.ServerAccount{}, id)
	if res.Error != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to delete server account", res.Error))
		return
	}
	if res.RowsAffected == 0 {
		httpx.FailErr(c, httpx.ErrNotFound("server account not found"))
		return
	}

	httpx.NoContent(c)
}
