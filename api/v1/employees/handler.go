package employees

import (
	"errors"
	"strconv"

	"go_assettag/internal/httpx"
	"go_assettag/internal/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateRequest represents create employee request
type CreateRequest struct {
	Name       string `json:"name" binding:"required,max=255"`
	Department string `json:"department" binding:"max=255"`
	IsActive   *bool  `json:"is_active"`
}

// UpdateRequest represents update employee request
type UpdateRequest struct {
	Name       *string `json:"name" binding:"omitempty,max=255"`
	Department *string `json:"department" binding:"omitempty,max=255"`
	IsActive   *bool   `json:"is_active"`
}

// Handler handles employees API
type Handler struct {
	db *gorm.DB
}

// NewHandler creates a new employees handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// List handles GET /api/v1/employees
func (h *Handler) List(c *gin.Context) {
	var employees []model.Employee
	if err := h.db.Order("id ASC").Find(&employees).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to fetch employees", err))
		return
	}
	httpx.OK(c, employees)
}

// Show handles GET /api/v1/employees/:id
func (h *Handler) Show(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid("invalid employee id"))
		return
	}

	var employee model.Employee
	if err := h.db.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.FailErr(c, httpx.ErrNotFound("employee not found"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to fetch employee", err))
		return
	}
	httpx.OK(c, employee)
}

// Create handles POST /api/v1/employees. New employees are active by default.
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}

	employee := model.Employee{
		Name:       req.Name,
		Department: req.Department,
		IsActive:   true,
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}

	if err := h.db.Create(&employee).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to create employee", err))
		return
	}

	httpx.Created(c, employee)
}

// Update handles PUT /api/v1/employees/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid("invalid employee id"))
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}

	var employee model.Employee
	if err := h.db.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.FailErr(c, httpx.ErrNotFound("employee not found"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to fetch employee", err))
		return
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Department != nil {
		employee.Department = *req.Department
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}

	if err := h.db.Save(&employee).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to update employee", err))
		return
	}

	httpx.OK(c, employee)
}

// Delete handles DELETE /api/v1/employees/:id (soft delete)
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid("invalid employee id"))
		return
	}

	res := h.db.Delete(&model.Employee{}, id)
	if res.Error != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to delete employee", res.Error))
		return
	}
	if res.RowsAffected == 0 {
		httpx.FailErr(c, httpx.ErrNotFound("employee not found"))
		return
	}

	httpx.NoContent(c)
}
