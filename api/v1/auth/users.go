package auth

import (
	"errors"
	"strconv"

	"go_assettag/api/v1/middleware"
	"go_assettag/internal/auth"
	"go_assettag/internal/httpx"
	"go_assettag/internal/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserListItem is the projection returned by the admin user listing
type UserListItem struct {
	ID       int        `json:"id"`
	Name     string     `json:"name"`
	Username string     `json:"username"`
	Role     model.Role `json:"role"`
}

// UpdateRoleRequest represents a role change request
type UpdateRoleRequest struct {
	Role model.Role `json:"role" binding:"required"`
}

// CreateUserRequest represents an admin-created account. Unlike public
// registration, the role is chosen explicitly.
type CreateUserRequest struct {
	Name     string     `json:"name" binding:"required"`
	Username string     `json:"username" binding:"required,max=64"`
	Password string     `json:"password" binding:"required,min=6"`
	Role     model.Role `json:"role" binding:"required"`
}

// ListUsers handles GET /api/v1/users (admin only)
func (h *Handler) ListUsers(c *gin.Context) {
	var users []UserListItem
	if err := h.db.Model(&model.User{}).
		Select("id", "name", "username", "role").
		Order("id ASC").
		Find(&users).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to fetch users", err))
		return
	}

	httpx.OK(c, users)
}

// CreateUser handles POST /api/v1/users (admin only)
func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}
	if !model.ValidRole(req.Role) {
		httpx.FailErr(c, httpx.ErrParamIllegal("role must be admin or staff"))
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		httpx.FailErr(c, httpx.ErrInternalError("failed to hash password", err))
		return
	}

	user := model.User{
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: hash,
		Role:         req.Role,
	}
	if err := h.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httpx.FailErr(c, httpx.ErrAlreadyExists("username already exists"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to create user", err))
		return
	}

	httpx.Created(c, user)
}

// DeleteUser handles DELETE /api/v1/users/:id (admin only, soft delete).
// An admin may not delete their own account.
func (h *Handler) DeleteUser(c *gin.Context) {
	targetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid("invalid user id"))
		return
	}

	if targetID == c.GetInt(middleware.CtxUID) {
		httpx.FailErr(c, httpx.ErrSelfForbidden("cannot delete your own account"))
		return
	}

	res := h.db.Delete(&model.User{}, targetID)
	if res.Error != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to delete user", res.Error))
		return
	}
	if res.RowsAffected == 0 {
		httpx.FailErr(c, httpx.ErrNotFound("user not found"))
		return
	}

	httpx.NoContent(c)
}

// UpdateRole handles PATCH /api/v1/users/:id/role (admin only).
// An admin may never change their own role; that rejection is distinct
// from a generic role denial.
func (h *Handler) UpdateRole(c *gin.Context) {
	targetID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid("invalid user id"))
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}
	if !model.ValidRole(req.Role) {
		httpx.FailErr(c, httpx.ErrParamIllegal("role must be admin or staff"))
		return
	}

	if targetID == c.GetInt(middleware.CtxUID) {
		httpx.FailErr(c, httpx.ErrSelfForbidden("cannot change your own role"))
		return
	}

	var user model.User
	if err := h.db.First(&user, targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.FailErr(c, httpx.ErrNotFound("user not found"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to fetch user", err))
		return
	}

	if err := h.db.Model(&user).Update("role", req.Role).Error; err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to update role", err))
		return
	}

	httpx.OKMsg(c, "role updated", user)
}
