package auth

import (
	"errors"
	"time"

	"go_assettag/api/v1/middleware"
	"go_assettag/internal/auth"
	"go_assettag/internal/cache"
	"go_assettag/internal/config"
	"go_assettag/internal/httpx"
	"go_assettag/internal/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRequest represents registration request body
type RegisterRequest struct {
	Name                 string `json:"name" binding:"required"`
	Username             string `json:"username" binding:"required,max=64"`
	Password             string `json:"password" binding:"required,min=6"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required,eqfield=Password"`
}

// LoginRequest represents login request body
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents a token grant
type TokenResponse struct {
	Token    string     `json:"token"`
	ExpireAt string     `json:"expireAt"`
	User     model.User `json:"user"`
}

// Handler handles authentication and user administration
type Handler struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewHandler creates a new auth handler
func NewHandler(db *gorm.DB, cfg *config.Config) *Handler {
	return &Handler{db: db, cfg: cfg}
}

// Register handles POST /api/v1/register.
// New accounts always get the staff role regardless of request input.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
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
		Role:         model.RoleStaff,
	}
	if err := h.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httpx.FailErr(c, httpx.ErrAlreadyExists("username already exists"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to create user", err))
		return
	}

	token, expireAt, err := h.issueToken(&user)
	if err != nil {
		httpx.FailErr(c, httpx.ErrInternalError("failed to generate token", err))
		return
	}

	httpx.Created(c, TokenResponse{
		Token:    token,
		ExpireAt: expireAt.Format(time.RFC3339),
		User:     user,
	})
}

// Login handles POST /api/v1/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.FailErr(c, httpx.ErrParamInvalid(err.Error()))
		return
	}

	var user model.User
	if err := h.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same message for unknown user and wrong password
			httpx.FailErr(c, httpx.ErrUnauthorized("invalid credentials"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("database error", err))
		return
	}

	if err := auth.ComparePassword(user.PasswordHash, req.Password); err != nil {
		httpx.FailErr(c, httpx.ErrUnauthorized("invalid credentials"))
		return
	}

	token, expireAt, err := h.issueToken(&user)
	if err != nil {
		httpx.FailErr(c, httpx.ErrInternalError("failed to generate token", err))
		return
	}

	httpx.OK(c, TokenResponse{
		Token:    token,
		ExpireAt: expireAt.Format(time.RFC3339),
		User:     user,
	})
}

// Me handles GET /api/v1/user
func (h *Handler) Me(c *gin.Context) {
	uid := c.GetInt(middleware.CtxUID)

	var user model.User
	if err := h.db.First(&user, uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.FailErr(c, httpx.ErrNotFound("user not found"))
			return
		}
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to fetch user", err))
		return
	}

	httpx.OK(c, user)
}

// Logout handles POST /api/v1/logout. The presented token's jti is written
// to the denylist until its natural expiry, so replaying it fails.
func (h *Handler) Logout(c *gin.Context) {
	jti := c.GetString(middleware.CtxTokenID)
	exp, _ := c.Get(middleware.CtxTokenExp)

	ttl := time.Duration(0)
	if expireAt, ok := exp.(time.Time); ok {
		ttl = time.Until(expireAt)
	}

	if err := cache.DenyToken(c.Request.Context(), jti, ttl); err != nil {
		httpx.FailErr(c, httpx.ErrInternalError("failed to invalidate token", err))
		return
	}

	httpx.OKMsg(c, "logged out", nil)
}

func (h *Handler) issueToken(user *model.User) (string, time.Time, error) {
	expireAt := time.Now().Add(time.Duration(h.cfg.JWT.ExpireMinutes) * time.Minute)
	token, err := auth.GenerateToken(user.ID, user.Username, user.Role, expireAt, h.cfg.JWT.Issuer)
	return token, expireAt, err
}
