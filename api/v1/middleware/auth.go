package middleware

import (
	"errors"
	"strings"

	"go_assettag/internal/auth"
	"go_assettag/internal/cache"
	"go_assettag/internal/httpx"
	"go_assettag/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by the access gate for downstream handlers
const (
	CtxUID      = "uid"
	CtxUsername = "username"
	CtxRole     = "role"
	CtxTokenID  = "jti"
	CtxTokenExp = "token_exp"
)

// RequireRoles validates the bearer token and, when a non-empty role set is
// declared, enforces membership. An empty set means any authenticated user.
// The resolved identity is placed into the request context; handlers never
// consult any ambient session state.
func RequireRoles(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httpx.FailErr(c, httpx.ErrUnauthorized("missing authorization header"))
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			httpx.FailErr(c, httpx.ErrUnauthorized("invalid authorization header format"))
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				httpx.FailErr(c, httpx.ErrTokenExpired("token expired"))
			} else {
				// Parse failure reason is diagnostic text only, never a trust decision
				httpx.FailErr(c, httpx.ErrInvalidToken("invalid token: "+err.Error()))
			}
			c.Abort()
			return
		}

		denied, err := cache.IsTokenDenied(c.Request.Context(), claims.ID)
		if err != nil {
			httpx.FailErr(c, httpx.ErrInternalError("failed to check token state", err))
			c.Abort()
			return
		}
		if denied {
			httpx.FailErr(c, httpx.ErrInvalidToken("token has been invalidated"))
			c.Abort()
			return
		}

		if len(roles) > 0 && !roleAllowed(claims.Role, roles) {
			httpx.FailErr(c, httpx.ErrForbidden("forbidden").WithData(gin.H{
				"your_role":     claims.Role,
				"allowed_roles": roles,
			}))
			c.Abort()
			return
		}

		c.Set(CtxUID, claims.UID)
		c.Set(CtxUsername, claims.Username)
		c.Set(CtxRole, claims.Role)
		c.Set(CtxTokenID, claims.ID)
		c.Set(CtxTokenExp, claims.ExpiresAt.Time)

		c.Next()
	}
}

func roleAllowed(role model.Role, allowed []model.Role) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}
