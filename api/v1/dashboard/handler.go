package dashboard

import (
	"go_assettag/internal/dashboard"
	"go_assettag/internal/httpx"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler handles dashboard API
type Handler struct {
	db *gorm.DB
}

// NewHandler creates a new dashboard handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// Summary handles GET /api/v1/dashboard/summary.
// The summary is recomputed from current state on every request.
func (h *Handler) Summary(c *gin.Context) {
	summary, err := dashboard.Compute(h.db)
	if err != nil {
		httpx.FailErr(c, httpx.ErrDatabaseError("failed to compute summary", err))
		return
	}

	httpx.OK(c, summary)
}
