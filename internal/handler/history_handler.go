package handler

import (
	"errors"
	"net/http"
	"strconv"

	"pointtrail/internal/domain"
	"pointtrail/internal/middleware"
	"pointtrail/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HistoryHandler struct {
	reader *service.Reader
	opts   *service.Options
}

func NewHistoryHandler(reader *service.Reader, opts *service.Options) *HistoryHandler {
	return &HistoryHandler{reader: reader, opts: opts}
}

// Widget handles GET /me/point-history: the compact recent-activity view for
// the authenticated user, honoring the widget settings.
func (h *HistoryHandler) Widget(c *gin.Context) {
	if !h.opts.WidgetEnabled() {
		c.JSON(http.StatusOK, gin.H{"widget_enabled": false, "history": []any{}})
		return
	}
	userID := middleware.GetUserID(c)
	limit := h.opts.WidgetLimit()
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n < limit {
			limit = n
		}
	}
	entries, err := h.reader.ListForUser(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load point history"})
		return
	}
	summary, err := h.reader.UserSummary(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"widget_enabled": true,
		"user":           summary,
		"history":        entries,
	})
}

// Timeline handles GET /users/:handle/point-history: the full ordered ledger
// for one user. Visible to that user and to admins.
func (h *HistoryHandler) Timeline(c *gin.Context) {
	handle := c.Param("handle")
	if !canViewHandle(c, handle) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	summary, err := h.reader.UserSummaryByHandle(handle)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load user"})
		return
	}
	entries, err := h.reader.ListForUser(summary.UserID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load point history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":    summary,
		"history": entries,
	})
}

// canViewHandle allows the owner of the handle and admins.
func canViewHandle(c *gin.Context, handle string) bool {
	if middleware.GetRole(c) == domain.RoleAdmin {
		return true
	}
	return middleware.GetHandle(c) == handle
}
