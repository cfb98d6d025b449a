package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"pointtrail/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ExportHandler struct {
	exporter *service.Exporter
}

func NewExportHandler(exporter *service.Exporter) *ExportHandler {
	return &ExportHandler{exporter: exporter}
}

// Export handles GET /users/:handle/point-history/export?format=csv|json.
// Same visibility as the timeline: the handle's owner and admins.
func (h *ExportHandler) Export(c *gin.Context) {
	handle := c.Param("handle")
	if !canViewHandle(c, handle) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	format := c.DefaultQuery("format", "json")
	if format != "csv" && format != "json" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv or json"})
		return
	}

	data, err := h.exporter.Build(handle)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}

	filename := fmt.Sprintf("point-history-%s-%s.%s", data.UserHandle, time.Now().Format("2006-01-02"), format)
	if format == "json" {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.JSON(http.StatusOK, data)
		return
	}
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)
	if err := data.WriteCSV(c.Writer); err != nil {
		// Headers are already out; nothing more useful to send.
		_ = c.Error(err)
	}
}
