package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"pointtrail/internal/domain"
	"pointtrail/internal/models"
	"pointtrail/internal/repository"
	"pointtrail/internal/service"
	"pointtrail/pkg/avatar"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminHandler serves the point history viewer and plugin administration.
// Every route is mounted behind AuthRequired + AdminRequired.
type AdminHandler struct {
	historyRepo *repository.HistoryRepository
	settingRepo *repository.SettingRepository
	userRepo    *repository.UserRepository
	reader      *service.Reader
	opts        *service.Options
}

func NewAdminHandler(
	historyRepo *repository.HistoryRepository,
	settingRepo *repository.SettingRepository,
	userRepo *repository.UserRepository,
	reader *service.Reader,
	opts *service.Options,
) *AdminHandler {
	return &AdminHandler{
		historyRepo: historyRepo,
		settingRepo: settingRepo,
		userRepo:    userRepo,
		reader:      reader,
		opts:        opts,
	}
}

// SearchUsers handles GET /admin/users?search= for the viewer's user picker.
// Without a query it returns the capped directory for the dropdown.
func (h *AdminHandler) SearchUsers(c *gin.Context) {
	var (
		users []models.User
		err   error
	)
	if q := c.Query("search"); q != "" {
		users, err = h.userRepo.Search(q)
	} else {
		users, err = h.userRepo.Directory()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list users"})
		return
	}
	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, gin.H{
			"userid":         u.ID,
			"handle":         u.Handle,
			"points":         u.Points,
			"avatar_url":     avatar.URL(u.AvatarURL, u.Email, 24),
			"avatar_initial": avatar.Initial(u.Handle),
		})
	}
	c.JSON(http.StatusOK, gin.H{"users": out})
}

// UserHistory handles GET /admin/users/:id/point-history: one user's full
// timeline plus their profile summary.
func (h *AdminHandler) UserHistory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	summary, err := h.reader.UserSummary(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load user"})
		return
	}
	entries, err := h.reader.ListForUser(uint(id), 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load point history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": summary, "history": entries})
}

// GetSettings handles GET /admin/settings.
func (h *AdminHandler) GetSettings(c *gin.Context) {
	stored, err := h.settingRepo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load settings"})
		return
	}
	// Defaults first so unset keys still appear in the form.
	out := make(map[string]string, len(domain.SettingDefaults))
	for k, v := range domain.SettingDefaults {
		out[k] = v
	}
	for _, s := range stored {
		out[s.Key] = s.Value
	}
	c.JSON(http.StatusOK, gin.H{"settings": out})
}

// SaveSettings handles PUT /admin/settings. Only known setting keys are
// accepted; anything else in the payload is rejected.
func (h *AdminHandler) SaveSettings(c *gin.Context) {
	var req map[string]string
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no settings provided"})
		return
	}
	for k := range req {
		if _, known := domain.SettingDefaults[k]; !known {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown setting: " + k})
			return
		}
	}
	for k, v := range req {
		if err := h.settingRepo.Set(k, v); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save settings"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}

// Stats handles GET /admin/stats: viewer dashboard numbers.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.historyRepo.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Cleanup handles POST /admin/cleanup: removes entries older than the
// configured retention age. Explicitly admin-triggered, never a timer.
func (h *AdminHandler) Cleanup(c *gin.Context) {
	days := h.opts.CleanupDays()
	if days <= 0 {
		c.JSON(http.StatusOK, gin.H{"removed": 0, "note": "cleanup disabled"})
		return
	}
	cutoff := time.Now().AddDate(0, 0, -days)
	removed, err := h.historyRepo.CleanupBefore(cutoff)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// Reset handles POST /admin/reset: permanently deletes all ledger data and
// restores default settings.
func (h *AdminHandler) Reset(c *gin.Context) {
	if err := h.historyRepo.Reset(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reset failed"})
		return
	}
	if err := h.settingRepo.ResetToDefaults(domain.SettingDefaults); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "settings reset failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reset": true})
}
