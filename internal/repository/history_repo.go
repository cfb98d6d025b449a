package repository

import (
	"time"

	"pointtrail/internal/models"

	"gorm.io/gorm"
)

type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Ready reports whether the ledger table has been provisioned. Read paths
// degrade to "no history" and write paths to a no-op while it is false
// (first install, migration race).
func (r *HistoryRepository) Ready() bool {
	return r.db.Migrator().HasTable(&models.PointHistory{})
}

func (r *HistoryRepository) Insert(entry *models.PointHistory) error {
	return r.db.Create(entry).Error
}

func (r *HistoryRepository) CountForUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.PointHistory{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// EvictOldest removes the n oldest entries for a user. Selecting IDs first
// keeps the delete portable across engines that lack DELETE ... ORDER BY LIMIT;
// the count-evict-insert window is an accepted race (the cap is a storage
// economy measure, not a correctness invariant).
func (r *HistoryRepository) EvictOldest(userID uint, n int) error {
	if n <= 0 {
		return nil
	}
	var ids []uint
	err := r.db.Model(&models.PointHistory{}).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Limit(n).
		Pluck("id", &ids).Error
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	return r.db.Delete(&models.PointHistory{}, ids).Error
}

// ListForUser returns a user's entries most recent first. Entries with equal
// timestamps fall back to reverse insertion order. limit <= 0 means the full
// history.
func (r *HistoryRepository) ListForUser(userID uint, limit int) ([]models.PointHistory, error) {
	q := r.db.Where("user_id = ?", userID).Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var entries []models.PointHistory
	err := q.Find(&entries).Error
	return entries, err
}

// CleanupBefore removes all entries older than the cutoff, for every user.
func (r *HistoryRepository) CleanupBefore(cutoff time.Time) (int64, error) {
	res := r.db.Where("created_at < ?", cutoff).Delete(&models.PointHistory{})
	return res.RowsAffected, res.Error
}

// Reset permanently deletes all ledger data.
func (r *HistoryRepository) Reset() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.PointHistory{}).Error
}

type HistoryStats struct {
	TotalActivities int64      `json:"total_activities"`
	TotalUsers      int64      `json:"total_users"`
	OldestLog       *time.Time `json:"oldest_log"`
}

func (r *HistoryRepository) Stats() (*HistoryStats, error) {
	var s HistoryStats
	if !r.Ready() {
		return &s, nil
	}
	if err := r.db.Model(&models.PointHistory{}).Count(&s.TotalActivities).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.PointHistory{}).Distinct("user_id").Count(&s.TotalUsers).Error; err != nil {
		return nil, err
	}
	if s.TotalActivities > 0 {
		var oldest time.Time
		err := r.db.Model(&models.PointHistory{}).Select("MIN(created_at)").Scan(&oldest).Error
		if err == nil && !oldest.IsZero() {
			s.OldestLog = &oldest
		}
	}
	return &s, nil
}
