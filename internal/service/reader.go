package service

import (
	"pointtrail/internal/models"
	"pointtrail/internal/repository"
	"pointtrail/pkg/avatar"
)

// Reader is the ledger read side: per-user timelines and profile summaries.
type Reader struct {
	history *repository.HistoryRepository
	users   *repository.UserRepository
}

func NewReader(history *repository.HistoryRepository, users *repository.UserRepository) *Reader {
	return &Reader{history: history, users: users}
}

// ListForUser returns the user's entries most recent first. limit <= 0 means
// the full history. An unprovisioned ledger reads as empty, never as an error.
func (s *Reader) ListForUser(userID uint, limit int) ([]models.PointHistory, error) {
	if !s.history.Ready() {
		return []models.PointHistory{}, nil
	}
	entries, err := s.history.ListForUser(userID, limit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.PointHistory{}
	}
	return entries, nil
}

// UserSummary is the profile header shown next to a timeline.
type UserSummary struct {
	UserID        uint   `json:"userid"`
	Handle        string `json:"handle"`
	Points        int    `json:"points"`
	Level         int    `json:"level"`
	AvatarURL     string `json:"avatar_url"`
	AvatarInitial string `json:"avatar_initial"`
}

func (s *Reader) UserSummary(userID uint) (*UserSummary, error) {
	u, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return summarize(u), nil
}

func (s *Reader) UserSummaryByHandle(handle string) (*UserSummary, error) {
	u, err := s.users.GetByHandle(handle)
	if err != nil {
		return nil, err
	}
	return summarize(u), nil
}

func summarize(u *models.User) *UserSummary {
	return &UserSummary{
		UserID:        u.ID,
		Handle:        u.Handle,
		Points:        u.Points,
		Level:         u.Level,
		AvatarURL:     avatar.URL(u.AvatarURL, u.Email, 64),
		AvatarInitial: avatar.Initial(u.Handle),
	}
}
