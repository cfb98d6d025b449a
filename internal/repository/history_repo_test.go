package repository

import (
	"testing"
	"time"

	"pointtrail/internal/domain"
	"pointtrail/internal/models"
)

func TestListForUserOrdersNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewHistoryRepository(db)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedEntry(t, db, 1, domain.ActivityQuestionPosted, 5, base)
	seedEntry(t, db, 1, domain.ActivityAnswerPosted, 10, base.Add(time.Hour))
	seedEntry(t, db, 1, domain.ActivityCommentPosted, 0, base.Add(2*time.Hour))
	seedEntry(t, db, 2, domain.ActivityQuestionPosted, 5, base.Add(3*time.Hour))

	entries, err := repo.ListForUser(1, 0)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	want := []string{
		domain.ActivityCommentPosted,
		domain.ActivityAnswerPosted,
		domain.ActivityQuestionPosted,
	}
	for i, w := range want {
		if entries[i].ActivityType != w {
			t.Errorf("entries[%d].ActivityType = %q, want %q", i, entries[i].ActivityType, w)
		}
	}
}

func TestListForUserTieBreaksOnID(t *testing.T) {
	db := newTestDB(t)
	repo := NewHistoryRepository(db)

	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	first := seedEntry(t, db, 1, domain.ActivityQuestionPosted, 5, ts)
	second := seedEntry(t, db, 1, domain.ActivityAnswerPosted, 10, ts)

	entries, err := repo.ListForUser(1, 0)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].ID != second.ID || entries[1].ID != first.ID {
		t.Errorf("equal timestamps should list in reverse insertion order, got ids [%d %d]", entries[0].ID, entries[1].ID)
	}
}

func TestListForUserLimit(t *testing.T) {
	db := newTestDB(t)
	repo := NewHistoryRepository(db)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedEntry(t, db, 1, domain.ActivityQuestionPosted, 5, base.Add(time.Duration(i)*time.Minute))
	}

	entries, err := repo.ListForUser(1, 2)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
}

func TestListForUserEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewHistoryRepository(db)

	entries, err := repo.ListForUser(42, 0)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries for unknown user, want 0", len(entries))
	}
}

func TestEvictOldestRemovesOldestRows(t *testing.T) {
	db := newTestDB(t)
	repo := NewHistoryRepository(db)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var ids []uint
	for i := 0; i < 5; i++ {
		e := seedEntry(t, db, 1, domain.ActivityQuestionPosted, 5, base.Add(time.Duration(i)*time.Minute))
		ids = append(ids, e.ID)
	}
	other := seedEntry(t, db, 2, domain.ActivityQuestionPosted, 5, base)

	if err := repo.EvictOldest(1, 2); err != nil {
		t.Fatalf("EvictOldest: %v", err)
	}
	entries, err := repo.ListForUser(1, 0)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries after eviction, want 3", len(entries))
	}
	for _, e := range entries {
		if e.ID == ids[0] || e.ID == ids[1] {
			t.Errorf("oldest entry %d survived eviction", e.ID)
		}
	}

	// Other users are untouched.
	var count int64
	db.Model(&models.PointHistory{}).Where("user_id = ?", other.UserID).Count(&count)
	if count != 1 {
		t.Errorf("other user's entries = %d, want 1", count)
	}
}

func TestEvictOldestZeroIsNoop(t *testing.T) {
	db := newTestDB(t)
	repo := NewHistoryRepository(db)

	seedEntry(t, db, 1, domain.ActivityQuestionPosted, 5, time.Now())
	if err := repo.EvictOldest(1, 0); err != nil {
		t.Fatalf("EvictOldest(0): %v", err)
	}
	count, err := repo.CountForUser(1)
	if err != nil {
		t.Fatalf("CountForUser: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestCleanupBefore(t *testing.T) {
	db := newTestDB(t)
	repo := NewHistoryRepository(db)

	cutoff := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	seedEntry(t, db, 1, domain.ActivityQuestionPosted, 5, cutoff.Add(-48*time.Hour))
	seedEntry(t, db, 2, domain.ActivityAnswerPosted, 10, cutoff.Add(-time.Hour))
	kept := seedEntry(t, db, 1, domain.ActivityCommentPosted, 0, cutoff.Add(time.Hour))

	removed, err := repo.CleanupBefore(cutoff)
	if err != nil {
		t.Fatalf("CleanupBefore: %v", err)
	}
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
	var remaining []models.PointHistory
	db.Find(&remaining)
	if len(remaining) != 1 || remaining[0].ID != kept.ID {
		t.Errorf("remaining entries = %v, want only id %d", remaining, kept.ID)
	}
}

func TestResetDeletesEverything(t *testing.T) {
	db := newTestDB(t)
	repo := NewHistoryRepository(db)

	seedEntry(t, db, 1, domain.ActivityQuestionPosted, 5, time.Now())
	seedEntry(t, db, 2, domain.ActivityAnswerPosted, 10, time.Now())

	if err := repo.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	var count int64
	db.Model(&models.PointHistory{}).Count(&count)
	if count != 0 {
		t.Errorf("entries after reset = %d, want 0", count)
	}
}

func TestStats(t *testing.T) {
	db := newTestDB(t)
	repo := NewHistoryRepository(db)

	oldest := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	seedEntry(t, db, 1, domain.ActivityQuestionPosted, 5, oldest)
	seedEntry(t, db, 1, domain.ActivityAnswerPosted, 10, oldest.Add(time.Hour))
	seedEntry(t, db, 2, domain.ActivityQuestionPosted, 5, oldest.Add(2*time.Hour))

	s, err := repo.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if s.TotalActivities != 3 {
		t.Errorf("TotalActivities = %d, want 3", s.TotalActivities)
	}
	if s.TotalUsers != 2 {
		t.Errorf("TotalUsers = %d, want 2", s.TotalUsers)
	}
	if s.OldestLog == nil || !s.OldestLog.Equal(oldest) {
		t.Errorf("OldestLog = %v, want %v", s.OldestLog, oldest)
	}
}

func TestStatsEmptyLedger(t *testing.T) {
	db := newTestDB(t)
	repo := NewHistoryRepository(db)

	s, err := repo.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if s.TotalActivities != 0 || s.TotalUsers != 0 {
		t.Errorf("stats on empty ledger = %+v, want zeros", s)
	}
	if s.OldestLog != nil {
		t.Errorf("OldestLog = %v, want nil", s.OldestLog)
	}
}
