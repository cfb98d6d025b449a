package service

import (
	"testing"
	"time"

	"pointtrail/internal/domain"
	"pointtrail/internal/models"
	"pointtrail/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Post{}, &models.PointHistory{}, &models.SystemSetting{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type fixture struct {
	db       *gorm.DB
	history  *repository.HistoryRepository
	users    *repository.UserRepository
	posts    *repository.PostRepository
	settings *repository.SettingRepository
	opts     *Options
	recorder *Recorder
	reader   *Reader
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	settings := repository.NewSettingRepository(db)
	if err := settings.SeedDefaults(domain.SettingDefaults); err != nil {
		t.Fatalf("seed settings: %v", err)
	}
	history := repository.NewHistoryRepository(db)
	users := repository.NewUserRepository(db)
	posts := repository.NewPostRepository(db)
	opts := NewOptions(settings)
	return &fixture{
		db:       db,
		history:  history,
		users:    users,
		posts:    posts,
		settings: settings,
		opts:     opts,
		recorder: NewRecorder(history, users, posts, opts, nil),
		reader:   NewReader(history, users),
	}
}

func (f *fixture) seedUser(t *testing.T, handle string) *models.User {
	t.Helper()
	u := &models.User{Handle: handle, Email: handle + "@example.com", Role: domain.RoleUser}
	if err := f.users.Create(u); err != nil {
		t.Fatalf("seed user %s: %v", handle, err)
	}
	return u
}

func (f *fixture) seedPost(t *testing.T, authorID uint, postType string) *models.Post {
	t.Helper()
	p := &models.Post{UserID: authorID, Type: postType, CreatedAt: time.Now()}
	if err := f.posts.Create(p); err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return p
}

func (f *fixture) setSetting(t *testing.T, key, value string) {
	t.Helper()
	if err := f.settings.Set(key, value); err != nil {
		t.Fatalf("set %s: %v", key, err)
	}
}

func (f *fixture) entriesFor(t *testing.T, userID uint) []models.PointHistory {
	t.Helper()
	entries, err := f.reader.ListForUser(userID, 0)
	if err != nil {
		t.Fatalf("list for user %d: %v", userID, err)
	}
	return entries
}
