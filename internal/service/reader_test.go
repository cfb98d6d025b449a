package service

import (
	"strings"
	"testing"
)

func TestUserSummary(t *testing.T) {
	f := newFixture(t)
	u := f.seedUser(t, "casey")
	if err := f.users.AddPoints(u.ID, 25); err != nil {
		t.Fatalf("add points: %v", err)
	}

	s, err := f.reader.UserSummary(u.ID)
	if err != nil {
		t.Fatalf("UserSummary: %v", err)
	}
	if s.Handle != "casey" || s.Points != 25 {
		t.Errorf("summary = %+v", s)
	}
	if s.AvatarInitial != "C" {
		t.Errorf("AvatarInitial = %q, want C", s.AvatarInitial)
	}
	if !strings.Contains(s.AvatarURL, "gravatar.com") {
		t.Errorf("AvatarURL = %q, want gravatar fallback", s.AvatarURL)
	}

	byHandle, err := f.reader.UserSummaryByHandle("casey")
	if err != nil {
		t.Fatalf("UserSummaryByHandle: %v", err)
	}
	if byHandle.UserID != u.ID {
		t.Errorf("UserID = %d, want %d", byHandle.UserID, u.ID)
	}
}

func TestUserSummaryUnknownUser(t *testing.T) {
	f := newFixture(t)
	if _, err := f.reader.UserSummary(99); err == nil {
		t.Error("unknown user should return an error")
	}
}
