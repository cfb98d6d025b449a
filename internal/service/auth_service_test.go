package service

import (
	"errors"
	"testing"
	"time"

	"pointtrail/config"
	"pointtrail/internal/auth"
)

func testJWTConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			AccessSecret:  "test-access-secret",
			RefreshSecret: "test-refresh-secret",
			AccessExpiry:  time.Hour,
			RefreshExpiry: time.Hour,
			Issuer:        "pointtrail-test",
		},
	}
}

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	cfg := testJWTConfig()
	svc := NewAuthService(cfg, f.users)

	u, access, refresh, err := svc.Register("casey", "casey@example.com", "supersecret")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.ID == 0 || access == "" || refresh == "" {
		t.Fatalf("register returned u=%+v access=%q refresh=%q", u, access, refresh)
	}
	claims, err := auth.ParseAccessToken(&cfg.JWT, access)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if claims.UserID != u.ID || claims.Handle != "casey" {
		t.Errorf("claims = %+v", claims)
	}
	if u.PasswordHash == "supersecret" {
		t.Error("password stored in the clear")
	}

	if _, _, _, err := svc.Login("casey@example.com", "supersecret"); err != nil {
		t.Errorf("Login with correct password: %v", err)
	}
	if _, _, _, err := svc.Login("casey@example.com", "wrong"); !errors.Is(err, ErrInvalidCreds) {
		t.Errorf("Login with wrong password err = %v, want ErrInvalidCreds", err)
	}
	if _, _, _, err := svc.Login("ghost@example.com", "supersecret"); !errors.Is(err, ErrInvalidCreds) {
		t.Errorf("Login for unknown email err = %v, want ErrInvalidCreds", err)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	f := newFixture(t)
	svc := NewAuthService(testJWTConfig(), f.users)

	if _, _, _, err := svc.Register("casey", "casey@example.com", "supersecret"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, _, _, err := svc.Register("other", "casey@example.com", "supersecret"); !errors.Is(err, ErrEmailExists) {
		t.Errorf("duplicate email err = %v, want ErrEmailExists", err)
	}
	if _, _, _, err := svc.Register("casey", "new@example.com", "supersecret"); !errors.Is(err, ErrHandleExists) {
		t.Errorf("duplicate handle err = %v, want ErrHandleExists", err)
	}
}
