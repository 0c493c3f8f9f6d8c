package session

import (
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestManager() *Manager {
	return NewManager(DevVerifier("password"), zap.NewNop())
}

func TestAuthenticate(t *testing.T) {
	m := newTestManager()

	res := m.Authenticate("demo", "password")
	if !res.Success {
		t.Fatalf("expected success, got message=%q", res.Message)
	}
	if res.UserID != "user-001" || res.Username != "demo" {
		t.Fatalf("identity = %s/%s", res.UserID, res.Username)
	}
	if res.Token == "" {
		t.Fatalf("empty token")
	}
	if !strings.HasPrefix(res.Token, "user-001-") {
		t.Fatalf("token %q missing userId prefix", res.Token)
	}

	p, ok := m.Profile("user-001")
	if !ok {
		t.Fatalf("profile missing after login")
	}
	if p.LastLoginAt == nil {
		t.Fatalf("lastLoginAt not stamped on login")
	}
}

func TestAuthenticateFailures(t *testing.T) {
	m := newTestManager()

	if res := m.Authenticate("demo", "wrong"); res.Success {
		t.Fatalf("wrong password accepted")
	} else if res.Token != "" {
		t.Fatalf("failed login returned token %q", res.Token)
	}

	if res := m.Authenticate("nouser", "x"); res.Success {
		t.Fatalf("unknown user accepted")
	}

	// No session may exist after failed logins.
	m.sessionsMu.Lock()
	n := len(m.sessions)
	m.sessionsMu.Unlock()
	if n != 0 {
		t.Fatalf("failed logins created %d sessions", n)
	}
}

func TestValidateLogoutRoundTrip(t *testing.T) {
	m := newTestManager()

	res := m.Authenticate("demo", "password")
	if !res.Success {
		t.Fatalf("login failed: %s", res.Message)
	}

	userID, ok := m.ValidateSession(res.Token)
	if !ok || userID != "user-001" {
		t.Fatalf("validate = (%q, %v)", userID, ok)
	}

	p, ok := m.Profile(userID)
	if !ok || p.Username != "demo" {
		t.Fatalf("profile = (%+v, %v)", p, ok)
	}

	if !m.Logout(res.Token) {
		t.Fatalf("logout failed for live token")
	}
	if _, ok := m.ValidateSession(res.Token); ok {
		t.Fatalf("token valid after logout")
	}
	if m.Logout(res.Token) {
		t.Fatalf("second logout succeeded")
	}
}

func TestValidateFailsClosed(t *testing.T) {
	m := newTestManager()

	if _, ok := m.ValidateSession(""); ok {
		t.Fatalf("empty token validated")
	}
	if _, ok := m.ValidateSession("user-001-deadbeef"); ok {
		t.Fatalf("made-up token validated")
	}
}

func TestSessionExpiry(t *testing.T) {
	m := newTestManager()

	base := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return base }

	res := m.Authenticate("demo", "password")
	if !res.Success {
		t.Fatalf("login failed: %s", res.Message)
	}

	// Just inside the 24h window.
	m.now = func() time.Time { return base.Add(24*time.Hour - time.Second) }
	if _, ok := m.ValidateSession(res.Token); !ok {
		t.Fatalf("token invalid before expiry")
	}

	// Past the window: invalid now and forever after, even if the clock
	// were to move back.
	m.now = func() time.Time { return base.Add(24*time.Hour + time.Second) }
	if _, ok := m.ValidateSession(res.Token); ok {
		t.Fatalf("token valid after expiry")
	}

	m.now = func() time.Time { return base }
	if _, ok := m.ValidateSession(res.Token); ok {
		t.Fatalf("expired token resurrected")
	}
}

func TestConcurrentLoginsUniqueTokens(t *testing.T) {
	m := newTestManager()

	const n = 50
	tokens := make(chan string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := m.Authenticate("demo", "password")
			if res.Success {
				tokens <- res.Token
			}
		}()
	}
	wg.Wait()
	close(tokens)

	seen := make(map[string]bool)
	count := 0
	for tok := range tokens {
		if seen[tok] {
			t.Fatalf("duplicate token %q", tok)
		}
		seen[tok] = true
		count++
	}
	if count != n {
		t.Fatalf("logins succeeded = %d, want %d", count, n)
	}
}

func TestUpdateProfile(t *testing.T) {
	m := newTestManager()

	if m.UpdateProfile("user-999", "Nobody", "no@example.com") {
		t.Fatalf("update succeeded for unknown userId")
	}

	if !m.UpdateProfile("user-003", "Renamed User", "renamed@example.com") {
		t.Fatalf("update failed for known userId")
	}

	p, ok := m.Profile("user-003")
	if !ok {
		t.Fatalf("profile missing after update")
	}
	if p.FullName != "Renamed User" || p.Email != "renamed@example.com" {
		t.Fatalf("update not applied: %+v", p)
	}
	if p.Username != "test" || p.UserID != "user-003" {
		t.Fatalf("update changed identity fields: %+v", p)
	}
}
