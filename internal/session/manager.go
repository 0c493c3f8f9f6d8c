package session

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// TTL is fixed: a session expires 24h after issue and is not renewed by
// activity.
const sessionTTL = 24 * time.Hour

// Manager issues, validates, and revokes opaque bearer tokens, and owns the
// small fixed user directory. One instance is shared per process.
//
// The user directory and the session map are locked independently; no
// operation holds both locks at the same time.
type Manager struct {
	log    *zap.Logger
	verify PasswordVerifier
	ttl    time.Duration
	now    func() time.Time

	usersMu sync.RWMutex
	users   map[string]UserProfile // by username

	sessionsMu sync.Mutex
	sessions   map[string]Session // by token
}

func NewManager(verify PasswordVerifier, log *zap.Logger) *Manager {
	m := &Manager{
		log:      log,
		verify:   verify,
		ttl:      sessionTTL,
		now:      time.Now,
		sessions: make(map[string]Session),
	}
	m.users = seedUsers(m.now())
	return m
}

// Authenticate checks the credential and, on success, issues a fresh token
// with a 24h expiry and stamps the user's last login. Each call issues its
// own session; concurrent sessions per user are allowed.
func (m *Manager) Authenticate(username, password string) LoginResult {
	m.usersMu.RLock()
	u, ok := m.users[username]
	m.usersMu.RUnlock()

	if !ok || !m.verify(username, password) {
		m.log.Warn("failed login attempt", zap.String("username", username))
		return LoginResult{Success: false, Message: "Invalid username or password"}
	}

	token := newToken(u.UserID)
	now := m.now().UTC()

	m.sessionsMu.Lock()
	m.sessions[token] = Session{UserID: u.UserID, ExpiresAt: now.Add(m.ttl)}
	m.sessionsMu.Unlock()

	m.usersMu.Lock()
	u = m.users[username]
	t := now
	u.LastLoginAt = &t
	m.users[username] = u
	m.usersMu.Unlock()

	m.log.Info("login successful",
		zap.String("username", u.Username),
		zap.String("user_id", u.UserID),
	)

	return LoginResult{
		Success:  true,
		Token:    token,
		Username: u.Username,
		UserID:   u.UserID,
		Message:  "Login successful",
	}
}

// ValidateSession fails closed: empty or unknown tokens are invalid, and a
// session past its expiry is removed on this read so the token can never be
// revalidated. A valid session is not renewed.
func (m *Manager) ValidateSession(token string) (string, bool) {
	if token == "" {
		return "", false
	}

	m.sessionsMu.Lock()
	defer m.sessionsMu.Unlock()

	s, ok := m.sessions[token]
	if !ok {
		return "", false
	}

	if m.now().After(s.ExpiresAt) {
		delete(m.sessions, token)
		m.log.Warn("expired session", zap.String("user_id", s.UserID))
		return "", false
	}

	return s.UserID, true
}

// Profile returns the directory entry with the given userId, if any. The
// directory is tiny and keyed by username, so this is a linear scan.
func (m *Manager) Profile(userID string) (UserProfile, bool) {
	m.usersMu.RLock()
	defer m.usersMu.RUnlock()

	for _, u := range m.users {
		if u.UserID == userID {
			return u, true
		}
	}
	return UserProfile{}, false
}

// UpdateProfile overwrites the full name and email of the user with the
// given userId. Authorization (may the caller touch this profile?) is the
// caller's job, not the manager's.
func (m *Manager) UpdateProfile(userID, fullName, email string) bool {
	m.usersMu.Lock()
	defer m.usersMu.Unlock()

	for username, u := range m.users {
		if u.UserID != userID {
			continue
		}
		u.FullName = fullName
		u.Email = email
		m.users[username] = u
		m.log.Info("profile updated", zap.String("user_id", userID))
		return true
	}

	m.log.Warn("profile update for unknown user", zap.String("user_id", userID))
	return false
}

// Logout removes the session. Unknown tokens report false.
func (m *Manager) Logout(token string) bool {
	if token == "" {
		return false
	}

	m.sessionsMu.Lock()
	defer m.sessionsMu.Unlock()

	s, ok := m.sessions[token]
	if !ok {
		return false
	}

	delete(m.sessions, token)
	m.log.Info("user logged out", zap.String("user_id", s.UserID))
	return true
}
