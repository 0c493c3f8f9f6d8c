package session

import "time"

// UserProfile is one row of the fixed user directory. Keyed by username in
// the directory; UserID is the externally visible identity.
type UserProfile struct {
	UserID      string     `json:"userId"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FullName    string     `json:"fullName"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt"`
}

// Session binds an opaque token to a user identity and an expiry instant.
type Session struct {
	UserID    string
	ExpiresAt time.Time
}

// LoginResult is the outcome of Authenticate. Failures are reported here,
// never as errors; callers map Success to a transport status.
type LoginResult struct {
	Success  bool   `json:"success"`
	Token    string `json:"token,omitempty"`
	Username string `json:"username,omitempty"`
	UserID   string `json:"userId,omitempty"`
	Message  string `json:"message"`
}
