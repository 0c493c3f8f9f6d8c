package session

import "time"

// seedUsers builds the fixed three-user directory. CreatedAt offsets are
// relative to process start, matching the demo dataset.
func seedUsers(now time.Time) map[string]UserProfile {
	return map[string]UserProfile{
		"demo": {
			UserID:    "user-001",
			Username:  "demo",
			Email:     "demo@example.com",
			FullName:  "Demo User",
			CreatedAt: now.AddDate(0, 0, -30),
		},
		"admin": {
			UserID:    "user-002",
			Username:  "admin",
			Email:     "admin@example.com",
			FullName:  "Admin User",
			CreatedAt: now.AddDate(0, 0, -60),
		},
		"test": {
			UserID:    "user-003",
			Username:  "test",
			Email:     "test@example.com",
			FullName:  "Test User",
			CreatedAt: now.AddDate(0, 0, -15),
		},
	}
}
