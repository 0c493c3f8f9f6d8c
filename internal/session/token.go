package session

import (
	"strings"

	"github.com/google/uuid"
)

// newToken returns an opaque bearer token. The random part carries the full
// 128 bits of a v4 UUID drawn from crypto/rand, so tokens are unguessable
// and collide only with negligible probability. The userId prefix is
// cosmetic and carries no trust.
func newToken(userID string) string {
	return userID + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
