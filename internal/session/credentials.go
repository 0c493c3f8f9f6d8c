package session

import "golang.org/x/crypto/bcrypt"

// PasswordVerifier decides whether a password is acceptable for a username.
// The manager looks the user up first; the verifier only judges the secret.
type PasswordVerifier func(username, password string) bool

// BcryptVerifier accepts any password matching the given bcrypt hash,
// regardless of username.
func BcryptVerifier(hash []byte) PasswordVerifier {
	return func(_, password string) bool {
		return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
	}
}

// DevVerifier hashes the shared development credential once and accepts it
// for every seeded user. It exists so the credential check stays pluggable
// while the demo keeps its single-password behavior.
func DevVerifier(password string) PasswordVerifier {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		// GenerateFromPassword only fails on an invalid cost.
		panic(err)
	}
	return BcryptVerifier(hash)
}
