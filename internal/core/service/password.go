package service

import "golang.org/x/crypto/bcrypt"

// PasswordHasher wraps bcrypt with a fixed cost. bcrypt salts every hash,
// so two hashes of the same input differ; equality checks must always go
// through Verify, never through the raw hash bytes.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher at bcrypt's default cost.
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: bcrypt.DefaultCost}
}

// Hash produces a salted one-way hash of the plaintext.
func (h *PasswordHasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plain matches the stored hash.
func (h *PasswordHasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
