package password

import (
	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes and verifies credentials with bcrypt. The cost is fixed at
// construction time so every process hashes with the same work factor.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)

	if err != nil {
		return "", err
	}

	return string(digest), nil
}

// Verify reports whether plain reproduces digest. A malformed digest is
// treated as a mismatch, never an error.
func (h *Hasher) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
