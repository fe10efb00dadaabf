// Package auth holds the credential codec: bcrypt hashing of plaintext
// passwords and comparison of a candidate against a stored hash.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrHash is returned when a hash cannot be produced. The cause is wrapped.
var ErrHash = errors.New("auth: hash password")

// Hasher hashes and verifies passwords with a fixed bcrypt cost.
type Hasher struct {
	cost int
}

// NewHasher clamps cost into bcrypt's accepted range.
func NewHasher(cost int) *Hasher {
	switch {
	case cost < bcrypt.MinCost:
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}
	return &Hasher{cost: cost}
}

// HashPassword returns a salted bcrypt hash of plain.
func (h *Hasher) HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHash, err)
	}
	return string(b), nil
}

// CheckPassword reports whether plain matches hash. The cost is read from
// hash, and a malformed hash never matches.
func (h *Hasher) CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
