package credential

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"studentdir/internal/domain"
)

// Cost bounds accepted by NewBcrypt.
const (
	MinCost     = bcrypt.MinCost
	MaxCost     = bcrypt.MaxCost
	DefaultCost = bcrypt.DefaultCost
)

// Bcrypt implements domain.CredentialHasher with a fixed work factor.
type Bcrypt struct {
	cost int
}

// NewBcrypt returns a hasher using cost, which must lie in [MinCost, MaxCost].
func NewBcrypt(cost int) (*Bcrypt, error) {
	if cost < MinCost || cost > MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, MinCost, MaxCost)
	}
	return &Bcrypt{cost: cost}, nil
}

// Cost returns the configured work factor.
func (b *Bcrypt) Cost() int { return b.cost }

// Hash returns the bcrypt hash of password.
func (b *Bcrypt) Hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domain.ErrPasswordTooLong
	}
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether password matches hash exactly. bcrypt ignores input
// past MaxPasswordBytes, so longer candidates never match.
func (b *Bcrypt) Verify(hash, password string) bool {
	if len(password) > domain.MaxPasswordBytes || hash == domain.LockedCredential {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Compile-time assertion that Bcrypt implements domain.CredentialHasher.
var _ domain.CredentialHasher = (*Bcrypt)(nil)
