package valueobjects

import "fmt"

const (
	// MinPasswordLength is the minimum accepted raw password length.
	MinPasswordLength = 6
	// MaxPasswordLength is the bcrypt input limit.
	MaxPasswordLength = 72
)

// Password holds a raw password that passed policy validation. It exists only
// in memory on the way to the hasher and is never persisted or logged.
type Password struct {
	value string
}

// NewPassword validates the raw password against the credential policy.
func NewPassword(plain string) (*Password, error) {
	if len(plain) < MinPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters long", MinPasswordLength)
	}
	if len(plain) > MaxPasswordLength {
		return nil, fmt.Errorf("password must not exceed %d characters", MaxPasswordLength)
	}
	return &Password{value: plain}, nil
}

// String returns the raw password for hashing.
func (p *Password) String() string {
	return p.value
}
