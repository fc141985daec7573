package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email is a validated, normalized email address. It doubles as the natural
// account key, so normalization (lowercase, trimmed) matters for uniqueness.
type Email struct {
	value string
}

// NewEmail normalizes and validates an email address.
func NewEmail(value string) (*Email, error) {
	normalized := strings.TrimSpace(strings.ToLower(value))

	if normalized == "" {
		return nil, fmt.Errorf("email cannot be empty")
	}
	if len(normalized) > 255 {
		return nil, fmt.Errorf("email cannot exceed 255 characters")
	}
	if !emailRegex.MatchString(normalized) {
		return nil, fmt.Errorf("invalid email format: %s", value)
	}

	return &Email{value: normalized}, nil
}

// String returns the normalized address.
func (e *Email) String() string {
	return e.value
}

// Equals checks if two email objects are equal
func (e *Email) Equals(other *Email) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.value == other.value
}

// Domain returns the domain part of the email
func (e *Email) Domain() string {
	parts := strings.Split(e.value, "@")
	if len(parts) == 2 {
		return parts[1]
	}
	return ""
}
