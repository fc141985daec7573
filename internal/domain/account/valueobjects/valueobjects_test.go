package valueobjects

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail_NormalizesAndValidates(t *testing.T) {
	e, err := NewEmail("  Grower@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "grower@example.com", e.String())
	assert.Equal(t, "example.com", e.Domain())

	for _, bad := range []string{"", "   ", "no-at-sign", "a@b", "spaces in@example.com"} {
		_, err := NewEmail(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestNewEmail_LengthLimit(t *testing.T) {
	long := strings.Repeat("a", 250) + "@example.com"
	_, err := NewEmail(long)
	assert.Error(t, err)
}

func TestEmail_Equals(t *testing.T) {
	a, err := NewEmail("grower@example.com")
	require.NoError(t, err)
	b, err := NewEmail("GROWER@example.com")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(nil))
}

func TestNewPassword_Policy(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"minimum length", "abcdef", false},
		{"typical", "hunter2x", false},
		{"too short", "abcde", true},
		{"empty", "", true},
		{"over bcrypt limit", strings.Repeat("x", 73), true},
		{"at bcrypt limit", strings.Repeat("x", 72), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPassword(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, p.String())
		})
	}
}
