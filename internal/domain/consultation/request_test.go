package consultation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConsultationRequest(t *testing.T) {
	now := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)

	req, err := NewConsultationRequest("  Priya  ", " priya@example.com ", " +91-9000000000 ", "  terrace setup  ", now)
	require.NoError(t, err)

	assert.Equal(t, uint64(0), req.ID(), "id is unassigned until the ledger appends")
	assert.Contains(t, req.SID(), "cons_")
	assert.Equal(t, "Priya", req.Name())
	assert.Equal(t, "priya@example.com", req.Email())
	assert.Equal(t, "+91-9000000000", req.Phone())
	assert.Equal(t, "terrace setup", req.Message())
	assert.Equal(t, StatusPending, req.Status())
	assert.Equal(t, now, req.SubmittedAt())
}

func TestNewConsultationRequest_RequiredFields(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name                string
		reqName, email, pho string
	}{
		{"missing name", "", "a@b.co", "123"},
		{"whitespace name", "   ", "a@b.co", "123"},
		{"missing email", "Priya", "", "123"},
		{"missing phone", "Priya", "a@b.co", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConsultationRequest(tt.reqName, tt.email, tt.pho, "", now)
			assert.ErrorIs(t, err, ErrMissingField)
		})
	}
}

func TestNewConsultationRequest_MessageOptional(t *testing.T) {
	req, err := NewConsultationRequest("Priya", "priya@example.com", "123", "", time.Now().UTC())
	require.NoError(t, err)
	assert.Empty(t, req.Message())
}

func TestSetID_OnlyOnce(t *testing.T) {
	req, err := NewConsultationRequest("Priya", "priya@example.com", "123", "", time.Now().UTC())
	require.NoError(t, err)

	require.NoError(t, req.SetID(7))
	assert.Equal(t, uint64(7), req.ID())

	assert.Error(t, req.SetID(8), "reassignment is rejected")
	assert.Error(t, func() error {
		r2, _ := NewConsultationRequest("X", "x@y.co", "1", "", time.Now().UTC())
		return r2.SetID(0)
	}(), "zero id is rejected")
}
