// Package consultation owns the append-only ledger of expert booking
// requests.
package consultation

import (
	"fmt"
	"strings"
	"time"

	"github.com/greenflow-inc/greenflow/internal/shared/id"
)

// Status is the request lifecycle state. Only pending is in scope; terminal
// transitions belong to a follow-up workflow.
type Status string

const StatusPending Status = "pending"

// ConsultationRequest is one booking. Ids are 1-based and strictly
// increasing in submission order; the ledger assigns them on append.
type ConsultationRequest struct {
	requestID   uint64
	sid         string
	name        string
	email       string
	phone       string
	message     string
	submittedAt time.Time
	status      Status
}

// NewConsultationRequest validates a booking. Name, email and phone are
// required after trimming; message is optional. The id stays zero until the
// ledger assigns it.
func NewConsultationRequest(name, email, phone, message string, now time.Time) (*ConsultationRequest, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	message = strings.TrimSpace(message)

	if name == "" {
		return nil, MissingField("name")
	}
	if email == "" {
		return nil, MissingField("email")
	}
	if phone == "" {
		return nil, MissingField("phone")
	}

	return &ConsultationRequest{
		sid:         id.MustGenerateWithPrefix(id.PrefixConsultation, id.DefaultLength),
		name:        name,
		email:       email,
		phone:       phone,
		message:     message,
		submittedAt: now,
		status:      StatusPending,
	}, nil
}

// ReconstructConsultationRequest rebuilds a request from persistence.
func ReconstructConsultationRequest(requestID uint64, sid, name, email, phone, message string, submittedAt time.Time, status Status) (*ConsultationRequest, error) {
	if requestID == 0 {
		return nil, fmt.Errorf("request id cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("sid is required")
	}

	return &ConsultationRequest{
		requestID:   requestID,
		sid:         sid,
		name:        name,
		email:       email,
		phone:       phone,
		message:     message,
		submittedAt: submittedAt,
		status:      status,
	}, nil
}

// ID returns the ledger-assigned sequence number (0 before append).
func (r *ConsultationRequest) ID() uint64 { return r.requestID }

// SetID is for ledger use only, exactly once at append time.
func (r *ConsultationRequest) SetID(requestID uint64) error {
	if r.requestID != 0 {
		return fmt.Errorf("request id is already set")
	}
	if requestID == 0 {
		return fmt.Errorf("request id cannot be zero")
	}
	r.requestID = requestID
	return nil
}

func (r *ConsultationRequest) SID() string            { return r.sid }
func (r *ConsultationRequest) Name() string           { return r.name }
func (r *ConsultationRequest) Email() string          { return r.email }
func (r *ConsultationRequest) Phone() string          { return r.phone }
func (r *ConsultationRequest) Message() string        { return r.message }
func (r *ConsultationRequest) SubmittedAt() time.Time { return r.submittedAt }
func (r *ConsultationRequest) Status() Status         { return r.status }

// Clone returns an independent copy for snapshot reads.
func (r *ConsultationRequest) Clone() *ConsultationRequest {
	cp := *r
	return &cp
}
