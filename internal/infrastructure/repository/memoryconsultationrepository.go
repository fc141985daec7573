package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/greenflow-inc/greenflow/internal/domain/consultation"
)

// MemoryConsultationLedger is the process-local append-only booking ledger.
// Id assignment happens under the write lock, so concurrent appends get
// distinct, contiguous ids starting at 1.
type MemoryConsultationLedger struct {
	mu       sync.RWMutex
	requests []*consultation.ConsultationRequest
	nextID   uint64
}

// NewMemoryConsultationLedger creates an empty ledger.
func NewMemoryConsultationLedger() *MemoryConsultationLedger {
	return &MemoryConsultationLedger{nextID: 1}
}

// Append assigns the next id and stores the request.
func (r *MemoryConsultationLedger) Append(_ context.Context, req *consultation.ConsultationRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := req.SetID(r.nextID); err != nil {
		return fmt.Errorf("failed to assign consultation id: %w", err)
	}
	r.nextID++
	r.requests = append(r.requests, req.Clone())
	return nil
}

// ListAll returns snapshots in id order (equal to append order).
func (r *MemoryConsultationLedger) ListAll(_ context.Context) ([]*consultation.ConsultationRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*consultation.ConsultationRequest, 0, len(r.requests))
	for _, req := range r.requests {
		out = append(out, req.Clone())
	}
	return out, nil
}

// Count returns the number of requests.
func (r *MemoryConsultationLedger) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.requests)), nil
}

// CountByStatus counts requests in the given status.
func (r *MemoryConsultationLedger) CountByStatus(_ context.Context, status consultation.Status) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, req := range r.requests {
		if req.Status() == status {
			n++
		}
	}
	return n, nil
}
