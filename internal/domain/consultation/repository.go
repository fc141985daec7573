package consultation

import "context"

// Ledger defines the append-only consultation store. Append assigns the next
// sequence id atomically: concurrent appends observe distinct, contiguous,
// strictly increasing ids starting at 1.
type Ledger interface {
	// Append stores the request and assigns its id.
	Append(ctx context.Context, req *ConsultationRequest) error

	// ListAll returns snapshots of every request in id order.
	ListAll(ctx context.Context) ([]*ConsultationRequest, error)

	// Count returns the total number of requests.
	Count(ctx context.Context) (int64, error)

	// CountByStatus returns the number of requests in the given status.
	CountByStatus(ctx context.Context, status Status) (int64, error)
}
