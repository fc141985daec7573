package repository

import (
	"context"
	"sync"

	"github.com/greenflow-inc/greenflow/internal/domain/chat"
)

// MemoryChatHistoryRepository keeps per-account chat exchanges in append
// order.
type MemoryChatHistoryRepository struct {
	mu      sync.RWMutex
	history map[string][]chat.Exchange
}

// NewMemoryChatHistoryRepository creates an empty history store.
func NewMemoryChatHistoryRepository() *MemoryChatHistoryRepository {
	return &MemoryChatHistoryRepository{history: make(map[string][]chat.Exchange)}
}

// Append records an exchange for the account.
func (r *MemoryChatHistoryRepository) Append(_ context.Context, accountID string, ex chat.Exchange) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.history[accountID] = append(r.history[accountID], ex)
	return nil
}

// History returns a copy of the account's exchanges in append order.
func (r *MemoryChatHistoryRepository) History(_ context.Context, accountID string) ([]chat.Exchange, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.history[accountID]
	out := make([]chat.Exchange, len(stored))
	copy(out, stored)
	return out, nil
}
