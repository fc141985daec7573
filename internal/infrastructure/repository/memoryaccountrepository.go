// Package repository provides the storage backends: process-local in-memory
// maps (the default) and GORM-backed durable stores, both behind the domain
// repository interfaces.
//
// Memory repositories follow one discipline: a single RWMutex per registry,
// writes under Lock with check-and-insert done atomically, reads under RLock
// returning deep copies so callers never observe a partially-written record.
package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/greenflow-inc/greenflow/internal/domain/account"
)

// MemoryAccountRepository is the process-local account directory.
type MemoryAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*account.Account
}

// NewMemoryAccountRepository creates an empty directory.
func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{accounts: make(map[string]*account.Account)}
}

// Create inserts the account iff the email is free. The existence check and
// the insert happen under one lock, so two concurrent registrations for the
// same email produce exactly one ErrDuplicateAccount.
func (r *MemoryAccountRepository) Create(_ context.Context, acct *account.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := acct.ID()
	if _, exists := r.accounts[key]; exists {
		return fmt.Errorf("%w: %s", account.ErrDuplicateAccount, key)
	}
	r.accounts[key] = acct.Clone()
	return nil
}

// GetByEmail returns a snapshot of the account.
func (r *MemoryAccountRepository) GetByEmail(_ context.Context, email string) (*account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acct, ok := r.accounts[email]
	if !ok {
		return nil, fmt.Errorf("%w: %s", account.ErrAccountNotFound, email)
	}
	return acct.Clone(), nil
}

// Update replaces the stored state for an existing account.
func (r *MemoryAccountRepository) Update(_ context.Context, acct *account.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := acct.ID()
	if _, ok := r.accounts[key]; !ok {
		return fmt.Errorf("%w: %s", account.ErrAccountNotFound, key)
	}
	r.accounts[key] = acct.Clone()
	return nil
}

// ExistsByEmail reports whether the email is registered.
func (r *MemoryAccountRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.accounts[email]
	return ok, nil
}

// Count returns the number of accounts.
func (r *MemoryAccountRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.accounts)), nil
}

// CountSubscribed counts accounts whose subscription covers now.
func (r *MemoryAccountRepository) CountSubscribed(_ context.Context, now time.Time) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, acct := range r.accounts {
		if sub := acct.Subscription(); sub != nil && sub.ActiveAt(now) {
			n++
		}
	}
	return n, nil
}
