package account

import (
	"context"
	"time"
)

// Repository defines account persistence. Implementations must make Create an
// atomic check-and-insert: two concurrent creates for the same email yield
// exactly one success and one ErrDuplicateAccount.
type Repository interface {
	// Create stores a new account. Returns ErrDuplicateAccount when the
	// email is already registered; the stored record is left unchanged.
	Create(ctx context.Context, acct *Account) error

	// GetByEmail retrieves an account snapshot by normalized email.
	// Returns ErrAccountNotFound when absent.
	GetByEmail(ctx context.Context, email string) (*Account, error)

	// Update replaces the stored account state. Returns ErrAccountNotFound
	// when the account does not exist.
	Update(ctx context.Context, acct *Account) error

	// ExistsByEmail reports whether the email is registered.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Count returns the total number of accounts.
	Count(ctx context.Context) (int64, error)

	// CountSubscribed returns the number of accounts whose subscription
	// covers now.
	CountSubscribed(ctx context.Context, now time.Time) (int64, error)
}
