// Package account owns user identity, credentials and subscription state.
// The normalized email address is the natural account key; a Stripe-style
// short id is carried alongside as the external reference code.
package account

import (
	"fmt"
	"time"

	vo "github.com/greenflow-inc/greenflow/internal/domain/account/valueobjects"
	"github.com/greenflow-inc/greenflow/internal/shared/id"
)

// Account is the account aggregate root. Fields are unexported; state changes
// go through methods so invariants hold everywhere.
type Account struct {
	email           *vo.Email
	sid             string
	displayName     string
	credentialHash  string
	createdAt       time.Time
	subscription    *Subscription
	selectedPackage *PackageSelection
}

// NewAccount creates an account with no credential set yet.
func NewAccount(email *vo.Email, displayName string, now time.Time) (*Account, error) {
	if email == nil {
		return nil, MissingField("email")
	}
	if displayName == "" {
		return nil, MissingField("name")
	}

	return &Account{
		email:       email,
		sid:         id.MustGenerateWithPrefix(id.PrefixAccount, id.DefaultLength),
		displayName: displayName,
		createdAt:   now,
	}, nil
}

// ReconstructAccount rebuilds an account from persistence.
func ReconstructAccount(
	email *vo.Email,
	sid, displayName, credentialHash string,
	createdAt time.Time,
	subscription *Subscription,
	selectedPackage *PackageSelection,
) (*Account, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if sid == "" {
		return nil, fmt.Errorf("sid is required")
	}

	return &Account{
		email:           email,
		sid:             sid,
		displayName:     displayName,
		credentialHash:  credentialHash,
		createdAt:       createdAt,
		subscription:    subscription,
		selectedPackage: selectedPackage,
	}, nil
}

// ID returns the natural account key (normalized email).
func (a *Account) ID() string {
	return a.email.String()
}

func (a *Account) Email() *vo.Email { return a.email }

// SID returns the external reference code.
func (a *Account) SID() string { return a.sid }

func (a *Account) DisplayName() string  { return a.displayName }
func (a *Account) CreatedAt() time.Time { return a.createdAt }

// CredentialHash returns the stored one-way hash. The raw password is never
// retained on the aggregate.
func (a *Account) CredentialHash() string { return a.credentialHash }

// SetCredential hashes and stores the password.
func (a *Account) SetCredential(password *vo.Password, hasher PasswordHasher) error {
	if password == nil {
		return MissingField("password")
	}
	hash, err := hasher.Hash(password.String())
	if err != nil {
		return fmt.Errorf("failed to hash credential: %w", err)
	}
	a.credentialHash = hash
	return nil
}

// VerifyCredential checks a raw password against the stored hash.
func (a *Account) VerifyCredential(raw string, hasher PasswordHasher) error {
	if a.credentialHash == "" {
		return ErrPasswordMismatch
	}
	if err := hasher.Verify(raw, a.credentialHash); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}

// Subscribe replaces any existing subscription with a fresh window starting
// at now. Calling it again overwrites; durations do not stack.
func (a *Account) Subscribe(plan string, durationDays int, now time.Time) (Subscription, error) {
	if plan == "" {
		return Subscription{}, MissingField("plan")
	}
	if durationDays <= 0 {
		return Subscription{}, fmt.Errorf("duration must be positive, got %d days", durationDays)
	}

	sub := Subscription{
		Plan:      plan,
		StartedAt: now,
		EndsAt:    now.AddDate(0, 0, durationDays),
	}
	a.subscription = &sub
	return sub, nil
}

// Subscription returns the raw stored subscription, expired or not.
func (a *Account) Subscription() *Subscription {
	if a.subscription == nil {
		return nil
	}
	sub := *a.subscription
	return &sub
}

// EffectiveSubscription returns the subscription if it covers now, else nil.
// Expired subscriptions stay stored but read as none.
func (a *Account) EffectiveSubscription(now time.Time) *Subscription {
	if a.subscription == nil || !a.subscription.ActiveAt(now) {
		return nil
	}
	sub := *a.subscription
	return &sub
}

// SubscriptionStatus reports whether the account is subscribed at now.
func (a *Account) SubscriptionStatus(now time.Time) SubscriptionStatus {
	if a.subscription == nil {
		return SubscriptionStatus{Active: false}
	}
	ends := a.subscription.EndsAt
	return SubscriptionStatus{
		Active: a.subscription.ActiveAt(now),
		EndsAt: &ends,
	}
}

// SelectPackage records the chosen kit package. Package existence is the
// caller's responsibility (the catalog store owns that check).
func (a *Account) SelectPackage(packageID string, now time.Time) error {
	if packageID == "" {
		return MissingField("package_id")
	}
	a.selectedPackage = &PackageSelection{PackageID: packageID, SelectedAt: now}
	return nil
}

// SelectedPackage returns the recorded package selection, if any.
func (a *Account) SelectedPackage() *PackageSelection {
	if a.selectedPackage == nil {
		return nil
	}
	sel := *a.selectedPackage
	return &sel
}

// Clone returns an independent deep copy, used by repositories to hand out
// snapshots that can never tear under concurrent mutation.
func (a *Account) Clone() *Account {
	cp := &Account{
		email:          a.email,
		sid:            a.sid,
		displayName:    a.displayName,
		credentialHash: a.credentialHash,
		createdAt:      a.createdAt,
	}
	if a.subscription != nil {
		sub := *a.subscription
		cp.subscription = &sub
	}
	if a.selectedPackage != nil {
		sel := *a.selectedPackage
		cp.selectedPackage = &sel
	}
	return cp
}
