package account

import "time"

// Subscription is the active plan window attached to an account. A new
// subscribe operation overwrites the previous window; durations never stack.
type Subscription struct {
	Plan      string    `json:"plan"`
	StartedAt time.Time `json:"started_at"`
	EndsAt    time.Time `json:"ends_at"`
}

// ActiveAt reports whether the subscription covers the given instant.
func (s Subscription) ActiveAt(now time.Time) bool {
	return now.Before(s.EndsAt)
}

// SubscriptionStatus is the read-side view of an account's subscription.
type SubscriptionStatus struct {
	Active bool       `json:"active"`
	EndsAt *time.Time `json:"ends_at,omitempty"`
}

// PackageSelection records which kit package the account picked and when.
type PackageSelection struct {
	PackageID  string    `json:"package_id"`
	SelectedAt time.Time `json:"selected_at"`
}
