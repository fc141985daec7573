package account

import (
	"time"

	"github.com/greenflow-inc/greenflow/internal/domain/account"
)

// RegisterRequest carries registration input.
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

// AccountDTO is the serializable account view. The credential hash never
// leaves the domain layer.
type AccountDTO struct {
	ID              string                    `json:"id"`
	SID             string                    `json:"sid"`
	Name            string                    `json:"name"`
	Email           string                    `json:"email"`
	CreatedAt       time.Time                 `json:"created_at"`
	Subscription    *account.Subscription     `json:"subscription,omitempty"`
	SelectedPackage *account.PackageSelection `json:"selected_package,omitempty"`
}

// SubscriptionStatusDTO mirrors the status read.
type SubscriptionStatusDTO struct {
	Active bool       `json:"active"`
	EndsAt *time.Time `json:"ends_at,omitempty"`
}

func toAccountDTO(acct *account.Account, now time.Time) *AccountDTO {
	return &AccountDTO{
		ID:              acct.ID(),
		SID:             acct.SID(),
		Name:            acct.DisplayName(),
		Email:           acct.Email().String(),
		CreatedAt:       acct.CreatedAt(),
		Subscription:    acct.EffectiveSubscription(now),
		SelectedPackage: acct.SelectedPackage(),
	}
}
