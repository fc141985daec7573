// Package chat keeps the per-account conversation history with the advisory
// responder. Anonymous chats are answered but never recorded.
package chat

import (
	"context"
	"time"
)

// Exchange is one question/reply pair.
type Exchange struct {
	UserText  string    `json:"user"`
	ReplyText string    `json:"bot"`
	At        time.Time `json:"timestamp"`
}

// HistoryRepository stores exchanges per account in append order.
type HistoryRepository interface {
	// Append records an exchange for the account.
	Append(ctx context.Context, accountID string, ex Exchange) error

	// History returns the account's exchanges in append order. An account
	// that never chatted gets an empty slice.
	History(ctx context.Context, accountID string) ([]Exchange, error)
}
