// Package chat is the application service for the advisory responder and the
// per-account chat history.
package chat

import (
	"context"

	"github.com/greenflow-inc/greenflow/internal/domain/advisor"
	domain "github.com/greenflow-inc/greenflow/internal/domain/chat"
	"github.com/greenflow-inc/greenflow/internal/shared/clock"
	apperrors "github.com/greenflow-inc/greenflow/internal/shared/errors"
	"github.com/greenflow-inc/greenflow/internal/shared/logger"
	"github.com/greenflow-inc/greenflow/internal/shared/services/markdown"
)

// Service answers questions and records exchanges for known accounts.
type Service struct {
	responder *advisor.Responder
	history   domain.HistoryRepository
	markdown  markdown.Service
	clock     clock.Clock
	logger    logger.Interface
}

// NewService wires a chat service.
func NewService(
	responder *advisor.Responder,
	history domain.HistoryRepository,
	md markdown.Service,
	clk clock.Clock,
	log logger.Interface,
) *Service {
	return &Service{
		responder: responder,
		history:   history,
		markdown:  md,
		clock:     clk,
		logger:    log,
	}
}

// Ask answers a free-text question. accountID may be empty for anonymous
// chats, which are answered but not recorded. Markup is stripped from the
// input before matching or storage.
func (s *Service) Ask(ctx context.Context, accountID, text string) (string, error) {
	now := s.clock.Now()

	cleaned := s.markdown.StripTags(text)
	if cleaned == "" {
		return "", apperrors.NewValidationError("message cannot be empty")
	}

	reply := s.responder.Respond(cleaned)

	if accountID != "" {
		ex := domain.Exchange{UserText: cleaned, ReplyText: reply, At: now}
		if err := s.history.Append(ctx, accountID, ex); err != nil {
			// The reply is still valid; losing one history entry is not.
			s.logger.Warnw("failed to record chat exchange", "account_id", accountID, "error", err)
		}
	}

	return reply, nil
}

// History returns the account's recorded exchanges in order.
func (s *Service) History(ctx context.Context, accountID string) ([]domain.Exchange, error) {
	history, err := s.history.History(ctx, accountID)
	if err != nil {
		s.logger.Errorw("failed to load chat history", "account_id", accountID, "error", err)
		return nil, apperrors.NewInternalError("failed to load chat history")
	}
	return history, nil
}
