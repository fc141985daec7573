// Package admin aggregates operational counters across the other contexts.
package admin

import (
	"context"

	"github.com/greenflow-inc/greenflow/internal/domain/account"
	"github.com/greenflow-inc/greenflow/internal/domain/consultation"
	"github.com/greenflow-inc/greenflow/internal/shared/clock"
	apperrors "github.com/greenflow-inc/greenflow/internal/shared/errors"
	"github.com/greenflow-inc/greenflow/internal/shared/logger"
)

// StatsDTO is the operational counter snapshot.
type StatsDTO struct {
	TotalAccounts        int64 `json:"total_accounts"`
	ActiveSubscriptions  int64 `json:"active_subscriptions"`
	TotalConsultations   int64 `json:"total_consultations"`
	PendingConsultations int64 `json:"pending_consultations"`
}

// Service reads counters from the account directory and consultation ledger.
type Service struct {
	accounts account.Repository
	ledger   consultation.Ledger
	clock    clock.Clock
	logger   logger.Interface
}

// NewService wires an admin service.
func NewService(accounts account.Repository, ledger consultation.Ledger, clk clock.Clock, log logger.Interface) *Service {
	return &Service{accounts: accounts, ledger: ledger, clock: clk, logger: log}
}

// Stats snapshots the counters at one instant.
func (s *Service) Stats(ctx context.Context) (*StatsDTO, error) {
	now := s.clock.Now()

	totalAccounts, err := s.accounts.Count(ctx)
	if err != nil {
		return nil, s.fail("count accounts", err)
	}
	subscribed, err := s.accounts.CountSubscribed(ctx, now)
	if err != nil {
		return nil, s.fail("count subscriptions", err)
	}
	totalConsultations, err := s.ledger.Count(ctx)
	if err != nil {
		return nil, s.fail("count consultations", err)
	}
	pending, err := s.ledger.CountByStatus(ctx, consultation.StatusPending)
	if err != nil {
		return nil, s.fail("count pending consultations", err)
	}

	return &StatsDTO{
		TotalAccounts:        totalAccounts,
		ActiveSubscriptions:  subscribed,
		TotalConsultations:   totalConsultations,
		PendingConsultations: pending,
	}, nil
}

func (s *Service) fail(op string, err error) error {
	s.logger.Errorw("admin stats query failed", "op", op, "error", err)
	return apperrors.NewInternalError("failed to load stats")
}
