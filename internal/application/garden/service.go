// Package garden is the application service for planting and progress reads.
package garden

import (
	"context"
	"errors"
	"time"

	accountDomain "github.com/greenflow-inc/greenflow/internal/domain/account"
	"github.com/greenflow-inc/greenflow/internal/domain/catalog"
	domain "github.com/greenflow-inc/greenflow/internal/domain/garden"
	"github.com/greenflow-inc/greenflow/internal/shared/clock"
	apperrors "github.com/greenflow-inc/greenflow/internal/shared/errors"
	"github.com/greenflow-inc/greenflow/internal/shared/logger"
)

// Service coordinates garden operations.
type Service struct {
	repo        domain.Repository
	accountRepo accountDomain.Repository
	catalog     *catalog.Store
	clock       clock.Clock
	logger      logger.Interface
}

// NewService wires a garden service.
func NewService(
	repo domain.Repository,
	accountRepo accountDomain.Repository,
	store *catalog.Store,
	clk clock.Clock,
	log logger.Interface,
) *Service {
	return &Service{
		repo:        repo,
		accountRepo: accountRepo,
		catalog:     store,
		clock:       clk,
		logger:      log,
	}
}

// AddPlant plants a crop in the owner's garden, creating the garden on first
// use. The species must exist in the catalog at the time of the add.
func (s *Service) AddPlant(ctx context.Context, ownerID, speciesID string) (*domain.PlantedCrop, error) {
	now := s.clock.Now()

	if !s.catalog.HasSpecies(speciesID) {
		return nil, apperrors.NewNotFoundError("unknown plant species", speciesID).
			WithCause(domain.ErrUnknownSpecies)
	}

	crop := domain.PlantedCrop{SpeciesID: speciesID, PlantedAt: now}
	if err := s.repo.AddPlant(ctx, ownerID, crop); err != nil {
		s.logger.Errorw("failed to store planted crop", "owner_id", ownerID, "species_id", speciesID, "error", err)
		return nil, apperrors.NewInternalError("failed to add plant")
	}

	s.logger.Infow("crop planted", "owner_id", ownerID, "species_id", speciesID)

	return &crop, nil
}

// Progress derives the harvest-progress view of every crop in the owner's
// garden at a single instant. A never-planted owner gets an empty list.
func (s *Service) Progress(ctx context.Context, ownerID string) ([]domain.CropView, error) {
	now := s.clock.Now()
	return s.progressAt(ctx, ownerID, now)
}

// Dashboard assembles the authenticated landing view.
func (s *Service) Dashboard(ctx context.Context, ownerID string) (*DashboardDTO, error) {
	now := s.clock.Now()

	acct, err := s.accountRepo.GetByEmail(ctx, ownerID)
	if err != nil {
		if errors.Is(err, accountDomain.ErrAccountNotFound) {
			return nil, apperrors.NewNotFoundError("account not found").WithCause(err)
		}
		s.logger.Errorw("failed to load account", "owner_id", ownerID, "error", err)
		return nil, apperrors.NewInternalError("failed to load dashboard")
	}

	views, err := s.progressAt(ctx, ownerID, now)
	if err != nil {
		return nil, err
	}

	stats := DashboardStats{TotalPlants: len(views)}
	for _, v := range views {
		switch {
		case v.Ready:
			stats.Ready++
		case v.GrowthPercentage > 50:
			stats.Growing++
		}
	}

	return &DashboardDTO{
		Name:       acct.DisplayName(),
		Email:      acct.Email().String(),
		Subscribed: acct.SubscriptionStatus(now).Active,
		Plants:     views,
		Stats:      stats,
	}, nil
}

func (s *Service) progressAt(ctx context.Context, ownerID string, now time.Time) ([]domain.CropView, error) {
	g, err := s.repo.GetByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Errorw("failed to load garden", "owner_id", ownerID, "error", err)
		return nil, apperrors.NewInternalError("failed to load garden")
	}

	views, err := domain.ComputeProgress(g, s.catalog, now)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidSpecies) {
			return nil, apperrors.NewInternalError("catalog data invariant violated", err.Error()).WithCause(err)
		}
		return nil, apperrors.NewInternalError("failed to compute progress").WithCause(err)
	}
	return views, nil
}
