package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/greenflow-inc/greenflow/internal/domain/garden"
	"github.com/greenflow-inc/greenflow/internal/shared/logger"
)

// GormGardenRepository implements garden.Repository on a relational store.
// Row ids carry insertion order, so listing by id reproduces planting order.
type GormGardenRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewGormGardenRepository creates a database-backed garden repository.
func NewGormGardenRepository(db *gorm.DB, log logger.Interface) garden.Repository {
	return &GormGardenRepository{db: db, logger: log}
}

func (r *GormGardenRepository) AddPlant(ctx context.Context, ownerID string, crop garden.PlantedCrop) error {
	model := &PlantedCropModel{
		OwnerID:   ownerID,
		SpeciesID: crop.SpeciesID,
		PlantedAt: crop.PlantedAt,
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to add plant", "owner_id", ownerID, "error", err)
		return fmt.Errorf("failed to add plant: %w", err)
	}
	return nil
}

func (r *GormGardenRepository) GetByOwner(ctx context.Context, ownerID string) (*garden.Garden, error) {
	var models []PlantedCropModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&models).Error; err != nil {
		r.logger.Errorw("failed to load garden", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("failed to load garden: %w", err)
	}

	plants := make([]garden.PlantedCrop, 0, len(models))
	for i := range models {
		plants = append(plants, cropToEntity(&models[i]))
	}
	return garden.ReconstructGarden(ownerID, plants), nil
}
