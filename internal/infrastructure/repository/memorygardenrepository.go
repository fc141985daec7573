package repository

import (
	"context"
	"sync"

	"github.com/greenflow-inc/greenflow/internal/domain/garden"
)

// MemoryGardenRepository keeps one ordered crop list per owner.
type MemoryGardenRepository struct {
	mu      sync.RWMutex
	gardens map[string][]garden.PlantedCrop
}

// NewMemoryGardenRepository creates an empty registry.
func NewMemoryGardenRepository() *MemoryGardenRepository {
	return &MemoryGardenRepository{gardens: make(map[string][]garden.PlantedCrop)}
}

// AddPlant appends to the owner's crop list, creating it on first use.
func (r *MemoryGardenRepository) AddPlant(_ context.Context, ownerID string, crop garden.PlantedCrop) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.gardens[ownerID] = append(r.gardens[ownerID], crop)
	return nil
}

// GetByOwner returns a snapshot garden; empty for unknown owners.
func (r *MemoryGardenRepository) GetByOwner(_ context.Context, ownerID string) (*garden.Garden, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return garden.ReconstructGarden(ownerID, r.gardens[ownerID]), nil
}
