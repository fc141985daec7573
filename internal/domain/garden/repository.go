package garden

import "context"

// Repository defines garden persistence. One garden per owner; the garden is
// created implicitly on the first AddPlant.
type Repository interface {
	// AddPlant appends a crop to the owner's garden, creating the garden
	// when it does not exist yet. Insertion order is preserved.
	AddPlant(ctx context.Context, ownerID string, crop PlantedCrop) error

	// GetByOwner returns a snapshot of the owner's garden. A never-planted
	// owner gets an empty garden, not an error.
	GetByOwner(ctx context.Context, ownerID string) (*Garden, error)
}
