// Package garden owns per-account planted crops and the harvest-progress
// arithmetic derived from them.
package garden

import "time"

// PlantedCrop is one planting event. Immutable once created.
type PlantedCrop struct {
	SpeciesID string    `json:"species_id"`
	PlantedAt time.Time `json:"planted_at"`
}

// Garden is the ordered collection of crops planted by one account.
// Insertion order is display order.
type Garden struct {
	ownerID string
	plants  []PlantedCrop
}

// NewGarden creates an empty garden for an owner.
func NewGarden(ownerID string) *Garden {
	return &Garden{ownerID: ownerID}
}

// ReconstructGarden rebuilds a garden from persisted crops.
func ReconstructGarden(ownerID string, plants []PlantedCrop) *Garden {
	g := &Garden{ownerID: ownerID}
	g.plants = append(g.plants, plants...)
	return g
}

// OwnerID returns the owning account id.
func (g *Garden) OwnerID() string {
	return g.ownerID
}

// AddPlant appends a crop, preserving insertion order.
func (g *Garden) AddPlant(crop PlantedCrop) {
	g.plants = append(g.plants, crop)
}

// Plants returns a copy of the planted crops in insertion order.
func (g *Garden) Plants() []PlantedCrop {
	out := make([]PlantedCrop, len(g.plants))
	copy(out, g.plants)
	return out
}

// Size returns the number of planted crops.
func (g *Garden) Size() int {
	return len(g.plants)
}
