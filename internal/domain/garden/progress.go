package garden

import (
	"fmt"
	"time"

	"github.com/greenflow-inc/greenflow/internal/domain/catalog"
)

// CropView is the derived harvest-progress view of one planted crop. It is
// recomputed from (planted_at, now) on every read; nothing here is cached.
type CropView struct {
	SpeciesID        string    `json:"species_id"`
	DisplayName      string    `json:"display_name"`
	IconGlyph        string    `json:"icon_glyph"`
	PlantedAt        time.Time `json:"planted_at"`
	DaysElapsed      int       `json:"days_elapsed"`
	TotalDays        int       `json:"total_days"`
	DaysRemaining    int       `json:"days_remaining"`
	GrowthPercentage float64   `json:"growth_percentage"`
	Ready            bool      `json:"ready"`
}

const day = 24 * time.Hour

// NewCropView derives the progress view for one crop at the given instant.
// Elapsed days are floored to whole days, never rounded; growth percentage is
// clamped to [0, 100]. The catalog invariant guarantees a positive harvest
// cycle, so the division is safe; a zero cycle is still rejected defensively.
func NewCropView(crop PlantedCrop, species *catalog.PlantSpecies, now time.Time) (CropView, error) {
	totalDays := species.DaysToHarvest()
	if totalDays <= 0 {
		return CropView{}, fmt.Errorf("%w: %s has days_to_harvest %d",
			catalog.ErrInvalidSpecies, species.ID(), totalDays)
	}

	daysElapsed := int(now.Sub(crop.PlantedAt) / day)
	if daysElapsed < 0 {
		daysElapsed = 0
	}

	pct := float64(daysElapsed) / float64(totalDays) * 100
	if pct > 100 {
		pct = 100
	}

	daysRemaining := totalDays - daysElapsed
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	return CropView{
		SpeciesID:        species.ID(),
		DisplayName:      species.DisplayName(),
		IconGlyph:        species.IconGlyph(),
		PlantedAt:        crop.PlantedAt,
		DaysElapsed:      daysElapsed,
		TotalDays:        totalDays,
		DaysRemaining:    daysRemaining,
		GrowthPercentage: pct,
		Ready:            pct >= 100,
	}, nil
}

// ComputeProgress derives views for every crop in the garden at one shared
// instant, preserving insertion order. Pure and deterministic given now.
func ComputeProgress(g *Garden, store *catalog.Store, now time.Time) ([]CropView, error) {
	plants := g.Plants()
	views := make([]CropView, 0, len(plants))
	for _, crop := range plants {
		species, err := store.GetSpecies(crop.SpeciesID)
		if err != nil {
			return nil, fmt.Errorf("crop references %w", err)
		}
		view, err := NewCropView(crop, species, now)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
