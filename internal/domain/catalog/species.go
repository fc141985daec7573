package catalog

import "fmt"

// PHRange is the acceptable water pH band for a species.
type PHRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// PlantSpecies describes one growable crop and its harvest timing.
// Species are immutable after seeding.
type PlantSpecies struct {
	id            string
	displayName   string
	iconGlyph     string
	daysToHarvest int
	phRange       PHRange
	careTip       string
}

// NewPlantSpecies validates and builds a species entry.
func NewPlantSpecies(id, displayName, iconGlyph string, daysToHarvest int, phRange PHRange, careTip string) (*PlantSpecies, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty species id", ErrInvalidSpecies)
	}
	if displayName == "" {
		return nil, fmt.Errorf("%w: species %s has no display name", ErrInvalidSpecies, id)
	}
	if daysToHarvest <= 0 {
		return nil, fmt.Errorf("%w: species %s has non-positive days_to_harvest %d", ErrInvalidSpecies, id, daysToHarvest)
	}
	if phRange.Low > phRange.High {
		return nil, fmt.Errorf("%w: species %s has inverted pH range %.1f-%.1f", ErrInvalidSpecies, id, phRange.Low, phRange.High)
	}

	return &PlantSpecies{
		id:            id,
		displayName:   displayName,
		iconGlyph:     iconGlyph,
		daysToHarvest: daysToHarvest,
		phRange:       phRange,
		careTip:       careTip,
	}, nil
}

func (s *PlantSpecies) ID() string          { return s.id }
func (s *PlantSpecies) DisplayName() string { return s.displayName }
func (s *PlantSpecies) IconGlyph() string   { return s.iconGlyph }
func (s *PlantSpecies) DaysToHarvest() int  { return s.daysToHarvest }
func (s *PlantSpecies) PHRange() PHRange    { return s.phRange }
func (s *PlantSpecies) CareTip() string     { return s.careTip }
