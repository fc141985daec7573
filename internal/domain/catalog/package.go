package catalog

import "fmt"

// Package is a purchasable hydroponics kit offering with fixed price and
// capacity. Packages are immutable after seeding. Price is an integer in
// whole currency units.
type Package struct {
	id            string
	displayName   string
	price         int
	plantCapacity int
	areaLabel     string
	description   string
}

// NewPackage validates and builds a package entry.
func NewPackage(id, displayName string, price, plantCapacity int, areaLabel, description string) (*Package, error) {
	if id == "" {
		return nil, fmt.Errorf("package id cannot be empty")
	}
	if displayName == "" {
		return nil, fmt.Errorf("package %s has no display name", id)
	}
	if price < 0 {
		return nil, fmt.Errorf("package %s has negative price %d", id, price)
	}
	if plantCapacity <= 0 {
		return nil, fmt.Errorf("package %s has non-positive plant capacity %d", id, plantCapacity)
	}

	return &Package{
		id:            id,
		displayName:   displayName,
		price:         price,
		plantCapacity: plantCapacity,
		areaLabel:     areaLabel,
		description:   description,
	}, nil
}

func (p *Package) ID() string         { return p.id }
func (p *Package) DisplayName() string { return p.displayName }
func (p *Package) Price() int         { return p.price }
func (p *Package) PlantCapacity() int { return p.plantCapacity }
func (p *Package) AreaLabel() string  { return p.areaLabel }
func (p *Package) Description() string { return p.description }
