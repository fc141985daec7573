// Package catalog holds the read-only registries of plant species and kit
// packages. Both are seeded once at process start and never mutated, so the
// store needs no locking: concurrent reads are safe by construction.
package catalog

import "fmt"

// Store is the static species/package registry.
type Store struct {
	species      map[string]*PlantSpecies
	speciesOrder []string
	packages     map[string]*Package
	packageOrder []string
}

// NewStore builds a store from seed data, preserving registration order.
func NewStore(species []*PlantSpecies, packages []*Package) (*Store, error) {
	s := &Store{
		species:  make(map[string]*PlantSpecies, len(species)),
		packages: make(map[string]*Package, len(packages)),
	}

	for _, sp := range species {
		if sp == nil {
			return nil, fmt.Errorf("%w: nil species entry", ErrInvalidSpecies)
		}
		if _, ok := s.species[sp.ID()]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSpecies, sp.ID())
		}
		s.species[sp.ID()] = sp
		s.speciesOrder = append(s.speciesOrder, sp.ID())
	}

	for _, p := range packages {
		if p == nil {
			return nil, fmt.Errorf("nil package entry")
		}
		if _, ok := s.packages[p.ID()]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePackage, p.ID())
		}
		s.packages[p.ID()] = p
		s.packageOrder = append(s.packageOrder, p.ID())
	}

	return s, nil
}

// GetSpecies looks up a species by id.
func (s *Store) GetSpecies(id string) (*PlantSpecies, error) {
	sp, ok := s.species[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSpeciesNotFound, id)
	}
	return sp, nil
}

// ListSpecies returns all species in registration order.
func (s *Store) ListSpecies() []*PlantSpecies {
	out := make([]*PlantSpecies, 0, len(s.speciesOrder))
	for _, id := range s.speciesOrder {
		out = append(out, s.species[id])
	}
	return out
}

// GetPackage looks up a package by id.
func (s *Store) GetPackage(id string) (*Package, error) {
	p, ok := s.packages[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPackageNotFound, id)
	}
	return p, nil
}

// ListPackages returns all packages in registration order.
func (s *Store) ListPackages() []*Package {
	out := make([]*Package, 0, len(s.packageOrder))
	for _, id := range s.packageOrder {
		out = append(out, s.packages[id])
	}
	return out
}

// HasSpecies reports whether the id is registered.
func (s *Store) HasSpecies(id string) bool {
	_, ok := s.species[id]
	return ok
}

// HasPackage reports whether the id is registered.
func (s *Store) HasPackage(id string) bool {
	_, ok := s.packages[id]
	return ok
}
