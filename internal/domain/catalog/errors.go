package catalog

import "errors"

var (
	ErrSpeciesNotFound = errors.New("plant species not found")
	ErrPackageNotFound = errors.New("package not found")

	// ErrInvalidSpecies signals catalog data violating its own invariants
	// (e.g. a non-positive harvest cycle). Seed validation makes this
	// unreachable in practice.
	ErrInvalidSpecies = errors.New("invalid plant species data")

	ErrDuplicateSpecies = errors.New("duplicate species id")
	ErrDuplicatePackage = errors.New("duplicate package id")
)
