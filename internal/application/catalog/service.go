// Package catalog is the read-side application service over the static
// species/package registries.
package catalog

import (
	"errors"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	domain "github.com/greenflow-inc/greenflow/internal/domain/catalog"
	apperrors "github.com/greenflow-inc/greenflow/internal/shared/errors"
	"github.com/greenflow-inc/greenflow/internal/shared/logger"
	"github.com/greenflow-inc/greenflow/internal/shared/services/markdown"
)

// Service renders catalog data for transport. It holds no mutable state.
type Service struct {
	store    *domain.Store
	markdown markdown.Service
	printer  *message.Printer
	logger   logger.Interface
}

// NewService wires a catalog service. Prices are formatted with Indian digit
// grouping to match the market the packages are priced for.
func NewService(store *domain.Store, md markdown.Service, log logger.Interface) *Service {
	return &Service{
		store:    store,
		markdown: md,
		printer:  message.NewPrinter(language.MustParse("en-IN")),
		logger:   log,
	}
}

// ListSpecies returns every species in registration order.
func (s *Service) ListSpecies() []SpeciesDTO {
	species := s.store.ListSpecies()
	out := make([]SpeciesDTO, 0, len(species))
	for _, sp := range species {
		out = append(out, s.toSpeciesDTO(sp))
	}
	return out
}

// GetSpecies returns one species by id.
func (s *Service) GetSpecies(speciesID string) (*SpeciesDTO, error) {
	sp, err := s.store.GetSpecies(speciesID)
	if err != nil {
		if errors.Is(err, domain.ErrSpeciesNotFound) {
			return nil, apperrors.NewNotFoundError("unknown plant species", speciesID).WithCause(err)
		}
		return nil, apperrors.NewInternalError("failed to load species")
	}
	dto := s.toSpeciesDTO(sp)
	return &dto, nil
}

// ListPackages returns every package in registration order.
func (s *Service) ListPackages() []PackageDTO {
	packages := s.store.ListPackages()
	out := make([]PackageDTO, 0, len(packages))
	for _, p := range packages {
		out = append(out, s.toPackageDTO(p))
	}
	return out
}

// GetPackage returns one package by id.
func (s *Service) GetPackage(packageID string) (*PackageDTO, error) {
	p, err := s.store.GetPackage(packageID)
	if err != nil {
		if errors.Is(err, domain.ErrPackageNotFound) {
			return nil, apperrors.NewNotFoundError("unknown package", packageID).WithCause(err)
		}
		return nil, apperrors.NewInternalError("failed to load package")
	}
	dto := s.toPackageDTO(p)
	return &dto, nil
}

// Features returns the static marketing feature cards.
func (s *Service) Features() []FeatureDTO {
	return []FeatureDTO{
		{Title: "Smart Monitoring", Description: "Real-time tracking of pH, nutrient levels, and plant growth.", Icon: "📊"},
		{Title: "Automated Systems", Description: "Self-regulating irrigation and nutrient delivery systems.", Icon: "⚙️"},
		{Title: "Expert Support", Description: "Access to our hydroponics experts for guidance and troubleshooting.", Icon: "👥"},
	}
}

func (s *Service) toSpeciesDTO(sp *domain.PlantSpecies) SpeciesDTO {
	tipHTML, err := s.markdown.ToHTMLSanitized(sp.CareTip())
	if err != nil {
		// Fall back to the raw markdown; the tip is still useful as text.
		s.logger.Warnw("failed to render care tip", "species_id", sp.ID(), "error", err)
		tipHTML = sp.CareTip()
	}

	ph := sp.PHRange()
	return SpeciesDTO{
		ID:            sp.ID(),
		DisplayName:   sp.DisplayName(),
		IconGlyph:     sp.IconGlyph(),
		DaysToHarvest: sp.DaysToHarvest(),
		PHLow:         ph.Low,
		PHHigh:        ph.High,
		CareTip:       sp.CareTip(),
		CareTipHTML:   tipHTML,
	}
}

func (s *Service) toPackageDTO(p *domain.Package) PackageDTO {
	return PackageDTO{
		ID:            p.ID(),
		DisplayName:   p.DisplayName(),
		Price:         p.Price(),
		PriceDisplay:  s.printer.Sprintf("₹%d", p.Price()),
		PlantCapacity: p.PlantCapacity(),
		AreaLabel:     p.AreaLabel(),
		Description:   p.Description(),
	}
}
