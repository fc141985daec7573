package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/greenflow-inc/greenflow/internal/domain/catalog"
	apperrors "github.com/greenflow-inc/greenflow/internal/shared/errors"
	"github.com/greenflow-inc/greenflow/internal/shared/logger"
	"github.com/greenflow-inc/greenflow/internal/shared/services/markdown"
)

func newTestService() *Service {
	return NewService(domain.DefaultStore(), markdown.NewService(), logger.NewLogger())
}

func TestListSpecies_OrderAndContent(t *testing.T) {
	svc := newTestService()

	species := svc.ListSpecies()
	require.Len(t, species, 6)
	assert.Equal(t, "cherry_tomatoes", species[0].ID)
	assert.Equal(t, "mint", species[5].ID)
	assert.Equal(t, 60, species[0].DaysToHarvest)
	assert.NotEmpty(t, species[0].CareTipHTML)
}

func TestGetSpecies(t *testing.T) {
	svc := newTestService()

	sp, err := svc.GetSpecies("lettuce")
	require.NoError(t, err)
	assert.Equal(t, 30, sp.DaysToHarvest)
	assert.Equal(t, 5.5, sp.PHLow)
	assert.Equal(t, 6.5, sp.PHHigh)

	_, err = svc.GetSpecies("kudzu")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
	assert.ErrorIs(t, err, domain.ErrSpeciesNotFound)
}

func TestListPackages_PriceDisplay(t *testing.T) {
	svc := newTestService()

	packages := svc.ListPackages()
	require.Len(t, packages, 3)
	assert.Equal(t, "balcony_40", packages[0].ID)
	assert.Equal(t, 3000, packages[0].Price)
	assert.Equal(t, "₹3,000", packages[0].PriceDisplay)
	assert.Equal(t, "terrace_100", packages[2].ID)
	assert.Equal(t, "₹6,000", packages[2].PriceDisplay)
}

func TestGetPackage_Unknown(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetPackage("penthouse_500")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
	assert.ErrorIs(t, err, domain.ErrPackageNotFound)
}

func TestFeatures(t *testing.T) {
	svc := newTestService()

	features := svc.Features()
	require.Len(t, features, 3)
	for _, f := range features {
		assert.NotEmpty(t, f.Title)
		assert.NotEmpty(t, f.Description)
	}
}
