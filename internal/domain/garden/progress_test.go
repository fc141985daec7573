package garden

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenflow-inc/greenflow/internal/domain/catalog"
)

func testStore(t *testing.T) *catalog.Store {
	t.Helper()
	lettuce, err := catalog.NewPlantSpecies("lettuce", "Lettuce", "🥗", 30, catalog.PHRange{Low: 5.5, High: 6.5}, "")
	require.NoError(t, err)
	basil, err := catalog.NewPlantSpecies("basil", "Basil", "🌿", 25, catalog.PHRange{Low: 5.5, High: 6.5}, "")
	require.NoError(t, err)
	store, err := catalog.NewStore([]*catalog.PlantSpecies{lettuce, basil}, nil)
	require.NoError(t, err)
	return store
}

func TestNewCropView_GrowthMath(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store := testStore(t)
	lettuce, err := store.GetSpecies("lettuce")
	require.NoError(t, err)

	tests := []struct {
		name          string
		now           time.Time
		wantElapsed   int
		wantRemaining int
		wantPct       float64
		wantReady     bool
	}{
		{"same instant", t0, 0, 30, 0, false},
		{"under one day floors to zero", t0.Add(23 * time.Hour), 0, 30, 0, false},
		{"exactly one day", t0.Add(24 * time.Hour), 1, 29, 100.0 / 30.0, false},
		{"partial day floors", t0.Add(15*24*time.Hour + 23*time.Hour), 15, 15, 50, false},
		{"halfway", t0.AddDate(0, 0, 15), 15, 15, 50, false},
		{"exactly at harvest", t0.AddDate(0, 0, 30), 30, 0, 100, true},
		{"past harvest clamps", t0.AddDate(0, 0, 31), 31, 0, 100, true},
		{"far past harvest clamps", t0.AddDate(2, 0, 0), 731, 0, 100, true},
		{"planted in the future clamps to zero", t0.Add(-48 * time.Hour), 0, 30, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := NewCropView(PlantedCrop{SpeciesID: "lettuce", PlantedAt: t0}, lettuce, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantElapsed, view.DaysElapsed)
			assert.Equal(t, tt.wantRemaining, view.DaysRemaining)
			assert.InDelta(t, tt.wantPct, view.GrowthPercentage, 1e-9)
			assert.Equal(t, tt.wantReady, view.Ready)
			assert.GreaterOrEqual(t, view.GrowthPercentage, 0.0)
			assert.LessOrEqual(t, view.GrowthPercentage, 100.0)
		})
	}
}

// Full lettuce lifecycle: plant at T0, check at T0+15d and T0+31d.
func TestComputeProgress_LettuceLifecycle(t *testing.T) {
	store := testStore(t)
	t0 := time.Date(2026, 5, 10, 8, 30, 0, 0, time.UTC)

	g := NewGarden("gardener@example.com")
	g.AddPlant(PlantedCrop{SpeciesID: "lettuce", PlantedAt: t0})

	views, err := ComputeProgress(g, store, t0.AddDate(0, 0, 15))
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, 15, views[0].DaysElapsed)
	assert.Equal(t, 15, views[0].DaysRemaining)
	assert.InDelta(t, 50.0, views[0].GrowthPercentage, 1e-9)
	assert.False(t, views[0].Ready)

	views, err = ComputeProgress(g, store, t0.AddDate(0, 0, 31))
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, 31, views[0].DaysElapsed)
	assert.Equal(t, 0, views[0].DaysRemaining)
	assert.Equal(t, 100.0, views[0].GrowthPercentage)
	assert.True(t, views[0].Ready)
}

func TestComputeProgress_PreservesInsertionOrder(t *testing.T) {
	store := testStore(t)
	t0 := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)

	g := NewGarden("gardener@example.com")
	g.AddPlant(PlantedCrop{SpeciesID: "basil", PlantedAt: t0})
	g.AddPlant(PlantedCrop{SpeciesID: "lettuce", PlantedAt: t0.AddDate(0, 0, 1)})
	g.AddPlant(PlantedCrop{SpeciesID: "basil", PlantedAt: t0.AddDate(0, 0, 2)})

	views, err := ComputeProgress(g, store, t0.AddDate(0, 0, 3))
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "basil", views[0].SpeciesID)
	assert.Equal(t, "lettuce", views[1].SpeciesID)
	assert.Equal(t, "basil", views[2].SpeciesID)
	assert.Equal(t, 3, views[0].DaysElapsed)
	assert.Equal(t, 2, views[1].DaysElapsed)
	assert.Equal(t, 1, views[2].DaysElapsed)
}

func TestComputeProgress_EmptyGarden(t *testing.T) {
	store := testStore(t)
	views, err := ComputeProgress(NewGarden("gardener@example.com"), store, time.Now().UTC())
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestComputeProgress_DeterministicForFixedNow(t *testing.T) {
	store := testStore(t)
	t0 := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	now := t0.AddDate(0, 0, 12)

	g := NewGarden("gardener@example.com")
	g.AddPlant(PlantedCrop{SpeciesID: "lettuce", PlantedAt: t0})

	first, err := ComputeProgress(g, store, now)
	require.NoError(t, err)
	second, err := ComputeProgress(g, store, now)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGarden_PlantsReturnsCopy(t *testing.T) {
	g := NewGarden("gardener@example.com")
	g.AddPlant(PlantedCrop{SpeciesID: "lettuce", PlantedAt: time.Now().UTC()})

	plants := g.Plants()
	plants[0].SpeciesID = "mutated"

	assert.Equal(t, "lettuce", g.Plants()[0].SpeciesID)
}
