package garden

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountDomain "github.com/greenflow-inc/greenflow/internal/domain/account"
	vo "github.com/greenflow-inc/greenflow/internal/domain/account/valueobjects"
	"github.com/greenflow-inc/greenflow/internal/domain/catalog"
	domain "github.com/greenflow-inc/greenflow/internal/domain/garden"
	"github.com/greenflow-inc/greenflow/internal/infrastructure/repository"
	"github.com/greenflow-inc/greenflow/internal/shared/clock"
	apperrors "github.com/greenflow-inc/greenflow/internal/shared/errors"
	"github.com/greenflow-inc/greenflow/internal/shared/logger"
)

func newTestService(t *testing.T, clk clock.Clock) (*Service, accountDomain.Repository) {
	t.Helper()
	accounts := repository.NewMemoryAccountRepository()
	svc := NewService(
		repository.NewMemoryGardenRepository(),
		accounts,
		catalog.DefaultStore(),
		clk,
		logger.NewLogger(),
	)
	return svc, accounts
}

func seedAccount(t *testing.T, accounts accountDomain.Repository, emailAddr string, now time.Time) {
	t.Helper()
	email, err := vo.NewEmail(emailAddr)
	require.NoError(t, err)
	acct, err := accountDomain.NewAccount(email, "Asha", now)
	require.NoError(t, err)
	require.NoError(t, accounts.Create(context.Background(), acct))
}

func TestAddPlantThenProgressSameInstant(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t, clock.NewFixed(now))
	ctx := context.Background()

	crop, err := svc.AddPlant(ctx, "asha@example.com", "lettuce")
	require.NoError(t, err)
	assert.Equal(t, now, crop.PlantedAt)

	views, err := svc.Progress(ctx, "asha@example.com")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, 0, views[0].DaysElapsed)
	assert.Equal(t, 30, views[0].TotalDays)
	assert.Equal(t, 30, views[0].DaysRemaining)
	assert.Equal(t, 0.0, views[0].GrowthPercentage)
	assert.False(t, views[0].Ready)
}

func TestAddPlant_UnknownSpecies(t *testing.T) {
	svc, _ := newTestService(t, clock.NewFixed(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)))

	_, err := svc.AddPlant(context.Background(), "asha@example.com", "kudzu")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
	assert.ErrorIs(t, err, domain.ErrUnknownSpecies)
}

func TestProgress_NeverPlantedOwnerIsEmpty(t *testing.T) {
	svc, _ := newTestService(t, clock.NewFixed(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)))

	views, err := svc.Progress(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestProgress_AdvancesWithClock(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	clk := clock.NewFixed(start)
	svc, _ := newTestService(t, clk)
	ctx := context.Background()

	_, err := svc.AddPlant(ctx, "asha@example.com", "basil")
	require.NoError(t, err)

	clk.Set(start.AddDate(0, 0, 25))
	views, err := svc.Progress(ctx, "asha@example.com")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, 25, views[0].DaysElapsed)
	assert.Equal(t, 100.0, views[0].GrowthPercentage)
	assert.True(t, views[0].Ready)
}

func TestDashboard(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	clk := clock.NewFixed(start)
	svc, accounts := newTestService(t, clk)
	ctx := context.Background()
	seedAccount(t, accounts, "asha@example.com", start)

	_, err := svc.AddPlant(ctx, "asha@example.com", "basil") // 25 days
	require.NoError(t, err)
	_, err = svc.AddPlant(ctx, "asha@example.com", "strawberry") // 90 days
	require.NoError(t, err)

	clk.Set(start.AddDate(0, 0, 26))
	dto, err := svc.Dashboard(ctx, "asha@example.com")
	require.NoError(t, err)

	assert.Equal(t, "Asha", dto.Name)
	assert.Equal(t, "asha@example.com", dto.Email)
	assert.False(t, dto.Subscribed)
	require.Len(t, dto.Plants, 2)
	assert.Equal(t, 2, dto.Stats.TotalPlants)
	assert.Equal(t, 1, dto.Stats.Ready)
	assert.Equal(t, 0, dto.Stats.Growing)
}

func TestDashboard_UnknownAccount(t *testing.T) {
	svc, _ := newTestService(t, clock.NewFixed(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)))

	_, err := svc.Dashboard(context.Background(), "nobody@example.com")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
