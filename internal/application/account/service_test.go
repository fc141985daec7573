package account

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/greenflow-inc/greenflow/internal/domain/account"
	"github.com/greenflow-inc/greenflow/internal/domain/catalog"
	"github.com/greenflow-inc/greenflow/internal/infrastructure/repository"
	"github.com/greenflow-inc/greenflow/internal/shared/clock"
	"github.com/greenflow-inc/greenflow/internal/shared/config"
	apperrors "github.com/greenflow-inc/greenflow/internal/shared/errors"
	"github.com/greenflow-inc/greenflow/internal/shared/logger"
)

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return assert.AnError
	}
	return nil
}

func newTestService(clk clock.Clock) *Service {
	return NewService(
		repository.NewMemoryAccountRepository(),
		fakeHasher{},
		catalog.DefaultStore(),
		clk,
		config.SubscriptionConfig{DefaultPlan: "monthly", DurationDays: 30},
		logger.NewLogger(),
	)
}

func TestRegisterThenAuthenticate(t *testing.T) {
	svc := newTestService(clock.NewFixed(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)))
	ctx := context.Background()

	registered, err := svc.Register(ctx, RegisterRequest{
		Name:     "Asha",
		Email:    "Asha@Example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", registered.Email)
	assert.Equal(t, "Asha", registered.Name)

	authed, err := svc.Authenticate(ctx, "asha@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered.Name, authed.Name)
	assert.Equal(t, registered.Email, authed.Email)
	assert.Equal(t, registered.SID, authed.SID)
}

func TestRegister_MissingFields(t *testing.T) {
	svc := newTestService(clock.NewFixed(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)))
	ctx := context.Background()

	cases := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing name", RegisterRequest{Email: "a@example.com", Password: "secret1"}},
		{"missing email", RegisterRequest{Name: "Asha", Password: "secret1"}},
		{"missing password", RegisterRequest{Name: "Asha", Email: "a@example.com"}},
		{"whitespace name", RegisterRequest{Name: "   ", Email: "a@example.com", Password: "secret1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.req)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidationError(err))
			assert.ErrorIs(t, err, domain.ErrMissingField)
		})
	}
}

func TestRegister_WeakPassword(t *testing.T) {
	svc := newTestService(clock.NewFixed(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)))

	_, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "five5",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.ErrorIs(t, err, domain.ErrWeakCredential)
}

func TestRegister_Duplicate(t *testing.T) {
	svc := newTestService(clock.NewFixed(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)))
	ctx := context.Background()

	first, err := svc.Register(ctx, RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{Name: "Imposter", Email: "asha@example.com", Password: "other99"})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
	assert.ErrorIs(t, err, domain.ErrDuplicateAccount)

	// The stored record kept the original credentials and name.
	got, err := svc.Get(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.Name, got.Name)
	assert.Equal(t, first.SID, got.SID)
}

func TestAuthenticate_UniformFailure(t *testing.T) {
	svc := newTestService(clock.NewFixed(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)))
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "secret1"})
	require.NoError(t, err)

	unknownErr := func() error {
		_, err := svc.Authenticate(ctx, "nobody@example.com", "secret1")
		return err
	}()
	wrongPassErr := func() error {
		_, err := svc.Authenticate(ctx, "asha@example.com", "wrong99")
		return err
	}()

	// Both failure modes read identically to the caller.
	require.Error(t, unknownErr)
	require.Error(t, wrongPassErr)
	assert.True(t, apperrors.IsUnauthorizedError(unknownErr))
	assert.True(t, apperrors.IsUnauthorizedError(wrongPassErr))
	assert.Equal(t, apperrors.GetAppError(unknownErr).Message, apperrors.GetAppError(wrongPassErr).Message)

	// The internal causes stay distinguishable.
	assert.ErrorIs(t, unknownErr, domain.ErrAccountNotFound)
	assert.NotErrorIs(t, wrongPassErr, domain.ErrAccountNotFound)
	assert.ErrorIs(t, wrongPassErr, domain.ErrAuthFailure)
}

func TestSubscribe_OverwritesWindow(t *testing.T) {
	clk := clock.NewFixed(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	svc := newTestService(clk)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "secret1"})
	require.NoError(t, err)

	first, err := svc.Subscribe(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, "monthly", first.Plan)
	assert.Equal(t, clk.Now().AddDate(0, 0, 30), first.EndsAt)

	// Subscribing again ten days later restarts the window instead of
	// extending the old one.
	clk.Advance(10 * 24 * time.Hour)
	second, err := svc.Subscribe(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, clk.Now().AddDate(0, 0, 30), second.EndsAt)
}

func TestSubscriptionStatus_Boundaries(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	clk := clock.NewFixed(start)
	svc := newTestService(clk)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "secret1"})
	require.NoError(t, err)

	status, err := svc.SubscriptionStatus(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.False(t, status.Active)
	assert.Nil(t, status.EndsAt)

	_, err = svc.Subscribe(ctx, "asha@example.com")
	require.NoError(t, err)

	clk.Set(start.AddDate(0, 0, 29))
	status, err = svc.SubscriptionStatus(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.True(t, status.Active)

	// The window is half-open: the instant ends_at is reached the
	// subscription no longer covers now.
	clk.Set(start.AddDate(0, 0, 30))
	status, err = svc.SubscriptionStatus(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.False(t, status.Active)
	require.NotNil(t, status.EndsAt)
	assert.Equal(t, start.AddDate(0, 0, 30), *status.EndsAt)
}

func TestSelectPackage(t *testing.T) {
	svc := newTestService(clock.NewFixed(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)))
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "secret1"})
	require.NoError(t, err)

	dto, err := svc.SelectPackage(ctx, "asha@example.com", "balcony_40")
	require.NoError(t, err)
	require.NotNil(t, dto.SelectedPackage)
	assert.Equal(t, "balcony_40", dto.SelectedPackage.PackageID)

	_, err = svc.SelectPackage(ctx, "asha@example.com", "penthouse_500")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
	assert.ErrorIs(t, err, catalog.ErrPackageNotFound)
}

func TestGet_UnknownAccount(t *testing.T) {
	svc := newTestService(clock.NewFixed(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)))

	_, err := svc.Get(context.Background(), "nobody@example.com")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
