package account

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/greenflow-inc/greenflow/internal/domain/account/valueobjects"
)

// fakeHasher is a deterministic stand-in for bcrypt.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("mismatch")
	}
	return nil
}

func newAccount(t *testing.T, email string, now time.Time) *Account {
	t.Helper()
	addr, err := vo.NewEmail(email)
	require.NoError(t, err)
	acct, err := NewAccount(addr, "Grower", now)
	require.NoError(t, err)
	return acct
}

func TestNewAccount(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	acct := newAccount(t, "Grower@Example.COM", now)

	assert.Equal(t, "grower@example.com", acct.ID(), "email is normalized")
	assert.Equal(t, "Grower", acct.DisplayName())
	assert.Equal(t, now, acct.CreatedAt())
	assert.Contains(t, acct.SID(), "acct_")
	assert.Nil(t, acct.Subscription())
	assert.Empty(t, acct.CredentialHash())
}

func TestNewAccount_MissingInputs(t *testing.T) {
	addr, err := vo.NewEmail("grower@example.com")
	require.NoError(t, err)

	_, err = NewAccount(nil, "Grower", time.Now().UTC())
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = NewAccount(addr, "", time.Now().UTC())
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestSetCredential_StoresHashOnly(t *testing.T) {
	acct := newAccount(t, "grower@example.com", time.Now().UTC())
	pw, err := vo.NewPassword("secret1")
	require.NoError(t, err)

	require.NoError(t, acct.SetCredential(pw, fakeHasher{}))
	assert.Equal(t, "hashed:secret1", acct.CredentialHash())
}

func TestVerifyCredential(t *testing.T) {
	acct := newAccount(t, "grower@example.com", time.Now().UTC())
	pw, err := vo.NewPassword("secret1")
	require.NoError(t, err)
	require.NoError(t, acct.SetCredential(pw, fakeHasher{}))

	assert.NoError(t, acct.VerifyCredential("secret1", fakeHasher{}))
	assert.ErrorIs(t, acct.VerifyCredential("wrong", fakeHasher{}), ErrPasswordMismatch)
}

func TestVerifyCredential_NoCredentialSet(t *testing.T) {
	acct := newAccount(t, "grower@example.com", time.Now().UTC())
	assert.ErrorIs(t, acct.VerifyCredential("anything", fakeHasher{}), ErrPasswordMismatch)
}

func TestSubscribe_SetsWindow(t *testing.T) {
	t0 := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	acct := newAccount(t, "grower@example.com", t0)

	sub, err := acct.Subscribe("premium", 30, t0)
	require.NoError(t, err)
	assert.Equal(t, "premium", sub.Plan)
	assert.Equal(t, t0, sub.StartedAt)
	assert.Equal(t, t0.AddDate(0, 0, 30), sub.EndsAt)
}

func TestSubscribe_OverwritesWithoutStacking(t *testing.T) {
	t0 := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	acct := newAccount(t, "grower@example.com", t0)

	_, err := acct.Subscribe("premium", 30, t0)
	require.NoError(t, err)

	t1 := t0.AddDate(0, 0, 10)
	sub, err := acct.Subscribe("premium", 30, t1)
	require.NoError(t, err)

	// The second window replaces the first entirely.
	assert.Equal(t, t1, sub.StartedAt)
	assert.Equal(t, t1.AddDate(0, 0, 30), sub.EndsAt)
	assert.Equal(t, sub, *acct.Subscription())
}

func TestSubscriptionStatus_Boundaries(t *testing.T) {
	t0 := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	acct := newAccount(t, "grower@example.com", t0)
	_, err := acct.Subscribe("premium", 30, t0)
	require.NoError(t, err)

	assert.True(t, acct.SubscriptionStatus(t0.AddDate(0, 0, 29)).Active)
	assert.False(t, acct.SubscriptionStatus(t0.AddDate(0, 0, 30)).Active, "ends_at itself is not active")
	assert.False(t, acct.SubscriptionStatus(t0.AddDate(0, 0, 31)).Active)

	status := acct.SubscriptionStatus(t0.AddDate(0, 0, 31))
	require.NotNil(t, status.EndsAt, "ends_at stays visible after expiry")
	assert.Equal(t, t0.AddDate(0, 0, 30), *status.EndsAt)
}

func TestSubscriptionStatus_NoSubscription(t *testing.T) {
	acct := newAccount(t, "grower@example.com", time.Now().UTC())
	status := acct.SubscriptionStatus(time.Now().UTC())
	assert.False(t, status.Active)
	assert.Nil(t, status.EndsAt)
}

func TestEffectiveSubscription_ExpiredReadsAsNone(t *testing.T) {
	t0 := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	acct := newAccount(t, "grower@example.com", t0)
	_, err := acct.Subscribe("premium", 30, t0)
	require.NoError(t, err)

	assert.NotNil(t, acct.EffectiveSubscription(t0.AddDate(0, 0, 10)))
	assert.Nil(t, acct.EffectiveSubscription(t0.AddDate(0, 0, 40)))
	// The record itself is never deleted.
	assert.NotNil(t, acct.Subscription())
}

func TestSelectPackage(t *testing.T) {
	now := time.Now().UTC()
	acct := newAccount(t, "grower@example.com", now)

	require.NoError(t, acct.SelectPackage("balcony_40", now))
	sel := acct.SelectedPackage()
	require.NotNil(t, sel)
	assert.Equal(t, "balcony_40", sel.PackageID)
	assert.Equal(t, now, sel.SelectedAt)

	assert.ErrorIs(t, acct.SelectPackage("", now), ErrMissingField)
}

func TestClone_IsIndependent(t *testing.T) {
	t0 := time.Now().UTC()
	acct := newAccount(t, "grower@example.com", t0)
	_, err := acct.Subscribe("premium", 30, t0)
	require.NoError(t, err)

	cp := acct.Clone()
	_, err = acct.Subscribe("premium", 60, t0.AddDate(0, 0, 1))
	require.NoError(t, err)

	assert.Equal(t, t0.AddDate(0, 0, 30), cp.Subscription().EndsAt, "clone is unaffected by later mutation")
}
