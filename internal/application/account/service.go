// Package account is the application service for registration, login,
// subscription and package selection.
package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domain "github.com/greenflow-inc/greenflow/internal/domain/account"
	vo "github.com/greenflow-inc/greenflow/internal/domain/account/valueobjects"
	"github.com/greenflow-inc/greenflow/internal/domain/catalog"
	"github.com/greenflow-inc/greenflow/internal/shared/clock"
	"github.com/greenflow-inc/greenflow/internal/shared/config"
	apperrors "github.com/greenflow-inc/greenflow/internal/shared/errors"
	"github.com/greenflow-inc/greenflow/internal/shared/logger"
)

// Service coordinates account operations. Every operation samples the clock
// exactly once and passes that instant through.
type Service struct {
	repo    domain.Repository
	hasher  domain.PasswordHasher
	catalog *catalog.Store
	clock   clock.Clock
	subCfg  config.SubscriptionConfig
	logger  logger.Interface
}

// NewService wires an account service.
func NewService(
	repo domain.Repository,
	hasher domain.PasswordHasher,
	store *catalog.Store,
	clk clock.Clock,
	subCfg config.SubscriptionConfig,
	log logger.Interface,
) *Service {
	return &Service{
		repo:    repo,
		hasher:  hasher,
		catalog: store,
		clock:   clk,
		subCfg:  subCfg,
		logger:  log,
	}
}

// Register creates an account. Failure kinds: missing field, weak credential,
// duplicate account. The raw password is hashed immediately and never logged.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AccountDTO, error) {
	now := s.clock.Now()

	name := strings.TrimSpace(req.Name)
	emailInput := strings.TrimSpace(req.Email)
	rawPassword := strings.TrimSpace(req.Password)

	if name == "" {
		return nil, apperrors.NewValidationError("name is required").WithCause(domain.MissingField("name"))
	}
	if emailInput == "" {
		return nil, apperrors.NewValidationError("email is required").WithCause(domain.MissingField("email"))
	}
	if rawPassword == "" {
		return nil, apperrors.NewValidationError("password is required").WithCause(domain.MissingField("password"))
	}

	email, err := vo.NewEmail(emailInput)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid email address", err.Error())
	}

	password, err := vo.NewPassword(rawPassword)
	if err != nil {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("password must be at least %d characters", vo.MinPasswordLength),
		).WithCause(domain.ErrWeakCredential)
	}

	acct, err := domain.NewAccount(email, name, now)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid registration input", err.Error())
	}
	if err := acct.SetCredential(password, s.hasher); err != nil {
		s.logger.Errorw("failed to hash credential", "error", err)
		return nil, apperrors.NewInternalError("failed to create account")
	}

	// Create is an atomic check-and-insert; a concurrent registration for
	// the same email loses here with ErrDuplicateAccount.
	if err := s.repo.Create(ctx, acct); err != nil {
		if errors.Is(err, domain.ErrDuplicateAccount) {
			return nil, apperrors.NewConflictError("email already registered").WithCause(err)
		}
		s.logger.Errorw("failed to store account", "error", err)
		return nil, apperrors.NewInternalError("failed to create account")
	}

	s.logger.Infow("account registered", "account_id", acct.ID(), "sid", acct.SID())

	return toAccountDTO(acct, now), nil
}

// Authenticate verifies credentials. Unknown email and wrong password are
// indistinguishable to the caller; the distinction survives internally as the
// wrapped cause for logging and tests.
func (s *Service) Authenticate(ctx context.Context, email, rawPassword string) (*AccountDTO, error) {
	now := s.clock.Now()

	acct, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, authFailure(err)
		}
		s.logger.Errorw("failed to load account", "error", err)
		return nil, apperrors.NewInternalError("failed to authenticate")
	}

	if err := acct.VerifyCredential(rawPassword, s.hasher); err != nil {
		return nil, authFailure(err)
	}

	return toAccountDTO(acct, now), nil
}

// Get returns the account view for an authenticated identity.
func (s *Service) Get(ctx context.Context, accountID string) (*AccountDTO, error) {
	now := s.clock.Now()
	acct, err := s.getAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return toAccountDTO(acct, now), nil
}

// Subscribe activates the configured default plan for the account,
// overwriting any prior subscription window.
func (s *Service) Subscribe(ctx context.Context, accountID string) (*domain.Subscription, error) {
	now := s.clock.Now()

	acct, err := s.getAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	sub, err := acct.Subscribe(s.subCfg.DefaultPlan, s.subCfg.DurationDays, now)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid subscription terms", err.Error())
	}

	if err := s.repo.Update(ctx, acct); err != nil {
		s.logger.Errorw("failed to store subscription", "account_id", accountID, "error", err)
		return nil, apperrors.NewInternalError("failed to activate subscription")
	}

	s.logger.Infow("subscription activated",
		"account_id", accountID, "plan", sub.Plan, "ends_at", sub.EndsAt)

	return &sub, nil
}

// SubscriptionStatus reports whether the account is subscribed right now.
func (s *Service) SubscriptionStatus(ctx context.Context, accountID string) (*SubscriptionStatusDTO, error) {
	now := s.clock.Now()

	acct, err := s.getAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	status := acct.SubscriptionStatus(now)
	return &SubscriptionStatusDTO{Active: status.Active, EndsAt: status.EndsAt}, nil
}

// SelectPackage records a kit package choice after validating it against the
// catalog.
func (s *Service) SelectPackage(ctx context.Context, accountID, packageID string) (*AccountDTO, error) {
	now := s.clock.Now()

	if !s.catalog.HasPackage(packageID) {
		return nil, apperrors.NewNotFoundError("unknown package", packageID).WithCause(catalog.ErrPackageNotFound)
	}

	acct, err := s.getAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if err := acct.SelectPackage(packageID, now); err != nil {
		return nil, apperrors.NewValidationError("invalid package selection", err.Error())
	}
	if err := s.repo.Update(ctx, acct); err != nil {
		s.logger.Errorw("failed to store package selection", "account_id", accountID, "error", err)
		return nil, apperrors.NewInternalError("failed to record package selection")
	}

	s.logger.Infow("package selected", "account_id", accountID, "package_id", packageID)

	return toAccountDTO(acct, now), nil
}

func (s *Service) getAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	acct, err := s.repo.GetByEmail(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, apperrors.NewNotFoundError("account not found").WithCause(err)
		}
		s.logger.Errorw("failed to load account", "account_id", accountID, "error", err)
		return nil, apperrors.NewInternalError("failed to load account")
	}
	return acct, nil
}

func authFailure(cause error) error {
	return apperrors.NewUnauthorizedError("invalid email or password").
		WithCause(fmt.Errorf("%w: %w", domain.ErrAuthFailure, cause))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
