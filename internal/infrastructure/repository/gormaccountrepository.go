package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/greenflow-inc/greenflow/internal/domain/account"
	"github.com/greenflow-inc/greenflow/internal/shared/logger"
)

// GormAccountRepository implements account.Repository on a relational store.
// The unique index on email makes Create an atomic check-and-insert.
type GormAccountRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewGormAccountRepository creates a database-backed account repository.
func NewGormAccountRepository(db *gorm.DB, log logger.Interface) account.Repository {
	return &GormAccountRepository{db: db, logger: log}
}

func (r *GormAccountRepository) Create(ctx context.Context, acct *account.Account) error {
	model, err := accountToModel(acct)
	if err != nil {
		r.logger.Errorw("failed to map account to model", "error", err)
		return fmt.Errorf("failed to map account: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return account.ErrDuplicateAccount
		}
		r.logger.Errorw("failed to create account", "error", err)
		return fmt.Errorf("failed to create account: %w", err)
	}

	r.logger.Infow("account created", "sid", model.SID)
	return nil
}

func (r *GormAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	var model AccountModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, account.ErrAccountNotFound
		}
		r.logger.Errorw("failed to get account by email", "error", err)
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return accountToEntity(&model)
}

func (r *GormAccountRepository) Update(ctx context.Context, acct *account.Account) error {
	model, err := accountToModel(acct)
	if err != nil {
		r.logger.Errorw("failed to map account to model", "error", err)
		return fmt.Errorf("failed to map account: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&AccountModel{}).
		Where("email = ?", model.Email).
		Updates(map[string]any{
			"name":             model.Name,
			"credential_hash":  model.CredentialHash,
			"subscription":     model.Subscription,
			"selected_package": model.SelectedPackage,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update account", "error", result.Error)
		return fmt.Errorf("failed to update account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return account.ErrAccountNotFound
	}
	return nil
}

func (r *GormAccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&AccountModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check account existence", "error", err)
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}
	return count > 0, nil
}

func (r *GormAccountRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&AccountModel{}).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count accounts", "error", err)
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return count, nil
}

// CountSubscribed loads subscription blobs and evaluates the window in Go so
// the activity rule lives in exactly one place (the domain).
func (r *GormAccountRepository) CountSubscribed(ctx context.Context, now time.Time) (int64, error) {
	var models []AccountModel
	if err := r.db.WithContext(ctx).Where("subscription IS NOT NULL").Find(&models).Error; err != nil {
		r.logger.Errorw("failed to load subscribed accounts", "error", err)
		return 0, fmt.Errorf("failed to count subscribed accounts: %w", err)
	}

	var count int64
	for i := range models {
		acct, err := accountToEntity(&models[i])
		if err != nil {
			r.logger.Warnw("failed to map account, skipping", "sid", models[i].SID, "error", err)
			continue
		}
		if acct.EffectiveSubscription(now) != nil {
			count++
		}
	}
	return count, nil
}
