package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/greenflow-inc/greenflow/internal/domain/chat"
	"github.com/greenflow-inc/greenflow/internal/shared/logger"
)

// GormChatHistoryRepository implements chat.HistoryRepository on a
// relational store.
type GormChatHistoryRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewGormChatHistoryRepository creates a database-backed chat history store.
func NewGormChatHistoryRepository(db *gorm.DB, log logger.Interface) chat.HistoryRepository {
	return &GormChatHistoryRepository{db: db, logger: log}
}

func (r *GormChatHistoryRepository) Append(ctx context.Context, accountID string, ex chat.Exchange) error {
	model := &ChatExchangeModel{
		AccountID: accountID,
		UserText:  ex.UserText,
		ReplyText: ex.ReplyText,
		At:        ex.At,
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to append chat exchange", "error", err)
		return fmt.Errorf("failed to append chat exchange: %w", err)
	}
	return nil
}

func (r *GormChatHistoryRepository) History(ctx context.Context, accountID string) ([]chat.Exchange, error) {
	var models []ChatExchangeModel
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("id ASC").
		Find(&models).Error; err != nil {
		r.logger.Errorw("failed to load chat history", "error", err)
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}

	history := make([]chat.Exchange, 0, len(models))
	for i := range models {
		history = append(history, exchangeToEntity(&models[i]))
	}
	return history, nil
}
