package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/greenflow-inc/greenflow/internal/domain/consultation"
	"github.com/greenflow-inc/greenflow/internal/shared/logger"
)

// GormConsultationLedger implements consultation.Ledger on a relational
// store. The auto-increment primary key is the ledger sequence, which keeps
// ids strictly increasing and contiguous across concurrent appends.
type GormConsultationLedger struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewGormConsultationLedger creates a database-backed consultation ledger.
func NewGormConsultationLedger(db *gorm.DB, log logger.Interface) consultation.Ledger {
	return &GormConsultationLedger{db: db, logger: log}
}

func (r *GormConsultationLedger) Append(ctx context.Context, req *consultation.ConsultationRequest) error {
	model := consultationToModel(req)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to append consultation", "error", err)
		return fmt.Errorf("failed to append consultation: %w", err)
	}

	if err := req.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set consultation id: %w", err)
	}

	r.logger.Infow("consultation appended", "id", model.ID, "sid", model.SID)
	return nil
}

func (r *GormConsultationLedger) ListAll(ctx context.Context) ([]*consultation.ConsultationRequest, error) {
	var models []ConsultationModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		r.logger.Errorw("failed to list consultations", "error", err)
		return nil, fmt.Errorf("failed to list consultations: %w", err)
	}

	requests := make([]*consultation.ConsultationRequest, 0, len(models))
	for i := range models {
		req, err := consultationToEntity(&models[i])
		if err != nil {
			r.logger.Warnw("failed to map consultation, skipping", "id", models[i].ID, "error", err)
			continue
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func (r *GormConsultationLedger) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ConsultationModel{}).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count consultations", "error", err)
		return 0, fmt.Errorf("failed to count consultations: %w", err)
	}
	return count, nil
}

func (r *GormConsultationLedger) CountByStatus(ctx context.Context, status consultation.Status) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ConsultationModel{}).
		Where("status = ?", string(status)).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count consultations by status", "status", status, "error", err)
		return 0, fmt.Errorf("failed to count consultations by status: %w", err)
	}
	return count, nil
}
