package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/greenflow-inc/greenflow/internal/domain/account"
	vo "github.com/greenflow-inc/greenflow/internal/domain/account/valueobjects"
	"github.com/greenflow-inc/greenflow/internal/domain/chat"
	"github.com/greenflow-inc/greenflow/internal/domain/consultation"
	"github.com/greenflow-inc/greenflow/internal/domain/garden"
)

// AccountModel is the persistence shape of an account. The subscription and
// package selection travel as JSON blobs so their shape can evolve without
// schema churn.
type AccountModel struct {
	ID              uint   `gorm:"primarykey"`
	Email           string `gorm:"uniqueIndex;not null;size:255"`
	SID             string `gorm:"uniqueIndex;not null;size:32"`
	Name            string `gorm:"not null;size:100"`
	CredentialHash  string `gorm:"not null;size:255"`
	Subscription    datatypes.JSON
	SelectedPackage datatypes.JSON
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (AccountModel) TableName() string { return "accounts" }

func accountToModel(acct *account.Account) (*AccountModel, error) {
	model := &AccountModel{
		Email:          acct.ID(),
		SID:            acct.SID(),
		Name:           acct.DisplayName(),
		CredentialHash: acct.CredentialHash(),
		CreatedAt:      acct.CreatedAt(),
	}

	if sub := acct.Subscription(); sub != nil {
		raw, err := json.Marshal(sub)
		if err != nil {
			return nil, fmt.Errorf("failed to encode subscription: %w", err)
		}
		model.Subscription = raw
	}
	if sel := acct.SelectedPackage(); sel != nil {
		raw, err := json.Marshal(sel)
		if err != nil {
			return nil, fmt.Errorf("failed to encode package selection: %w", err)
		}
		model.SelectedPackage = raw
	}
	return model, nil
}

func accountToEntity(model *AccountModel) (*account.Account, error) {
	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("stored email is invalid: %w", err)
	}

	var sub *account.Subscription
	if len(model.Subscription) > 0 {
		sub = &account.Subscription{}
		if err := json.Unmarshal(model.Subscription, sub); err != nil {
			return nil, fmt.Errorf("failed to decode subscription: %w", err)
		}
	}
	var sel *account.PackageSelection
	if len(model.SelectedPackage) > 0 {
		sel = &account.PackageSelection{}
		if err := json.Unmarshal(model.SelectedPackage, sel); err != nil {
			return nil, fmt.Errorf("failed to decode package selection: %w", err)
		}
	}

	return account.ReconstructAccount(email, model.SID, model.Name, model.CredentialHash, model.CreatedAt, sub, sel)
}

// PlantedCropModel is one planting event. Row ids preserve insertion order
// within an owner's garden.
type PlantedCropModel struct {
	ID        uint   `gorm:"primarykey"`
	OwnerID   string `gorm:"index;not null;size:255"`
	SpeciesID string `gorm:"not null;size:64"`
	PlantedAt time.Time
	CreatedAt time.Time
}

func (PlantedCropModel) TableName() string { return "planted_crops" }

func cropToEntity(model *PlantedCropModel) garden.PlantedCrop {
	return garden.PlantedCrop{SpeciesID: model.SpeciesID, PlantedAt: model.PlantedAt}
}

// ConsultationModel is one ledger row. The auto-increment primary key is the
// ledger sequence id, so ids stay contiguous and strictly increasing.
type ConsultationModel struct {
	ID          uint64 `gorm:"primarykey"`
	SID         string `gorm:"uniqueIndex;not null;size:32"`
	Name        string `gorm:"not null;size:100"`
	Email       string `gorm:"not null;size:255"`
	Phone       string `gorm:"not null;size:30"`
	Message     string `gorm:"type:text"`
	SubmittedAt time.Time
	Status      string `gorm:"not null;default:pending;size:20"`
	CreatedAt   time.Time
}

func (ConsultationModel) TableName() string { return "consultations" }

func consultationToModel(req *consultation.ConsultationRequest) *ConsultationModel {
	return &ConsultationModel{
		ID:          req.ID(),
		SID:         req.SID(),
		Name:        req.Name(),
		Email:       req.Email(),
		Phone:       req.Phone(),
		Message:     req.Message(),
		SubmittedAt: req.SubmittedAt(),
		Status:      string(req.Status()),
	}
}

func consultationToEntity(model *ConsultationModel) (*consultation.ConsultationRequest, error) {
	return consultation.ReconstructConsultationRequest(
		model.ID,
		model.SID,
		model.Name,
		model.Email,
		model.Phone,
		model.Message,
		model.SubmittedAt,
		consultation.Status(model.Status),
	)
}

// ChatExchangeModel is one stored advisor exchange.
type ChatExchangeModel struct {
	ID        uint   `gorm:"primarykey"`
	AccountID string `gorm:"index;not null;size:255"`
	UserText  string `gorm:"type:text"`
	ReplyText string `gorm:"type:text"`
	At        time.Time
	CreatedAt time.Time
}

func (ChatExchangeModel) TableName() string { return "chat_exchanges" }

func exchangeToEntity(model *ChatExchangeModel) chat.Exchange {
	return chat.Exchange{UserText: model.UserText, ReplyText: model.ReplyText, At: model.At}
}
