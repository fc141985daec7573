// Package consultation is the application service for expert booking
// requests.
package consultation

import (
	"context"
	"errors"
	"time"

	domain "github.com/greenflow-inc/greenflow/internal/domain/consultation"
	"github.com/greenflow-inc/greenflow/internal/shared/clock"
	apperrors "github.com/greenflow-inc/greenflow/internal/shared/errors"
	"github.com/greenflow-inc/greenflow/internal/shared/goroutine"
	"github.com/greenflow-inc/greenflow/internal/shared/logger"
	"github.com/greenflow-inc/greenflow/internal/shared/services/markdown"
)

// Notifier delivers booking confirmations out of band. Implementations must
// be safe for concurrent use; a nil-op implementation is used when email is
// not configured.
type Notifier interface {
	NotifyBooked(name, email string, requestID uint64) error
}

// BookRequest carries booking input.
type BookRequest struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// ConsultationDTO is the serializable booking view.
type ConsultationDTO struct {
	ID          uint64    `json:"id"`
	SID         string    `json:"sid"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Message     string    `json:"message,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
	Status      string    `json:"status"`
}

// Service coordinates bookings against the append-only ledger.
type Service struct {
	ledger   domain.Ledger
	notifier Notifier
	markdown markdown.Service
	clock    clock.Clock
	logger   logger.Interface
}

// NewService wires a consultation service.
func NewService(
	ledger domain.Ledger,
	notifier Notifier,
	md markdown.Service,
	clk clock.Clock,
	log logger.Interface,
) *Service {
	return &Service{
		ledger:   ledger,
		notifier: notifier,
		markdown: md,
		clock:    clk,
		logger:   log,
	}
}

// Book validates and appends a booking. The assigned id is strictly
// increasing in submission order. Confirmation email goes out asynchronously
// and never blocks or fails the booking.
func (s *Service) Book(ctx context.Context, req BookRequest) (*ConsultationDTO, error) {
	now := s.clock.Now()

	request, err := domain.NewConsultationRequest(
		req.Name,
		req.Email,
		req.Phone,
		s.markdown.StripTags(req.Message),
		now,
	)
	if err != nil {
		if errors.Is(err, domain.ErrMissingField) {
			return nil, apperrors.NewValidationError("name, email and phone are required", err.Error()).WithCause(err)
		}
		return nil, apperrors.NewValidationError("invalid booking input", err.Error())
	}

	if err := s.ledger.Append(ctx, request); err != nil {
		s.logger.Errorw("failed to append consultation", "error", err)
		return nil, apperrors.NewInternalError("failed to book consultation")
	}

	s.logger.Infow("consultation booked",
		"id", request.ID(), "sid", request.SID())

	if s.notifier != nil {
		name, email, requestID := request.Name(), request.Email(), request.ID()
		goroutine.SafeGo(s.logger, "consultation-confirmation", func() {
			if err := s.notifier.NotifyBooked(name, email, requestID); err != nil {
				s.logger.Warnw("failed to send booking confirmation", "id", requestID, "error", err)
			}
		})
	}

	return toDTO(request), nil
}

// ListAll returns every booking in id order.
func (s *Service) ListAll(ctx context.Context) ([]ConsultationDTO, error) {
	requests, err := s.ledger.ListAll(ctx)
	if err != nil {
		s.logger.Errorw("failed to list consultations", "error", err)
		return nil, apperrors.NewInternalError("failed to list consultations")
	}

	out := make([]ConsultationDTO, 0, len(requests))
	for _, r := range requests {
		out = append(out, *toDTO(r))
	}
	return out, nil
}

func toDTO(r *domain.ConsultationRequest) *ConsultationDTO {
	return &ConsultationDTO{
		ID:          r.ID(),
		SID:         r.SID(),
		Name:        r.Name(),
		Email:       r.Email(),
		Phone:       r.Phone(),
		Message:     r.Message(),
		SubmittedAt: r.SubmittedAt(),
		Status:      string(r.Status()),
	}
}
