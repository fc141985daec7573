package consultation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/greenflow-inc/greenflow/internal/domain/consultation"
	"github.com/greenflow-inc/greenflow/internal/infrastructure/repository"
	"github.com/greenflow-inc/greenflow/internal/shared/clock"
	apperrors "github.com/greenflow-inc/greenflow/internal/shared/errors"
	"github.com/greenflow-inc/greenflow/internal/shared/logger"
	"github.com/greenflow-inc/greenflow/internal/shared/services/markdown"
)

type recordingNotifier struct {
	mu     sync.Mutex
	booked []uint64
	done   chan struct{}
}

func newRecordingNotifier(expected int) *recordingNotifier {
	return &recordingNotifier{done: make(chan struct{}, expected)}
}

func (n *recordingNotifier) NotifyBooked(name, email string, requestID uint64) error {
	n.mu.Lock()
	n.booked = append(n.booked, requestID)
	n.mu.Unlock()
	n.done <- struct{}{}
	return nil
}

func newTestService(notifier Notifier) *Service {
	return NewService(
		repository.NewMemoryConsultationLedger(),
		notifier,
		markdown.NewService(),
		clock.NewFixed(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)),
		logger.NewLogger(),
	)
}

func TestBook_AssignsSequentialIDs(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	for i := uint64(1); i <= 3; i++ {
		dto, err := svc.Book(ctx, BookRequest{
			Name:  "Asha",
			Email: "asha@example.com",
			Phone: "9876543210",
		})
		require.NoError(t, err)
		assert.Equal(t, i, dto.ID)
		assert.Equal(t, "pending", dto.Status)
	}

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, dto := range all {
		assert.Equal(t, uint64(i+1), dto.ID)
	}
}

func TestBook_MissingFields(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	cases := []struct {
		name string
		req  BookRequest
	}{
		{"missing name", BookRequest{Email: "a@example.com", Phone: "9876543210"}},
		{"missing email", BookRequest{Name: "Asha", Phone: "9876543210"}},
		{"missing phone", BookRequest{Name: "Asha", Email: "a@example.com"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Book(ctx, tc.req)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidationError(err))
			assert.ErrorIs(t, err, domain.ErrMissingField)
		})
	}

	// Failed bookings consume no ids.
	dto, err := svc.Book(ctx, BookRequest{Name: "Asha", Email: "a@example.com", Phone: "9876543210"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), dto.ID)
}

func TestBook_MessageIsOptionalAndStripped(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	dto, err := svc.Book(ctx, BookRequest{
		Name:    "Asha",
		Email:   "asha@example.com",
		Phone:   "9876543210",
		Message: "<b>please call</b> after 6pm",
	})
	require.NoError(t, err)
	assert.Equal(t, "please call after 6pm", dto.Message)
}

func TestBook_NotifiesAsynchronously(t *testing.T) {
	notifier := newRecordingNotifier(1)
	svc := newTestService(notifier)

	dto, err := svc.Book(context.Background(), BookRequest{
		Name:  "Asha",
		Email: "asha@example.com",
		Phone: "9876543210",
	})
	require.NoError(t, err)

	select {
	case <-notifier.done:
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was never called")
	}

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	require.Len(t, notifier.booked, 1)
	assert.Equal(t, dto.ID, notifier.booked[0])
}
