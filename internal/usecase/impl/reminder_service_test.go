package impl

import (
	"context"
	"testing"
	"time"

	"gatherly/internal/domain/entity"
	mockRepo "gatherly/internal/mocks/repository"
	mockService "gatherly/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reminderMocks struct {
	reminderRepo *mockRepo.MockReminderRepository
	deviceRepo   *mockRepo.MockDeviceRepository
	pushSender   *mockService.MockPushSender
}

func newReminderService(t *testing.T) (*reminderService, *reminderMocks) {
	m := &reminderMocks{
		reminderRepo: mockRepo.NewMockReminderRepository(t),
		deviceRepo:   mockRepo.NewMockDeviceRepository(t),
		pushSender:   mockService.NewMockPushSender(t),
	}

	srv := &reminderService{
		reminderRepo: m.reminderRepo,
		deviceRepo:   m.deviceRepo,
		pushSender:   m.pushSender,
		logger:       newDiscardLogger(),
	}

	return srv, m
}

func TestReminderService_List_SweepAndBadge(t *testing.T) {
	srv, m := newReminderService(t)
	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()

	expired := &entity.Reminder{ID: uuid.New(), UserID: userID, IsRead: true, TriggerAt: now.Add(-4 * 24 * time.Hour)}
	retained := &entity.Reminder{ID: uuid.New(), UserID: userID, IsRead: true, TriggerAt: now.Add(-2 * 24 * time.Hour)}
	unread := &entity.Reminder{ID: uuid.New(), UserID: userID, TriggerAt: now.Add(-time.Hour)}
	future := &entity.Reminder{ID: uuid.New(), UserID: userID, TriggerAt: now.Add(time.Hour)}

	m.reminderRepo.On("FindByUser", ctx, userID).
		Return([]*entity.Reminder{expired, retained, unread, future}, nil)
	m.reminderRepo.On("Delete", ctx, userID, expired.ID).Return(nil)

	out, err := srv.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, out.Reminders, 2)
	require.Equal(t, 1, out.Unread)
	require.NotContains(t, out.Reminders, expired)
	require.NotContains(t, out.Reminders, future)
}

func TestReminderService_Acknowledge_EmptyIsNoop(t *testing.T) {
	srv, _ := newReminderService(t)

	require.NoError(t, srv.Acknowledge(context.Background(), uuid.New(), nil))
}

func TestReminderService_Acknowledge(t *testing.T) {
	srv, m := newReminderService(t)
	ctx := context.Background()
	userID := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	m.reminderRepo.On("MarkRead", ctx, userID, ids).Return(nil)

	require.NoError(t, srv.Acknowledge(ctx, userID, ids))
}

func TestReminderService_AcknowledgeAll_OnlyDueUnread(t *testing.T) {
	srv, m := newReminderService(t)
	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()

	dueUnread := &entity.Reminder{ID: uuid.New(), TriggerAt: now.Add(-time.Hour)}
	dueRead := &entity.Reminder{ID: uuid.New(), TriggerAt: now.Add(-time.Hour), IsRead: true}
	notDue := &entity.Reminder{ID: uuid.New(), TriggerAt: now.Add(time.Hour)}

	m.reminderRepo.On("FindByUser", ctx, userID).
		Return([]*entity.Reminder{dueUnread, dueRead, notDue}, nil)
	m.reminderRepo.On("MarkRead", ctx, userID, []uuid.UUID{dueUnread.ID}).Return(nil)

	require.NoError(t, srv.AcknowledgeAll(ctx, userID))
}

func TestReminderService_DispatchDue(t *testing.T) {
	srv, m := newReminderService(t)
	ctx := context.Background()

	broken := &entity.Reminder{ID: uuid.New(), UserID: uuid.New(), Title: "Yoga", Message: "Yoga etkinliği 1 saat içinde başlıyor!"}
	healthy := &entity.Reminder{ID: uuid.New(), UserID: uuid.New(), Title: "Koşu", Message: "Koşu etkinliği 1 saat içinde başlıyor!"}

	m.reminderRepo.On("FindDue", ctx, mock.AnythingOfType("time.Time")).
		Return([]*entity.Reminder{broken, healthy}, nil)

	// One bad record must not stall the rest of the batch.
	m.deviceRepo.On("FindByUser", ctx, broken.UserID).
		Return(nil, errors.New("store unavailable"))
	m.deviceRepo.On("FindByUser", ctx, healthy.UserID).
		Return([]*entity.Device{{FCMToken: "token-a"}, {FCMToken: "token-b"}}, nil)

	m.pushSender.On("SendBatch", ctx, []string{"token-a", "token-b"}, healthy.Title, healthy.Message,
		map[string]string{"reminderId": healthy.ID.String()}).
		Return(2, 0, nil, nil)
	m.reminderRepo.On("MarkDispatched", ctx, healthy.UserID, healthy.ID, mock.AnythingOfType("time.Time")).
		Return(nil)

	dispatched, err := srv.DispatchDue(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, dispatched)
}

func TestReminderService_DispatchDue_NoDevicesStillDispatched(t *testing.T) {
	srv, m := newReminderService(t)
	ctx := context.Background()

	reminder := &entity.Reminder{ID: uuid.New(), UserID: uuid.New(), Title: "Yoga"}

	m.reminderRepo.On("FindDue", ctx, mock.AnythingOfType("time.Time")).
		Return([]*entity.Reminder{reminder}, nil)
	m.deviceRepo.On("FindByUser", ctx, reminder.UserID).Return(nil, nil)
	m.reminderRepo.On("MarkDispatched", ctx, reminder.UserID, reminder.ID, mock.AnythingOfType("time.Time")).
		Return(nil)

	dispatched, err := srv.DispatchDue(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, dispatched)
}

func TestReminderService_PurgeExpired(t *testing.T) {
	srv, m := newReminderService(t)
	ctx := context.Background()

	m.reminderRepo.On("DeleteExpired", ctx, mock.MatchedBy(func(cutoff time.Time) bool {
		want := time.Now().Add(-reminderRetention)
		return cutoff.Sub(want).Abs() < time.Minute
	})).Return(7, nil)

	removed, err := srv.PurgeExpired(ctx)
	require.NoError(t, err)
	require.Equal(t, 7, removed)
}
