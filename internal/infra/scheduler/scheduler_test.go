package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"gatherly/internal/domain/entity"
	"gatherly/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDeviceRepo struct {
	devices []*entity.Device
}

func (s *stubDeviceRepo) Save(context.Context, *entity.Device) error { return nil }
func (s *stubDeviceRepo) FindByUser(context.Context, uuid.UUID) ([]*entity.Device, error) {
	return s.devices, nil
}
func (s *stubDeviceRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }

type stubReminderRepo struct {
	mu         sync.Mutex
	dispatched []uuid.UUID
}

func (s *stubReminderRepo) Create(context.Context, *entity.Reminder) error { return nil }
func (s *stubReminderRepo) FindByUser(context.Context, uuid.UUID) ([]*entity.Reminder, error) {
	return nil, nil
}
func (s *stubReminderRepo) FindDue(context.Context, time.Time) ([]*entity.Reminder, error) {
	return nil, nil
}
func (s *stubReminderRepo) MarkRead(context.Context, uuid.UUID, []uuid.UUID) error { return nil }
func (s *stubReminderRepo) MarkDispatched(_ context.Context, _ uuid.UUID, id uuid.UUID, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatched = append(s.dispatched, id)

	return nil
}
func (s *stubReminderRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }
func (s *stubReminderRepo) DeleteExpired(context.Context, time.Time) (int, error) {
	return 0, nil
}

func (s *stubReminderRepo) dispatchedIDs() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]uuid.UUID(nil), s.dispatched...)
}

type pushCall struct {
	tokens []string
	title  string
	body   string
}

type stubPushSender struct {
	mu    sync.Mutex
	calls []pushCall
}

func (s *stubPushSender) SendBatch(_ context.Context, tokens []string, title, body string, _ map[string]string) (int, int, []string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, pushCall{tokens: tokens, title: title, body: body})

	return len(tokens), 0, nil, nil
}

func (s *stubPushSender) SendSingle(context.Context, string, string, string, map[string]string) error {
	return nil
}

func (s *stubPushSender) sentCalls() []pushCall {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]pushCall(nil), s.calls...)
}

func newTestScheduler(devices []*entity.Device) (*timerScheduler, *stubReminderRepo, *stubPushSender) {
	reminderRepo := &stubReminderRepo{}
	pushSender := &stubPushSender{}
	scheduler := &timerScheduler{
		timers:       make(map[uuid.UUID]*time.Timer),
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		deviceRepo:   &stubDeviceRepo{devices: devices},
		reminderRepo: reminderRepo,
		pushSender:   pushSender,
	}

	return scheduler, reminderRepo, pushSender
}

func TestSchedule_PastFireTimeFiresImmediately(t *testing.T) {
	userID := uuid.New()
	devices := []*entity.Device{
		{ID: uuid.New(), UserID: userID, FCMToken: "token-1"},
		{ID: uuid.New(), UserID: userID, FCMToken: "token-2"},
	}
	scheduler, reminderRepo, pushSender := newTestScheduler(devices)

	alert := &service.Alert{
		ID:     uuid.New(),
		UserID: userID,
		Title:  "Yoga",
		Body:   "Yoga etkinliği 1 saat içinde başlıyor!",
		FireAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, scheduler.Schedule(context.Background(), alert))

	require.Eventually(t, func() bool {
		return len(pushSender.sentCalls()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	call := pushSender.sentCalls()[0]
	assert.Equal(t, []string{"token-1", "token-2"}, call.tokens)
	assert.Equal(t, "Yoga", call.title)
	assert.Equal(t, "Yoga etkinliği 1 saat içinde başlıyor!", call.body)

	require.Eventually(t, func() bool {
		return len(reminderRepo.dispatchedIDs()) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, alert.ID, reminderRepo.dispatchedIDs()[0])
}

func TestCancel_StopsPendingAlert(t *testing.T) {
	scheduler, _, pushSender := newTestScheduler(nil)

	alert := &service.Alert{
		ID:     uuid.New(),
		UserID: uuid.New(),
		FireAt: time.Now().Add(5 * time.Minute),
	}
	require.NoError(t, scheduler.Schedule(context.Background(), alert))

	scheduler.Cancel(alert.ID)

	scheduler.mu.Lock()
	assert.Empty(t, scheduler.timers)
	scheduler.mu.Unlock()

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, pushSender.sentCalls())
}

func TestCancel_UnknownIDIsNoop(t *testing.T) {
	scheduler, _, _ := newTestScheduler(nil)

	scheduler.Cancel(uuid.New())
}

func TestSchedule_SameIDReplacesPendingAlert(t *testing.T) {
	scheduler, _, _ := newTestScheduler(nil)

	id := uuid.New()
	first := &service.Alert{ID: id, UserID: uuid.New(), FireAt: time.Now().Add(5 * time.Minute)}
	second := &service.Alert{ID: id, UserID: first.UserID, FireAt: time.Now().Add(10 * time.Minute)}

	require.NoError(t, scheduler.Schedule(context.Background(), first))
	require.NoError(t, scheduler.Schedule(context.Background(), second))

	scheduler.mu.Lock()
	assert.Len(t, scheduler.timers, 1)
	scheduler.mu.Unlock()
}

func TestCancelAll_StopsEveryPendingAlert(t *testing.T) {
	scheduler, _, pushSender := newTestScheduler(nil)

	for range 3 {
		alert := &service.Alert{
			ID:     uuid.New(),
			UserID: uuid.New(),
			FireAt: time.Now().Add(5 * time.Minute),
		}
		require.NoError(t, scheduler.Schedule(context.Background(), alert))
	}

	scheduler.CancelAll()

	scheduler.mu.Lock()
	assert.Empty(t, scheduler.timers)
	scheduler.mu.Unlock()

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, pushSender.sentCalls())
}
