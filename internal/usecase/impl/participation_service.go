// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "gatherly/internal/delivery/context"
	"gatherly/internal/domain/entity"
	domainerrors "gatherly/internal/domain/errors"
	"gatherly/internal/domain/repository"
	"gatherly/internal/domain/service"
	"gatherly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// eventDuration is the fixed length assumed for every event; the feed
// carries no end time.
const eventDuration = 2 * time.Hour

// reminderLead is how long before the event start the reminder fires.
const reminderLead = time.Hour

// participationService implements the ParticipationUsecase interface.
type participationService struct {
	userRepo          repository.UserRepository
	eventRepo         repository.EventRepository
	participationRepo repository.ParticipationRepository
	reminderRepo      repository.ReminderRepository
	scheduler         service.AlertScheduler
	calendarWriter    service.CalendarWriter
	activityPublisher service.ActivityPublisher
	logger            *slog.Logger
}

// ParticipationServiceParams holds dependencies for ParticipationService, injected by Fx.
type ParticipationServiceParams struct {
	fx.In

	UserRepo          repository.UserRepository
	EventRepo         repository.EventRepository
	ParticipationRepo repository.ParticipationRepository
	ReminderRepo      repository.ReminderRepository
	Scheduler         service.AlertScheduler
	CalendarWriter    service.CalendarWriter
	ActivityPublisher service.ActivityPublisher
	Logger            *slog.Logger
}

// NewParticipationService is the constructor for participationService.
func NewParticipationService(params ParticipationServiceParams) usecase.ParticipationUsecase {
	return &participationService{
		userRepo:          params.UserRepo,
		eventRepo:         params.EventRepo,
		participationRepo: params.ParticipationRepo,
		reminderRepo:      params.ReminderRepo,
		scheduler:         params.Scheduler,
		calendarWriter:    params.CalendarWriter,
		activityPublisher: params.ActivityPublisher,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *participationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// participationID derives the deterministic RSVP identifier for one user on
// one event. The participation document, the reminder record, and the
// scheduled alert all share it, which is what makes cancel an id-based
// operation and a concurrent double-join a conditional-write conflict.
func participationID(eventID uuid.UUID, email string) uuid.UUID {
	name := fmt.Sprintf("gatherly://participations/%s/%s", eventID, email)

	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name))
}

// Toggle joins the user to the event or cancels an existing participation.
func (srv *participationService) Toggle(ctx context.Context, eventID, userID uuid.UUID) (bool, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, domainerrors.ErrUserNotFound
		}

		return false, errors.Wrap(err, "failed to load user for toggle")
	}

	event, err := srv.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEventNotFound):
			return false, domainerrors.ErrEventNotFound
		case errors.Is(err, repository.ErrEventDateInvalid):
			// An event without a usable date cannot be joined: the reminder
			// and calendar entry would be meaningless.
			return false, domainerrors.ErrEventDateInvalid
		default:
			return false, errors.Wrap(err, "failed to load event for toggle")
		}
	}

	rsvpID := participationID(event.ID, user.Email)

	existing, err := srv.participationRepo.FindByEventAndEmail(ctx, event.ID, user.Email)
	if err != nil {
		return false, errors.Wrap(err, "failed to query participation state")
	}

	if len(existing) > 0 {
		return false, srv.cancel(ctx, event, user, rsvpID, existing)
	}

	return srv.join(ctx, event, user, rsvpID)
}

// cancel removes every matching participation (legacy duplicates included),
// the reminder record, and the pending alert for this RSVP only.
func (srv *participationService) cancel(ctx context.Context, event *entity.Event, user *entity.User, rsvpID uuid.UUID, existing []*entity.Participation) error {
	for _, participation := range existing {
		if err := srv.participationRepo.Delete(ctx, participation.ID); err != nil {
			return errors.Wrap(err, "failed to delete participation")
		}
	}

	if err := srv.reminderRepo.Delete(ctx, user.ID, rsvpID); err != nil {
		srv.log(ctx).Warn("failed to delete reminder on cancel",
			slog.String("rsvpId", rsvpID.String()),
			slog.Any("error", err))
	}

	srv.scheduler.Cancel(rsvpID)

	srv.publishActivity(ctx, service.ActivityCancelled, event, user)

	return nil
}

// join creates the participation and its derived side effects.
func (srv *participationService) join(ctx context.Context, event *entity.Event, user *entity.User, rsvpID uuid.UUID) (bool, error) {
	now := time.Now()
	endsAt := event.StartsAt.Add(eventDuration)

	participation := &entity.Participation{
		ID:          rsvpID,
		EventID:     event.ID,
		Title:       event.Title,
		Description: event.Description,
		Location:    event.Location,
		StartsAt:    event.StartsAt,
		EndsAt:      endsAt,
		Email:       user.Email,
		JoinedAt:    now,
	}
	if err := srv.participationRepo.Create(ctx, participation); err != nil {
		if errors.Is(err, repository.ErrParticipationExists) {
			// Lost a double-join race; the other writer owns the side
			// effects. The user is joined either way.
			srv.log(ctx).Info("participation already created concurrently",
				slog.String("rsvpId", rsvpID.String()))

			return true, nil
		}

		return false, errors.Wrap(err, "failed to create participation")
	}

	message := fmt.Sprintf("%s etkinliği 1 saat içinde başlıyor!", event.Title)
	triggerAt := event.StartsAt.Add(-reminderLead).Truncate(time.Minute)

	reminder := &entity.Reminder{
		ID:        rsvpID,
		UserID:    user.ID,
		EventID:   event.ID,
		Title:     event.Title,
		Message:   message,
		EventAt:   event.StartsAt,
		TriggerAt: triggerAt,
		CreatedAt: now,
	}
	if err := srv.reminderRepo.Create(ctx, reminder); err != nil {
		srv.log(ctx).Error("failed to create reminder on join",
			slog.String("rsvpId", rsvpID.String()),
			slog.Any("error", err))
	}

	if err := srv.scheduler.Schedule(ctx, &service.Alert{
		ID:     rsvpID,
		UserID: user.ID,
		Title:  event.Title,
		Body:   message,
		FireAt: triggerAt,
	}); err != nil {
		srv.log(ctx).Error("failed to schedule alert on join",
			slog.String("rsvpId", rsvpID.String()),
			slog.Any("error", err))
	}

	// Calendar insertion is best-effort; the join never fails because of it.
	if err := srv.calendarWriter.Insert(ctx, &service.CalendarEntry{
		Title:    event.Title,
		Notes:    event.Description,
		Location: event.Location,
		StartsAt: event.StartsAt,
		EndsAt:   endsAt,
	}); err != nil {
		srv.log(ctx).Warn("failed to insert calendar entry on join",
			slog.String("rsvpId", rsvpID.String()),
			slog.Any("error", err))
	}

	srv.publishActivity(ctx, service.ActivityJoined, event, user)

	return true, nil
}

// publishActivity emits the integration event, logging failures without
// surfacing them.
func (srv *participationService) publishActivity(ctx context.Context, action string, event *entity.Event, user *entity.User) {
	activity := &service.ParticipationActivity{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Action:     action,
		EventID:    event.ID.String(),
		EventTitle: event.Title,
		UserID:     user.ID.String(),
		OccurredAt: time.Now(),
	}
	if err := srv.activityPublisher.PublishParticipationActivity(ctx, activity); err != nil {
		srv.log(ctx).Warn("failed to publish participation activity",
			slog.String("action", action),
			slog.String("eventId", activity.EventID),
			slog.Any("error", err))
	}
}

// JoinState reports whether the user currently participates in the event.
func (srv *participationService) JoinState(ctx context.Context, eventID, userID uuid.UUID) (bool, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, domainerrors.ErrUserNotFound
		}

		return false, errors.Wrap(err, "failed to load user for join state")
	}

	existing, err := srv.participationRepo.FindByEventAndEmail(ctx, eventID, user.Email)
	if err != nil {
		return false, errors.Wrap(err, "failed to query join state")
	}

	return len(existing) > 0, nil
}

// ListParticipants returns all participations of an event, most recent join first.
func (srv *participationService) ListParticipants(ctx context.Context, eventID uuid.UUID) ([]*entity.Participation, error) {
	if _, err := srv.eventRepo.FindByID(ctx, eventID); err != nil {
		switch {
		case errors.Is(err, repository.ErrEventNotFound):
			return nil, domainerrors.ErrEventNotFound
		case errors.Is(err, repository.ErrEventDateInvalid):
			// The participant list is still meaningful for an event whose
			// date no longer parses.
		default:
			return nil, errors.Wrap(err, "failed to load event for participant list")
		}
	}

	participations, err := srv.participationRepo.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list participants")
	}

	return participations, nil
}

// ListUserParticipations returns the user's participations, most recent join first.
func (srv *participationService) ListUserParticipations(ctx context.Context, userID uuid.UUID) ([]*entity.Participation, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user for participation list")
	}

	participations, err := srv.participationRepo.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user participations")
	}

	return participations, nil
}
