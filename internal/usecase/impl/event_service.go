package impl

import (
	"context"
	"strings"

	"gatherly/internal/domain/entity"
	domainerrors "gatherly/internal/domain/errors"
	"gatherly/internal/domain/repository"
	"gatherly/internal/domain/service"
	"gatherly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// eventService implements the EventUsecase interface.
type eventService struct {
	eventRepo     repository.EventRepository
	qrcodeService service.QRCodeService
}

// EventServiceParams holds dependencies for EventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	EventRepo     repository.EventRepository
	QRCodeService service.QRCodeService
}

// NewEventService is the constructor for eventService.
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		eventRepo:     params.EventRepo,
		qrcodeService: params.QRCodeService,
	}
}

// List returns the event feed, filtered in memory. The feed is small and
// fully denormalized; the filters mirror the search box and the location
// picker of the mobile client.
func (srv *eventService) List(ctx context.Context, input usecase.ListEventsInput) ([]*entity.Event, error) {
	events, err := srv.eventRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	query := strings.ToLower(strings.TrimSpace(input.Query))
	location := strings.ToLower(strings.TrimSpace(input.Location))
	if query == "" && location == "" {
		return events, nil
	}

	filtered := make([]*entity.Event, 0, len(events))
	for _, event := range events {
		if query != "" &&
			!strings.Contains(strings.ToLower(event.Title), query) &&
			!strings.Contains(strings.ToLower(event.Description), query) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(event.Location), location) {
			continue
		}
		filtered = append(filtered, event)
	}

	return filtered, nil
}

// Get returns a single event by ID.
func (srv *eventService) Get(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	event, err := srv.eventRepo.FindByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEventNotFound):
			return nil, domainerrors.ErrEventNotFound
		case errors.Is(err, repository.ErrEventDateInvalid):
			return nil, domainerrors.ErrEventDateInvalid
		default:
			return nil, errors.Wrap(err, "failed to get event")
		}
	}

	return event, nil
}

// ShareQR renders a PNG QR code embedding the event ID.
func (srv *eventService) ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.eventRepo.FindByID(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrEventNotFound):
			return nil, domainerrors.ErrEventNotFound
		case errors.Is(err, repository.ErrEventDateInvalid):
			// Sharing still works for an event with an unusable date.
		default:
			return nil, errors.Wrap(err, "failed to load event for QR")
		}
	}

	qrBytes, err := srv.qrcodeService.GenerateEventQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate event QR")
	}

	return qrBytes, nil
}
