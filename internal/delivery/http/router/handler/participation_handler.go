package handler

import (
	"log/slog"
	"net/http"

	"gatherly/internal/delivery/http/response"
	"gatherly/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ParticipationHandler holds dependencies for RSVP handlers.
type ParticipationHandler struct {
	uc     usecase.ParticipationUsecase
	logger *slog.Logger
}

// NewParticipationHandler is the constructor for ParticipationHandler, injected by Fx.
func NewParticipationHandler(uc usecase.ParticipationUsecase, logger *slog.Logger) *ParticipationHandler {
	return &ParticipationHandler{
		uc:     uc,
		logger: logger,
	}
}

// Toggle joins the caller to the event, or cancels the existing RSVP.
func (h *ParticipationHandler) Toggle(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event ID")
	}

	joined, err := h.uc.Toggle(c.Request().Context(), eventID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Participation cancelled"
	if joined {
		message = "Joined event"
	}

	return response.Success(c, http.StatusOK, map[string]bool{"joined": joined}, message)
}

// State reports whether the caller currently participates in the event.
func (h *ParticipationHandler) State(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event ID")
	}

	joined, err := h.uc.JoinState(c.Request().Context(), eventID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"joined": joined}, "Participation state retrieved")
}

// ListParticipants returns everyone joined to an event.
func (h *ParticipationHandler) ListParticipants(c echo.Context) error {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event ID")
	}

	participations, err := h.uc.ListParticipants(c.Request().Context(), eventID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, participations, "Participants retrieved successfully")
}

// ListMine returns the caller's own participations.
func (h *ParticipationHandler) ListMine(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	participations, err := h.uc.ListUserParticipations(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, participations, "Participations retrieved successfully")
}
