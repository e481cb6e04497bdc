// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gatherly/internal/delivery/http/middleware"
	"gatherly/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler          *handler.UserHandler
	EventHandler         *handler.EventHandler
	ParticipationHandler *handler.ParticipationHandler
	ReminderHandler      *handler.ReminderHandler
	FavoriteHandler      *handler.FavoriteHandler
	ProfileHandler       *handler.ProfileHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler          *handler.UserHandler
	eventHandler         *handler.EventHandler
	participationHandler *handler.ParticipationHandler
	reminderHandler      *handler.ReminderHandler
	favoriteHandler      *handler.FavoriteHandler
	profileHandler       *handler.ProfileHandler
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:          params.UserHandler,
		eventHandler:         params.EventHandler,
		participationHandler: params.ParticipationHandler,
		reminderHandler:      params.ReminderHandler,
		favoriteHandler:      params.FavoriteHandler,
		profileHandler:       params.ProfileHandler,
		authMiddleware:       params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// The event feed is public; RSVP state and toggling require a login.
	eventGroup := e.Group("/events")
	{
		eventGroup.GET("", r.eventHandler.List)
		eventGroup.GET("/:id", r.eventHandler.Get)
		eventGroup.GET("/:id/qr", r.eventHandler.ShareQR)
		eventGroup.GET("/:id/participants", r.participationHandler.ListParticipants)

		eventGroup.POST("/:id/participation/toggle", r.participationHandler.Toggle, r.authMiddleware.Authenticate)
		eventGroup.GET("/:id/participation", r.participationHandler.State, r.authMiddleware.Authenticate)
	}

	// Account-scoped routes
	meGroup := e.Group("/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("/profile", r.profileHandler.Get)
		meGroup.PUT("/profile/email", r.profileHandler.UpdateEmail)
		meGroup.PUT("/profile/password", r.profileHandler.UpdatePassword)

		meGroup.GET("/participations", r.participationHandler.ListMine)

		meGroup.GET("/notifications", r.reminderHandler.List)
		meGroup.POST("/notifications/ack", r.reminderHandler.Acknowledge)
		meGroup.POST("/notifications/ack-all", r.reminderHandler.AcknowledgeAll)

		meGroup.GET("/favorites", r.favoriteHandler.List)
		meGroup.POST("/favorites/:id/toggle", r.favoriteHandler.Toggle)
		meGroup.DELETE("/favorites", r.favoriteHandler.Clear)

		meGroup.POST("/devices", r.profileHandler.RegisterDevice)
		meGroup.DELETE("/devices/:id", r.profileHandler.RemoveDevice)
	}
}
