package main

import (
	"context"
	"log/slog"
	"os"

	"gatherly/config"
	"gatherly/internal/delivery"
	"gatherly/internal/delivery/cron"
	"gatherly/internal/delivery/http"
	"gatherly/internal/delivery/http/middleware"
	"gatherly/internal/delivery/http/router/handler"
	"gatherly/internal/domain/service"
	"gatherly/internal/infra/auth"
	"gatherly/internal/infra/calendar"
	logs "gatherly/internal/infra/log"
	"gatherly/internal/infra/notification"
	"gatherly/internal/infra/persistence/firestore"
	"gatherly/internal/infra/pubsub"
	"gatherly/internal/infra/qrcode"
	"gatherly/internal/infra/scheduler"
	"gatherly/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firestore.NewApp,
		firestore.NewClient,
		firestore.NewMessagingClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewEventRepository,
			firestore.NewParticipationRepository,
			firestore.NewReminderRepository,
			firestore.NewUserRepository,
			firestore.NewDeviceRepository,
			firestore.NewFavoriteRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			notification.NewFCMSender,
			scheduler.New,
			newQRCodeService,
		),
		calendar.Module,
		pubsub.Module,
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProfileService,
			impl.NewEventService,
			impl.NewParticipationService,
			impl.NewReminderService,
			impl.NewFavoriteService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewEventHandler,
			handler.NewParticipationHandler,
			handler.NewReminderHandler,
			handler.NewFavoriteHandler,
			handler.NewProfileHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				cron.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
