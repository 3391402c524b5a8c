package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"vigia/config"
	"vigia/internal/delivery"
	"vigia/internal/delivery/http"
	"vigia/internal/delivery/http/middleware"
	"vigia/internal/delivery/http/router/handler"
	"vigia/internal/domain/service"
	"vigia/internal/infra/auth"
	"vigia/internal/infra/classifier"
	logs "vigia/internal/infra/log"
	"vigia/internal/infra/notification"
	"vigia/internal/infra/persistence/postgres"
	"vigia/internal/infra/qrcode"
	"vigia/internal/observability/metrics"
	"vigia/internal/usecase/impl"

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
		postgres.New,
		metrics.NewDefault,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewBraceletRepository,
			postgres.NewEventRepository,
			postgres.NewBindingRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			classifier.NewKeywordClassifier,
			newTwilioService,
			newFirebaseService,
			newQRCodeService,
		),
	)
}

// newTwilioService creates the WhatsApp gateway when Twilio is configured
func newTwilioService(cfg *config.Config) (service.MessengerService, error) {
	if cfg.Twilio == nil {
		return nil, nil // WhatsApp channel is optional
	}

	svc, err := notification.NewTwilioService(cfg.Twilio)
	if err != nil {
		return nil, fmt.Errorf("failed to create Twilio service: %w", err)
	}

	return svc, nil
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.PushService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
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
			impl.NewTelemetryService,
			impl.NewAlertNotifier,
			impl.NewMonitoringService,
			impl.NewUserService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSensorHandler,
			handler.NewUserHandler,
			handler.NewMonitoringHandler,
			handler.NewDeviceHandler,
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
