package main

import (
	"context"
	"log/slog"
	"os"

	"portal/config"
	"portal/internal/delivery"
	"portal/internal/delivery/web"
	"portal/internal/delivery/web/middleware"
	"portal/internal/delivery/web/router/handler"
	"portal/internal/infra/auth"
	logs "portal/internal/infra/log"
	"portal/internal/infra/mail"
	"portal/internal/infra/metrics"
	"portal/internal/infra/persistence/postgres"
	"portal/internal/infra/pubsub"
	"portal/internal/infra/qrcode"
	"portal/internal/infra/receipt"
	"portal/internal/infra/storage"
	"portal/internal/usecase"
	"portal/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
			bootstrapAdmin,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		metrics.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewBuildingRepository,
			postgres.NewMaintenanceRepository,
			postgres.NewPaymentRepository,
			postgres.NewDeliveryRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTSessionService,
			qrcode.NewFromConfig,
			receipt.NewRenderer,
			mail.NewMailer,
			// The inline notifier provider hands events to the sender in this process
			func(sender usecase.ReceiptSender) pubsub.EventHandler { return sender },
		),
		storage.Module,
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewReceiptNotifier,
			impl.NewReceiptSender,
			impl.NewMaintenanceService,
			impl.NewPaymentService,
			impl.NewDeliveryService,
			impl.NewReceiptService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewMaintenanceHandler,
			handler.NewPaymentHandler,
			handler.NewDeliveryHandler,
			handler.NewReceiptHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				web.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// bootstrapAdmin creates the configured administrator once the schema is migrated.
// The hook is appended after the database hooks, so it runs after them.
func bootstrapAdmin(lc fx.Lifecycle, cfg *config.Config, auth usecase.AuthUsecase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			created, err := auth.BootstrapAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password)
			if err != nil {
				return err
			}
			if created {
				logger.Info("Admin account created", slog.String("email", cfg.Admin.Email))
			}

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
