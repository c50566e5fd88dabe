package pubsub

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/multierr"

	"portal/config"
	"portal/internal/domain/entity"
	"portal/internal/domain/service"
	"portal/internal/infra/metrics"
)

const (
	// ProviderInline sends receipts from a worker pool inside the portal process
	ProviderInline = "inline"
	// ProviderLocal posts receipts to the mail worker over HTTP
	ProviderLocal = "local"
	// ProviderGoogle publishes receipts to Google Pub/Sub for the mail worker
	ProviderGoogle = "google"
)

// PublisherParams holds dependencies for ReceiptPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc      fx.Lifecycle
	Ctx     context.Context
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.ReceiptMetrics
	Handler EventHandler `optional:"true"`
}

// NewReceiptPublisher creates the dispatcher for the configured provider.
// Every provider goes through the worker pool so that publishing never blocks a request.
func NewReceiptPublisher(params PublisherParams) (service.ReceiptPublisher, error) {
	cfg := params.Config.Notifier
	logger := params.Logger
	provider := strings.ToLower(cfg.Provider)
	if provider == "" {
		provider = ProviderInline
	}

	var (
		handler  EventHandler
		upstream service.ReceiptPublisher
		err      error
	)

	switch provider {
	case ProviderInline:
		if params.Handler == nil {
			return nil, errors.New("inline provider requires a receipt handler")
		}
		logger.Info("Using inline receipt dispatcher", slog.Int("workers", cfg.Workers))

		handler = params.Handler

	case ProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for receipts",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		upstream = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case ProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		upstream, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown notifier provider: %s", cfg.Provider)
	}

	if upstream != nil {
		handler = EventHandlerFunc(func(ctx context.Context, event *entity.ReceiptEvent) error {
			return upstream.Publish(ctx, event)
		})
	}

	dispatcher := NewDispatcher(handler, DispatcherOptions{
		Provider:    provider,
		Workers:     cfg.Workers,
		QueueSize:   cfg.QueueSize,
		MaxAttempts: cfg.MaxAttempts,
		Backoff:     cfg.Backoff,
	}, params.Metrics, logger)

	// Register lifecycle hook to drain and close on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing receipt dispatcher")

			err := dispatcher.Close()
			if upstream != nil {
				err = multierr.Append(err, upstream.Close())
			}

			return err
		},
	})

	return dispatcher, nil
}

// Module provides the receipt publisher FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewReceiptPublisher),
)
