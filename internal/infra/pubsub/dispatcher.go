package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/infra/metrics"
)

const maxBackoff = time.Minute

var (
	// ErrQueueFull is returned by Publish when no queue slot is free
	ErrQueueFull = errors.New("receipt queue is full")
	// ErrDispatcherClosed is returned by Publish after Close
	ErrDispatcherClosed = errors.New("receipt dispatcher is closed")
)

// EventHandler delivers one receipt event. A returned error makes the dispatcher retry,
// unless it is a client-side app error, which is dead-lettered at once.
type EventHandler interface {
	HandleReceiptEvent(ctx context.Context, event *entity.ReceiptEvent) error
}

// EventHandlerFunc adapts a function to EventHandler
type EventHandlerFunc func(ctx context.Context, event *entity.ReceiptEvent) error

func (f EventHandlerFunc) HandleReceiptEvent(ctx context.Context, event *entity.ReceiptEvent) error {
	return f(ctx, event)
}

// DispatcherOptions tunes the worker pool
type DispatcherOptions struct {
	Provider    string
	Workers     int
	QueueSize   int
	MaxAttempts int
	Backoff     time.Duration
}

type job struct {
	ctx   context.Context
	event *entity.ReceiptEvent
}

// Dispatcher is a ReceiptPublisher that hands events to a bounded worker pool.
// Each event is attempted up to MaxAttempts times with exponential backoff and
// written to the dead-letter log when every attempt failed.
type Dispatcher struct {
	handler EventHandler
	opts    DispatcherOptions
	metrics *metrics.ReceiptMetrics
	logger  *slog.Logger

	queue chan job
	quit  chan struct{}
	wg    sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewDispatcher starts the workers right away
func NewDispatcher(handler EventHandler, opts DispatcherOptions, receiptMetrics *metrics.ReceiptMetrics, logger *slog.Logger) *Dispatcher {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = 1
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 1
	}

	d := &Dispatcher{
		handler: handler,
		opts:    opts,
		metrics: receiptMetrics,
		logger:  logger.With(slog.String("component", "receipt-dispatcher"), slog.String("provider", opts.Provider)),
		queue:   make(chan job, opts.QueueSize),
		quit:    make(chan struct{}),
	}

	d.wg.Add(opts.Workers)
	for range opts.Workers {
		go d.work()
	}

	return d
}

// Publish enqueues the event without waiting for delivery
func (d *Dispatcher) Publish(ctx context.Context, event *entity.ReceiptEvent) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return ErrDispatcherClosed
	}

	// Keep request values such as the logger, drop the request's cancellation.
	j := job{ctx: context.WithoutCancel(ctx), event: event}

	select {
	case d.queue <- j:
		d.metrics.ObservePublished(d.opts.Provider)

		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting events and waits until the queue is drained.
// Pending retries are abandoned to the dead-letter log.
func (d *Dispatcher) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()

		return nil
	}
	d.closed = true
	close(d.quit)
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()

	return nil
}

func (d *Dispatcher) work() {
	defer d.wg.Done()

	for j := range d.queue {
		d.deliver(j)
	}
}

func (d *Dispatcher) deliver(j job) {
	var errs error

	logger := d.logger.With(
		slog.String("to", j.event.To),
		slog.String("title", j.event.Title),
		slog.String("attachment", j.event.AttachmentName),
	)

	for attempt := 1; attempt <= d.opts.MaxAttempts; attempt++ {
		started := time.Now()
		err := d.handler.HandleReceiptEvent(j.ctx, j.event)
		d.metrics.ObserveSend(started)

		if err == nil {
			d.metrics.ObserveOutcome(metrics.LabelSent)
			logger.Info("Receipt delivered", slog.Int("attempt", attempt))

			return
		}

		errs = multierr.Append(errs, errors.Wrapf(err, "attempt %d", attempt))

		if domainerrors.IsPermanent(err) || attempt == d.opts.MaxAttempts {
			break
		}

		d.metrics.ObserveOutcome(metrics.LabelRetried)
		logger.Warn("Receipt delivery failed, retrying", slog.Int("attempt", attempt), slog.Any("error", err))

		if !d.wait(backoff(d.opts.Backoff, attempt)) {
			logger.Warn("Dispatcher shutting down, retries abandoned", slog.Int("attempt", attempt))

			break
		}
	}

	d.metrics.ObserveOutcome(metrics.LabelDeadLettered)
	logger.Error("Receipt dead-lettered",
		slog.Int("attempts", len(multierr.Errors(errs))),
		slog.Any("errors", multierr.Errors(errs)),
	)
}

// wait sleeps for delay, returning false when the dispatcher is closed first
func (d *Dispatcher) wait(delay time.Duration) bool {
	if delay <= 0 {
		return true
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-d.quit:
		return false
	}
}

// backoff doubles the base delay for every failed attempt, capped at maxBackoff
func backoff(base time.Duration, attempt int) time.Duration {
	delay := base
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= maxBackoff {
			return maxBackoff
		}
	}

	return delay
}
