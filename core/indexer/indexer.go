package indexer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscription-indexer/common/errs"
	"github.com/gaze-network/inscription-indexer/pkg/logger"
	"github.com/gaze-network/inscription-indexer/pkg/logger/slogx"
)

const (
	// DefaultPollingInterval is the default wait time when there is nothing to process
	DefaultPollingInterval = 3 * time.Second

	defaultShutdownTimeout = 180 * time.Second
)

var _ IndexerWorker = (*Indexer)(nil)

// Indexer drives a processor: it processes back-to-back while there is work,
// waits a fixed interval when there is none, and retries with exponential backoff on failure.
type Indexer struct {
	Processor Processor

	idleBackOff  backoff.BackOff
	retryBackOff backoff.BackOff

	mu       sync.Mutex
	running  bool
	stopped  bool
	quitOnce sync.Once
	quit     chan struct{}
	done     chan struct{}
}

type Option func(*Indexer)

// WithPollingInterval sets the fixed wait time when there is nothing to process.
func WithPollingInterval(interval time.Duration) Option {
	return func(i *Indexer) {
		if interval > 0 {
			i.idleBackOff = backoff.NewConstantBackOff(interval)
		}
	}
}

// WithRetryBackOff sets the backoff policy on processing failures.
// Run returns the last error once the policy gives up.
func WithRetryBackOff(b backoff.BackOff) Option {
	return func(i *Indexer) {
		if b != nil {
			i.retryBackOff = b
		}
	}
}

// New create new indexer
func New(processor Processor, opts ...Option) *Indexer {
	retryBackOff := backoff.NewExponentialBackOff()
	retryBackOff.InitialInterval = time.Second
	retryBackOff.MaxInterval = time.Minute
	retryBackOff.MaxElapsedTime = 0 // retry forever

	i := &Indexer{
		Processor:    processor,
		idleBackOff:  backoff.NewConstantBackOff(DefaultPollingInterval),
		retryBackOff: retryBackOff,

		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

func (i *Indexer) Shutdown() error {
	return i.ShutdownWithContext(context.Background())
}

func (i *Indexer) ShutdownWithTimeout(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return i.ShutdownWithContext(ctx)
}

// ShutdownWithContext stops a running indexer and waits for it to shut the processor down.
// An indexer that never ran (e.g. API-only mode) shuts the processor down directly.
func (i *Indexer) ShutdownWithContext(ctx context.Context) (err error) {
	i.quitOnce.Do(func() {
		i.mu.Lock()
		running := i.running
		i.stopped = true
		i.mu.Unlock()

		close(i.quit)
		if !running {
			err = errors.Wrap(i.Processor.Shutdown(ctx), "processor shutdown failed")
			return
		}
		select {
		case <-i.done:
		case <-time.After(defaultShutdownTimeout):
			err = errors.Wrap(errs.Timeout, "indexer shutdown timeout")
		case <-ctx.Done():
			err = errors.Wrap(ctx.Err(), "indexer shutdown context canceled")
		}
	})
	return
}

func (i *Indexer) Run(ctx context.Context) (err error) {
	i.mu.Lock()
	if i.stopped || i.running {
		i.mu.Unlock()
		return errors.Wrap(errs.InvalidArgument, "indexer already started or stopped")
	}
	i.running = true
	i.mu.Unlock()
	defer close(i.done)

	ctx = logger.WithContext(ctx,
		slog.String("package", "indexer"),
		slog.String("processor", i.Processor.Name()),
	)

	i.retryBackOff.Reset()
	for {
		var wait time.Duration

		startAt := time.Now()
		processed, err := i.Processor.Process(ctx)
		switch {
		case err != nil:
			wait = i.retryBackOff.NextBackOff()
			if wait == backoff.Stop {
				logger.ErrorContext(ctx, "Indexer failed while processing, giving up", slogx.Error(err))
				return errors.Wrap(err, "process failed")
			}
			logger.ErrorContext(ctx, "Indexer failed while processing, retrying",
				slogx.Error(err),
				slogx.String("event", "process_retry"),
				slogx.Duration("retry_in", wait),
			)
		case processed:
			i.retryBackOff.Reset()
			logger.DebugContext(ctx, "Processed successfully", slogx.Duration("duration", time.Since(startAt)))
		default:
			i.retryBackOff.Reset()
			wait = i.idleBackOff.NextBackOff()
			logger.DebugContext(ctx, "Nothing to process, waiting for next polling interval", slogx.Duration("wait", wait))
		}

		if stopped := i.wait(ctx, wait); stopped {
			break
		}
	}

	if err := i.Processor.Shutdown(ctx); err != nil {
		logger.ErrorContext(ctx, "Failed to shutdown processor", slogx.Error(err))
		return errors.Wrap(err, "processor shutdown failed")
	}
	return nil
}

// wait blocks for d, or until the indexer is asked to stop. Returns true if it should stop.
func (i *Indexer) wait(ctx context.Context, d time.Duration) bool {
	select {
	case <-i.quit:
		logger.InfoContext(ctx, "Got quit signal, stopping indexer")
		return true
	case <-ctx.Done():
		return true
	default:
	}
	if d <= 0 {
		return false
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-i.quit:
		logger.InfoContext(ctx, "Got quit signal, stopping indexer")
		return true
	case <-ctx.Done():
		return true
	case <-timer.C:
		return false
	}
}
