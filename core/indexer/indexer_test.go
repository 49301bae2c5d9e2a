package indexer

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscription-indexer/common/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type processResult struct {
	processed bool
	err       error
}

type scriptedProcessor struct {
	mu       sync.Mutex
	script   []processResult
	calls    int
	shutdown bool
	drained  chan struct{}
}

func newScriptedProcessor(script ...processResult) *scriptedProcessor {
	return &scriptedProcessor{
		script:  script,
		drained: make(chan struct{}),
	}
}

func (p *scriptedProcessor) Name() string { return "scripted" }

func (p *scriptedProcessor) Process(ctx context.Context) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls++
	if p.calls > len(p.script) {
		if p.calls == len(p.script)+1 {
			close(p.drained)
		}
		return false, nil
	}
	result := p.script[p.calls-1]
	return result.processed, result.err
}

func (p *scriptedProcessor) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.shutdown = true
	return nil
}

func (p *scriptedProcessor) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func runIndexer(t *testing.T, i *Indexer) <-chan error {
	t.Helper()
	result := make(chan error, 1)
	go func() {
		result <- i.Run(context.Background())
	}()
	return result
}

func TestIndexerDrainsWithoutWaiting(t *testing.T) {
	p := newScriptedProcessor(
		processResult{processed: true},
		processResult{processed: true},
		processResult{processed: true},
	)
	// a long polling interval would time the test out if processed blocks waited for it
	i := New(p, WithPollingInterval(time.Hour))
	result := runIndexer(t, i)

	select {
	case <-p.drained:
	case <-time.After(5 * time.Second):
		t.Fatal("indexer didn't drain processed blocks back-to-back")
	}
	assert.Equal(t, 4, p.Calls())

	require.NoError(t, i.ShutdownWithTimeout(5*time.Second))
	require.NoError(t, <-result)
	assert.True(t, p.shutdown)
}

func TestIndexerRetriesOnError(t *testing.T) {
	p := newScriptedProcessor(
		processResult{err: errors.New("store unavailable")},
		processResult{err: errors.New("store unavailable")},
		processResult{processed: true},
	)
	i := New(p,
		WithPollingInterval(time.Hour),
		WithRetryBackOff(backoff.NewConstantBackOff(time.Millisecond)),
	)
	result := runIndexer(t, i)

	select {
	case <-p.drained:
	case <-time.After(5 * time.Second):
		t.Fatal("indexer didn't retry after errors")
	}

	require.NoError(t, i.Shutdown())
	require.NoError(t, <-result)
}

func TestIndexerGivesUpWhenBackOffStops(t *testing.T) {
	expected := errors.New("store unavailable")
	p := newScriptedProcessor(processResult{err: expected})
	i := New(p, WithRetryBackOff(&backoff.StopBackOff{}))

	err := i.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, expected)
	assert.Equal(t, 1, p.Calls())
}

func TestIndexerStopsOnContextCancel(t *testing.T) {
	p := newScriptedProcessor()
	i := New(p, WithPollingInterval(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() {
		result <- i.Run(ctx)
	}()

	<-p.drained
	cancel()

	select {
	case err := <-result:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("indexer didn't stop on context cancel")
	}
	assert.True(t, p.shutdown)
}

func TestIndexerShutdownIsIdempotent(t *testing.T) {
	p := newScriptedProcessor()
	i := New(p)
	result := runIndexer(t, i)

	<-p.drained
	require.NoError(t, i.Shutdown())
	require.NoError(t, i.Shutdown())
	require.NoError(t, <-result)
}

func TestIndexerShutdownWithoutRun(t *testing.T) {
	p := newScriptedProcessor()
	i := New(p)

	require.NoError(t, i.ShutdownWithTimeout(time.Second))
	assert.True(t, p.shutdown)
	assert.Zero(t, p.Calls())

	assert.ErrorIs(t, i.Run(context.Background()), errs.InvalidArgument)
	assert.Zero(t, p.Calls())
}
