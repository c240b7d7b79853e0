package view

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/albapepper/octofit-dashboard/internal/collection"
)

var (
	// ErrNotFailed is returned by Retry when the view is not in Failed.
	ErrNotFailed = errors.New("retry is only available from the failed state")
	// ErrClosed is returned for operations on a torn-down view.
	ErrClosed = errors.New("view is closed")
)

// View owns the lifecycle of one collection screen. Each activation issues
// exactly one fetch; a newer activation cancels and discards the older one,
// and nothing is written after Close.
type View struct {
	fetcher  collection.Fetcher
	logger   *slog.Logger
	observer func(collection.Resource, State)

	Selection Selection

	mu         sync.Mutex
	resource   collection.Resource
	state      State
	activation uuid.UUID
	cancel     context.CancelFunc
	closed     bool
}

// Option configures a View.
type Option func(*View)

// WithLogger sets the view logger.
func WithLogger(logger *slog.Logger) Option {
	return func(v *View) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithObserver registers fn to be called after every state transition. It
// runs on the goroutine that caused the transition, outside the view lock.
func WithObserver(fn func(collection.Resource, State)) Option {
	return func(v *View) { v.observer = fn }
}

// New creates a view for resource in the Loading phase. Nothing is fetched
// until Activate.
func New(fetcher collection.Fetcher, resource collection.Resource, opts ...Option) *View {
	v := &View{
		fetcher:  fetcher,
		logger:   slog.Default(),
		resource: resource,
		state:    loadingState(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Resource returns the collection the view currently targets.
func (v *View) Resource() collection.Resource {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.resource
}

// State returns a snapshot of the current lifecycle state.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state.copy()
}

// Activate enters Loading and starts one fetch in the background. The
// returned channel is closed once that attempt has settled or been
// discarded. On a closed view it returns an already-closed channel.
func (v *View) Activate(ctx context.Context) <-chan struct{} {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return closedChan()
	}
	return v.activateLocked(ctx)
}

// Retry re-runs the fetch from scratch. Only valid from Failed; prior data is
// never merged into the new attempt.
func (v *View) Retry(ctx context.Context) (<-chan struct{}, error) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return nil, ErrClosed
	}
	if v.state.Phase != Failed {
		resource, phase := v.resource, v.state.Phase
		v.mu.Unlock()
		v.logger.Debug("Retry rejected", "resource", resource, "phase", phase)
		return nil, ErrNotFailed
	}
	return v.activateLocked(ctx), nil
}

// SetResource retargets the view. A change of resource reactivates the view;
// setting the same resource is a no-op and returns a closed channel.
func (v *View) SetResource(ctx context.Context, r collection.Resource) <-chan struct{} {
	v.mu.Lock()
	if v.closed || v.resource == r {
		v.mu.Unlock()
		return closedChan()
	}
	v.resource = r
	return v.activateLocked(ctx)
}

// Close tears the view down. Any in-flight request is cancelled and its
// result dropped.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.closed = true
	v.activation = uuid.Nil
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
}

// activateLocked must be called with v.mu held; it releases the lock.
func (v *View) activateLocked(ctx context.Context) <-chan struct{} {
	if v.cancel != nil {
		v.cancel()
	}
	attemptCtx, cancel := context.WithCancel(ctx)
	id := uuid.New()
	v.activation = id
	v.cancel = cancel
	v.state = loadingState()
	resource := v.resource
	snapshot := v.state.copy()
	v.mu.Unlock()

	v.logger.Info("View activated", "resource", resource, "activation", id)
	v.notify(resource, snapshot)

	done := make(chan struct{})
	go v.run(attemptCtx, cancel, id, resource, done)
	return done
}

func (v *View) run(ctx context.Context, cancel context.CancelFunc, id uuid.UUID, resource collection.Resource, done chan struct{}) {
	defer close(done)
	defer cancel()

	start := time.Now()
	records, err := v.fetcher.Fetch(ctx, resource)

	v.mu.Lock()
	if v.closed || v.activation != id {
		v.mu.Unlock()
		v.logger.Debug("Discarding stale completion", "resource", resource, "activation", id)
		return
	}
	if err != nil {
		v.state = failedState(err)
	} else {
		v.state = readyState(records)
	}
	v.cancel = nil
	snapshot := v.state.copy()
	v.mu.Unlock()

	if err != nil {
		v.logger.Error("View failed", "resource", resource, "activation", id, "error", err)
	} else {
		v.logger.Info("View ready", "resource", resource, "activation", id,
			"records", len(records), "elapsed", time.Since(start).Round(time.Millisecond))
	}
	v.notify(resource, snapshot)
}

func (v *View) notify(resource collection.Resource, s State) {
	if v.observer != nil {
		v.observer(resource, s)
	}
}

func closedChan() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
