package live

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	ErrNoSchedule     = errors.New("live earnings need a computed result and a positive schedule")
	ErrAlreadyRunning = errors.New("live earnings ticker already running")
)

const DefaultInterval = time.Second

type Option func(*Ticker)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Ticker) {
		if now != nil {
			t.now = now
		}
	}
}

// Ticker recomputes a session's progress on a fixed interval and hands each
// snapshot to onTick. It emits once immediately on Start and stops on its
// own after the first complete snapshot.
type Ticker struct {
	interval time.Duration
	onTick   func(Snapshot)
	now      func() time.Time

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

func NewTicker(interval time.Duration, onTick func(Snapshot), opts ...Option) *Ticker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	t := &Ticker{
		interval: interval,
		onTick:   onTick,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Ticker) Start(ctx context.Context, s Session) error {
	if !s.Valid() {
		return ErrNoSchedule
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return ErrAlreadyRunning
	}
	if s.StartedAt.IsZero() {
		s.StartedAt = t.now()
	}

	runCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.done = make(chan struct{})
	t.running = true
	go t.run(runCtx, cancel, s, t.done)
	return nil
}

// Stop halts the ticker. It is safe to call at any time, more than once,
// and from inside onTick.
func (t *Ticker) Stop() {
	t.mu.Lock()
	cancel := t.cancel
	t.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Wait blocks until the current run has finished.
func (t *Ticker) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()
	if done != nil {
		<-done
	}
}

func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

func (t *Ticker) run(ctx context.Context, cancel context.CancelFunc, s Session, done chan struct{}) {
	defer func() {
		cancel()
		t.mu.Lock()
		t.running = false
		t.cancel = nil
		t.mu.Unlock()
		close(done)
	}()

	if t.emit(ctx, s) {
		return
	}

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if t.emit(ctx, s) {
				return
			}
		}
	}
}

// emit delivers one snapshot and reports whether the run should end.
func (t *Ticker) emit(ctx context.Context, s Session) bool {
	if ctx.Err() != nil {
		return true
	}
	snap := s.At(t.now())
	if t.onTick != nil {
		t.onTick(snap)
	}
	return snap.Complete
}
