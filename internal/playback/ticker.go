package playback

import (
	"sync"
	"time"
)

// Ticker abstracts the repeating playback timer so the Controller can be
// driven by a fake clock in tests.
type Ticker interface {
	// Start arms the ticker with a fixed period. Calling Start on a running
	// ticker restarts it.
	Start(interval time.Duration, tick func())
	// Stop disarms the ticker. Safe to call when not running.
	Stop()
	// IsRunning reports whether the ticker is armed.
	IsRunning() bool
}

// IntervalTicker is the wall-clock Ticker. Each tick is delivered through
// the dispatch function so the host can marshal it onto its event-loop
// thread (e.g. fyne.Do). A nil dispatch invokes ticks directly.
type IntervalTicker struct {
	mu       sync.Mutex
	dispatch func(func())
	stop     chan struct{}
}

// NewIntervalTicker creates a wall-clock ticker delivering ticks via dispatch.
func NewIntervalTicker(dispatch func(func())) *IntervalTicker {
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &IntervalTicker{dispatch: dispatch}
}

// Start implements Ticker.
func (t *IntervalTicker) Start(interval time.Duration, tick func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()

	stop := make(chan struct{})
	t.stop = stop
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				t.dispatch(tick)
			}
		}
	}()
}

// Stop implements Ticker.
func (t *IntervalTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

func (t *IntervalTicker) stopLocked() {
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

// IsRunning implements Ticker.
func (t *IntervalTicker) IsRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop != nil
}

// ManualTicker is a Ticker driven by hand, for deterministic tests.
type ManualTicker struct {
	running  bool
	interval time.Duration
	tick     func()
}

// NewManualTicker creates a ticker that only fires via Fire.
func NewManualTicker() *ManualTicker { return &ManualTicker{} }

// Start implements Ticker.
func (t *ManualTicker) Start(interval time.Duration, tick func()) {
	t.running = true
	t.interval = interval
	t.tick = tick
}

// Stop implements Ticker.
func (t *ManualTicker) Stop() { t.running = false }

// IsRunning implements Ticker.
func (t *ManualTicker) IsRunning() bool { return t.running }

// Interval returns the period the ticker was last armed with.
func (t *ManualTicker) Interval() time.Duration { return t.interval }

// Fire delivers one tick if the ticker is armed.
func (t *ManualTicker) Fire() {
	if t.running && t.tick != nil {
		t.tick()
	}
}
