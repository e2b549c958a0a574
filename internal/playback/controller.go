// Package playback manages the frame index, play/pause state and the
// timer-driven advance of a sequence viewer. Indices are 1-based; the
// adapter that talks to the data source converts to 0-based.
package playback

import (
	"fmt"
	"time"
)

const (
	// DefaultInterval is the playback timer period when none is configured.
	DefaultInterval = 100 * time.Millisecond
)

// Options configure a Controller at construction time.
type Options struct {
	// Interval is the playback timer period. Defaults to DefaultInterval.
	Interval time.Duration
	// WaitForViewerReady gates timer-driven advances on ViewerReady
	// acknowledgements from the rendering side. Defaults to true via
	// DefaultOptions; a zero Options value disables the gate.
	WaitForViewerReady bool
	// Ticker drives playback. Defaults to a direct-dispatch IntervalTicker.
	Ticker Ticker
}

// DefaultOptions returns the options matching the widget defaults:
// 100ms period with the viewer-ready gate enabled.
func DefaultOptions() Options {
	return Options{Interval: DefaultInterval, WaitForViewerReady: true}
}

// Controller is the playback/seek state machine. It owns the current index,
// the upper bound and the play state, and emits events when they change.
//
// A Controller is not safe for concurrent use: all methods must be called
// from the owning event-loop thread. The wall-clock ticker delivers ticks
// through a dispatch function for exactly that reason.
type Controller struct {
	current      int
	max          int
	playing      bool
	viewerReady  bool
	waitForReady bool
	interval     time.Duration
	ticker       Ticker

	indexSubs   []func(index int)
	playingSubs []func(playing bool)
	maxSubs     []func(max int)
}

// NewController creates a controller over a sequence of maxValue frames,
// positioned at frame 1 and idle. It fails fast on an empty sequence.
func NewController(maxValue int, opts Options) (*Controller, error) {
	if maxValue < 1 {
		return nil, fmt.Errorf("playback: sequence must have at least one frame, got %d", maxValue)
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Ticker == nil {
		opts.Ticker = NewIntervalTicker(nil)
	}
	return &Controller{
		current:      1,
		max:          maxValue,
		viewerReady:  true,
		waitForReady: opts.WaitForViewerReady,
		interval:     opts.Interval,
		ticker:       opts.Ticker,
	}, nil
}

// Current returns the current 1-based frame index.
func (c *Controller) Current() int { return c.current }

// Max returns the upper bound of the index range.
func (c *Controller) Max() int { return c.max }

// IsPlaying reports whether the playback timer is armed.
func (c *Controller) IsPlaying() bool { return c.playing }

// Interval returns the playback timer period.
func (c *Controller) Interval() time.Duration { return c.interval }

// OnIndexChanged subscribes to index-changed events (1-based index).
func (c *Controller) OnIndexChanged(fn func(index int)) {
	c.indexSubs = append(c.indexSubs, fn)
}

// OnPlayingChanged subscribes to play/pause transitions.
func (c *Controller) OnPlayingChanged(fn func(playing bool)) {
	c.playingSubs = append(c.playingSubs, fn)
}

// OnMaxChanged subscribes to changes of the index upper bound.
func (c *Controller) OnMaxChanged(fn func(max int)) {
	c.maxSubs = append(c.maxSubs, fn)
}

// SetMaxValue replaces the index range with [1, maxValue], stops playback
// and resets to frame 1. Called when the viewer is re-pointed at a new
// sequence. Values below 1 are ignored.
func (c *Controller) SetMaxValue(maxValue int) {
	if maxValue < 1 {
		return
	}
	c.stopPlayback()
	c.max = maxValue
	for _, fn := range c.maxSubs {
		fn(maxValue)
	}
	c.jumpTo(1)
}

// ExtendMax raises the index upper bound without touching the current index
// or the play state. Called when a watched folder grows while the viewer is
// open. Values not above the current bound are ignored.
func (c *Controller) ExtendMax(maxValue int) {
	if maxValue <= c.max {
		return
	}
	c.max = maxValue
	for _, fn := range c.maxSubs {
		fn(maxValue)
	}
}

// JumpTo moves to the given 1-based index. Out-of-range values are silently
// ignored: a bad manual entry leaves the index unchanged.
func (c *Controller) JumpTo(index int) {
	c.jumpTo(index)
}

// Seek is JumpTo followed by stopping playback. It backs manual entry and
// slider interaction, which always interrupt automatic playback.
func (c *Controller) Seek(index int) {
	c.stopPlayback()
	c.jumpTo(index)
}

// Step moves by delta frames and stops playback. It is a no-op when the
// corresponding step control would be disabled (already at the first or
// last frame); otherwise an out-of-range target leaves the index unchanged
// but playback still stops.
func (c *Controller) Step(delta int) {
	if delta < 0 && c.current == 1 {
		return
	}
	if delta > 0 && c.current == c.max {
		return
	}
	c.jumpTo(c.current + delta)
	c.stopPlayback()
}

// TogglePlayback starts the timer when idle and stops it when playing.
// Starting at the last frame restarts from frame 1.
func (c *Controller) TogglePlayback() {
	if c.playing {
		c.stopPlayback()
	} else {
		c.startPlayback()
	}
}

// Reset stops playback and returns to frame 1.
func (c *Controller) Reset() {
	c.stopPlayback()
	c.jumpTo(1)
}

// ViewerReady acknowledges that the frame for the current index has been
// presented, unblocking the next timer-driven advance.
func (c *Controller) ViewerReady() {
	c.viewerReady = true
}

// Tick is invoked by the ticker once per period while playing. A tick that
// arrives before the viewer acknowledged the previous frame is dropped, not
// queued: the timer keeps its fixed period and slow renders simply skip
// ticks. Reaching the last frame stops playback instead of wrapping.
func (c *Controller) Tick() {
	if !c.playing {
		return
	}
	if c.waitForReady && !c.viewerReady {
		return
	}
	next := c.current + 1
	if next <= c.max {
		c.jumpTo(next)
	} else {
		c.stopPlayback()
	}
}

// Close releases the timer. The controller must not be used afterwards.
func (c *Controller) Close() {
	c.stopPlayback()
}

func (c *Controller) jumpTo(index int) {
	if index < 1 || index > c.max {
		return
	}
	c.current = index
	c.viewerReady = false
	for _, fn := range c.indexSubs {
		fn(index)
	}
}

func (c *Controller) startPlayback() {
	if c.current >= c.max {
		// Restart playback from the beginning.
		c.jumpTo(1)
	}
	c.ticker.Start(c.interval, c.Tick)
	c.setPlaying(true)
}

func (c *Controller) stopPlayback() {
	c.ticker.Stop()
	c.setPlaying(false)
}

func (c *Controller) setPlaying(playing bool) {
	if c.playing == playing {
		return
	}
	c.playing = playing
	for _, fn := range c.playingSubs {
		fn(playing)
	}
}
