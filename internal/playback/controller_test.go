package playback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T, max int, waitForReady bool) (*Controller, *ManualTicker) {
	t.Helper()
	ticker := NewManualTicker()
	c, err := NewController(max, Options{
		Interval:           100 * time.Millisecond,
		WaitForViewerReady: waitForReady,
		Ticker:             ticker,
	})
	require.NoError(t, err)
	return c, ticker
}

func TestNewControllerRejectsEmptySequence(t *testing.T) {
	_, err := NewController(0, DefaultOptions())
	assert.Error(t, err)
	_, err = NewController(-3, DefaultOptions())
	assert.Error(t, err)
}

func TestNewControllerDefaults(t *testing.T) {
	c, err := NewController(5, Options{})
	require.NoError(t, err)
	defer c.Close()
	assert.Equal(t, 1, c.Current())
	assert.Equal(t, 5, c.Max())
	assert.False(t, c.IsPlaying())
	assert.Equal(t, DefaultInterval, c.Interval())
}

func TestSetMaxValueResetsAndStops(t *testing.T) {
	c, _ := newTestController(t, 10, false)
	c.JumpTo(7)
	c.TogglePlayback()
	require.True(t, c.IsPlaying())

	var maxEvents []int
	c.OnMaxChanged(func(max int) { maxEvents = append(maxEvents, max) })

	c.SetMaxValue(42)
	assert.Equal(t, 42, c.Max())
	assert.Equal(t, 1, c.Current())
	assert.False(t, c.IsPlaying())
	assert.Equal(t, []int{42}, maxEvents)

	// Values below 1 are ignored.
	c.SetMaxValue(0)
	assert.Equal(t, 42, c.Max())
}

func TestExtendMaxKeepsPositionAndPlayState(t *testing.T) {
	c, _ := newTestController(t, 10, false)
	c.JumpTo(7)
	c.TogglePlayback()

	var maxEvents []int
	c.OnMaxChanged(func(max int) { maxEvents = append(maxEvents, max) })

	c.ExtendMax(15)
	assert.Equal(t, 15, c.Max())
	assert.Equal(t, 7, c.Current())
	assert.True(t, c.IsPlaying())
	assert.Equal(t, []int{15}, maxEvents)

	// Shrinking or repeating the bound is ignored.
	c.ExtendMax(15)
	c.ExtendMax(3)
	assert.Equal(t, 15, c.Max())
	assert.Equal(t, []int{15}, maxEvents)
}

func TestJumpToEmitsExactlyOneEvent(t *testing.T) {
	c, _ := newTestController(t, 10, false)
	var events []int
	c.OnIndexChanged(func(i int) { events = append(events, i) })

	for i := 1; i <= 10; i++ {
		events = nil
		c.JumpTo(i)
		assert.Equal(t, i, c.Current())
		assert.Equal(t, []int{i}, events)
	}
}

func TestJumpToOutOfRangeIsIgnored(t *testing.T) {
	c, _ := newTestController(t, 10, false)
	c.JumpTo(4)
	var events []int
	c.OnIndexChanged(func(i int) { events = append(events, i) })

	for _, i := range []int{0, -1, 11, 100} {
		c.JumpTo(i)
	}
	assert.Equal(t, 4, c.Current())
	assert.Empty(t, events)
}

func TestSeekStopsPlayback(t *testing.T) {
	c, _ := newTestController(t, 10, false)
	c.TogglePlayback()
	require.True(t, c.IsPlaying())
	c.Seek(5)
	assert.Equal(t, 5, c.Current())
	assert.False(t, c.IsPlaying())
}

func TestStepBoundaryGuards(t *testing.T) {
	c, _ := newTestController(t, 10, false)

	// At the first frame, a backward step is disabled and does not stop playback.
	c.TogglePlayback()
	c.Step(-1)
	assert.Equal(t, 1, c.Current())
	assert.True(t, c.IsPlaying())

	// A valid forward step moves and stops playback.
	c.Step(+1)
	assert.Equal(t, 2, c.Current())
	assert.False(t, c.IsPlaying())

	// A coarse step past the range leaves the index unchanged but still stops.
	c.JumpTo(5)
	c.TogglePlayback()
	c.Step(-CoarseStep)
	assert.Equal(t, 5, c.Current())
	assert.False(t, c.IsPlaying())

	// Forward step at the last frame is disabled.
	c.JumpTo(10)
	c.Step(+1)
	assert.Equal(t, 10, c.Current())
}

func TestTogglePlaybackIdempotence(t *testing.T) {
	c, ticker := newTestController(t, 10, false)
	c.JumpTo(3)

	var transitions []bool
	c.OnPlayingChanged(func(p bool) { transitions = append(transitions, p) })

	c.TogglePlayback()
	assert.True(t, c.IsPlaying())
	assert.True(t, ticker.IsRunning())
	assert.Equal(t, 100*time.Millisecond, ticker.Interval())

	c.TogglePlayback()
	assert.False(t, c.IsPlaying())
	assert.False(t, ticker.IsRunning())
	assert.Equal(t, 3, c.Current())
	assert.Equal(t, []bool{true, false}, transitions)
}

func TestPlaybackRestartsFromOneAtEnd(t *testing.T) {
	c, _ := newTestController(t, 10, false)
	c.JumpTo(10)
	c.TogglePlayback()
	assert.True(t, c.IsPlaying())
	assert.Equal(t, 1, c.Current())
}

func TestTickAdvancesAndAutoStops(t *testing.T) {
	c, ticker := newTestController(t, 10, false)
	c.TogglePlayback()

	// Nine ticks walk from frame 1 to frame 10.
	for i := 0; i < 9; i++ {
		ticker.Fire()
	}
	assert.Equal(t, 10, c.Current())
	assert.True(t, c.IsPlaying())

	// The next tick stops playback instead of wrapping.
	ticker.Fire()
	assert.Equal(t, 10, c.Current())
	assert.False(t, c.IsPlaying())

	// Ticks after stopping are inert.
	ticker.Fire()
	assert.Equal(t, 10, c.Current())
}

func TestViewerReadyGateThrottlesTicks(t *testing.T) {
	c, ticker := newTestController(t, 10, true)
	c.TogglePlayback()

	// The first tick advances because the controller starts out ready.
	ticker.Fire()
	assert.Equal(t, 2, c.Current())

	// Without a ViewerReady acknowledgement, further ticks are dropped.
	for i := 0; i < 5; i++ {
		ticker.Fire()
	}
	assert.Equal(t, 2, c.Current())
	assert.True(t, c.IsPlaying())

	// Acknowledging releases exactly one advance.
	c.ViewerReady()
	ticker.Fire()
	assert.Equal(t, 3, c.Current())
	ticker.Fire()
	assert.Equal(t, 3, c.Current())
}

func TestResetStopsAndReturnsToFirstFrame(t *testing.T) {
	c, _ := newTestController(t, 10, false)
	c.JumpTo(6)
	c.TogglePlayback()
	c.Reset()
	assert.Equal(t, 1, c.Current())
	assert.False(t, c.IsPlaying())
}

func TestIntervalTickerDeliversTicks(t *testing.T) {
	ticks := make(chan struct{}, 8)
	ticker := NewIntervalTicker(nil)
	ticker.Start(5*time.Millisecond, func() { ticks <- struct{}{} })
	defer ticker.Stop()

	select {
	case <-ticks:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a tick")
	}
	assert.True(t, ticker.IsRunning())
	ticker.Stop()
	assert.False(t, ticker.IsRunning())
}
