package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imseqview/internal/playback"
)

func newTestControlBar(t *testing.T, frames int) (*ControlBar, *playback.Controller) {
	t.Helper()
	test.NewApp()
	ctl, err := playback.NewController(frames, playback.Options{Ticker: playback.NewManualTicker()})
	require.NoError(t, err)
	return NewControlBar(ctl, ControlBarOptions{}), ctl
}

func TestControlBarMirrorsIndex(t *testing.T) {
	cb, ctl := newTestControlBar(t, 10)

	assert.Equal(t, float64(1), cb.slider.Value)
	assert.Equal(t, " 1/10", cb.valueLabel.Text)
	assert.True(t, cb.prevBtn.Disabled())
	assert.False(t, cb.nextBtn.Disabled())

	ctl.JumpTo(10)
	assert.Equal(t, float64(10), cb.slider.Value)
	assert.Equal(t, "10/10", cb.valueLabel.Text)
	assert.False(t, cb.prevBtn.Disabled())
	assert.True(t, cb.nextBtn.Disabled())
}

func TestControlBarSliderSeeks(t *testing.T) {
	cb, ctl := newTestControlBar(t, 10)

	// A user slider change jumps without echoing back into itself.
	cb.slider.OnChanged(7)
	assert.Equal(t, 7, ctl.Current())
	assert.Equal(t, float64(7), cb.slider.Value)
}

func TestControlBarManualEntry(t *testing.T) {
	cb, ctl := newTestControlBar(t, 10)
	ctl.TogglePlayback()
	require.True(t, ctl.IsPlaying())

	cb.entry.SetText("8")
	cb.entry.OnSubmitted(cb.entry.Text)
	assert.Equal(t, 8, ctl.Current())
	assert.False(t, ctl.IsPlaying(), "manual entry interrupts playback")
	assert.Empty(t, cb.entry.Text)

	// Garbage and out-of-range input leave the index alone but still clear.
	cb.entry.SetText("wat")
	cb.entry.OnSubmitted(cb.entry.Text)
	assert.Equal(t, 8, ctl.Current())
	assert.Empty(t, cb.entry.Text)

	cb.entry.SetText("99")
	cb.entry.OnSubmitted(cb.entry.Text)
	assert.Equal(t, 8, ctl.Current())
	assert.Empty(t, cb.entry.Text)
}

func TestControlBarMaxChangeResizesSlider(t *testing.T) {
	cb, ctl := newTestControlBar(t, 10)
	ctl.SetMaxValue(250)
	assert.Equal(t, float64(250), cb.slider.Max)
	assert.Equal(t, "  1/250", cb.valueLabel.Text)
}
