package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imseqview/internal/playback"
)

func TestDefaultKeymapBindings(t *testing.T) {
	expected := map[fyne.KeyName]playback.Action{
		fyne.KeyEscape: playback.ActionReset,
		fyne.KeyR:      playback.ActionReset,
		fyne.KeyP:      playback.ActionTogglePlayback,
		fyne.KeyX:      playback.ActionTogglePlayback,
		fyne.KeyB:      playback.ActionStepBack,
		fyne.KeyV:      playback.ActionStepBackCoarse,
		fyne.KeyN:      playback.ActionStepForward,
		fyne.KeyM:      playback.ActionStepForwardCoarse,
	}
	assert.Equal(t, expected, DefaultKeymap)
}

func TestShortcutTableCells(t *testing.T) {
	// The header row must not index into the data rows.
	text, header := shortcutCellText(0, 0)
	assert.Equal(t, "Description", text)
	assert.True(t, header)
	text, header = shortcutCellText(0, 1)
	assert.Equal(t, "Shortcut", text)
	assert.True(t, header)

	// Every data cell renders non-empty, in row order.
	for row := 1; row <= len(shortcutRows); row++ {
		for col := 0; col < 2; col++ {
			text, header = shortcutCellText(row, col)
			assert.NotEmpty(t, text, "row %d col %d", row, col)
			assert.False(t, header)
		}
	}
	text, _ = shortcutCellText(1, 0)
	assert.Equal(t, "Play / Pause", text)
	text, _ = shortcutCellText(1, 1)
	assert.Equal(t, "P or X", text)
}

func TestKeymapDrivesController(t *testing.T) {
	ctl, err := playback.NewController(50, playback.Options{Ticker: playback.NewManualTicker()})
	require.NoError(t, err)

	ctl.Apply(DefaultKeymap[fyne.KeyN])
	assert.Equal(t, 2, ctl.Current())

	ctl.Apply(DefaultKeymap[fyne.KeyM])
	assert.Equal(t, 12, ctl.Current())

	ctl.Apply(DefaultKeymap[fyne.KeyV])
	assert.Equal(t, 2, ctl.Current())

	ctl.Apply(DefaultKeymap[fyne.KeyP])
	assert.True(t, ctl.IsPlaying())

	ctl.Apply(DefaultKeymap[fyne.KeyEscape])
	assert.False(t, ctl.IsPlaying())
	assert.Equal(t, 1, ctl.Current())
}
