// Package ui keyboard shortcuts.
package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"imseqview/internal/playback"
)

// DefaultKeymap maps key presses to playback actions. Keeping the bindings
// as data lets them be listed in the help dialog and tested without a
// window.
var DefaultKeymap = map[fyne.KeyName]playback.Action{
	fyne.KeyEscape: playback.ActionReset,
	fyne.KeyR:      playback.ActionReset,
	fyne.KeyP:      playback.ActionTogglePlayback,
	fyne.KeyX:      playback.ActionTogglePlayback,
	fyne.KeyB:      playback.ActionStepBack,
	fyne.KeyV:      playback.ActionStepBackCoarse,
	fyne.KeyN:      playback.ActionStepForward,
	fyne.KeyM:      playback.ActionStepForwardCoarse,
}

func (a *App) buildKeyboardShortcuts() {
	// ctrl+q to quit application
	a.win.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyQ,
		Modifier: fyne.KeyModifierControl,
	}, func(_ fyne.Shortcut) { a.app.Quit() })

	a.win.Canvas().SetOnTypedKey(func(key *fyne.KeyEvent) {
		if action, ok := DefaultKeymap[key.Name]; ok {
			a.viewer.Playback().Apply(action)
		}
	})
}
