package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"imseqview/internal/playback"
)

// ControlBarOptions select the optional button groups.
type ControlBarOptions struct {
	// SequenceButtons adds previous/next-sequence buttons at the ends.
	SequenceButtons bool
	// ZoomButtons adds fit-to-window and original-size buttons.
	ZoomButtons bool
}

// ControlBar is the playback control row: step buttons, play/pause, reset,
// the seek slider, the current-frame readout and a manual jump entry. It
// renders the state of a playback controller and feeds user interaction back
// into it.
type ControlBar struct {
	widget.BaseWidget

	controller *playback.Controller
	content    *fyne.Container

	slider     *widget.Slider
	entry      *widget.Entry
	valueLabel *widget.Label
	playBtn    *widget.Button
	resetBtn   *widget.Button
	prevBtn    *widget.Button
	nextBtn    *widget.Button

	// syncing suppresses the slider callback while the bar itself moves
	// the slider to mirror a controller event.
	syncing bool

	// OnPreviousSequence and OnNextSequence fire from the optional
	// sequence buttons.
	OnPreviousSequence func()
	OnNextSequence     func()
	// OnZoomFit and OnZoomOriginal fire from the optional zoom buttons.
	OnZoomFit      func()
	OnZoomOriginal func()
}

// NewControlBar builds the control row for the given controller.
func NewControlBar(ctl *playback.Controller, opts ControlBarOptions) *ControlBar {
	cb := &ControlBar{controller: ctl}

	cb.prevBtn = widget.NewButtonWithIcon("", theme.MediaSkipPreviousIcon(), func() { ctl.Step(-1) })
	cb.nextBtn = widget.NewButtonWithIcon("", theme.MediaSkipNextIcon(), func() { ctl.Step(+1) })
	cb.playBtn = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), ctl.TogglePlayback)
	cb.resetBtn = widget.NewButtonWithIcon("", theme.MediaReplayIcon(), ctl.Reset)

	cb.slider = widget.NewSlider(1, float64(ctl.Max()))
	cb.slider.Step = 1
	cb.slider.OnChanged = func(v float64) {
		if cb.syncing {
			return
		}
		ctl.JumpTo(int(v + 0.5))
	}

	cb.valueLabel = widget.NewLabel("")
	cb.valueLabel.TextStyle.Monospace = true

	cb.entry = widget.NewEntry()
	cb.entry.SetPlaceHolder("go to")
	cb.entry.OnSubmitted = func(text string) {
		if n, err := strconv.Atoi(strings.TrimSpace(text)); err == nil {
			ctl.Seek(n)
		}
		// The box clears even after garbage or out-of-range input.
		cb.entry.SetText("")
	}

	left := container.NewHBox(cb.prevBtn, cb.playBtn, cb.nextBtn, cb.resetBtn)
	right := container.NewHBox(
		cb.valueLabel,
		container.NewGridWrap(fyne.NewSize(70, cb.entry.MinSize().Height), cb.entry),
	)
	if opts.SequenceButtons {
		left = container.NewHBox(
			widget.NewButtonWithIcon("", theme.MediaFastRewindIcon(), func() {
				if cb.OnPreviousSequence != nil {
					cb.OnPreviousSequence()
				}
			}),
			left,
		)
		right.Add(widget.NewButtonWithIcon("", theme.MediaFastForwardIcon(), func() {
			if cb.OnNextSequence != nil {
				cb.OnNextSequence()
			}
		}))
	}
	if opts.ZoomButtons {
		right.Add(widget.NewButtonWithIcon("", theme.ZoomFitIcon(), func() {
			if cb.OnZoomFit != nil {
				cb.OnZoomFit()
			}
		}))
		right.Add(widget.NewButton("1:1", func() {
			if cb.OnZoomOriginal != nil {
				cb.OnZoomOriginal()
			}
		}))
	}
	cb.content = container.NewBorder(nil, nil, left, right, cb.slider)

	ctl.OnIndexChanged(func(index int) { cb.syncIndex(index) })
	ctl.OnMaxChanged(func(max int) {
		cb.slider.Max = float64(max)
		cb.slider.Refresh()
		cb.syncIndex(ctl.Current())
	})
	ctl.OnPlayingChanged(func(playing bool) {
		if playing {
			cb.playBtn.SetIcon(theme.MediaPauseIcon())
		} else {
			cb.playBtn.SetIcon(theme.MediaPlayIcon())
		}
	})

	cb.syncIndex(ctl.Current())
	cb.ExtendBaseWidget(cb)
	return cb
}

// CreateRenderer is a Fyne lifecycle method.
func (cb *ControlBar) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(cb.content)
}

// syncIndex mirrors a controller index into the slider, the readout and the
// step-button enablement.
func (cb *ControlBar) syncIndex(index int) {
	cb.syncing = true
	cb.slider.SetValue(float64(index))
	cb.syncing = false

	// Pad to the width of the largest index so the label never jitters.
	digits := len(strconv.Itoa(cb.controller.Max()))
	cb.valueLabel.SetText(fmt.Sprintf("%*d/%d", digits, index, cb.controller.Max()))

	if index <= 1 {
		cb.prevBtn.Disable()
	} else {
		cb.prevBtn.Enable()
	}
	if index >= cb.controller.Max() {
		cb.nextBtn.Disable()
	} else {
		cb.nextBtn.Enable()
	}
}
