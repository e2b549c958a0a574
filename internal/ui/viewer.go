package ui

import (
	"errors"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"imseqview/internal/input"
	"imseqview/internal/playback"
	"imseqview/internal/sequence"
	"imseqview/internal/view"
)

// ViewerOptions configure a SequenceViewer.
type ViewerOptions struct {
	// Interval is the playback timer period.
	Interval time.Duration
	// WaitForViewerReady gates timer advances on render acknowledgements.
	WaitForViewerReady bool
	// SequenceButtons shows previous/next-sequence controls.
	SequenceButtons bool
	// ZoomButtons shows fit-to-window and original-size controls.
	ZoomButtons bool
	// Thumbnails shows the thumbnail strip below the image.
	Thumbnails bool
	// Logger receives viewer messages. May be nil.
	Logger sequence.LoggerFunc
	// Dispatch marshals ticker callbacks onto the UI thread. Defaults to
	// fyne.Do; tests substitute a direct call.
	Dispatch func(func())
}

// SequenceViewer wires the image canvas, the control bar and the optional
// thumbnail strip around one playback controller. It fetches frames from the
// current sequence, converting the controller's 1-based indices to the
// sequence's 0-based ones, and acknowledges each presented frame back to the
// controller.
type SequenceViewer struct {
	playback *playback.Controller
	view     *view.Controller
	canvas   *ImageCanvas
	controls *ControlBar
	thumbs   *ThumbnailStrip
	content  fyne.CanvasObject

	seq    sequence.Sequence
	logger sequence.LoggerFunc

	// OnFrameChanged fires after a frame was presented, with its 1-based
	// index.
	OnFrameChanged func(index int)
	// OnClickPixel fires for clicks on the image, in pixel coordinates.
	OnClickPixel func(button input.Button, x, y int)
	// OnZoomChanged fires when the zoom scale changes.
	OnZoomChanged func(scale float32)
	// OnPreviousSequence and OnNextSequence forward the optional
	// sequence-navigation buttons.
	OnPreviousSequence func()
	OnNextSequence     func()
}

// NewSequenceViewer builds a viewer showing a placeholder until a sequence
// is set.
func NewSequenceViewer(opts ViewerOptions) *SequenceViewer {
	dispatch := opts.Dispatch
	if dispatch == nil {
		dispatch = fyne.Do
	}
	// The controller starts over a single placeholder frame; SetSequence
	// installs the real range.
	ctl, err := playback.NewController(1, playback.Options{
		Interval:           opts.Interval,
		WaitForViewerReady: opts.WaitForViewerReady,
		Ticker:             playback.NewIntervalTicker(dispatch),
	})
	if err != nil {
		// Unreachable with a positive constant frame count.
		panic(err)
	}

	s := &SequenceViewer{
		playback: ctl,
		view:     view.NewController(),
		logger:   opts.Logger,
	}
	s.canvas = NewImageCanvas(s.view)
	s.canvas.OnClick = func(button input.Button, x, y int) {
		if s.OnClickPixel != nil {
			s.OnClickPixel(button, x, y)
		}
	}
	s.controls = NewControlBar(ctl, ControlBarOptions{
		SequenceButtons: opts.SequenceButtons,
		ZoomButtons:     opts.ZoomButtons,
	})
	s.controls.OnZoomFit = s.ZoomFitToWindow
	s.controls.OnZoomOriginal = s.ZoomOriginalSize
	s.controls.OnPreviousSequence = func() {
		if s.OnPreviousSequence != nil {
			s.OnPreviousSequence()
		}
	}
	s.controls.OnNextSequence = func() {
		if s.OnNextSequence != nil {
			s.OnNextSequence()
		}
	}

	var bottom fyne.CanvasObject = s.controls
	if opts.Thumbnails {
		s.thumbs = NewThumbnailStrip(func(index int) { ctl.Seek(index) }, opts.Logger)
		bottom = container.NewVBox(s.thumbs.Content(), s.controls)
	}
	s.content = container.NewBorder(nil, bottom, nil, nil, s.canvas)

	s.view.OnZoomChanged(func(scale float32) {
		s.canvas.Refresh()
		if s.OnZoomChanged != nil {
			s.OnZoomChanged(scale)
		}
	})
	ctl.OnIndexChanged(s.showFrame)

	s.canvas.SetImage(sequence.Placeholder(0, 0), false)
	return s
}

// Content returns the composed widget tree.
func (s *SequenceViewer) Content() fyne.CanvasObject { return s.content }

// Playback exposes the playback controller for key bindings and status.
func (s *SequenceViewer) Playback() *playback.Controller { return s.playback }

// View exposes the zoom/pan controller.
func (s *SequenceViewer) View() *view.Controller { return s.view }

// Sequence returns the current sequence, which may be nil.
func (s *SequenceViewer) Sequence() sequence.Sequence { return s.seq }

// SetSequence points the viewer at a new sequence: playback stops, the index
// range resets to [1, length] and the first frame is shown fitted to the
// window.
func (s *SequenceViewer) SetSequence(seq sequence.Sequence) error {
	if seq == nil || seq.Length() < 1 {
		return fmt.Errorf("ui: sequence has no frames")
	}
	s.seq = seq
	if s.thumbs != nil {
		s.thumbs.SetSequence(seq)
	}
	s.playback.SetMaxValue(seq.Length())
	s.ZoomFitToWindow()
	return nil
}

// ExtendTo raises the frame count of the current sequence, keeping position
// and play state. Used when a watched folder grows.
func (s *SequenceViewer) ExtendTo(length int) {
	s.playback.ExtendMax(length)
}

// ZoomFitToWindow scales the image so it fits without scrollbars.
func (s *SequenceViewer) ZoomFitToWindow() {
	s.view.ScaleToFit()
	s.canvas.Refresh()
}

// ZoomOriginalSize shows the image at one image pixel per widget unit.
func (s *SequenceViewer) ZoomOriginalSize() {
	s.view.SetScale(1)
	s.canvas.Refresh()
}

// Close stops playback and releases the timer.
func (s *SequenceViewer) Close() {
	s.playback.Close()
}

// showFrame presents the frame for a 1-based index and acknowledges it. A
// stale index that fell outside the sequence (e.g. after a swap) is dropped
// with no visible effect; a frame that cannot be decoded shows the
// placeholder instead. Playback keeps running in both cases.
func (s *SequenceViewer) showFrame(index int) {
	defer s.playback.ViewerReady()
	if s.seq == nil {
		return
	}
	img, err := s.seq.FrameAt(index - 1)
	if errors.Is(err, sequence.ErrOutOfRange) {
		return
	}
	if err != nil {
		s.logf("frame %d: %v", index, err)
		s.canvas.SetImage(sequence.Placeholder(0, 0), true)
	} else {
		s.canvas.SetImage(img, true)
	}
	if s.thumbs != nil {
		s.thumbs.SetCurrent(index)
	}
	if s.OnFrameChanged != nil {
		s.OnFrameChanged(index)
	}
}

func (s *SequenceViewer) logf(format string, args ...interface{}) {
	if s.logger != nil {
		s.logger(fmt.Sprintf(format, args...))
	}
}
