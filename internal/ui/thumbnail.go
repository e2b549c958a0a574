package ui

import (
	"bytes"
	"fmt"
	"image/png"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"

	"github.com/nfnt/resize"

	"imseqview/internal/sequence"
)

const (
	// ThumbnailWidth is the width of the strip thumbnails.
	ThumbnailWidth = 96
	// ThumbnailHeight is the height of the strip thumbnails.
	ThumbnailHeight = 64
	// thumbnailRadius is how many frames before and after the current one
	// the strip shows.
	thumbnailRadius = 5
)

// ThumbnailStrip shows a scrolling band of frames around the current index.
// Thumbnails are generated in the background and cached per frame index;
// tapping one seeks to that frame.
type ThumbnailStrip struct {
	mu    sync.RWMutex
	seq   sequence.Sequence
	cache map[int]fyne.Resource

	box      *fyne.Container
	scroll   *container.Scroll
	onSelect func(index int)
	logger   sequence.LoggerFunc
}

// NewThumbnailStrip creates an empty strip. onSelect receives the 1-based
// index of a tapped thumbnail.
func NewThumbnailStrip(onSelect func(index int), logger sequence.LoggerFunc) *ThumbnailStrip {
	ts := &ThumbnailStrip{
		cache:    make(map[int]fyne.Resource),
		box:      container.NewHBox(),
		onSelect: onSelect,
		logger:   logger,
	}
	ts.scroll = container.NewHScroll(ts.box)
	ts.scroll.SetMinSize(fyne.NewSize(ThumbnailWidth, ThumbnailHeight+8))
	return ts
}

// Content returns the strip's canvas object.
func (ts *ThumbnailStrip) Content() fyne.CanvasObject { return ts.scroll }

// SetSequence points the strip at a new sequence and drops the cache.
func (ts *ThumbnailStrip) SetSequence(seq sequence.Sequence) {
	ts.mu.Lock()
	ts.seq = seq
	ts.cache = make(map[int]fyne.Resource)
	ts.mu.Unlock()
	ts.SetCurrent(1)
}

// SetCurrent re-centers the strip window on the given 1-based index.
func (ts *ThumbnailStrip) SetCurrent(index int) {
	ts.mu.RLock()
	seq := ts.seq
	ts.mu.RUnlock()
	ts.box.Objects = nil
	if seq == nil {
		ts.box.Refresh()
		return
	}

	first := index - thumbnailRadius
	if first < 1 {
		first = 1
	}
	last := index + thumbnailRadius
	if last > seq.Length() {
		last = seq.Length()
	}
	for i := first; i <= last; i++ {
		i := i
		ti := newTappableImage(theme.FileImageIcon(), func() {
			if ts.onSelect != nil {
				ts.onSelect(i)
			}
		})
		ti.SetMinSize(fyne.NewSize(ThumbnailWidth, ThumbnailHeight))
		ti.SetResource(ts.thumbnail(seq, i, ti.SetResource))
		ts.box.Add(ti)
	}
	ts.box.Refresh()
}

// thumbnail returns the cached resource for a frame, or a placeholder while
// a background goroutine generates it and delivers it through onComplete on
// the UI thread.
func (ts *ThumbnailStrip) thumbnail(seq sequence.Sequence, index int, onComplete func(fyne.Resource)) fyne.Resource {
	ts.mu.RLock()
	res, ok := ts.cache[index]
	ts.mu.RUnlock()
	if ok {
		return res
	}

	go func() {
		img, err := seq.FrameAt(index - 1)
		if err != nil {
			ts.logf("thumbnail for frame %d: %v", index, err)
			return
		}
		thumb := resize.Thumbnail(ThumbnailWidth, ThumbnailHeight, img, resize.Lanczos3)
		buf := new(bytes.Buffer)
		if err := png.Encode(buf, thumb); err != nil {
			ts.logf("encoding thumbnail for frame %d: %v", index, err)
			return
		}
		res := fyne.NewStaticResource(fmt.Sprintf("frame-%d", index), buf.Bytes())

		ts.mu.Lock()
		stale := ts.seq != seq
		if !stale {
			ts.cache[index] = res
		}
		ts.mu.Unlock()
		if stale {
			return
		}
		fyne.Do(func() { onComplete(res) })
	}()

	return theme.FileImageIcon()
}

func (ts *ThumbnailStrip) logf(format string, args ...interface{}) {
	if ts.logger != nil {
		ts.logger(fmt.Sprintf(format, args...))
	}
}
