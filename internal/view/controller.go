package view

const (
	// wheelNotch is the conventional wheel delta of one scroll notch.
	wheelNotch = 120
	// zoomStepPerNotch is the scale change per wheel notch.
	zoomStepPerNotch = 0.05
	// minRenderDim is the floor, in device-independent pixels, below which
	// the smaller image dimension is never rendered.
	minRenderDim = 32
	// fitMargin is subtracted from the viewport when fitting, so the fitted
	// image never triggers scrollbars through rounding.
	fitMargin = 2
	// dragScrollFactor amplifies drag deltas relative to wheel scroll
	// deltas, so right-button dragging tracks the pointer at roughly 1:1
	// screen speed.
	dragScrollFactor = 6
)

// Controller owns the current scale, the minimum scale derived from the
// content size, and the pan/scroll offsets of the image canvas. Like the
// playback controller it is owned by a single widget instance and mutated
// only on the event-loop thread.
type Controller struct {
	scale    float32
	minScale float32
	content  Size
	viewport Size
	scroll   Point

	zoomSubs []func(scale float32)
}

// NewController creates a controller at scale 1 with no content.
func NewController() *Controller {
	return &Controller{scale: 1, minScale: 1}
}

// OnZoomChanged subscribes to scale changes.
func (v *Controller) OnZoomChanged(fn func(scale float32)) {
	v.zoomSubs = append(v.zoomSubs, fn)
}

// Scale returns the current scale factor.
func (v *Controller) Scale() float32 { return v.scale }

// MinScale returns the current scale floor.
func (v *Controller) MinScale() float32 { return v.minScale }

// ContentSize returns the native size of the displayed image.
func (v *Controller) ContentSize() Size { return v.content }

// SetContentSize installs a new image extent and recomputes the minimum
// scale: the smaller dimension never renders below minRenderDim unless the
// image itself is smaller than that, in which case the floor is 1.0.
// The current scale is re-clamped against the new floor.
func (v *Controller) SetContentSize(size Size) {
	v.content = size
	smaller := size.W
	if size.H < smaller {
		smaller = size.H
	}
	if smaller > minRenderDim {
		v.minScale = minRenderDim / smaller
	} else {
		v.minScale = 1.0
	}
	v.setScale(v.scale)
	v.clampScroll()
}

// SetViewportSize records the widget extent the image is rendered into.
func (v *Controller) SetViewportSize(size Size) {
	v.viewport = size
	v.clampScroll()
}

// ZoomBy applies a wheel delta: one notch of 120 changes the scale by 0.05.
// Shift-modified deltas are premultiplied by 10 by the caller. The result
// is clamped to the minimum scale.
func (v *Controller) ZoomBy(wheelDelta float32) {
	v.setScale(v.scale + zoomStepPerNotch*wheelDelta/wheelNotch)
}

// SetScale sets the scale directly, clamped to the minimum.
func (v *Controller) SetScale(scale float32) {
	v.setScale(scale)
}

// ScaleToFit chooses the scale so the whole image fits the viewport without
// scrollbars, picking the limiting dimension by aspect-ratio comparison and
// keeping a small margin.
func (v *Controller) ScaleToFit() {
	if v.content.W <= 0 || v.content.H <= 0 {
		return
	}
	availW := v.viewport.W - fitMargin
	availH := v.viewport.H - fitMargin
	if availW <= 0 || availH <= 0 {
		return
	}
	var scale float32
	if availW/availH < v.content.W/v.content.H {
		// Width-bound: the image is proportionally wider than the viewport.
		scale = availW / v.content.W
	} else {
		scale = availH / v.content.H
	}
	v.setScale(scale)
	v.scroll = Point{}
}

// ScrollBy translates wheel-driven scroll deltas, in widget units, into the
// scroll offset.
func (v *Controller) ScrollBy(dx, dy float32) {
	v.scroll.X += dx / v.scale
	v.scroll.Y += dy / v.scale
	v.clampScroll()
}

// DragBy translates pointer-drag deltas into scroll offsets, amplified by a
// fixed factor relative to wheel scrolling. Dragging right/down moves the
// content with the pointer, so the scroll offset decreases.
func (v *Controller) DragBy(dx, dy float32) {
	v.ScrollBy(-dx*dragScrollFactor, -dy*dragScrollFactor)
}

// Offset returns the effective transform offset in image pixels. On an axis
// where the scaled content is smaller than the viewport the content is
// centered; otherwise it is scrolled.
func (v *Controller) Offset() Point {
	return Point{
		X: v.axisOffset(v.content.W, v.viewport.W, v.scroll.X),
		Y: v.axisOffset(v.content.H, v.viewport.H, v.scroll.Y),
	}
}

// Transform returns the current widget↔pixel mapping.
func (v *Controller) Transform() Transform {
	return Transform{Scale: v.scale, Offset: v.Offset()}
}

func (v *Controller) axisOffset(content, viewport, scroll float32) float32 {
	scaled := content * v.scale
	if scaled < viewport {
		return (viewport - scaled) / (2 * v.scale)
	}
	return -scroll
}

func (v *Controller) setScale(scale float32) {
	if scale < v.minScale {
		scale = v.minScale
	}
	if scale == v.scale {
		return
	}
	v.scale = scale
	v.clampScroll()
	for _, fn := range v.zoomSubs {
		fn(scale)
	}
}

// clampScroll keeps the scroll offset within the overscan of each axis.
func (v *Controller) clampScroll() {
	v.scroll.X = clampAxis(v.scroll.X, v.content.W, v.viewport.W, v.scale)
	v.scroll.Y = clampAxis(v.scroll.Y, v.content.H, v.viewport.H, v.scale)
}

func clampAxis(scroll, content, viewport, scale float32) float32 {
	if scale <= 0 {
		return 0
	}
	maxScroll := content - viewport/scale
	if maxScroll <= 0 {
		return 0
	}
	if scroll < 0 {
		return 0
	}
	if scroll > maxScroll {
		return maxScroll
	}
	return scroll
}
