package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"imseqview/internal/input"
	"imseqview/internal/view"
)

// fyneScrollUnit is roughly how many widget units fyne reports for one wheel
// notch; scroll deltas are rescaled to the conventional 120-per-notch wheel
// units the view controller expects.
const fyneScrollUnit = 25

// ImageCanvas is a custom widget displaying one frame of a sequence with
// wheel zoom, right-button panning and per-button click reporting. All
// coordinate math lives in the view controller; the canvas only feeds it
// events and renders through its transform.
type ImageCanvas struct {
	widget.BaseWidget

	img     image.Image
	raster  *canvas.Raster
	view    *view.Controller
	tracker input.Tracker

	// OnClick receives press/release pairs that were not drags, with the
	// position converted to image pixel coordinates.
	OnClick func(button input.Button, x, y int)
}

// NewImageCanvas creates a canvas rendering through the given view
// controller.
func NewImageCanvas(viewCtl *view.Controller) *ImageCanvas {
	c := &ImageCanvas{view: viewCtl}
	c.raster = canvas.NewRaster(c.draw)
	c.ExtendBaseWidget(c)
	return c
}

// SetImage replaces the displayed frame. With preserveView the current zoom
// and scroll position carry over, which is what frame-to-frame playback
// wants; without it the new image is fitted to the window.
func (c *ImageCanvas) SetImage(img image.Image, preserveView bool) {
	c.img = img
	if img != nil {
		b := img.Bounds()
		c.view.SetContentSize(view.Size{W: float32(b.Dx()), H: float32(b.Dy())})
	} else {
		c.view.SetContentSize(view.Size{})
	}
	if !preserveView {
		c.view.ScaleToFit()
	}
	c.Refresh()
}

// Image returns the currently displayed frame, which may be nil.
func (c *ImageCanvas) Image() image.Image { return c.img }

// draw renders the frame into the raster by walking destination pixels and
// sampling the source through the inverse transform.
func (c *ImageCanvas) draw(w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if c.img == nil || w <= 0 || h <= 0 {
		return dst
	}

	// The raster may be larger than the widget on high-DPI outputs.
	ratio := float32(1)
	if ww := c.Size().Width; ww > 0 {
		ratio = float32(w) / ww
	}

	t := c.view.Transform()
	if t.Scale <= 0 {
		return dst
	}
	srcBounds := c.img.Bounds()
	inv := ratio * t.Scale

	for dy := 0; dy < h; dy++ {
		sy := float32(dy)/inv - t.Offset.Y
		if sy < 0 || sy >= float32(srcBounds.Dy()) {
			continue
		}
		for dx := 0; dx < w; dx++ {
			sx := float32(dx)/inv - t.Offset.X
			if sx < 0 || sx >= float32(srcBounds.Dx()) {
				continue
			}
			dst.Set(dx, dy, c.img.At(srcBounds.Min.X+int(sx), srcBounds.Min.Y+int(sy)))
		}
	}
	return dst
}

// CreateRenderer is a Fyne lifecycle method.
func (c *ImageCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &imageCanvasRenderer{c: c}
}

// Scrolled zooms on wheel motion.
func (c *ImageCanvas) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY != 0 {
		c.view.ZoomBy(ev.Scrolled.DY / fyneScrollUnit * 120)
	}
	if ev.Scrolled.DX != 0 {
		c.view.ScrollBy(-ev.Scrolled.DX, 0)
	}
	c.Refresh()
}

// MouseDown starts a press/release pairing.
func (c *ImageCanvas) MouseDown(ev *desktop.MouseEvent) {
	c.tracker.Press(buttonFor(ev.Button), pointFor(ev.Position))
}

// MouseUp completes the pairing and reports a click if no drag happened.
func (c *ImageCanvas) MouseUp(ev *desktop.MouseEvent) {
	click, ok := c.tracker.Release(buttonFor(ev.Button), pointFor(ev.Position))
	if !ok || c.OnClick == nil || c.img == nil {
		return
	}
	px := c.view.Transform().ImageFromWidget(view.Point{X: click.Pos.X, Y: click.Pos.Y})
	b := c.img.Bounds()
	x, y := int(px.X), int(px.Y)
	if x < 0 || x >= b.Dx() || y < 0 || y >= b.Dy() {
		return
	}
	c.OnClick(click.Button, x, y)
}

// MouseIn implements desktop.Hoverable.
func (c *ImageCanvas) MouseIn(_ *desktop.MouseEvent) {}

// MouseMoved pans while the right button is held. Fyne keeps delivering
// hover motion for non-primary buttons, so right-button drags arrive here.
func (c *ImageCanvas) MouseMoved(ev *desktop.MouseEvent) {
	c.applyMove(pointFor(ev.Position))
}

// MouseOut implements desktop.Hoverable.
func (c *ImageCanvas) MouseOut() {}

// Dragged receives primary-button drag motion; it only cancels the pending
// click, the left button does not pan.
func (c *ImageCanvas) Dragged(ev *fyne.DragEvent) {
	c.applyMove(pointFor(ev.Position))
}

// DragEnd implements fyne.Draggable.
func (c *ImageCanvas) DragEnd() {}

func (c *ImageCanvas) applyMove(p input.Point) {
	dx, dy, panning := c.tracker.Move(p)
	if !panning || (dx == 0 && dy == 0) {
		return
	}
	c.view.DragBy(dx, dy)
	c.Refresh()
}

func buttonFor(b desktop.MouseButton) input.Button {
	switch b {
	case desktop.MouseButtonPrimary:
		return input.ButtonLeft
	case desktop.MouseButtonSecondary:
		return input.ButtonRight
	case desktop.MouseButtonTertiary:
		return input.ButtonMiddle
	default:
		return input.ButtonNone
	}
}

func pointFor(p fyne.Position) input.Point {
	return input.Point{X: p.X, Y: p.Y}
}

type imageCanvasRenderer struct{ c *ImageCanvas }

func (r *imageCanvasRenderer) Layout(size fyne.Size) {
	r.c.raster.Resize(size)
	r.c.view.SetViewportSize(view.Size{W: size.Width, H: size.Height})
}
func (r *imageCanvasRenderer) MinSize() fyne.Size           { return fyne.NewSize(100, 100) }
func (r *imageCanvasRenderer) Refresh()                     { canvas.Refresh(r.c.raster) }
func (r *imageCanvasRenderer) Objects() []fyne.CanvasObject { return []fyne.CanvasObject{r.c.raster} }
func (r *imageCanvasRenderer) Destroy()                     {}

var _ fyne.Widget = (*ImageCanvas)(nil)
var _ fyne.Scrollable = (*ImageCanvas)(nil)
var _ fyne.Draggable = (*ImageCanvas)(nil)
var _ desktop.Mouseable = (*ImageCanvas)(nil)
var _ desktop.Hoverable = (*ImageCanvas)(nil)
