// Package view owns the scale and offset state of the image canvas and the
// mapping between widget-local coordinates and image-pixel coordinates.
package view

// Point is a 2D coordinate, in widget units or image pixels depending on
// context.
type Point struct {
	X, Y float32
}

// Size is a 2D extent.
type Size struct {
	W, H float32
}

// Transform maps between widget-local coordinates and image-pixel
// coordinates. Offset is expressed in image pixels.
//
//	pixel  = widget/Scale - Offset
//	widget = (pixel + Offset) * Scale
//
// The two directions round-trip exactly up to float precision, which the
// click/hover pixel-reporting feature relies on.
type Transform struct {
	Scale  float32
	Offset Point
}

// ImageFromWidget converts a widget-local coordinate to an image pixel.
func (t Transform) ImageFromWidget(w Point) Point {
	return Point{
		X: w.X/t.Scale - t.Offset.X,
		Y: w.Y/t.Scale - t.Offset.Y,
	}
}

// WidgetFromImage converts an image pixel to a widget-local coordinate.
func (t Transform) WidgetFromImage(p Point) Point {
	return Point{
		X: (p.X + t.Offset.X) * t.Scale,
		Y: (p.Y + t.Offset.Y) * t.Scale,
	}
}
