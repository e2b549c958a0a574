// Package sequence provides random-access image sequences: folder-backed,
// synthetic, and the diagnostic placeholder frames shown for undecodable
// images. Indexing is 0-based; the UI converts from its 1-based indices.
package sequence

import (
	"errors"
	"image"
	"image/color"
)

// ErrOutOfRange is returned by FrameAt for indices outside [0, Length()-1].
var ErrOutOfRange = errors.New("sequence: frame index out of range")

// LoggerFunc receives progress and warning messages from scanning and
// watching. It lets the UI route them into its own log display.
type LoggerFunc func(message string)

// Sequence is a random-access source of raster frames. Implementations must
// support arbitrary index order; frame ordering is defined by the
// implementation (natural sort for folders).
type Sequence interface {
	// Length returns the number of frames.
	Length() int
	// FrameAt returns the frame at the given 0-based index.
	FrameAt(index int) (image.Image, error)
}

// Placeholder returns the diagnostic frame substituted for an undecodable
// image: a dark field with a red border and diagonal cross. Showing it in
// place keeps playback alive on bad frames.
func Placeholder(width, height int) image.Image {
	if width <= 0 {
		width = 400
	}
	if height <= 0 {
		height = 300
	}
	bg := color.RGBA{R: 40, G: 40, B: 44, A: 255}
	fg := color.RGBA{R: 200, G: 0, B: 0, A: 255}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, bg)
		}
	}
	const border = 4
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			onBorder := x < border || y < border || x >= width-border || y >= height-border
			// Diagonals of the cross, a few pixels wide.
			dx := float64(x) / float64(width-1)
			dy := float64(y) / float64(height-1)
			onCross := abs(dx-dy) < 0.01 || abs(dx+dy-1) < 0.01
			if onBorder || onCross {
				img.SetRGBA(x, y, fg)
			}
		}
	}
	return img
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
