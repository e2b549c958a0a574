package sequence

import (
	"image"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	syntheticWidth  = 600
	syntheticHeight = 400
)

// Synthetic generates frames procedurally, for demos and for running the
// viewer without a folder argument. Each frame is a hue-ramped field with a
// bright bar sweeping left to right so playback progress is visible.
type Synthetic struct {
	frames int
	w, h   int
}

// NewSynthetic creates a synthetic sequence of the given frame count. A
// non-positive count yields an empty sequence, which viewers reject.
func NewSynthetic(frames int) *Synthetic {
	if frames < 0 {
		frames = 0
	}
	return &Synthetic{frames: frames, w: syntheticWidth, h: syntheticHeight}
}

// Length implements Sequence.
func (s *Synthetic) Length() int { return s.frames }

// FrameAt implements Sequence.
func (s *Synthetic) FrameAt(index int) (image.Image, error) {
	if index < 0 || index >= s.frames {
		return nil, ErrOutOfRange
	}

	progress := float64(index) / float64(s.frames)
	base := colorful.Hsv(progress*360, 0.6, 0.45)
	bar := colorful.Hsv(progress*360, 0.3, 0.95)
	baseR, baseG, baseB := base.RGB255()
	barR, barG, barB := bar.RGB255()

	barX := int(progress * float64(s.w))
	const barWidth = 20

	img := image.NewRGBA(image.Rect(0, 0, s.w, s.h))
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			if x >= barX && x < barX+barWidth {
				img.SetRGBA(x, y, color.RGBA{R: barR, G: barG, B: barB, A: 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{R: baseR, G: baseG, B: baseB, A: 255})
			}
		}
	}
	return img, nil
}
