// Package input classifies raw pointer and drop events into the gestures
// the viewer reacts to: clicks per button, right-button pan drags, and
// dropped local paths.
package input

// Button identifies a pointer button.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// String returns the conventional button name.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "none"
	}
}

// Point is a widget-local pointer position.
type Point struct {
	X, Y float32
}

// Click is a press/release pair on one button with no drag motion in
// between.
type Click struct {
	Button Button
	Pos    Point
}

// Tracker turns press/move/release events into clicks or a pan drag. One
// tracker serves one widget; it is ephemeral state, created empty and reset
// on every release.
type Tracker struct {
	pressed Button
	moved   bool
	last    Point
}

// Press records a button press at the given position, starting a new
// press/release pairing. A press while another button is held cancels the
// pending click.
func (t *Tracker) Press(b Button, p Point) {
	if t.pressed != ButtonNone {
		t.moved = true
	}
	t.pressed = b
	t.last = p
}

// Move records pointer motion. Any motion while a button is held cancels
// the pending click; motion with the right button held is a pan drag and
// returns the delta since the previous position.
func (t *Tracker) Move(p Point) (dx, dy float32, panning bool) {
	if t.pressed == ButtonNone {
		return 0, 0, false
	}
	dx = p.X - t.last.X
	dy = p.Y - t.last.Y
	if dx != 0 || dy != 0 {
		t.moved = true
	}
	t.last = p
	return dx, dy, t.pressed == ButtonRight
}

// Release completes the pairing. It returns a Click only when the released
// button matches the pressed one and no drag motion occurred.
func (t *Tracker) Release(b Button, p Point) (Click, bool) {
	defer func() { *t = Tracker{} }()
	if b == ButtonNone || b != t.pressed || t.moved {
		return Click{}, false
	}
	return Click{Button: b, Pos: p}, true
}

// Panning reports whether a right-button drag is in progress.
func (t *Tracker) Panning() bool {
	return t.pressed == ButtonRight && t.moved
}
