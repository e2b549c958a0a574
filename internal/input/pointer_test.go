package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClickWithoutMotion(t *testing.T) {
	for _, b := range []Button{ButtonLeft, ButtonMiddle, ButtonRight} {
		var tr Tracker
		tr.Press(b, Point{X: 10, Y: 20})
		click, ok := tr.Release(b, Point{X: 10, Y: 20})
		require.True(t, ok, "button %s", b)
		assert.Equal(t, b, click.Button)
		assert.Equal(t, Point{X: 10, Y: 20}, click.Pos)
	}
}

func TestMotionCancelsClick(t *testing.T) {
	var tr Tracker
	tr.Press(ButtonLeft, Point{X: 10, Y: 20})
	tr.Move(Point{X: 11, Y: 20})
	_, ok := tr.Release(ButtonLeft, Point{X: 11, Y: 20})
	assert.False(t, ok)
}

func TestRightButtonPanDrag(t *testing.T) {
	var tr Tracker
	tr.Press(ButtonRight, Point{X: 100, Y: 100})
	assert.False(t, tr.Panning())

	dx, dy, panning := tr.Move(Point{X: 104, Y: 97})
	assert.True(t, panning)
	assert.InDelta(t, 4, dx, 1e-6)
	assert.InDelta(t, -3, dy, 1e-6)
	assert.True(t, tr.Panning())

	// Deltas are relative to the previous position, not the press.
	dx, dy, _ = tr.Move(Point{X: 105, Y: 97})
	assert.InDelta(t, 1, dx, 1e-6)
	assert.InDelta(t, 0, dy, 1e-6)

	_, ok := tr.Release(ButtonRight, Point{X: 105, Y: 97})
	assert.False(t, ok, "a drag is not a click")
}

func TestLeftDragIsNotPan(t *testing.T) {
	var tr Tracker
	tr.Press(ButtonLeft, Point{})
	_, _, panning := tr.Move(Point{X: 5, Y: 5})
	assert.False(t, panning)
}

func TestMismatchedReleaseIgnored(t *testing.T) {
	var tr Tracker
	tr.Press(ButtonLeft, Point{})
	_, ok := tr.Release(ButtonRight, Point{})
	assert.False(t, ok)

	// The tracker resets after every release.
	tr.Press(ButtonLeft, Point{})
	click, ok := tr.Release(ButtonLeft, Point{})
	assert.True(t, ok)
	assert.Equal(t, ButtonLeft, click.Button)
}

func TestHoverMotionIsIgnored(t *testing.T) {
	var tr Tracker
	dx, dy, panning := tr.Move(Point{X: 50, Y: 50})
	assert.Zero(t, dx)
	assert.Zero(t, dy)
	assert.False(t, panning)
}

func TestResolveDropped(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "frames")
	require.NoError(t, os.Mkdir(existing, 0o755))

	// First existing local path wins, in order.
	path, ok := ResolveDropped([]string{
		filepath.Join(dir, "missing"),
		existing,
		dir,
	})
	require.True(t, ok)
	assert.Equal(t, existing, path)

	// file:// URIs resolve like plain paths.
	path, ok = ResolveDropped([]string{"file://" + existing})
	require.True(t, ok)
	assert.Equal(t, existing, path)

	// Remote URIs and nonexistent paths are rejected.
	_, ok = ResolveDropped([]string{"https://example.com/a.png", filepath.Join(dir, "nope")})
	assert.False(t, ok)

	_, ok = ResolveDropped(nil)
	assert.False(t, ok)
}
