package sequence

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.SetRGBA(1, 1, color.RGBA{R: 255, A: 255})
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestNaturalLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"frame2.png", "frame10.png", true},
		{"frame10.png", "frame2.png", false},
		{"frame007.png", "frame8.png", true},
		{"a.png", "b.png", true},
		{"img1.png", "img1.png", false},
		{"IMG2.png", "img10.png", true}, // case-insensitive
		{"shot.png", "shot1.png", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, naturalLess(tt.a, tt.b), "%s < %s", tt.a, tt.b)
	}
}

func TestOpenFolderFailsFast(t *testing.T) {
	_, err := OpenFolder(filepath.Join(t.TempDir(), "missing"), FolderOptions{})
	assert.Error(t, err)

	// A folder without images is a setup error too.
	empty := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(empty, "notes.txt"), []byte("x"), 0o644))
	_, err = OpenFolder(empty, FolderOptions{})
	assert.Error(t, err)
}

func TestOpenFolderScansAndSorts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"frame10.png", "frame2.png", "frame1.png"} {
		writePNG(t, filepath.Join(dir, name))
	}
	// Non-images and empty files are skipped.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.md"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.png"), nil, 0o644))

	// Subdirectory images are excluded unless Recursive is set.
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writePNG(t, filepath.Join(sub, "frame0.png"))

	seq, err := OpenFolder(dir, FolderOptions{})
	require.NoError(t, err)
	defer seq.Close()

	require.Equal(t, 3, seq.Length())
	paths := seq.Paths()
	assert.Equal(t, "frame1.png", filepath.Base(paths[0]))
	assert.Equal(t, "frame2.png", filepath.Base(paths[1]))
	assert.Equal(t, "frame10.png", filepath.Base(paths[2]))

	recursive, err := OpenFolder(dir, FolderOptions{Recursive: true})
	require.NoError(t, err)
	defer recursive.Close()
	assert.Equal(t, 4, recursive.Length())
}

func TestFolderFrameAt(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "only.png"))
	// A file with an image extension but garbage content decodes with an error.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "zz-broken.png"), []byte("not a png"), 0o644))

	seq, err := OpenFolder(dir, FolderOptions{})
	require.NoError(t, err)
	defer seq.Close()
	require.Equal(t, 2, seq.Length())

	img, err := seq.FrameAt(0)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, 3, img.Bounds().Dy())

	_, err = seq.FrameAt(1)
	assert.Error(t, err)

	_, err = seq.FrameAt(2)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = seq.FrameAt(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestFolderWatchAppendsNewFrames(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "frame1.png"))

	seq, err := OpenFolder(dir, FolderOptions{})
	require.NoError(t, err)
	defer seq.Close()

	grew := make(chan int, 4)
	require.NoError(t, seq.Watch(func(n int) { grew <- n }))

	writePNG(t, filepath.Join(dir, "frame2.png"))

	select {
	case n := <-grew:
		assert.Equal(t, 2, n)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the watcher to pick up the new frame")
	}

	// The original index is stable; the new frame was appended.
	paths := seq.Paths()
	require.Len(t, paths, 2)
	assert.Equal(t, "frame1.png", filepath.Base(paths[0]))
	assert.Equal(t, "frame2.png", filepath.Base(paths[1]))
}

func TestPlaceholderDimensions(t *testing.T) {
	img := Placeholder(120, 80)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())

	// Defaults apply when the caller has no size to offer.
	img = Placeholder(0, 0)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
}

func TestSyntheticSequence(t *testing.T) {
	seq := NewSynthetic(10)
	assert.Equal(t, 10, seq.Length())

	first, err := seq.FrameAt(0)
	require.NoError(t, err)
	last, err := seq.FrameAt(9)
	require.NoError(t, err)
	assert.Equal(t, first.Bounds(), last.Bounds())
	// Frames differ: the hue ramp and the sweep bar both move.
	assert.NotEqual(t, first.At(0, 0), last.At(0, 0))

	_, err = seq.FrameAt(10)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestReadFrameInfo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.png")
	writePNG(t, path)

	info, err := ReadFrameInfo(path)
	require.NoError(t, err)
	assert.Equal(t, 4, info.Width)
	assert.Equal(t, 3, info.Height)
	assert.Greater(t, info.Size, int64(0))
	assert.False(t, info.ModTime.IsZero())
	assert.Empty(t, info.EXIFData) // PNGs carry no EXIF

	_, err = ReadFrameInfo(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}
