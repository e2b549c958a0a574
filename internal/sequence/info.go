package sequence

import (
	"fmt"
	"image"
	"io"
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// FrameInfo holds metadata about a frame backed by a file on disk.
type FrameInfo struct {
	Width    int
	Height   int
	Size     int64
	ModTime  time.Time
	EXIFData map[string]string
}

// exifFields are the EXIF tags surfaced in the info panel.
var exifFields = []string{
	"DateTime", "Model", "Make", "ExposureTime", "FNumber", "ISOSpeedRatings", "FocalLength",
}

// ReadFrameInfo returns dimensions, file size, mod time and selected EXIF
// fields for an image file. EXIF data is optional; its absence is not an
// error.
func ReadFrameInfo(path string) (*FrameInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sequence: opening %q for info: %w", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("sequence: stat %q: %w", path, err)
	}

	exifData := readEXIF(f)

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("sequence: seeking in %q: %w", path, err)
	}
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("sequence: reading dimensions of %q: %w", path, err)
	}

	return &FrameInfo{
		Width:    cfg.Width,
		Height:   cfg.Height,
		Size:     fi.Size(),
		ModTime:  fi.ModTime(),
		EXIFData: exifData,
	}, nil
}

func readEXIF(r io.Reader) map[string]string {
	x, err := exif.Decode(r)
	if err != nil {
		return nil // most formats carry no EXIF
	}
	result := make(map[string]string)
	for _, field := range exifFields {
		tag, err := x.Get(exif.FieldName(field))
		if err == nil && tag != nil {
			result[field] = tag.String()
		}
	}
	return result
}
