// Package config loads viewer settings from TOML files: the XDG config
// directory first, then ./imseqview.toml, last one wins.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the user-tunable viewer settings. Boolean fields defaulting
// to true are pointers so an absent key and an explicit false stay
// distinguishable.
type Config struct {
	// PlaybackPeriodMs is the playback timer period in milliseconds.
	PlaybackPeriodMs int `koanf:"playback_period_ms"`
	// WaitForViewerReady gates playback on render acknowledgements (default true).
	WaitForViewerReady *bool `koanf:"wait_for_viewer_ready"`
	// SequenceButtons shows previous/next-sequence controls (default false).
	SequenceButtons bool `koanf:"sequence_buttons"`
	// ZoomButtons shows fit-to-window and original-size controls (default true).
	ZoomButtons *bool `koanf:"zoom_buttons"`
	// Thumbnails shows the thumbnail strip (default true).
	Thumbnails *bool `koanf:"thumbnails"`
	// Extensions are the image file extensions scanned in folders.
	Extensions []string `koanf:"extensions"`
	// Recursive scans subdirectories of the opened folder.
	Recursive bool `koanf:"recursive"`
	// WatchFolder extends the sequence when new images appear (default false).
	WatchFolder bool `koanf:"watch_folder"`
}

// Load reads the config files in priority order and applies defaults.
func Load() (*Config, error) {
	return loadPaths(configPaths())
}

func loadPaths(paths []string) (*Config, error) {
	k := koanf.New(".")
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}
	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, "imseqview", "config.toml"),
		"imseqview.toml",
	}
}

// Interval returns the playback period with the default applied.
func (c *Config) Interval() time.Duration {
	if c.PlaybackPeriodMs <= 0 {
		return 100 * time.Millisecond
	}
	return time.Duration(c.PlaybackPeriodMs) * time.Millisecond
}

// WaitReady reports whether playback waits for viewer-ready acknowledgements.
func (c *Config) WaitReady() bool {
	if c.WaitForViewerReady == nil {
		return true
	}
	return *c.WaitForViewerReady
}

// ShowZoomButtons reports whether the zoom controls are shown.
func (c *Config) ShowZoomButtons() bool {
	if c.ZoomButtons == nil {
		return true
	}
	return *c.ZoomButtons
}

// ShowThumbnails reports whether the thumbnail strip is shown.
func (c *Config) ShowThumbnails() bool {
	if c.Thumbnails == nil {
		return true
	}
	return *c.Thumbnails
}
