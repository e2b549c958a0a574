package sequence

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// DefaultExtensions are the image file extensions scanned when none are
// configured.
var DefaultExtensions = []string{".png", ".jpg", ".jpeg", ".gif"}

// FolderOptions configure a folder-backed sequence.
type FolderOptions struct {
	// Extensions filter the scanned files; defaults to DefaultExtensions.
	Extensions []string
	// Recursive includes images in subdirectories.
	Recursive bool
	// Logger receives scan and watch messages. May be nil.
	Logger LoggerFunc
}

// Folder is a Sequence backed by the image files of a directory, ordered by
// natural sort. It can optionally watch the directory and append frames
// that appear after opening, which keeps existing indices stable.
type Folder struct {
	mu    sync.RWMutex
	dir   string
	paths []string

	exts      map[string]bool
	recursive bool
	logger    LoggerFunc

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// OpenFolder scans dir for images and fails fast when the directory does
// not exist or contains no images: an empty sequence is a setup error, not
// a runtime condition.
func OpenFolder(dir string, opts FolderOptions) (*Folder, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("sequence: resolving folder %q: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("sequence: opening folder %q: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("sequence: %q is not a directory", dir)
	}

	if len(opts.Extensions) == 0 {
		opts.Extensions = DefaultExtensions
	}
	exts := make(map[string]bool, len(opts.Extensions))
	for _, e := range opts.Extensions {
		exts[strings.ToLower(e)] = true
	}

	f := &Folder{
		dir:       abs,
		exts:      exts,
		recursive: opts.Recursive,
		logger:    opts.Logger,
	}
	paths, err := f.scan()
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("sequence: no images found in %q", dir)
	}
	f.paths = paths
	f.logf("loaded %d images from %s", len(paths), abs)
	return f, nil
}

// Dir returns the absolute folder path the sequence is backed by.
func (f *Folder) Dir() string { return f.dir }

// Length implements Sequence.
func (f *Folder) Length() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.paths)
}

// FrameAt implements Sequence, decoding the file at the given index.
func (f *Folder) FrameAt(index int) (image.Image, error) {
	path, err := f.PathAt(index)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sequence: opening frame %q: %w", path, err)
	}
	defer file.Close()
	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("sequence: decoding frame %q (format %q): %w", path, format, err)
	}
	return img, nil
}

// PathAt returns the file path behind the given 0-based index.
func (f *Folder) PathAt(index int) (string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if index < 0 || index >= len(f.paths) {
		return "", ErrOutOfRange
	}
	return f.paths[index], nil
}

// Paths returns a copy of the frame file list in playback order.
func (f *Folder) Paths() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]string, len(f.paths))
	copy(out, f.paths)
	return out
}

// Watch starts watching the folder and appends images that appear after
// opening. onAppend is called with the new length from the watcher
// goroutine; callers must marshal onto their event loop themselves.
func (f *Folder) Watch(onAppend func(newLength int)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("sequence: starting folder watcher: %w", err)
	}
	if err := watcher.Add(f.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("sequence: watching %q: %w", f.dir, err)
	}

	f.mu.Lock()
	f.watcher = watcher
	f.done = make(chan struct{})
	done := f.done
	f.mu.Unlock()

	go func() {
		for {
			select {
			case <-done:
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				if newLen, appended := f.appendNew(); appended {
					f.logf("sequence extended to %d frames", newLen)
					onAppend(newLen)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				f.logf("watch error: %v", err)
			}
		}
	}()
	return nil
}

// Close stops the folder watcher, if any.
func (f *Folder) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.done != nil {
		close(f.done)
		f.done = nil
	}
	if f.watcher != nil {
		err := f.watcher.Close()
		f.watcher = nil
		return err
	}
	return nil
}

// appendNew rescans the folder and appends paths not seen before, keeping
// already-assigned indices stable. New frames are appended in natural order.
func (f *Folder) appendNew() (newLength int, appended bool) {
	found, err := f.scan()
	if err != nil {
		f.logf("rescan failed: %v", err)
		return f.Length(), false
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	known := make(map[string]bool, len(f.paths))
	for _, p := range f.paths {
		known[p] = true
	}
	for _, p := range found {
		if !known[p] {
			f.paths = append(f.paths, p)
			appended = true
		}
	}
	return len(f.paths), appended
}

// scan walks the folder and returns matching image paths in natural order.
func (f *Folder) scan() ([]string, error) {
	var paths []string
	err := filepath.Walk(f.dir, func(p string, fi os.FileInfo, err error) error {
		if err != nil {
			f.logf("skipping %s: %v", p, err)
			return nil
		}
		if fi.IsDir() {
			if !f.recursive && p != f.dir {
				return filepath.SkipDir
			}
			return nil
		}
		if fi.Mode().IsRegular() && fi.Size() > 0 && f.isImage(p) {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("sequence: scanning %q: %w", f.dir, err)
	}
	sort.Slice(paths, func(i, j int) bool { return naturalLess(paths[i], paths[j]) })
	return paths, nil
}

func (f *Folder) isImage(path string) bool {
	return f.exts[strings.ToLower(filepath.Ext(path))]
}

func (f *Folder) logf(format string, args ...interface{}) {
	if f.logger != nil {
		f.logger(fmt.Sprintf(format, args...))
	}
}
