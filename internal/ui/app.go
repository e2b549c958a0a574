// Package ui assembles the image sequence viewer application: the viewer
// widget, window chrome, menus, drag and drop, keyboard shortcuts and the
// status bar.
package ui

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/dustin/go-humanize"

	"imseqview/internal/config"
	"imseqview/internal/input"
	"imseqview/internal/recents"
	"imseqview/internal/sequence"
)

const appID = "io.github.imseqview"

// AppOptions configure the application window.
type AppOptions struct {
	// Title is the window title. Defaults to "imseqview".
	Title string
	// FolderPath is the image folder opened at startup. Empty shows the
	// synthetic demo sequence.
	FolderPath string
	// Config overrides the configuration loaded from disk.
	Config *config.Config
}

// App owns the window and the top-level wiring around a SequenceViewer.
type App struct {
	app    fyne.App
	win    fyne.Window
	cfg    *config.Config
	viewer *SequenceViewer
	folder *sequence.Folder
	store  *recents.Store
	status *widget.Label
	slog   *statusLog
	title  string
}

// CreateApplication builds the main window and loads the initial sequence.
func CreateApplication(opts AppOptions) *App {
	cfg := opts.Config
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			log.Printf("loading config: %v", err)
			loaded = &config.Config{}
		}
		cfg = loaded
	}
	title := opts.Title
	if title == "" {
		title = "imseqview"
	}

	a := &App{
		app:    app.NewWithID(appID),
		cfg:    cfg,
		status: widget.NewLabel(""),
		slog:   newStatusLog(0),
		title:  title,
	}
	a.win = a.app.NewWindow(title)
	a.win.Resize(fyne.NewSize(1000, 700))

	a.viewer = NewSequenceViewer(ViewerOptions{
		Interval:           cfg.Interval(),
		WaitForViewerReady: cfg.WaitReady(),
		SequenceButtons:    cfg.SequenceButtons,
		ZoomButtons:        cfg.ShowZoomButtons(),
		Thumbnails:         cfg.ShowThumbnails(),
		Logger:             a.logMessage,
		Dispatch:           fyne.Do,
	})
	a.viewer.OnFrameChanged = func(index int) { a.updateStatus() }
	a.viewer.OnZoomChanged = func(_ float32) { a.updateStatus() }
	a.viewer.OnClickPixel = func(button input.Button, x, y int) {
		a.logMessage(fmt.Sprintf("%s click at pixel (%d, %d)", button, x, y))
	}
	a.viewer.OnPreviousSequence = func() { a.openSibling(-1) }
	a.viewer.OnNextSequence = func() { a.openSibling(+1) }

	store, err := recents.Open("", a.logMessage)
	if err != nil {
		log.Printf("recents unavailable: %v", err)
	} else {
		a.store = store
	}

	a.win.SetMainMenu(a.buildMainMenu())
	a.buildKeyboardShortcuts()
	a.win.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		entries := make([]string, 0, len(uris))
		for _, u := range uris {
			entries = append(entries, u.String())
		}
		if path, ok := input.ResolveDropped(entries); ok {
			a.openPath(path)
		} else {
			a.logMessage("drop contained no local path")
		}
	})
	a.win.SetOnClosed(a.shutdown)

	a.win.SetContent(container.NewBorder(
		nil, container.NewVBox(a.status, a.slog.Content()), nil, nil,
		a.viewer.Content(),
	))

	if opts.FolderPath != "" {
		if err := a.openFolder(opts.FolderPath); err != nil {
			a.logMessage(fmt.Sprintf("opening %s: %v", opts.FolderPath, err))
		}
	}
	if a.folder == nil {
		if err := a.viewer.SetSequence(sequence.NewSynthetic(100)); err != nil {
			log.Printf("demo sequence: %v", err)
		}
		a.logMessage("no folder given, showing demo sequence")
	}

	return a
}

// Run shows the window and enters the event loop.
func (a *App) Run() {
	a.win.ShowAndRun()
}

// openPath opens a dropped or selected path. A file opens its containing
// folder.
func (a *App) openPath(path string) {
	fi, err := os.Stat(path)
	if err != nil {
		a.logMessage(fmt.Sprintf("cannot open %s: %v", path, err))
		return
	}
	if !fi.IsDir() {
		path = filepath.Dir(path)
	}
	if err := a.openFolder(path); err != nil {
		dialog.ShowError(err, a.win)
	}
}

func (a *App) openFolder(dir string) error {
	folder, err := sequence.OpenFolder(dir, sequence.FolderOptions{
		Extensions: a.cfg.Extensions,
		Recursive:  a.cfg.Recursive,
		Logger:     a.logMessage,
	})
	if err != nil {
		return err
	}
	if a.folder != nil {
		a.folder.Close()
	}
	a.folder = folder
	if err := a.viewer.SetSequence(folder); err != nil {
		return err
	}
	if a.cfg.WatchFolder {
		err := folder.Watch(func(newLength int) {
			fyne.Do(func() {
				a.viewer.ExtendTo(newLength)
				a.updateStatus()
			})
		})
		if err != nil {
			a.logMessage(fmt.Sprintf("watching %s: %v", dir, err))
		}
	}
	if a.store != nil {
		if err := a.store.Touch(dir); err != nil {
			a.logMessage(fmt.Sprintf("recording recent folder: %v", err))
		}
		a.win.SetMainMenu(a.buildMainMenu())
	}
	a.win.SetTitle(a.title + ": " + filepath.Base(dir))
	a.logMessage(fmt.Sprintf("opened %s with %d frames", dir, folder.Length()))
	return nil
}

// openSibling opens the previous or next sibling folder of the current one
// that contains images, skipping siblings without any.
func (a *App) openSibling(delta int) {
	if a.folder == nil {
		return
	}
	current := a.folder.Dir()
	parent := filepath.Dir(current)
	entries, err := os.ReadDir(parent)
	if err != nil {
		a.logMessage(fmt.Sprintf("listing %s: %v", parent, err))
		return
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, filepath.Join(parent, e.Name()))
		}
	}
	sort.Strings(dirs)
	pos := -1
	for i, d := range dirs {
		if d == current {
			pos = i
			break
		}
	}
	if pos < 0 {
		return
	}
	for i := pos + delta; i >= 0 && i < len(dirs); i += delta {
		if err := a.openFolder(dirs[i]); err == nil {
			return
		}
	}
	a.logMessage("no more sequences in this direction")
}

func (a *App) buildMainMenu() *fyne.MainMenu {
	fileItems := []*fyne.MenuItem{
		fyne.NewMenuItem("Open Folder...", func() {
			dialog.ShowFolderOpen(func(list fyne.ListableURI, err error) {
				if err != nil {
					dialog.ShowError(err, a.win)
					return
				}
				if list != nil {
					a.openPath(list.Path())
				}
			}, a.win)
		}),
		fyne.NewMenuItem("Frame Info", a.showFrameInfo),
	}
	if a.store != nil {
		if entries, err := a.store.List(); err == nil && len(entries) > 0 {
			fileItems = append(fileItems, fyne.NewMenuItemSeparator())
			for _, e := range entries {
				path := e.Path
				fileItems = append(fileItems, fyne.NewMenuItem(path, func() {
					a.openPath(path)
				}))
			}
			fileItems = append(fileItems, fyne.NewMenuItemSeparator(),
				fyne.NewMenuItem("Clear Recent Folders", func() {
					if err := a.store.Clear(); err != nil {
						a.logMessage(fmt.Sprintf("clearing recents: %v", err))
					}
					a.win.SetMainMenu(a.buildMainMenu())
				}))
		}
	}

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("Shortcuts", a.showShortcuts),
		fyne.NewMenuItem("About", a.showAbout),
	)
	return fyne.NewMainMenu(fyne.NewMenu("File", fileItems...), helpMenu)
}

// showFrameInfo pops a dialog with file and EXIF metadata for the current
// frame. Only folder-backed sequences have one.
func (a *App) showFrameInfo() {
	if a.folder == nil {
		dialog.ShowInformation("Frame Info", "The current sequence is not backed by files.", a.win)
		return
	}
	index := a.viewer.Playback().Current()
	path, err := a.folder.PathAt(index - 1)
	if err != nil {
		dialog.ShowError(err, a.win)
		return
	}
	info, err := sequence.ReadFrameInfo(path)
	if err != nil {
		dialog.ShowError(err, a.win)
		return
	}
	lines := []string{
		fmt.Sprintf("File: %s", filepath.Base(path)),
		fmt.Sprintf("Dimensions: %d x %d", info.Width, info.Height),
		fmt.Sprintf("Size: %s", humanize.IBytes(uint64(info.Size))),
		fmt.Sprintf("Modified: %s", humanize.Time(info.ModTime)),
	}
	if len(info.EXIFData) > 0 {
		keys := make([]string, 0, len(info.EXIFData))
		for k := range info.EXIFData {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		lines = append(lines, "")
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("%s: %s", k, info.EXIFData[k]))
		}
	}
	dialog.ShowInformation("Frame Info", strings.Join(lines, "\n"), a.win)
}

// updateStatus rebuilds the status line from the current frame and zoom.
func (a *App) updateStatus() {
	ctl := a.viewer.Playback()
	parts := []string{fmt.Sprintf("frame %d/%d", ctl.Current(), ctl.Max())}
	if a.folder != nil {
		if path, err := a.folder.PathAt(ctl.Current() - 1); err == nil {
			part := filepath.Base(path)
			if fi, err := os.Stat(path); err == nil {
				part += fmt.Sprintf(" (%s)", humanize.IBytes(uint64(fi.Size())))
			}
			parts = append(parts, part)
		}
	}
	parts = append(parts, fmt.Sprintf("zoom %.0f%%", a.viewer.View().Scale()*100))
	a.status.SetText(strings.Join(parts, "  |  "))
}

// logMessage writes to the process log and the in-window status log. Safe
// to call from any goroutine.
func (a *App) logMessage(message string) {
	log.Println(message)
	fyne.Do(func() { a.slog.Add(message) })
}

func (a *App) shutdown() {
	a.viewer.Close()
	if a.folder != nil {
		a.folder.Close()
	}
	if a.store != nil {
		a.store.Close()
	}
}
