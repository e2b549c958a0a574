package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Version is the release version, overridable at build time with
// -ldflags "-X imseqview/internal/ui.Version=...".
var Version = "dev"

func (a *App) showAbout() {
	dialog.ShowInformation("About",
		"imseqview "+Version+"\n\nAn image sequence viewer with playback, zoom and pan.",
		a.win)
}

// shortcutRows are the {description, key} pairs shown in the shortcuts table.
var shortcutRows = [][2]string{
	{"Play / Pause", "P or X"},
	{"Stop and rewind to the first frame", "Esc or R"},
	{"Next frame", "N"},
	{"Previous frame", "B"},
	{"Skip 10 frames forward", "M"},
	{"Skip 10 frames back", "V"},
	{"Quit", "Ctrl+Q"},
}

// shortcutCellText returns the text for one cell of the shortcuts table.
// Row 0 is the header and must not index into the data rows.
func shortcutCellText(row, col int) (text string, header bool) {
	if row == 0 {
		if col == 0 {
			return "Description", true
		}
		return "Shortcut", true
	}
	return shortcutRows[row-1][col], false
}

func (a *App) showShortcuts() {
	win := a.app.NewWindow("Keyboard Shortcuts")
	table := widget.NewTable(
		func() (int, int) { return len(shortcutRows) + 1, 2 }, // +1 for header row
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			text, header := shortcutCellText(id.Row, id.Col)
			label.SetText(text)
			label.TextStyle.Bold = header
		},
	)
	table.SetColumnWidth(0, 280)
	table.SetColumnWidth(1, 180)
	win.SetContent(table)
	win.Resize(fyne.NewSize(480, 360))
	win.Show()
}
