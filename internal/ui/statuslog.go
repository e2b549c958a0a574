package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// defaultMaxLogMessages caps the in-UI message history.
const defaultMaxLogMessages = 100

// statusLog keeps a bounded history of status messages and shows one at a
// time with up/down buttons to browse older entries.
type statusLog struct {
	messages []string
	index    int
	max      int

	label    *widget.Label
	olderBtn *widget.Button
	newerBtn *widget.Button
	content  fyne.CanvasObject
}

func newStatusLog(maxMessages int) *statusLog {
	if maxMessages <= 0 {
		maxMessages = defaultMaxLogMessages
	}
	sl := &statusLog{
		messages: make([]string, 0, maxMessages),
		index:    -1,
		max:      maxMessages,
		label:    widget.NewLabel(""),
	}
	sl.label.Truncation = fyne.TextTruncateEllipsis
	sl.olderBtn = widget.NewButtonWithIcon("", theme.MoveUpIcon(), sl.showOlder)
	sl.newerBtn = widget.NewButtonWithIcon("", theme.MoveDownIcon(), sl.showNewer)
	sl.content = container.NewBorder(nil, nil, nil,
		container.NewHBox(sl.olderBtn, sl.newerBtn), sl.label)
	sl.update()
	return sl
}

// Content returns the log row.
func (sl *statusLog) Content() fyne.CanvasObject { return sl.content }

// Add appends a message, evicting the oldest beyond the cap, and jumps the
// display to it.
func (sl *statusLog) Add(message string) {
	sl.messages = append(sl.messages, message)
	if len(sl.messages) > sl.max {
		sl.messages = sl.messages[len(sl.messages)-sl.max:]
	}
	sl.index = len(sl.messages) - 1
	sl.update()
}

func (sl *statusLog) showOlder() {
	if sl.index > 0 {
		sl.index--
		sl.update()
	}
}

func (sl *statusLog) showNewer() {
	if sl.index < len(sl.messages)-1 {
		sl.index++
		sl.update()
	}
}

func (sl *statusLog) update() {
	if len(sl.messages) == 0 {
		sl.label.SetText("")
		sl.olderBtn.Disable()
		sl.newerBtn.Disable()
		return
	}
	sl.label.SetText(fmt.Sprintf("[%d/%d] %s", sl.index+1, len(sl.messages), sl.messages[sl.index]))
	if sl.index <= 0 {
		sl.olderBtn.Disable()
	} else {
		sl.olderBtn.Enable()
	}
	if sl.index >= len(sl.messages)-1 {
		sl.newerBtn.Disable()
	} else {
		sl.newerBtn.Enable()
	}
}
