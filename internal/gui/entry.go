package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// textArea is the multi-line entry shown in each tab. Chords in the keymap
// are taken before the entry's own shortcut handling. Lines are never
// wrapped, so the entry's cursor row is the line index in the text.
type textArea struct {
	widget.Entry
	keymap *Keymap
}

func newTextArea(text string, keymap *Keymap) *textArea {
	t := &textArea{keymap: keymap}
	t.MultiLine = true
	t.TextStyle = fyne.TextStyle{Monospace: true}
	t.Wrapping = fyne.TextWrapOff
	t.ExtendBaseWidget(t)
	t.SetText(text)
	return t
}

func (t *textArea) TypedShortcut(s fyne.Shortcut) {
	if t.keymap != nil && t.keymap.Handle(s) {
		return
	}
	t.Entry.TypedShortcut(s)
}

func (t *textArea) cursor() (int, int) {
	return t.CursorRow, t.CursorColumn
}

func (t *textArea) setContent(text string, row, col int) {
	t.SetText(text)
	t.CursorRow = row
	t.CursorColumn = col
	t.Refresh()
}
