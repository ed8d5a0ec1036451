package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Keymap maps key chords to actions. The same table serves the window
// canvas and the text entries, which see chords first while focused.
type Keymap struct {
	shortcuts []*desktop.CustomShortcut
	actions   map[string]func()
}

func NewKeymap() *Keymap {
	return &Keymap{actions: make(map[string]func())}
}

func (k *Keymap) Bind(key fyne.KeyName, mod fyne.KeyModifier, action func()) {
	sc := &desktop.CustomShortcut{KeyName: key, Modifier: mod}
	if _, exists := k.actions[sc.ShortcutName()]; !exists {
		k.shortcuts = append(k.shortcuts, sc)
	}
	k.actions[sc.ShortcutName()] = action
}

// Handle runs the action bound to s and reports whether there was one.
func (k *Keymap) Handle(s fyne.Shortcut) bool {
	if s == nil {
		return false
	}
	action, ok := k.actions[s.ShortcutName()]
	if !ok || action == nil {
		return false
	}
	action()
	return true
}

// Register installs every binding on c for when no entry has focus.
func (k *Keymap) Register(c fyne.Canvas) {
	for _, sc := range k.shortcuts {
		c.AddShortcut(sc, func(s fyne.Shortcut) {
			k.Handle(s)
		})
	}
}

func (k *Keymap) Len() int { return len(k.shortcuts) }
