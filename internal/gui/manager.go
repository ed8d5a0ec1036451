package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"cnotepad/internal/document"
	"cnotepad/internal/editor"
	"cnotepad/internal/logger"
)

var _ editor.View = (*Manager)(nil)

// Handlers are the user actions the window forwards to the editor.
type Handlers struct {
	New        func()
	Open       func()
	Save       func()
	SaveAs     func()
	Close      func()
	CloseAll   func()
	Exit       func()
	DeleteWord func()
	Select     func(id string)
	Edit       func(id, text string)
}

// Options configure the window content.
type Options struct {
	// MinSize is the smallest size the content lays out at.
	MinSize fyne.Size
}

type tabView struct {
	item *container.TabItem
	area *textArea
}

// Manager renders open documents as closable tabs under a File menu and
// implements the editor's View.
type Manager struct {
	window  fyne.Window
	logger  logger.Logger
	options Options

	tabs        *container.DocTabs
	placeholder *widget.Label
	content     *fyne.Container
	keymap      *Keymap

	mainMenu     *fyne.MainMenu
	tabActions   []*fyne.MenuItem
	views        map[string]*tabView
	ids          map[*container.TabItem]string
	handlers     Handlers
	quitHandler  func()
	isShutdown   bool
	actionsReady bool
}

func NewManager(window fyne.Window, options Options, log logger.Logger) *Manager {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	m := &Manager{
		window:      window,
		logger:      log,
		options:     options,
		tabs:        container.NewDocTabs(),
		placeholder: widget.NewLabel("No open documents. Ctrl+N creates one, Ctrl+O opens a file."),
		keymap:      NewKeymap(),
		views:       make(map[string]*tabView),
		ids:         make(map[*container.TabItem]string),
	}
	m.placeholder.Alignment = fyne.TextAlignCenter
	floor := canvas.NewRectangle(color.Transparent)
	floor.SetMinSize(options.MinSize)
	m.content = container.NewStack(floor, container.NewCenter(m.placeholder), m.tabs)

	m.tabs.OnSelected = func(item *container.TabItem) {
		if id, ok := m.ids[item]; ok {
			call1(m.handlers.Select, id)
		}
	}
	m.tabs.CloseIntercept = func(item *container.TabItem) {
		id, ok := m.ids[item]
		if !ok {
			return
		}
		m.tabs.Select(item)
		call1(m.handlers.Select, id)
		call(m.handlers.Close)
	}

	log.Info("GUIManager", "initialized", map[string]interface{}{
		"min_width":  options.MinSize.Width,
		"min_height": options.MinSize.Height,
	})
	return m
}

// SetHandlers wires menu items, key chords and tab events to h.
func (m *Manager) SetHandlers(h Handlers) {
	m.handlers = h

	newItem := fyne.NewMenuItem("New", func() { call(h.New) })
	openItem := fyne.NewMenuItem("Open", func() { call(h.Open) })
	saveItem := fyne.NewMenuItem("Save", func() { call(h.Save) })
	saveAsItem := fyne.NewMenuItem("Save as", func() { call(h.SaveAs) })
	closeItem := fyne.NewMenuItem("Close", func() { call(h.Close) })
	closeAllItem := fyne.NewMenuItem("Close all", func() { call(h.CloseAll) })
	exitItem := fyne.NewMenuItem("Exit", func() { call(h.Exit) })
	exitItem.IsQuit = true

	m.tabActions = []*fyne.MenuItem{saveItem, saveAsItem, closeItem, closeAllItem}
	m.mainMenu = fyne.NewMainMenu(fyne.NewMenu("File",
		newItem,
		openItem,
		saveItem,
		saveAsItem,
		closeItem,
		closeAllItem,
		fyne.NewMenuItemSeparator(),
		exitItem,
	))
	m.window.SetMainMenu(m.mainMenu)

	mod := fyne.KeyModifierShortcutDefault
	m.keymap.Bind(fyne.KeyS, mod, m.whenTabsOpen(h.Save))
	m.keymap.Bind(fyne.KeyW, mod, m.whenTabsOpen(h.Close))
	m.keymap.Bind(fyne.KeyW, mod|fyne.KeyModifierShift, m.whenTabsOpen(h.CloseAll))
	m.keymap.Bind(fyne.KeyN, mod, func() { call(h.New) })
	m.keymap.Bind(fyne.KeyO, mod, func() { call(h.Open) })
	m.keymap.Bind(fyne.KeyBackspace, mod, m.whenTabsOpen(h.DeleteWord))
	m.keymap.Register(m.window.Canvas())
	m.actionsReady = true

	m.logger.Debug("GUIManager", "handlers wired", map[string]interface{}{
		"shortcuts": m.keymap.Len(),
	})
}

// SetQuitHandler replaces the default of closing the window on Quit.
func (m *Manager) SetQuitHandler(handler func()) {
	m.quitHandler = handler
}

func (m *Manager) GetMainContainer() *fyne.Container {
	return m.content
}

func (m *Manager) AddTab(doc *document.Document) {
	id := doc.ID()
	area := newTextArea(doc.Text(), m.keymap)
	area.OnChanged = func(text string) {
		call2(m.handlers.Edit, id, text)
	}

	item := container.NewTabItem(doc.Name(), area)
	m.views[id] = &tabView{item: item, area: area}
	m.ids[item] = id
	m.tabs.Append(item)

	m.logger.Debug("GUIManager", "tab added", map[string]interface{}{
		"name": doc.Name(),
		"tabs": len(m.views),
	})
}

func (m *Manager) RemoveTab(id string) {
	v, ok := m.views[id]
	if !ok {
		return
	}
	delete(m.views, id)
	delete(m.ids, v.item)
	m.tabs.Remove(v.item)
}

func (m *Manager) SelectTab(id string) {
	v, ok := m.views[id]
	if !ok {
		return
	}
	m.tabs.Select(v.item)
	if c := m.window.Canvas(); c != nil {
		c.Focus(v.area)
	}
}

func (m *Manager) Cursor(id string) (int, int) {
	if v, ok := m.views[id]; ok {
		return v.area.cursor()
	}
	return 0, 0
}

func (m *Manager) SetContent(id, text string, row, col int) {
	if v, ok := m.views[id]; ok {
		v.area.setContent(text, row, col)
	}
}

// SetActionsEnabled toggles the tab-dependent menu items and the empty
// window placeholder.
func (m *Manager) SetActionsEnabled(enabled bool) {
	if enabled {
		m.placeholder.Hide()
	} else {
		m.placeholder.Show()
	}
	if !m.actionsReady {
		return
	}

	changed := false
	for _, item := range m.tabActions {
		if item.Disabled == !enabled {
			continue
		}
		item.Disabled = !enabled
		changed = true
	}
	if changed {
		m.mainMenu.Refresh()
	}
}

func (m *Manager) Quit() {
	if m.quitHandler != nil {
		m.quitHandler()
		return
	}
	m.window.Close()
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", map[string]interface{}{
		"open_tabs": len(m.views),
	})
}

func (m *Manager) whenTabsOpen(action func()) func() {
	return func() {
		if len(m.views) == 0 {
			return
		}
		call(action)
	}
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}

func call1(fn func(string), id string) {
	if fn != nil {
		fn(id)
	}
}

func call2(fn func(string, string), id, text string) {
	if fn != nil {
		fn(id, text)
	}
}
