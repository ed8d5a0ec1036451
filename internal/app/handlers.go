package app

import (
	"cnotepad/internal/editor"
	"cnotepad/internal/gui"
	"cnotepad/internal/logger"
)

// Handlers translate menu items and key chords into shell operations.
type Handlers struct {
	shell  *editor.Shell
	logger logger.Logger
}

func NewHandlers(shell *editor.Shell, log logger.Logger) *Handlers {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Handlers{
		shell:  shell,
		logger: log,
	}
}

func (h *Handlers) Bindings() gui.Handlers {
	return gui.Handlers{
		New:        h.HandleNew,
		Open:       h.HandleOpen,
		Save:       h.HandleSave,
		SaveAs:     h.HandleSaveAs,
		Close:      h.HandleClose,
		CloseAll:   h.HandleCloseAll,
		Exit:       h.HandleExit,
		DeleteWord: h.shell.DeleteWordBackward,
		Select:     h.shell.Select,
		Edit:       h.shell.Edit,
	}
}

func (h *Handlers) HandleNew() {
	h.shell.NewTab("")
}

func (h *Handlers) HandleOpen() {
	h.shell.OpenTab("")
}

// HandleSave writes the current tab and reopens it from disk.
func (h *Handlers) HandleSave() {
	h.shell.SaveCurrent("", true, h.report("save"))
}

func (h *Handlers) HandleSaveAs() {
	h.shell.SaveCurrentAs(true, h.report("save as"))
}

func (h *Handlers) HandleClose() {
	h.shell.CloseCurrent(true, false, h.report("close"))
}

func (h *Handlers) HandleCloseAll() {
	h.shell.CloseAll(h.report("close all"))
}

func (h *Handlers) HandleExit() {
	h.shell.RequestExit()
}

func (h *Handlers) report(action string) func(bool) {
	return func(ok bool) {
		h.logger.Debug("Handlers", "action finished", map[string]interface{}{
			"action": action,
			"ok":     ok,
			"tabs":   h.shell.Len(),
		})
	}
}
