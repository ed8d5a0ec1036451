// Package editor implements the notepad's tab collection and the
// open/save/close control flow over it. It has no toolkit dependency: the
// window is reached through View and the user through Prompter.
package editor

import (
	"errors"
	"slices"

	"cnotepad/internal/document"
	"cnotepad/internal/fileio"
	"cnotepad/internal/logger"
)

const component = "Shell"

// Shell owns the ordered set of open documents and which one is current.
// It must only be used from the UI goroutine.
type Shell struct {
	view     View
	prompter Prompter
	store    fileio.Store
	logger   logger.Logger

	defaultName string

	docs    []*document.Document
	current string
}

type Option func(*Shell)

// WithDefaultName sets the label of tabs created by New.
func WithDefaultName(name string) Option {
	return func(s *Shell) {
		if name != "" {
			s.defaultName = name
		}
	}
}

func NewShell(view View, prompter Prompter, store fileio.Store, log logger.Logger, opts ...Option) *Shell {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	s := &Shell{
		view:        view,
		prompter:    prompter,
		store:       store,
		logger:      log,
		defaultName: document.DefaultName,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tabs returns the open documents in display order.
func (s *Shell) Tabs() []*document.Document {
	return slices.Clone(s.docs)
}

func (s *Shell) Len() int { return len(s.docs) }

// Current returns the focused document, or nil when no tab is open.
func (s *Shell) Current() *document.Document {
	return s.find(s.current)
}

// Select records that the view focused the tab with id.
func (s *Shell) Select(id string) {
	if s.find(id) == nil {
		return
	}
	s.current = id
}

// Edit records that the view's buffer for id now holds text.
func (s *Shell) Edit(id, text string) {
	if doc := s.find(id); doc != nil {
		doc.SetText(text)
	}
}

// NewTab appends an empty, unbound tab and focuses it.
func (s *Shell) NewTab(name string) *document.Document {
	if name == "" {
		name = s.defaultName
	}
	doc := document.New(name)
	s.add(doc)
	return doc
}

// OpenTab loads path into a new tab. With an empty path the user is asked
// for one; cancelling the dialog does nothing.
func (s *Shell) OpenTab(path string) {
	if path != "" {
		_, _ = s.open(path)
		return
	}
	s.prompter.PromptOpenPath(func(chosen string) {
		if chosen == "" {
			return
		}
		_, _ = s.open(chosen)
	})
}

// open reads path into a new focused tab. A missing file is not reported to
// the user; other failures are.
func (s *Shell) open(path string) (*document.Document, error) {
	content, err := s.store.Read(path)
	if err != nil {
		fields := map[string]interface{}{"path": path, logger.OpKey: "open"}
		if errors.Is(err, fileio.ErrNotFound) {
			s.logger.Warning(component, "open skipped, file does not exist", fields)
			return nil, err
		}
		s.logger.Error(component, err, fields)
		s.prompter.ShowError("Open failed", err)
		return nil, err
	}

	doc := document.Load(path, content)
	s.add(doc)
	s.logger.Info(component, "document opened", map[string]interface{}{
		"path":  path,
		"bytes": len(content),
	})
	return doc, nil
}

// DeleteWordBackward removes the word before the cursor of the current tab.
func (s *Shell) DeleteWordBackward() {
	doc := s.Current()
	if doc == nil {
		return
	}
	row, col := s.view.Cursor(doc.ID())
	newCol := doc.DeleteWordBackward(row, col)
	if newCol == col {
		return
	}
	s.view.SetContent(doc.ID(), doc.Text(), row, newCol)
}

// RefreshMenuAvailability enables the tab actions iff a tab is open.
func (s *Shell) RefreshMenuAvailability() {
	s.view.SetActionsEnabled(len(s.docs) > 0)
}

func (s *Shell) add(doc *document.Document) {
	s.docs = append(s.docs, doc)
	s.view.AddTab(doc)
	s.focus(doc)
	s.RefreshMenuAvailability()
}

// remove drops doc and focuses the tab that took its place, or the new last
// tab when doc was last.
func (s *Shell) remove(doc *document.Document) {
	idx := s.indexOf(doc.ID())
	if idx < 0 {
		return
	}
	wasCurrent := s.current == doc.ID()
	s.docs = slices.Delete(s.docs, idx, idx+1)
	// The view may report its own selection change while removing.
	s.view.RemoveTab(doc.ID())

	switch {
	case len(s.docs) == 0:
		s.current = ""
	case wasCurrent || s.Current() == nil:
		s.focus(s.docs[min(idx, len(s.docs)-1)])
	}
	s.RefreshMenuAvailability()

	s.logger.Debug(component, "tab closed", map[string]interface{}{
		"name":      doc.Name(),
		"remaining": len(s.docs),
	})
}

func (s *Shell) focus(doc *document.Document) {
	s.current = doc.ID()
	s.view.SelectTab(doc.ID())
}

func (s *Shell) find(id string) *document.Document {
	if idx := s.indexOf(id); idx >= 0 {
		return s.docs[idx]
	}
	return nil
}

func (s *Shell) indexOf(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(s.docs, func(d *document.Document) bool {
		return d.ID() == id
	})
}

func (s *Shell) has(doc *document.Document) bool {
	return doc != nil && s.indexOf(doc.ID()) >= 0
}

func notify(done func(bool), ok bool) {
	if done != nil {
		done(ok)
	}
}
