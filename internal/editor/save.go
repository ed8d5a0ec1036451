package editor

import (
	"cnotepad/internal/document"
	"cnotepad/internal/fileio"
	"cnotepad/internal/logger"
)

// SaveCurrent writes the current tab to explicitPath, or to its own path
// when explicitPath is empty. Without an explicit path an unmodified tab is
// left alone. A tab with no usable path goes through Save as instead.
//
// A successful save closes the tab; with reopenAfterSave it is then loaded
// again from disk so its baseline and label match the written file.
// done reports whether the file was written.
func (s *Shell) SaveCurrent(explicitPath string, reopenAfterSave bool, done func(saved bool)) {
	s.save(s.Current(), explicitPath, reopenAfterSave, done)
}

// SaveCurrentAs asks for a destination and saves the current tab there.
func (s *Shell) SaveCurrentAs(reopenAfterSave bool, done func(saved bool)) {
	doc := s.Current()
	if doc == nil {
		notify(done, false)
		return
	}
	s.saveAs(doc, reopenAfterSave, done)
}

func (s *Shell) save(doc *document.Document, explicitPath string, reopen bool, done func(bool)) {
	if !s.has(doc) {
		notify(done, false)
		return
	}
	if explicitPath == "" && !doc.Modified() {
		notify(done, false)
		return
	}

	path := explicitPath
	if path == "" {
		path = doc.Path()
	}
	if path == "" {
		s.saveAs(doc, reopen, done)
		return
	}

	if err := s.store.Write(path, doc.Text()); err != nil {
		fields := map[string]interface{}{"path": path, "name": doc.Name(), logger.OpKey: "save"}
		if fileio.NeedsNewPath(err) {
			s.logger.Warning(component, "save needs a new path: "+err.Error(), fields)
			s.saveAs(doc, reopen, done)
			return
		}
		s.logger.Error(component, err, fields)
		s.prompter.ShowError("Save failed", err)
		notify(done, false)
		return
	}

	doc.MarkSaved(path)
	s.logger.Info(component, "document saved", map[string]interface{}{
		"path":  path,
		"bytes": len(doc.Text()),
	})

	s.remove(doc)
	if reopen {
		// The file was written; a failed reload only loses the tab.
		_, _ = s.open(path)
	}
	notify(done, true)
}

func (s *Shell) saveAs(doc *document.Document, reopen bool, done func(bool)) {
	s.prompter.PromptSavePath(doc.Path(), func(path string) {
		if path == "" {
			notify(done, false)
			return
		}
		s.save(doc, path, reopen, done)
	})
}
