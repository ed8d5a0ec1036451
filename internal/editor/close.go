package editor

import "cnotepad/internal/document"

// CloseCurrent closes the current tab. A modified tab is only discarded
// after asking when askToSave is set: Save, Don't save or Cancel for a
// single close, Save or Don't save when bulk. done reports whether the tab
// is gone.
func (s *Shell) CloseCurrent(askToSave, bulk bool, done func(closed bool)) {
	s.close(s.Current(), askToSave, bulk, done)
}

func (s *Shell) close(doc *document.Document, ask, bulk bool, done func(bool)) {
	if !s.has(doc) {
		notify(done, false)
		return
	}
	if !doc.Modified() || !ask {
		s.remove(doc)
		notify(done, true)
		return
	}

	s.prompter.AskSave(doc.Name(), doc.Changes().String(), !bulk, func(answer Answer) {
		s.logger.Debug(component, "save prompt answered", map[string]interface{}{
			"name":   doc.Name(),
			"answer": answer.String(),
		})
		switch answer {
		case AnswerSave:
			// save closes the tab when it succeeds.
			s.save(doc, "", false, done)
		case AnswerDiscard:
			s.remove(doc)
			notify(done, true)
		default:
			notify(done, false)
		}
	})
}

// CloseAll closes every open tab in display order. The first tab that
// stays open halts the sequence. done reports whether all tabs closed.
func (s *Shell) CloseAll(done func(allClosed bool)) {
	ids := make([]string, len(s.docs))
	for i, d := range s.docs {
		ids[i] = d.ID()
	}
	b := &bulkClose{shell: s, ids: ids, done: done}
	b.step()
}

// bulkClose walks a snapshot of tab ids. Prompts answered synchronously are
// handled in the loop; an asynchronous answer resumes the walk from its
// callback.
type bulkClose struct {
	shell *Shell
	ids   []string
	next  int
	done  func(bool)
}

func (b *bulkClose) step() {
	for b.next < len(b.ids) {
		doc := b.shell.find(b.ids[b.next])
		b.next++
		if doc == nil {
			continue
		}
		b.shell.focus(doc)

		var answered, closed, waiting bool
		b.shell.close(doc, true, true, func(ok bool) {
			if !waiting {
				answered, closed = true, ok
				return
			}
			if !ok {
				b.finish(false)
				return
			}
			b.step()
		})
		if !answered {
			waiting = true
			return
		}
		if !closed {
			b.finish(false)
			return
		}
	}
	b.finish(true)
}

func (b *bulkClose) finish(allClosed bool) {
	if !allClosed {
		b.shell.logger.Info(component, "close all halted", map[string]interface{}{
			"remaining": len(b.shell.docs),
		})
	}
	notify(b.done, allClosed)
}

// RequestExit confirms, closes every tab, and quits only if all of them
// closed.
func (s *Shell) RequestExit() {
	s.prompter.ConfirmExit(func(yes bool) {
		if !yes {
			return
		}
		s.CloseAll(func(allClosed bool) {
			if !allClosed {
				s.logger.Info(component, "exit aborted, tabs still open", map[string]interface{}{
					"open": len(s.docs),
				})
				s.RefreshMenuAvailability()
				return
			}
			s.logger.Info(component, "exiting", nil)
			s.view.Quit()
		})
	})
}
