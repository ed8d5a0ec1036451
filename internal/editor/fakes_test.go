package editor

import (
	"fmt"
	"slices"

	"cnotepad/internal/document"
	"cnotepad/internal/fileio"
)

type fakeView struct {
	tabs     []string
	labels   map[string]string
	selected string
	enabled  bool
	quit     bool
	cursors  map[string][2]int
	content  map[string]string
}

func newFakeView() *fakeView {
	return &fakeView{
		labels:  make(map[string]string),
		cursors: make(map[string][2]int),
		content: make(map[string]string),
	}
}

func (v *fakeView) AddTab(doc *document.Document) {
	v.tabs = append(v.tabs, doc.ID())
	v.labels[doc.ID()] = doc.Name()
	v.content[doc.ID()] = doc.Text()
}

func (v *fakeView) RemoveTab(id string) {
	v.tabs = slices.DeleteFunc(v.tabs, func(t string) bool { return t == id })
	delete(v.labels, id)
	if v.selected == id {
		v.selected = ""
	}
}

func (v *fakeView) SelectTab(id string) { v.selected = id }

func (v *fakeView) Cursor(id string) (int, int) {
	c := v.cursors[id]
	return c[0], c[1]
}

func (v *fakeView) SetContent(id, text string, row, col int) {
	v.content[id] = text
	v.cursors[id] = [2]int{row, col}
}

func (v *fakeView) SetActionsEnabled(enabled bool) { v.enabled = enabled }

func (v *fakeView) Quit() { v.quit = true }

// fakePrompter answers from queues. When a queue is empty the callback is
// parked so the test can answer it later, like a real dialog would.
type fakePrompter struct {
	openPaths   []string
	savePaths   []string
	answers     []Answer
	exitAnswers []bool

	asked       []askRecord
	suggested   []string
	errors      []error
	pendingSave []func(Answer)
	pendingPath []func(string)
}

type askRecord struct {
	name        string
	summary     string
	allowCancel bool
}

func (p *fakePrompter) PromptOpenPath(onChosen func(string)) {
	if len(p.openPaths) == 0 {
		p.pendingPath = append(p.pendingPath, onChosen)
		return
	}
	path := p.openPaths[0]
	p.openPaths = p.openPaths[1:]
	onChosen(path)
}

func (p *fakePrompter) PromptSavePath(suggested string, onChosen func(string)) {
	p.suggested = append(p.suggested, suggested)
	if len(p.savePaths) == 0 {
		p.pendingPath = append(p.pendingPath, onChosen)
		return
	}
	path := p.savePaths[0]
	p.savePaths = p.savePaths[1:]
	onChosen(path)
}

func (p *fakePrompter) AskSave(name, summary string, allowCancel bool, onAnswer func(Answer)) {
	p.asked = append(p.asked, askRecord{name: name, summary: summary, allowCancel: allowCancel})
	if len(p.answers) == 0 {
		p.pendingSave = append(p.pendingSave, onAnswer)
		return
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	onAnswer(a)
}

func (p *fakePrompter) ConfirmExit(onAnswer func(bool)) {
	yes := len(p.exitAnswers) > 0 && p.exitAnswers[0]
	if len(p.exitAnswers) > 0 {
		p.exitAnswers = p.exitAnswers[1:]
	}
	onAnswer(yes)
}

func (p *fakePrompter) ShowError(title string, err error) {
	p.errors = append(p.errors, err)
}

func (p *fakePrompter) answerPending(a Answer) {
	cb := p.pendingSave[0]
	p.pendingSave = p.pendingSave[1:]
	cb(a)
}

// memStore is an in-memory fileio.Store that counts writes.
type memStore struct {
	files    map[string]string
	failures map[string]error
	writes   int
	reads    int
}

func newMemStore() *memStore {
	return &memStore{
		files:    make(map[string]string),
		failures: make(map[string]error),
	}
}

func (m *memStore) Read(path string) (string, error) {
	m.reads++
	if err, ok := m.failures[path]; ok {
		return "", err
	}
	content, ok := m.files[path]
	if !ok {
		return "", fmt.Errorf("read %s: %w", path, fileio.ErrNotFound)
	}
	return content, nil
}

func (m *memStore) Write(path, content string) error {
	if path == "" {
		return fileio.ErrNoPath
	}
	if err, ok := m.failures[path]; ok {
		return err
	}
	m.writes++
	m.files[path] = content
	return nil
}
