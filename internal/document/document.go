// Package document holds the per-tab text model: the buffer contents, the
// optional backing file and the baseline used to tell whether the buffer has
// unsaved edits.
package document

import (
	"path/filepath"

	"github.com/google/uuid"
)

const DefaultName = "*new"

// Document is one open tab's text and file binding.
type Document struct {
	id       string
	name     string
	path     string
	text     string
	baseline string
	dirty    bool
}

// New creates an empty, unbound document labelled name.
func New(name string) *Document {
	if name == "" {
		name = DefaultName
	}
	return &Document{
		id:   uuid.NewString(),
		name: name,
	}
}

// Load creates a clean document bound to path with the given contents.
func Load(path, content string) *Document {
	d := New(filepath.Base(path))
	d.path = path
	d.text = content
	d.baseline = content
	return d
}

func (d *Document) ID() string { return d.id }

// Name is the tab label: the file's base name once bound, otherwise the
// name given at creation.
func (d *Document) Name() string {
	if d.path != "" {
		return filepath.Base(d.path)
	}
	return d.name
}

// Path returns the backing file, or "" for a never-saved document.
func (d *Document) Path() string { return d.path }

func (d *Document) HasPath() bool { return d.path != "" }

func (d *Document) Text() string { return d.text }

func (d *Document) Baseline() string { return d.baseline }

// SetText records an edit. The dirty flag is cleared again if the text
// returns to exactly the baseline; differing lengths settle it without a scan.
func (d *Document) SetText(text string) {
	if text == d.text {
		return
	}
	d.text = text
	d.dirty = text != d.baseline
}

// Modified reports whether there are unsaved edits.
func (d *Document) Modified() bool { return d.dirty }

// MatchesBaseline compares the full text with the baseline. It is the
// reference for Modified and is only meant for checks and tests.
func (d *Document) MatchesBaseline() bool { return d.text == d.baseline }

// MarkSaved rebinds the document to path and makes the current text the
// new baseline.
func (d *Document) MarkSaved(path string) {
	if path != "" {
		d.path = path
	}
	d.baseline = d.text
	d.dirty = false
}
