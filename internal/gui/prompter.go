package gui

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"cnotepad/internal/editor"
	"cnotepad/internal/logger"
)

var _ editor.Prompter = (*Prompter)(nil)

// Prompter implements editor.Prompter with fyne dialogs on the main window.
type Prompter struct {
	window     fyne.Window
	extensions []string
	logger     logger.Logger
}

func NewPrompter(window fyne.Window, extensions []string, log logger.Logger) *Prompter {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Prompter{
		window:     window,
		extensions: extensions,
		logger:     log,
	}
}

// PromptOpenPath lists folders and files with one of the configured
// extensions.
func (p *Prompter) PromptOpenPath(onChosen func(path string)) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			p.ShowError("File Open Error", err)
			onChosen("")
			return
		}
		if reader == nil {
			onChosen("")
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()
		onChosen(path)
	}, p.window)
	if filter := p.filter(); filter != nil {
		d.SetFilter(filter)
	}
	d.Show()
}

// PromptSavePath suggests the configured extensions; any typed name is
// accepted.
func (p *Prompter) PromptSavePath(suggested string, onChosen func(path string)) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			p.ShowError("File Save Error", err)
			onChosen("")
			return
		}
		if writer == nil {
			onChosen("")
			return
		}
		path := writer.URI().Path()
		// The editor writes the file itself.
		_ = writer.Close()
		onChosen(path)
	}, p.window)

	if filter := p.filter(); filter != nil {
		d.SetFilter(filter)
	}
	if suggested != "" {
		d.SetFileName(filepath.Base(suggested))
		if dir, err := storage.ListerForURI(storage.NewFileURI(filepath.Dir(suggested))); err == nil {
			d.SetLocation(dir)
		}
	} else if len(p.extensions) > 0 {
		d.SetFileName("untitled" + p.extensions[0])
	}
	d.Show()
}

func (p *Prompter) AskSave(name, summary string, allowCancel bool, onAnswer func(editor.Answer)) {
	title := "Closing file"
	if !allowCancel {
		title = "Closing All Tabs"
	}
	message := widget.NewLabel(fmt.Sprintf("Do you want to save %s?\n(%s)", name, summary))

	var d *dialog.CustomDialog
	answered := false
	reply := func(a editor.Answer) func() {
		return func() {
			if answered {
				return
			}
			answered = true
			d.Hide()
			onAnswer(a)
		}
	}

	save := widget.NewButton("Save", reply(editor.AnswerSave))
	save.Importance = widget.HighImportance
	buttons := []fyne.CanvasObject{save, widget.NewButton("Don't save", reply(editor.AnswerDiscard))}
	if allowCancel {
		buttons = append(buttons, widget.NewButton("Cancel", reply(editor.AnswerCancel)))
	}

	d = dialog.NewCustomWithoutButtons(title, message, p.window)
	d.SetButtons(buttons)
	d.Show()
}

func (p *Prompter) ConfirmExit(onAnswer func(bool)) {
	dialog.ShowConfirm("Close program", "Do you want to close the program?", onAnswer, p.window)
}

func (p *Prompter) ShowError(title string, err error) {
	p.logger.Error("Prompter", err, map[string]interface{}{
		"title": title,
	})
	dialog.ShowError(err, p.window)
}

// filter is nil when no extensions are configured, listing every file.
func (p *Prompter) filter() storage.FileFilter {
	if len(p.extensions) == 0 {
		return nil
	}
	return storage.NewExtensionFileFilter(p.extensions)
}
