package editor

import "cnotepad/internal/document"

// Answer is the user's reply to a save-before-close prompt.
type Answer int

const (
	AnswerCancel Answer = iota
	AnswerSave
	AnswerDiscard
)

func (a Answer) String() string {
	switch a {
	case AnswerSave:
		return "save"
	case AnswerDiscard:
		return "discard"
	default:
		return "cancel"
	}
}

// Prompter asks the user for paths and confirmations. Callbacks run at most
// once, on the UI goroutine; an empty path means the dialog was cancelled.
type Prompter interface {
	PromptOpenPath(onChosen func(path string))
	PromptSavePath(suggested string, onChosen func(path string))
	// AskSave offers Save and Don't save, plus Cancel when allowCancel is set.
	AskSave(name, summary string, allowCancel bool, onAnswer func(Answer))
	ConfirmExit(onAnswer func(bool))
	ShowError(title string, err error)
}

// View renders the shell's tabs.
type View interface {
	AddTab(doc *document.Document)
	RemoveTab(id string)
	SelectTab(id string)
	// Cursor returns the rune row and column of the tab's cursor.
	Cursor(id string) (row, col int)
	SetContent(id, text string, row, col int)
	// SetActionsEnabled toggles Save, Save as, Close and Close all.
	SetActionsEnabled(enabled bool)
	Quit()
}
