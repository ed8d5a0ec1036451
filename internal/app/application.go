package app

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"

	"cnotepad/internal/config"
	"cnotepad/internal/editor"
	"cnotepad/internal/fileio"
	"cnotepad/internal/gui"
	"cnotepad/internal/logger"
)

const (
	AppName    = "CNotePad"
	AppID      = "com.textediting.cnotepad"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	shell      *editor.Shell
	tracker    *fileio.Tracker
	logger     logger.Logger
	lifecycle  *Lifecycle
}

func NewApplication(cfg config.Config, log logger.Logger) *Application {
	return newApplication(app.NewWithID(AppID), cfg, log)
}

func newApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger) *Application {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	fyneApp.Settings().SetTheme(gui.NewTheme(cfg.Editor.TextSize))
	fyneApp.SetIcon(theme.FileTextIcon())

	window := fyneApp.NewWindow(AppName)
	window.SetIcon(theme.FileTextIcon())
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  cfg.Window.Width,
		"window_height": cfg.Window.Height,
		"text_size":     cfg.Editor.TextSize,
	})

	tracker := fileio.NewTracker()
	tracker.SetEnabled(cfg.Log.FileStats)
	store := fileio.NewOSStore(tracker, log)
	guiManager := gui.NewManager(window, gui.Options{
		MinSize: fyne.NewSize(config.MinWindowWidth, config.MinWindowHeight),
	}, log)
	prompter := gui.NewPrompter(window, cfg.Dialogs.Extensions, log)
	shell := editor.NewShell(guiManager, prompter, store, log,
		editor.WithDefaultName(cfg.Editor.DefaultName))

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		shell:      shell,
		tracker:    tracker,
		logger:     log,
		lifecycle:  NewLifecycle(shell, guiManager, tracker, log),
	}
	application.setupHandlers()

	log.Info("Application", "initialization complete", nil)
	return application
}

func (a *Application) setupHandlers() {
	handlers := NewHandlers(a.shell, a.logger)

	a.guiManager.SetHandlers(handlers.Bindings())
	a.guiManager.SetQuitHandler(a.Quit)
	a.shell.RefreshMenuAvailability()

	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "close requested", nil)
		handlers.HandleExit()
	})
}

// Run shows the window and blocks until the fyne event loop exits.
func (a *Application) Run() error {
	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.Show()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}

// Quit shuts the lifecycle down and closes the master window without asking
// about unsaved tabs. It must run on the UI goroutine.
func (a *Application) Quit() {
	a.lifecycle.Shutdown()
	a.window.Close()
}

func (a *Application) Shutdown() {
	a.lifecycle.Shutdown()
}
