package app

import (
	"cnotepad/internal/editor"
	"cnotepad/internal/fileio"
	"cnotepad/internal/gui"
	"cnotepad/internal/logger"
)

type Lifecycle struct {
	shell      *editor.Shell
	guiManager *gui.Manager
	tracker    *fileio.Tracker
	logger     logger.Logger
	isShutdown bool
}

func NewLifecycle(shell *editor.Shell, gm *gui.Manager, tracker *fileio.Tracker, log logger.Logger) *Lifecycle {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Lifecycle{
		shell:      shell,
		guiManager: gm,
		tracker:    tracker,
		logger:     log,
	}
}

func (l *Lifecycle) Shutdown() {
	if l.isShutdown {
		return
	}

	l.isShutdown = true
	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

	if l.shell != nil {
		unsaved := 0
		for _, doc := range l.shell.Tabs() {
			if doc.Modified() {
				unsaved++
			}
		}
		if unsaved > 0 {
			l.logger.Warning("Lifecycle", "discarding unsaved tabs", map[string]interface{}{
				"unsaved": unsaved,
			})
		}
	}

	if l.guiManager != nil {
		l.guiManager.Shutdown()
		l.logger.Debug("Lifecycle", "GUI manager shutdown completed", nil)
	}

	stats := l.tracker.Stats()
	l.logger.Info("Lifecycle", "shutdown sequence completed", map[string]interface{}{
		"files":     stats.Files,
		"reads":     stats.Reads,
		"writes":    stats.Writes,
		"failures":  stats.Failures,
		"avg_read":  l.tracker.AverageTime(fileio.OpRead),
		"avg_write": l.tracker.AverageTime(fileio.OpWrite),
	})
}

func (l *Lifecycle) IsShutdown() bool {
	return l.isShutdown
}
