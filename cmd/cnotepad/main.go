package main

import (
	"log"
	"os"

	"fyne.io/fyne/v2"

	"cnotepad/internal/app"
	"cnotepad/internal/config"
	"cnotepad/internal/logger"
	"cnotepad/internal/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration load failed: %v", err)
	}

	appLogger := logger.New(cfg.Log.Level, cfg.Log.JSON)
	appLogger.Info("Main", "configuration loaded", map[string]interface{}{
		"log_level":  cfg.Log.Level,
		"extensions": cfg.Dialogs.Extensions,
	})

	application := app.NewApplication(cfg, appLogger)

	shutdownManager := shutdown.NewManager(appLogger)
	shutdownManager.Register(application)
	shutdownManager.Listen(func(os.Signal) {
		fyne.Do(application.Quit)
	})

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}

	shutdownManager.Shutdown()
	appLogger.Info("Main", "application terminated", nil)
}
