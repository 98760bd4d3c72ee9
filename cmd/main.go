package main

import (
	"TaskManager/internal/app"
	"TaskManager/internal/config"
	"TaskManager/internal/ui"
	"log"

	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"
	"go.uber.org/zap"
)

func main() {
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatal(err)
	}

	a, err := app.Open(configManager)
	if err != nil {
		log.Fatal(err)
	}
	defer a.Close()

	myApp := fyneapp.NewWithID("taskmanager.desktop")

	cfg := a.Config
	if cfg.Theme.DarkMode {
		myApp.Settings().SetTheme(theme.DarkTheme())
	}

	mainWindow, err := ui.NewMainWindow(myApp, cfg, a.DB, a.Translator, a.Logger)
	if err != nil {
		a.Logger.Fatal("failed to build main window", zap.Error(err))
	}
	mainWindow.SetSize(float32(cfg.App.WindowWidth), float32(cfg.App.WindowHeight))

	a.Logger.Info("starting", zap.String("version", cfg.App.Version), zap.String("database", cfg.Database.Path))
	mainWindow.Show()
}
