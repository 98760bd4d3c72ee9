// Package app wires configuration, logging, translations and the task
// database together for the executables.
package app

import (
	"TaskManager/internal/config"
	"TaskManager/internal/logger"
	"TaskManager/internal/storage"
	"TaskManager/pkg/translator"

	"go.uber.org/zap"
)

type App struct {
	Config     *config.Config
	Manager    *config.Manager
	Logger     *zap.Logger
	DB         *storage.Database
	Translator *translator.Translator
}

// Open loads the configuration managed by manager and opens the database.
func Open(manager *config.Manager) (*App, error) {
	cfg := manager.GetConfig()

	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	db, err := storage.NewDatabase(cfg.Database.Path, log)
	if err != nil {
		log.Error("failed to open database", zap.String("path", cfg.Database.Path), zap.Error(err))
		return nil, err
	}

	return &App{
		Config:     cfg,
		Manager:    manager,
		Logger:     log,
		DB:         db,
		Translator: translator.New(cfg.Theme.Language),
	}, nil
}

func (a *App) Close() {
	if err := a.DB.Close(); err != nil {
		a.Logger.Warn("failed to close database", zap.Error(err))
	}
	if err := a.Logger.Sync(); err != nil {
		a.Logger.Debug("failed to sync logger", zap.Error(err))
	}
}
