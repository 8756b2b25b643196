package app

import (
	"fmt"

	"github.com/hance08/optbank/internal/config"
	"github.com/hance08/optbank/internal/logging"
	"github.com/hance08/optbank/internal/service"
	"github.com/hance08/optbank/internal/store"
	"go.uber.org/zap"
)

type App struct {
	Service *service.Service
	Store   store.Repository
	Logger  *zap.Logger
}

// NewApp wires config, logger, ledger source and services, then returns the App entity
func NewApp(cfg *config.Config) (*App, func(), error) {
	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	repo := store.NewConfigRepository(cfg.Store, cfg.ConfigPath)

	// Fail early on a broken ledger declaration rather than on first use.
	if _, err := repo.Snapshot(); err != nil {
		return nil, nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	svc := service.NewService(repo, cfg, logger)

	cleanup := func() {
		_ = logger.Sync()
	}

	return &App{
		Service: svc,
		Store:   repo,
		Logger:  logger,
	}, cleanup, nil
}
