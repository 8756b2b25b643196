package service

import (
	"github.com/hance08/optbank/internal/config"
	"github.com/hance08/optbank/internal/logging"
	"github.com/hance08/optbank/internal/store"
	"go.uber.org/zap"
)

type Service struct {
	Conversion *ConversionService
	Laws       *LawService
	Account    *AccountService
	Config     *config.Config
	Source     string
}

func NewService(repo store.Repository, cfg *config.Config, logger *zap.Logger) *Service {
	logger = logging.OrNop(logger)

	return &Service{
		Conversion: NewConversionService(repo, cfg, logger.Named("conversion")),
		Laws:       NewLawService(repo, logger.Named("laws")),
		Account:    NewAccountService(repo, logger.Named("account")),
		Config:     cfg,
		Source:     repo.Source(),
	}
}
