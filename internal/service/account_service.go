package service

import (
	"fmt"

	"github.com/hance08/optbank/internal/model"
	"github.com/hance08/optbank/internal/optional"
	"github.com/hance08/optbank/internal/pipeline"
	"github.com/hance08/optbank/internal/store"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AccountView is one ledger entry as shown by the account commands.
type AccountView struct {
	ID        model.AccountID
	Status    store.EntryStatus
	Balance   *model.Balance
	Converted optional.Optional[decimal.Decimal]
}

type AccountService struct {
	repo   store.Repository
	logger *zap.Logger
}

func NewAccountService(repo store.Repository, logger *zap.Logger) *AccountService {
	return &AccountService{repo: repo, logger: logger}
}

func (as *AccountService) List() ([]AccountView, error) {
	ledger, err := as.repo.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	views := make([]AccountView, 0, ledger.Len())
	for _, e := range ledger.Entries() {
		view := AccountView{
			ID:        e.ID,
			Status:    ledger.Status(e.ID),
			Converted: pipeline.Run(ledger, optional.Some(e.ID)),
		}
		if e.Account != nil {
			view.Balance = e.Account.Balance
		}
		views = append(views, view)
	}

	as.logger.Debug("accounts listed", zap.Int("count", len(views)))
	return views, nil
}

func (as *AccountService) IDs() ([]model.AccountID, error) {
	ledger, err := as.repo.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	return ledger.IDs(), nil
}
