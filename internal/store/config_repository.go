package store

import (
	"fmt"
	"strings"

	"github.com/hance08/optbank/internal/config"
	"github.com/hance08/optbank/internal/model"
	"github.com/shopspring/decimal"
)

// ConfigRepository builds ledgers from the accounts declared in the config
// file, optionally on top of the built-in fixtures.
type ConfigRepository struct {
	cfg        config.StoreConfig
	configPath string
}

func NewConfigRepository(cfg config.StoreConfig, configPath string) *ConfigRepository {
	return &ConfigRepository{cfg: cfg, configPath: configPath}
}

func (r *ConfigRepository) Snapshot() (*Ledger, error) {
	declared := make([]Entry, 0, len(r.cfg.Accounts))
	for i, ac := range r.cfg.Accounts {
		entry, err := entryFromConfig(ac)
		if err != nil {
			return nil, fmt.Errorf("store.accounts[%d]: %w", i, err)
		}
		declared = append(declared, entry)
	}

	if !r.cfg.UseFixtures {
		return NewLedger(declared...)
	}

	// Declared entries replace fixtures with the same id.
	overridden := make(map[model.AccountID]bool, len(declared))
	for _, e := range declared {
		overridden[e.ID] = true
	}

	entries := make([]Entry, 0, len(declared)+len(FixtureEntries()))
	for _, e := range FixtureEntries() {
		if !overridden[e.ID] {
			entries = append(entries, e)
		}
	}
	entries = append(entries, declared...)

	return NewLedger(entries...)
}

func (r *ConfigRepository) Source() string {
	var parts []string
	if r.cfg.UseFixtures {
		parts = append(parts, "built-in fixtures")
	}
	if len(r.cfg.Accounts) > 0 {
		src := r.configPath
		if src == "" {
			src = "config"
		}
		parts = append(parts, fmt.Sprintf("%d account(s) from %s", len(r.cfg.Accounts), src))
	}
	if len(parts) == 0 {
		return "empty ledger"
	}
	return strings.Join(parts, " + ")
}

func entryFromConfig(ac config.AccountConfig) (Entry, error) {
	id := model.AccountID(ac.ID)

	if ac.Tombstone {
		if ac.Balance != nil {
			return Entry{}, fmt.Errorf("%w: tombstoned account %d can't have a balance", ErrInvalidEntry, id)
		}
		return TombstoneEntry(id), nil
	}

	if ac.Balance == nil {
		return AccountEntry(model.NewAccount(id, nil)), nil
	}

	currency, err := model.ParseCurrency(ac.Balance.Currency)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: account %d: %w", ErrInvalidEntry, id, err)
	}

	balance := &model.Balance{Currency: currency}
	if ac.Balance.Amount != nil {
		amount, err := decimal.NewFromString(strings.TrimSpace(*ac.Balance.Amount))
		if err != nil {
			return Entry{}, fmt.Errorf("%w: account %d: invalid amount '%s'", ErrInvalidEntry, id, *ac.Balance.Amount)
		}
		balance.Amount = &amount
	}

	return AccountEntry(model.NewAccount(id, balance)), nil
}
