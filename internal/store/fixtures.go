package store

import (
	"github.com/hance08/optbank/internal/model"
	"github.com/shopspring/decimal"
)

// FixtureEntries returns the canonical ledger:
//
//	1: 100 CURRENCY_C
//	4: tombstone
//	5: account without a balance
//	6: CURRENCY_B balance without an amount
//
// Ids 2 and 3 are deliberately absent.
func FixtureEntries() []Entry {
	return []Entry{
		AccountEntry(model.NewAccount(1, model.NewBalance(decimal.NewFromInt(100), model.CurrencyC))),
		TombstoneEntry(4),
		AccountEntry(model.NewAccount(5, nil)),
		AccountEntry(model.NewAccount(6, &model.Balance{Currency: model.CurrencyB})),
	}
}

type FixtureRepository struct{}

func NewFixtureRepository() *FixtureRepository {
	return &FixtureRepository{}
}

func (r *FixtureRepository) Snapshot() (*Ledger, error) {
	return NewLedger(FixtureEntries()...)
}

func (r *FixtureRepository) Source() string {
	return "built-in fixtures"
}
