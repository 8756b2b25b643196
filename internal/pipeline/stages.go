package pipeline

import (
	"github.com/hance08/optbank/internal/model"
	"github.com/hance08/optbank/internal/optional"
	"github.com/hance08/optbank/internal/store"
	"github.com/shopspring/decimal"
)

// Stage functions only ever see present inputs. Absence is lifted into an
// Optional where the raw data is read and is otherwise left to the
// combinators.

// Lookup resolves an id against the ledger. Missing and tombstoned keys both
// give an empty result.
func Lookup(l *store.Ledger) func(model.AccountID) optional.Optional[model.Account] {
	return func(id model.AccountID) optional.Optional[model.Account] {
		acc, _ := l.Get(id)
		return optional.OfNullable(acc)
	}
}

func ExtractBalance(acc model.Account) optional.Optional[model.Balance] {
	return optional.OfNullable(acc.Balance)
}

// ToReferenceAmount converts the balance amount with the currency's rate.
func ToReferenceAmount(b model.Balance) optional.Optional[decimal.Decimal] {
	return optional.FlatMap(optional.OfNullable(b.Amount), func(amount decimal.Decimal) optional.Optional[decimal.Decimal] {
		return optional.Some(amount.Mul(b.Currency.Rate()))
	})
}
