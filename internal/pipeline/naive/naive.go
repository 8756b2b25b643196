// Package naive holds stage functions that deal with nil themselves instead
// of leaving absence to the Optional combinators. They are kept to be
// compared against package pipeline: chaining them with Map and pre-composing
// them give different answers, and some of them dereference nil.
package naive

import (
	"errors"
	"fmt"

	"github.com/hance08/optbank/internal/model"
	"github.com/hance08/optbank/internal/optional"
	"github.com/hance08/optbank/internal/store"
	"github.com/shopspring/decimal"
)

var ErrNilDereference = errors.New("nil dereference")

// FindAccount returns the raw ledger value, nil for both missing and
// tombstoned ids.
func FindAccount(l *store.Ledger) func(model.AccountID) *model.Account {
	return func(id model.AccountID) *model.Account {
		acc, _ := l.Get(id)
		return acc
	}
}

// ExtractBalanceOrZero substitutes a zero reference balance for a nil
// account, and passes a nil balance through.
func ExtractBalanceOrZero(acc *model.Account) *model.Balance {
	if acc == nil {
		return model.NewBalance(decimal.Zero, model.CurrencyReference)
	}
	return acc.Balance
}

// ToReferenceOrZero returns zero for a nil balance but reads the amount
// without checking it.
func ToReferenceOrZero(b *model.Balance) *decimal.Decimal {
	if b == nil {
		zero := decimal.Zero
		return &zero
	}
	v := b.Amount.Mul(b.Currency.Rate())
	return &v
}

// UnguardedExtract reads the balance of whatever it is given.
func UnguardedExtract(acc *model.Account) *model.Balance {
	b := *acc.Balance
	return &b
}

// MapChain maps each stage in turn, so every nil collapses into an empty
// result before the next stage sees it.
func MapChain(l *store.Ledger, idOpt optional.Optional[model.AccountID]) optional.Optional[decimal.Decimal] {
	account := optional.Map(idOpt, FindAccount(l))
	balance := optional.Map(account, ExtractBalanceOrZero)
	return optional.Map(balance, ToReferenceOrZero)
}

// MapComposed maps the pre-composed stages once. The inner stages see nil
// and substitute their defaults.
func MapComposed(l *store.Ledger, idOpt optional.Optional[model.AccountID]) optional.Optional[decimal.Decimal] {
	find := FindAccount(l)
	return optional.Map(idOpt, func(id model.AccountID) *decimal.Decimal {
		return ToReferenceOrZero(ExtractBalanceOrZero(find(id)))
	})
}

// UnguardedChain uses UnguardedExtract and so only works for accounts
// that exist.
func UnguardedChain(l *store.Ledger, idOpt optional.Optional[model.AccountID]) optional.Optional[decimal.Decimal] {
	find := FindAccount(l)
	return optional.Map(idOpt, func(id model.AccountID) *decimal.Decimal {
		return ToReferenceOrZero(UnguardedExtract(find(id)))
	})
}

// Safely runs fn and reports a runtime panic from it as ErrNilDereference.
func Safely[T any](fn func() T) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			out = zero
			err = fmt.Errorf("%w: %v", ErrNilDereference, r)
		}
	}()
	return fn(), nil
}
