package pipeline

import (
	"github.com/hance08/optbank/internal/model"
	"github.com/hance08/optbank/internal/optional"
	"github.com/hance08/optbank/internal/store"
	"github.com/shopspring/decimal"
)

// DefaultAmount is the zero substitute applied at the output boundary.
// No stage uses it.
var DefaultAmount = decimal.Zero

// DefaultBalance is the pre-conversion counterpart of DefaultAmount.
func DefaultBalance() model.Balance {
	return *model.NewBalance(DefaultAmount, model.CurrencyReference)
}

// Composed pre-composes lookup, extraction and conversion into a single
// function.
func Composed(l *store.Ledger) func(model.AccountID) optional.Optional[decimal.Decimal] {
	return optional.Compose(
		optional.Compose(Lookup(l), ExtractBalance),
		ToReferenceAmount,
	)
}

// Chained feeds idOpt through each stage one FlatMap at a time.
func Chained(l *store.Ledger, idOpt optional.Optional[model.AccountID]) optional.Optional[decimal.Decimal] {
	account := optional.FlatMap(idOpt, Lookup(l))
	balance := optional.FlatMap(account, ExtractBalance)
	return optional.FlatMap(balance, ToReferenceAmount)
}

// Run converts the balance behind idOpt to the reference currency. An empty
// result is left to the caller; see ResolveAmount.
func Run(l *store.Ledger, idOpt optional.Optional[model.AccountID]) optional.Optional[decimal.Decimal] {
	return optional.FlatMap(idOpt, Composed(l))
}

// ResolveAmount applies DefaultAmount to an empty result.
func ResolveAmount(o optional.Optional[decimal.Decimal]) decimal.Decimal {
	return o.OrElse(DefaultAmount)
}

func ResolveBalance(o optional.Optional[model.Balance]) model.Balance {
	return o.OrElseGet(DefaultBalance)
}

// BalanceOf runs the first two stages only.
func BalanceOf(l *store.Ledger, idOpt optional.Optional[model.AccountID]) optional.Optional[model.Balance] {
	return optional.FlatMap(idOpt, optional.Compose(Lookup(l), ExtractBalance))
}

// AmountEqual compares two results by decimal value.
func AmountEqual(a, b optional.Optional[decimal.Decimal]) bool {
	return optional.EqualFunc(a, b, decimal.Decimal.Equal)
}
