package model

import "github.com/shopspring/decimal"

type AccountID int64

// Account is a ledger record. A nil Balance means no balance was recorded.
type Account struct {
	ID      AccountID
	Balance *Balance
}

// Balance is an amount tagged with its currency. Amount may be nil even
// though the balance itself exists.
type Balance struct {
	Amount   *decimal.Decimal
	Currency Currency
}

func NewAccount(id AccountID, balance *Balance) *Account {
	return &Account{ID: id, Balance: balance}
}

func NewBalance(amount decimal.Decimal, currency Currency) *Balance {
	return &Balance{Amount: &amount, Currency: currency}
}
