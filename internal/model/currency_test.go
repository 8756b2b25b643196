package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyRate(t *testing.T) {
	tests := []struct {
		currency Currency
		want     string
	}{
		{CurrencyReference, "1"},
		{CurrencyB, "1.3"},
		{CurrencyC, "1.1"},
		{Currency(42), "0"},
	}

	for _, tt := range tests {
		t.Run(tt.currency.String(), func(t *testing.T) {
			assert.True(t, decimal.RequireFromString(tt.want).Equal(tt.currency.Rate()),
				"got %s", tt.currency.Rate())
		})
	}
}

func TestRateIsExact(t *testing.T) {
	got := decimal.NewFromInt(100).Mul(CurrencyC.Rate())
	assert.Equal(t, "110", got.String())
}

func TestParseCurrency(t *testing.T) {
	for _, c := range Currencies() {
		got, err := ParseCurrency(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	got, err := ParseCurrency(" currency_b ")
	require.NoError(t, err)
	assert.Equal(t, CurrencyB, got)

	_, err = ParseCurrency("EURO")
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestCurrencyValid(t *testing.T) {
	assert.True(t, CurrencyC.Valid())
	assert.False(t, Currency(-1).Valid())
	assert.Equal(t, "Currency(7)", Currency(7).String())
}

func TestNewBalanceCopiesAmount(t *testing.T) {
	amount := decimal.NewFromInt(5)
	b := NewBalance(amount, CurrencyB)
	require.NotNil(t, b.Amount)
	assert.True(t, b.Amount.Equal(amount))
	assert.Equal(t, CurrencyB, b.Currency)

	acc := NewAccount(3, nil)
	assert.Equal(t, AccountID(3), acc.ID)
	assert.Nil(t, acc.Balance)
}
