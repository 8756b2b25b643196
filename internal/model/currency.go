package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrUnknownCurrency = errors.New("unknown currency")

type Currency int

const (
	CurrencyReference Currency = iota
	CurrencyB
	CurrencyC
)

var (
	rateReference = decimal.NewFromInt(1)
	rateB         = decimal.RequireFromString("1.3")
	rateC         = decimal.RequireFromString("1.1")
)

func Currencies() []Currency {
	return []Currency{CurrencyReference, CurrencyB, CurrencyC}
}

// Rate returns the multiplier that converts an amount in c to the reference
// currency. Values outside the enumeration convert at zero.
func (c Currency) Rate() decimal.Decimal {
	switch c {
	case CurrencyReference:
		return rateReference
	case CurrencyB:
		return rateB
	case CurrencyC:
		return rateC
	default:
		return decimal.Zero
	}
}

func (c Currency) String() string {
	switch c {
	case CurrencyReference:
		return "REFERENCE"
	case CurrencyB:
		return "CURRENCY_B"
	case CurrencyC:
		return "CURRENCY_C"
	default:
		return fmt.Sprintf("Currency(%d)", int(c))
	}
}

func (c Currency) Valid() bool {
	return c >= CurrencyReference && c <= CurrencyC
}

// ParseCurrency accepts the codes returned by String, case-insensitively.
func ParseCurrency(code string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range Currencies() {
		if c.String() == code {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: '%s' (must be REFERENCE, CURRENCY_B or CURRENCY_C)", ErrUnknownCurrency, code)
}
