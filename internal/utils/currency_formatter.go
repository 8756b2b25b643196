package utils

import (
	"fmt"
	"strings"

	"github.com/hance08/optbank/internal/constants"
	"github.com/hance08/optbank/internal/model"
	"github.com/hance08/optbank/internal/optional"
	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount with a fixed number of decimals.
func FormatAmount(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(clampPrecision(precision)))
}

// FormatOptionalAmount renders an empty amount as "(absent)".
func FormatOptionalAmount(amount optional.Optional[decimal.Decimal], precision int) string {
	v, err := amount.Get()
	if err != nil {
		return "(absent)"
	}
	return FormatAmount(v, precision)
}

// FormatBalance renders a raw balance, nil parts included.
func FormatBalance(b *model.Balance, precision int) string {
	if b == nil {
		return "(no balance)"
	}
	return fmt.Sprintf("%s %s", FormatOptionalAmount(optional.OfNullable(b.Amount), precision), b.Currency)
}

// ParseAmount accepts plain decimal notation such as "150", "150.5" or "-3.25".
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	amountStr = strings.TrimSpace(amountStr)
	if amountStr == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount format: %s", amountStr)
	}
	return amount, nil
}

func clampPrecision(p int) int {
	switch {
	case p < 0:
		return constants.DefaultPrecision
	case p > constants.MaxPrecision:
		return constants.MaxPrecision
	default:
		return p
	}
}
