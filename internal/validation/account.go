package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hance08/optbank/internal/constants"
	"github.com/hance08/optbank/internal/model"
	"github.com/hance08/optbank/internal/optional"
	"github.com/hance08/optbank/internal/utils"
)

// ParseAccountID reads an account id argument. "none" and "-" stand for an
// absent id and give an empty Optional.
func ParseAccountID(input string) (optional.Optional[model.AccountID], error) {
	input = strings.TrimSpace(input)

	if strings.EqualFold(input, constants.NoAccountID) || input == constants.NoAccountIDSymbol {
		return optional.None[model.AccountID](), nil
	}

	id, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return optional.None[model.AccountID](), fmt.Errorf("invalid account id '%s' (use an integer or '%s')", input, constants.NoAccountID)
	}

	return optional.Some(model.AccountID(id)), nil
}

// ValidateAccountID validates an id typed into a prompt.
// Accepts any for survey compatibility.
func ValidateAccountID(val any) error {
	input, ok := val.(string)
	if !ok {
		return fmt.Errorf("account id must be a string")
	}

	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("account id can't be empty")
	}

	_, err := ParseAccountID(input)
	return err
}

// ValidateCurrency validates a currency code
func ValidateCurrency(val any) error {
	code, ok := val.(string)
	if !ok {
		return fmt.Errorf("currency code must be a string")
	}

	_, err := model.ParseCurrency(code)
	return err
}

// ValidateAmount validates a decimal amount
func ValidateAmount(val any) error {
	input, ok := val.(string)
	if !ok {
		return fmt.Errorf("amount must be a string")
	}

	_, err := utils.ParseAmount(input)
	return err
}
