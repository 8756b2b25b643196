package prompts

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/huh"
	"github.com/hance08/optbank/internal/constants"
	"github.com/hance08/optbank/internal/model"
	"github.com/hance08/optbank/internal/ui"
	"github.com/hance08/optbank/internal/validation"
)

const otherIDOption = "other"

// PromptAccountID lets the user pick a ledger id, the absent id, or type
// any other id. The answer is in the form validation.ParseAccountID reads.
func PromptAccountID(ids []model.AccountID) (string, error) {
	options := make([]huh.Option[string], 0, len(ids)+2)
	for _, id := range ids {
		key := fmt.Sprintf("%d", id)
		options = append(options, huh.NewOption(key, key))
	}
	options = append(options,
		huh.NewOption("(absent id)", constants.NoAccountID),
		huh.NewOption("Other id...", otherIDOption),
	)

	def := constants.NoAccountID
	if len(ids) > 0 {
		def = fmt.Sprintf("%d", ids[0])
	}

	selected, err := PromptSelect("Account id:", options, def)
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}

	if selected != otherIDOption {
		return selected, nil
	}

	custom, err := PromptInput("Enter account id:", "", func(s string) error {
		return validation.ValidateAccountID(s)
	})
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	return strings.TrimSpace(custom), nil
}

// PromptCurrency prompts for one of the supported currencies
func PromptCurrency(defaultCurrency model.Currency) (model.Currency, error) {
	var options []huh.Option[model.Currency]
	for _, c := range model.Currencies() {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (rate %s)", c, c.Rate()), c))
	}

	selected, err := PromptSelect("Currency:", options, defaultCurrency)
	if err != nil {
		return defaultCurrency, fmt.Errorf("input cancelled: %w", err)
	}
	return selected, nil
}

// PromptAmount prompts for an amount. An empty answer means the amount is absent.
func PromptAmount() (string, error) {
	return PromptInput("Amount (press Enter to leave it absent):", "", func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		return validation.ValidateAmount(s)
	})
}

// PromptApplyFallback asks whether an absent result should be shown as zero.
func PromptApplyFallback(defaultValue bool) (bool, error) {
	apply := defaultValue

	prompt := &survey.Confirm{
		Message: "Show absent results as 0?",
		Default: defaultValue,
	}

	if err := survey.AskOne(prompt, &apply, ui.AskOptions()...); err != nil {
		return false, err
	}
	return apply, nil
}
