package cmd

import (
	"strings"

	"github.com/hance08/optbank/internal/model"
	"github.com/hance08/optbank/internal/service"
	"github.com/hance08/optbank/internal/ui"
	"github.com/hance08/optbank/internal/ui/prompts"
	"github.com/hance08/optbank/internal/ui/views"
	"github.com/hance08/optbank/internal/utils"
	"github.com/hance08/optbank/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type quoteFlags struct {
	Amount   string
	Currency string
}

type quoteRunner struct {
	svc   *service.Service
	flags *quoteFlags
	cmd   *cobra.Command
}

func NewQuoteCmd(svc *service.Service) *cobra.Command {
	flags := &quoteFlags{}

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Convert an ad-hoc balance to the reference currency",
		Long: `Run only the conversion stage on a balance given by flags.
Leave out --amount to see how an absent amount is handled.
Without any flag, the balance is asked for interactively.

Example: optbank quote --amount 100 --currency CURRENCY_C`,
		SilenceUsage: true,
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		runner := &quoteRunner{
			svc:   svc,
			flags: flags,
			cmd:   cmd,
		}
		return runner.Run()
	}

	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Balance amount (omit for an absent amount)")
	cmd.Flags().StringVar(&flags.Currency, "currency", model.CurrencyReference.String(), "Currency: REFERENCE, CURRENCY_B or CURRENCY_C")

	return cmd
}

func (r *quoteRunner) Run() error {
	balance, err := r.balance()
	if err != nil {
		return err
	}

	conv := r.svc.Conversion.Quote(balance)

	ui.Separator()
	pterm.Info.Printf("Balance: %s\n", utils.FormatBalance(&balance, r.svc.Config.Defaults.Precision))

	return views.RenderConversions([]service.Conversion{conv}, r.svc.Config.Defaults.Precision)
}

func (r *quoteRunner) balance() (model.Balance, error) {
	if r.cmd.Flags().NFlag() == 0 {
		return promptBalance()
	}

	if err := validation.ValidateCurrency(r.flags.Currency); err != nil {
		return model.Balance{}, err
	}
	currency, _ := model.ParseCurrency(r.flags.Currency)

	balance := model.Balance{Currency: currency}
	if strings.TrimSpace(r.flags.Amount) != "" {
		amount, err := utils.ParseAmount(r.flags.Amount)
		if err != nil {
			return model.Balance{}, err
		}
		balance.Amount = &amount
	}
	return balance, nil
}

func promptBalance() (model.Balance, error) {
	currency, err := prompts.PromptCurrency(model.CurrencyReference)
	if err != nil {
		return model.Balance{}, err
	}

	input, err := prompts.PromptAmount()
	if err != nil {
		return model.Balance{}, err
	}

	balance := model.Balance{Currency: currency}
	if strings.TrimSpace(input) != "" {
		amount, err := utils.ParseAmount(input)
		if err != nil {
			return model.Balance{}, err
		}
		balance.Amount = &amount
	}
	return balance, nil
}
