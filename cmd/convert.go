package cmd

import (
	"fmt"

	"github.com/hance08/optbank/internal/model"
	"github.com/hance08/optbank/internal/optional"
	"github.com/hance08/optbank/internal/service"
	"github.com/hance08/optbank/internal/ui/prompts"
	"github.com/hance08/optbank/internal/ui/views"
	"github.com/hance08/optbank/internal/validation"
	"github.com/spf13/cobra"
)

type convertFlags struct {
	NoFallback  bool
	Interactive bool
}

type convertRunner struct {
	svc   *service.Service
	flags *convertFlags
}

func NewConvertCmd(svc *service.Service) *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert [id|none]...",
		Short: "Convert account balances to the reference currency",
		Long: `Run the lookup -> balance -> conversion pipeline for each id.
Use "none" (or "-") for an absent id. Without ids, every ledger entry is converted.

Example: optbank convert 1 3 none`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &convertRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(args)
		},
	}

	cmd.Flags().BoolVar(&flags.NoFallback, "no-fallback", false, "Show absent results as absent instead of 0")
	cmd.Flags().BoolVarP(&flags.Interactive, "interactive", "i", false, "Pick the account interactively")

	return cmd
}

func (r *convertRunner) Run(args []string) error {
	ids, err := r.collectIDs(args)
	if err != nil {
		return err
	}

	convs, err := r.svc.Conversion.ConvertAll(ids)
	if err != nil {
		return fmt.Errorf("failed to convert: %w", err)
	}

	applyFallback := r.svc.Conversion.FallbackEnabled() && !r.flags.NoFallback
	if r.flags.Interactive && hasAbsent(convs) {
		applyFallback, err = prompts.PromptApplyFallback(applyFallback)
		if err != nil {
			return err
		}
	}

	if !applyFallback {
		convs = withoutFallback(convs)
	}

	return views.RenderConversions(convs, r.svc.Config.Defaults.Precision)
}

func (r *convertRunner) collectIDs(args []string) ([]optional.Optional[model.AccountID], error) {
	if r.flags.Interactive {
		ledgerIDs, err := r.svc.Account.IDs()
		if err != nil {
			return nil, err
		}
		input, err := prompts.PromptAccountID(ledgerIDs)
		if err != nil {
			return nil, err
		}
		args = []string{input}
	}

	if len(args) == 0 {
		ledgerIDs, err := r.svc.Account.IDs()
		if err != nil {
			return nil, err
		}
		ids := make([]optional.Optional[model.AccountID], 0, len(ledgerIDs))
		for _, id := range ledgerIDs {
			ids = append(ids, optional.Some(id))
		}
		return ids, nil
	}

	return parseIDs(args)
}

func parseIDs(args []string) ([]optional.Optional[model.AccountID], error) {
	ids := make([]optional.Optional[model.AccountID], 0, len(args))
	for _, arg := range args {
		idOpt, err := validation.ParseAccountID(arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, idOpt)
	}
	return ids, nil
}

func hasAbsent(convs []service.Conversion) bool {
	for _, c := range convs {
		if c.Raw.IsEmpty() {
			return true
		}
	}
	return false
}

// withoutFallback drops the boundary default from already resolved results.
func withoutFallback(convs []service.Conversion) []service.Conversion {
	out := make([]service.Conversion, len(convs))
	for i, c := range convs {
		c.Resolved = c.Raw
		c.UsedFallback = false
		out[i] = c
	}
	return out
}
