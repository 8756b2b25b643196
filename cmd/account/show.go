package account

import (
	"github.com/hance08/optbank/internal/service"
	"github.com/hance08/optbank/internal/ui"
	"github.com/hance08/optbank/internal/ui/prompts"
	"github.com/hance08/optbank/internal/ui/views"
	"github.com/hance08/optbank/internal/validation"
	"github.com/spf13/cobra"
)

type ShowCommandRunner struct {
	svc *service.Service
}

func NewShowCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id|none]",
		Short: "Trace the pipeline stages for one account",
		Long: `Show which stage of lookup -> balance -> conversion produced a value
and where the result became absent. Without an id, pick one interactively.

Example: optbank account show 5`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ShowCommandRunner{svc: svc}
			return runner.Run(args)
		},
	}
}

func (r *ShowCommandRunner) Run(args []string) error {
	var input string
	if len(args) == 1 {
		input = args[0]
	} else {
		ids, err := r.svc.Account.IDs()
		if err != nil {
			return err
		}
		input, err = prompts.PromptAccountID(ids)
		if err != nil {
			return err
		}
	}

	idOpt, err := validation.ParseAccountID(input)
	if err != nil {
		return err
	}

	tr, err := r.svc.Conversion.Explain(idOpt)
	if err != nil {
		return err
	}

	ui.PrintTitle("Pipeline trace for %s", idOpt)
	return views.RenderTrace(tr)
}
