package cmd

import (
	"fmt"

	"github.com/hance08/optbank/internal/service"
	"github.com/hance08/optbank/internal/ui"
	"github.com/hance08/optbank/internal/ui/views"
	"github.com/spf13/cobra"
)

type lawsRunner struct {
	svc          *service.Service
	skipContrast bool
}

func NewLawsCmd(svc *service.Service) *cobra.Command {
	runner := &lawsRunner{svc: svc}

	cmd := &cobra.Command{
		Use:   "laws",
		Short: "Check the Optional laws and show where nullable variants break them",
		Long: `Verify left identity, associativity and ofNullable idempotence of the
Optional pipeline for the canonical scenarios and every ledger entry, then
compare it with the nullable map-based variants.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run()
		},
	}

	cmd.Flags().BoolVar(&runner.skipContrast, "laws-only", false, "Skip the nullable anti-example table")

	return cmd
}

func (r *lawsRunner) Run() error {
	report, err := r.svc.Laws.Verify()
	if err != nil {
		return err
	}

	if err := views.RenderLawReport(report); err != nil {
		return err
	}

	if !r.skipContrast {
		divergences, err := r.svc.Laws.Contrast()
		if err != nil {
			return err
		}
		ui.Separator()
		if err := views.RenderDivergences(divergences); err != nil {
			return err
		}
	}

	if !report.OK() {
		return fmt.Errorf("%d law check(s) failed", len(report.Failures()))
	}
	return nil
}
