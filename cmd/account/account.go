package account

import (
	"github.com/hance08/optbank/internal/service"
	"github.com/spf13/cobra"
)

func NewAccountCmd(svc *service.Service) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "List ledger entries and trace the pipeline for a single account.",
		Long:  `List ledger entries and trace the pipeline for a single account.`,
	}

	accountCmd.AddCommand(NewListCmd(svc))
	accountCmd.AddCommand(NewShowCmd(svc))

	return accountCmd
}
