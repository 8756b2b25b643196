package account

import (
	"fmt"

	"github.com/hance08/optbank/internal/service"
	"github.com/hance08/optbank/internal/store"
	"github.com/hance08/optbank/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	ShowTombstones bool
	OnlyAbsent     bool
}

type ListCommandRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all ledger entries with their reference amounts",
		Long: `List every ledger entry with its balance and the amount the pipeline
converts it to. Tombstoned entries are hidden unless --show-tombstones is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().BoolVar(&flags.ShowTombstones, "show-tombstones", false, "Show tombstoned entries")
	cmd.Flags().BoolVar(&flags.OnlyAbsent, "absent", false, "Only show entries whose conversion is absent")

	return cmd
}

func (r *ListCommandRunner) Run() error {
	accounts, err := r.svc.Account.List()
	if err != nil {
		return fmt.Errorf("failed to get accounts: %w", err)
	}

	accounts = filterAccounts(accounts, r.flags)

	return views.NewAccountListView(r.svc.Config.Defaults.Precision).Render(accounts, r.svc.Source)
}

func filterAccounts(accounts []service.AccountView, flags *listFlags) []service.AccountView {
	var filtered []service.AccountView
	for _, acc := range accounts {
		if !flags.ShowTombstones && acc.Status == store.EntryTombstoned {
			continue
		}
		if flags.OnlyAbsent && acc.Converted.IsPresent() {
			continue
		}
		filtered = append(filtered, acc)
	}
	return filtered
}
