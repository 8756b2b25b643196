package views

import (
	"fmt"

	"github.com/hance08/optbank/internal/service"
	"github.com/hance08/optbank/internal/store"
	"github.com/hance08/optbank/internal/utils"
	"github.com/pterm/pterm"
)

type AccountListView struct {
	precision int
}

func NewAccountListView(precision int) *AccountListView {
	return &AccountListView{precision: precision}
}

func (v *AccountListView) Render(accounts []service.AccountView, source string) error {
	headers := []string{"ID", "Entry", "Balance", "Reference Amount"}
	tableData := pterm.TableData{headers}

	for _, acc := range accounts {
		id := fmt.Sprintf("%d", acc.ID)
		balance := utils.FormatBalance(acc.Balance, v.precision)
		converted := utils.FormatOptionalAmount(acc.Converted, v.precision)

		var coloredEntry, coloredBalance, coloredAmount string
		switch {
		case acc.Status == store.EntryTombstoned:
			coloredEntry = pterm.Gray(acc.Status.String())
			coloredBalance = pterm.Gray("-")
			coloredAmount = pterm.Gray(converted)
		case acc.Converted.IsPresent():
			coloredEntry = pterm.Green(acc.Status.String())
			coloredBalance = pterm.Green(balance)
			coloredAmount = pterm.Green(converted)
		default:
			coloredEntry = pterm.Yellow(acc.Status.String())
			coloredBalance = pterm.Yellow(balance)
			coloredAmount = pterm.Red(converted)
		}
		tableData = append(tableData, []string{id, coloredEntry, coloredBalance, coloredAmount})
	}

	pterm.DefaultSection.Printf("Account List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d entries from %s\n", len(accounts), source)

	return nil
}
