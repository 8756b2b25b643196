package views

import (
	"github.com/hance08/optbank/internal/service"
	"github.com/hance08/optbank/internal/utils"
	"github.com/pterm/pterm"
)

func RenderConversions(convs []service.Conversion, precision int) error {
	headers := []string{"Account ID", "Pipeline Result", "Shown", "Note"}
	tableData := pterm.TableData{headers}

	for _, c := range convs {
		note := ""
		if c.UsedFallback {
			note = pterm.Yellow("default applied")
		}

		shown := utils.FormatOptionalAmount(c.Resolved, precision)
		if c.Resolved.IsPresent() && !c.UsedFallback {
			shown = pterm.Green(shown)
		}

		tableData = append(tableData, []string{
			c.ID.String(),
			c.Raw.String(),
			shown,
			note,
		})
	}

	pterm.DefaultSection.Printf("Reference Amounts")
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
