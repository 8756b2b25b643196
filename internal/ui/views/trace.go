package views

import (
	"github.com/hance08/optbank/internal/pipeline"
	"github.com/hance08/optbank/internal/ui"
	"github.com/pterm/pterm"
)

func stageColor(o pipeline.StageOutcome) string {
	switch o {
	case pipeline.StagePresent:
		return pterm.Green(o.String())
	case pipeline.StageAbsent:
		return pterm.Red(o.String())
	default:
		return pterm.Gray(o.String())
	}
}

func RenderTrace(tr pipeline.Trace) error {
	ui.Separator()

	tableData := pterm.TableData{
		{pterm.Blue("Account ID"), tr.ID.String()},
		{pterm.Blue("Ledger Entry"), tr.Entry.String()},
		{pterm.Blue("Lookup"), stageColor(tr.Lookup)},
		{pterm.Blue("Extract Balance"), stageColor(tr.Extract)},
		{pterm.Blue("Convert"), stageColor(tr.Convert)},
		{pterm.Blue("Result"), tr.Result.String()},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
