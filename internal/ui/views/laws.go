package views

import (
	"github.com/hance08/optbank/internal/laws"
	"github.com/hance08/optbank/internal/ui"
	"github.com/pterm/pterm"
)

func RenderLawReport(report laws.Report) error {
	headers := []string{"Scenario", "Law", "Holds"}
	tableData := pterm.TableData{headers}

	for _, c := range report.Checks {
		tableData = append(tableData, []string{c.Scenario.Label(), c.Law, ui.YesNo(c.Holds)})
	}

	pterm.DefaultSection.Printf("Optional Pipeline Laws")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	if report.OK() {
		pterm.Success.Printf("All %d checks hold\n", len(report.Checks))
	} else {
		pterm.Error.Printf("%d of %d checks failed\n", len(report.Failures()), len(report.Checks))
	}
	return nil
}

func RenderDivergences(divergences []laws.Divergence) error {
	headers := []string{"Scenario", "Optional Pipeline", "Nullable map chain", "Nullable pre-composed", "Chain = Composed", "Matches Pipeline"}
	tableData := pterm.TableData{headers}

	diverging := 0
	for _, d := range divergences {
		if d.Diverges() || d.DeviatesFromPipeline() {
			diverging++
		}
		tableData = append(tableData, []string{
			d.Scenario.Label(),
			d.Pipeline.String(),
			outcomeColor(d.MapChain),
			outcomeColor(d.MapComposed),
			ui.YesNo(!d.Diverges()),
			ui.YesNo(!d.DeviatesFromPipeline()),
		})
	}

	pterm.DefaultSection.Printf("Nullable Anti-examples")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("%d of %d scenarios expose the nullable variants\n", diverging, len(divergences))
	return nil
}

func outcomeColor(o laws.Outcome) string {
	if o.Err != nil {
		return pterm.Red(o.String())
	}
	return o.String()
}
