package views

import (
	"fmt"

	"github.com/hance08/optbank/internal/model"
	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath    string
	StoreSource   string
	ApplyFallback bool
	Precision     int
	LogLevel      string
}

func RenderSystemInfo(data SystemInfoItem) error {
	fallback := pterm.Green("on (absent results shown as 0)")
	if !data.ApplyFallback {
		fallback = pterm.Yellow("off (absent results shown as absent)")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Ledger Source", data.StoreSource},
		{"Boundary Fallback", fallback},
		{"Precision", fmt.Sprintf("%d", data.Precision)},
		{"Log Level", data.LogLevel},
	}

	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	rates := pterm.TableData{{"Currency", "Rate to REFERENCE"}}
	for _, c := range model.Currencies() {
		rates = append(rates, []string{c.String(), c.Rate().String()})
	}

	pterm.DefaultSection.Printf("Conversion Rates")
	return pterm.DefaultTable.WithHasHeader().WithData(rates).Render()
}
