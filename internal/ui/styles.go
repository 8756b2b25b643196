package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

// PrintTitle prints a highlighted block title.
func PrintTitle(format string, a ...any) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)
	style.Println(fmt.Sprintf(" %s   ", fmt.Sprintf(format, a...)))
}

// Separator prints a green separator line.
func Separator() {
	pterm.Println(pterm.Green("----------------------------------------"))
}

// YesNo colors a boolean check result.
func YesNo(ok bool) string {
	if ok {
		return pterm.Green("yes")
	}
	return pterm.Red("no")
}
