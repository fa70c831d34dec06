package ui

import (
	"github.com/pterm/pterm"
)

var (
	// Emojis
	DockerEmoji = "🐳"
	CleanEmoji  = "🧹"

	// Printers
	Info    = pterm.PrefixPrinter{Prefix: pterm.Prefix{Text: "ℹ️ ", Style: pterm.NewStyle(pterm.FgCyan)}, MessageStyle: pterm.NewStyle(pterm.FgDefault)}
	Step    = pterm.PrefixPrinter{Prefix: pterm.Prefix{Text: "▶️ ", Style: pterm.NewStyle(pterm.FgBlue)}, MessageStyle: pterm.NewStyle(pterm.Bold)}
	Success = pterm.PrefixPrinter{Prefix: pterm.Prefix{Text: "✅", Style: pterm.NewStyle(pterm.FgGreen)}, MessageStyle: pterm.NewStyle(pterm.FgDefault)}
	Warn    = pterm.PrefixPrinter{Prefix: pterm.Prefix{Text: "⚠️ ", Style: pterm.NewStyle(pterm.FgYellow)}, MessageStyle: pterm.NewStyle(pterm.FgDefault)}
	Error   = pterm.PrefixPrinter{Prefix: pterm.Prefix{Text: "❌", Style: pterm.NewStyle(pterm.FgRed)}, MessageStyle: pterm.NewStyle(pterm.FgDefault)}
)

func init() {
	pterm.EnableColor()
}

// Spin configures and returns a spinner
func Spin(text string) (*pterm.SpinnerPrinter, error) {
	pterm.DefaultSpinner.Sequence = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	return pterm.DefaultSpinner.WithText(text).Start()
}
