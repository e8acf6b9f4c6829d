// Package widget renders the home-widget view of the available budget.
// The same text feeds the `perdiem widget` command and the daemon's
// /v1/widget endpoint, so external widget bridges can poll either.
package widget

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/perdiem/internal/cli"
	"github.com/theirongolddev/perdiem/internal/model"
)

// Render draws the bordered widget box. A nil status means no budget
// has been configured yet.
func Render(status *model.BudgetStatus, f *cli.CurrencyFormatter) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cli.ColorBorder).
		Padding(0, 2).
		Align(lipgloss.Center)

	label := lipgloss.NewStyle().Foreground(cli.ColorTextMuted)

	if status == nil {
		return box.Render(label.Render("Set up your budget"))
	}

	amountColor := cli.ColorGreen
	if status.AvailableBudget < 0 {
		amountColor = cli.ColorRed
	}
	amount := lipgloss.NewStyle().
		Foreground(amountColor).
		Bold(true).
		Render(f.FormatSigned(status.AvailableBudget))

	return box.Render(label.Render("Available today") + "\n" + amount)
}

// RenderPlain emits the widget as bare text for scripting and status
// bars: the signed amount, or the setup hint.
func RenderPlain(status *model.BudgetStatus, f *cli.CurrencyFormatter) string {
	if status == nil {
		return "Set up your budget"
	}
	return fmt.Sprintf("%s (%d days left)", f.FormatSigned(status.AvailableBudget), status.DaysRemaining)
}
