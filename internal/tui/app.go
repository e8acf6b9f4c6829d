// Package tui provides the interactive Bubble Tea dashboard for perdiem.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/perdiem/internal/budget"
	"github.com/theirongolddev/perdiem/internal/cli"
	"github.com/theirongolddev/perdiem/internal/ledger"
	"github.com/theirongolddev/perdiem/internal/model"
)

// dataMsg is sent when the ledger read finishes.
type dataMsg struct {
	settings     *model.BudgetSettings
	transactions []model.Transaction
	err          error
}

// App is the root Bubble Tea model.
type App struct {
	dbPath    string
	formatter *cli.CurrencyFormatter

	loaded  bool
	loadErr error

	settings     *model.BudgetSettings
	transactions []model.Transaction
	status       *model.BudgetStatus
	projection   model.MonthProjection

	spinner spinner.Model
	table   table.Model

	width  int
	height int
}

// NewApp builds the dashboard reading from the ledger at dbPath.
func NewApp(dbPath, locale, currencyCode string) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(cli.ColorAccent)

	cols := []table.Column{
		{Title: "When", Width: 18},
		{Title: "Description", Width: 28},
		{Title: "Amount", Width: 14},
		{Title: "Type", Width: 12},
	}
	tbl := table.New(
		table.WithColumns(cols),
		table.WithHeight(12),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(cli.ColorAccent)
	styles.Selected = styles.Selected.Foreground(cli.ColorText).Bold(true)
	tbl.SetStyles(styles)

	return App{
		dbPath:    dbPath,
		formatter: cli.NewCurrencyFormatter(locale, currencyCode),
		spinner:   sp,
		table:     tbl,
	}
}

// Init starts the spinner and the initial ledger read.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.loadCmd())
}

// loadCmd reads the ledger in a goroutine-backed command.
func (a App) loadCmd() tea.Cmd {
	dbPath := a.dbPath
	return func() tea.Msg {
		store, err := ledger.Open(dbPath)
		if err != nil {
			return dataMsg{err: err}
		}
		defer store.Close()

		settings, err := store.Settings()
		if err != nil {
			return dataMsg{err: err}
		}
		txs, err := store.Transactions()
		if err != nil {
			return dataMsg{err: err}
		}
		return dataMsg{settings: settings, transactions: txs}
	}
}

// Update handles messages.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return a, tea.Quit
		case "r":
			a.loaded = false
			return a, tea.Batch(a.spinner.Tick, a.loadCmd())
		}

	case dataMsg:
		a.loaded = true
		a.loadErr = msg.err
		if msg.err != nil {
			return a, nil
		}
		a.settings = msg.settings
		a.transactions = msg.transactions
		a.status = nil
		if msg.settings != nil {
			status := budget.Calculate(msg.transactions, msg.settings.MonthlyBudget, time.Now())
			a.status = &status
			a.projection = budget.Projection(status, msg.settings.MonthlyBudget)
		}
		a.table.SetRows(a.tableRows())
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.table, cmd = a.table.Update(msg)
	return a, cmd
}

func (a App) tableRows() []table.Row {
	rows := make([]table.Row, 0, len(a.transactions))
	for _, tx := range a.transactions {
		when := tx.Timestamp
		if ts, ok := model.ParseTimestamp(tx.Timestamp); ok {
			when = ts.Local().Format("2 Jan 15:04")
		}
		amount := a.formatter.Format(tx.Amount)
		if tx.Type.Deducts() {
			amount = "-" + amount
		} else {
			amount = "+" + amount
		}
		rows = append(rows, table.Row{when, tx.Description, amount, string(tx.Type)})
	}
	return rows
}

// View renders the dashboard.
func (a App) View() string {
	if !a.loaded {
		return fmt.Sprintf("\n  %s Loading ledger...\n", a.spinner.View())
	}
	if a.loadErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(cli.ColorRed)
		return "\n  " + errStyle.Render(fmt.Sprintf("Error: %v", a.loadErr)) + "\n\n  Press q to quit.\n"
	}

	var view string
	view += "\n" + cli.RenderTitle("PERDIEM") + "\n\n"

	if a.status == nil {
		view += cli.RenderMuted("  No budget configured yet. Run `perdiem setup` first.") + "\n"
		return view
	}

	view += a.renderCards() + "\n\n"
	view += a.table.View() + "\n\n"
	view += cli.RenderMuted("  r refresh · j/k scroll · q quit") + "\n"
	return view
}

// renderCards draws the status metric cards in a row.
func (a App) renderCards() string {
	s := a.status
	availColor := cli.ColorGreen
	if s.AvailableBudget < 0 {
		availColor = cli.ColorRed
	}

	cards := []string{
		metricCard("Available", a.formatter.FormatSigned(s.AvailableBudget), availColor),
		metricCard("Daily allowance", a.formatter.Format(s.DailyAllowance), cli.ColorText),
		metricCard("Spent", a.formatter.Format(s.TotalSpent), cli.ColorOrange),
		metricCard("Income", a.formatter.Format(s.TotalIncome), cli.ColorGreen),
		metricCard("Days left", fmt.Sprintf("%d / %d", s.DaysRemaining, s.DaysInMonth), cli.ColorText),
		metricCard("Month end", a.formatter.FormatSigned(a.projection.ProjectedEndBalance), cli.ColorText),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// metricCard renders one small bordered label/value card.
func metricCard(label, value string, valueColor lipgloss.Color) string {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cli.ColorBorder).
		Padding(0, 1)

	labelStyle := lipgloss.NewStyle().Foreground(cli.ColorTextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(valueColor).Bold(true)

	return card.Render(labelStyle.Render(label) + "\n" + valueStyle.Render(value))
}
