// Package cmd implements the perdiem command line interface.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/perdiem/internal/budget"
	"github.com/theirongolddev/perdiem/internal/cli"
	"github.com/theirongolddev/perdiem/internal/config"
	"github.com/theirongolddev/perdiem/internal/ledger"
)

var (
	flagDB    string
	flagQuiet bool
)

var rootCmd = &cobra.Command{
	Use:   "perdiem",
	Short: "Daily budget tracker",
	Long:  "Track spending against a daily allowance accrued from your monthly budget.",
	RunE:  runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDB, "db", "d", "", "Ledger database path (defaults to the XDG data dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadConfig reads the config file, falling back to defaults so every
// command works on a fresh machine.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Config error, using defaults: %v\n", err)
	}
	if flagDB != "" {
		cfg.General.DBPath = flagDB
	}
	return cfg
}

func openStore(cfg config.Config) (*ledger.Store, error) {
	return ledger.Open(config.DBPath(cfg))
}

func newFormatter(cfg config.Config) *cli.CurrencyFormatter {
	return cli.NewCurrencyFormatter(cfg.General.Locale, cfg.General.Currency)
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	settings, err := store.Settings()
	if err != nil {
		return err
	}
	if settings == nil {
		fmt.Println()
		fmt.Println("  No budget configured yet.")
		fmt.Println("  Run `perdiem setup` or `perdiem budget set <amount>` first.")
		fmt.Println()
		return nil
	}

	txs, err := store.Transactions()
	if err != nil {
		return err
	}

	now := time.Now()
	status := budget.Calculate(txs, settings.MonthlyBudget, now)
	projection := budget.Projection(status, settings.MonthlyBudget)
	f := newFormatter(cfg)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BUDGET  %s", now.Format("January 2006"))))
	fmt.Println()

	available := f.FormatSigned(status.AvailableBudget)
	if status.AvailableBudget < 0 {
		available += "  (overspent)"
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Available today", available},
			{"Daily allowance", f.Format(status.DailyAllowance)},
			{"Accrued so far", f.Format(status.TotalBudgetAccumulated)},
			{"Spent this month", f.Format(status.TotalSpent)},
			{"Income this month", f.Format(status.TotalIncome)},
			{"Day of month", fmt.Sprintf("%d of %d (%d left)", status.DaysElapsed, status.DaysInMonth, status.DaysRemaining)},
			{"Projected month end", f.FormatSigned(projection.ProjectedEndBalance)},
			{"Projected savings", cli.FormatPercent(projection.SavingsRate)},
		},
	}))

	return nil
}
