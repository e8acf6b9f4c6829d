package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/perdiem/internal/budget"
	"github.com/theirongolddev/perdiem/internal/config"
	"github.com/theirongolddev/perdiem/internal/model"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	budgetStr := ""
	if existing, err := store.Settings(); err == nil && existing != nil {
		budgetStr = strconv.FormatFloat(existing.MonthlyBudget, 'f', -1, 64)
	}
	currencyChoice := cfg.General.Currency
	localeStr := cfg.General.Locale

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Monthly budget").
				Description("Total amount available per calendar month.").
				Value(&budgetStr).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
					if err != nil || v <= 0 {
						return fmt.Errorf("enter a positive amount")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Currency").
				Options(huh.NewOptions("EUR", "USD", "GBP", "SEK", "NOK", "DKK", "CHF", "PLN")...).
				Value(&currencyChoice),
			huh.NewInput().
				Title("Locale").
				Description("Used for currency formatting (e.g. fi-FI, en-US).").
				Value(&localeStr),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup aborted: %w", err)
	}

	amount, _ := strconv.ParseFloat(strings.Replace(budgetStr, ",", ".", 1), 64)

	now := time.Now()
	startDate := now.UTC().Format(time.RFC3339)
	if existing, err := store.Settings(); err == nil && existing != nil && existing.StartDate != "" {
		startDate = existing.StartDate
	}
	if err := store.SaveSettings(model.BudgetSettings{MonthlyBudget: amount, StartDate: startDate}); err != nil {
		return fmt.Errorf("saving budget: %w", err)
	}

	cfg.General.Currency = currencyChoice
	if localeStr != "" {
		cfg.General.Locale = localeStr
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	f := newFormatter(cfg)
	fmt.Println()
	fmt.Printf("  Monthly budget: %s\n", f.Format(amount))
	fmt.Printf("  Daily allowance this month: %s\n", f.Format(budget.DailyAllowance(amount, now)))
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println()
	return nil
}
