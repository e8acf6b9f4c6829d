package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/perdiem/internal/budget"
	"github.com/theirongolddev/perdiem/internal/model"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Manage the monthly budget",
}

var budgetSetCmd = &cobra.Command{
	Use:   "set <amount>",
	Short: "Set the monthly budget",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetSet,
}

var budgetShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the configured monthly budget",
	RunE:  runBudgetShow,
}

func init() {
	budgetCmd.AddCommand(budgetSetCmd)
	budgetCmd.AddCommand(budgetShowCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runBudgetSet(_ *cobra.Command, args []string) error {
	amount, err := parseAmountArg(args[0])
	if err != nil {
		return err
	}
	if amount <= 0 {
		return fmt.Errorf("monthly budget must be positive")
	}

	cfg := loadConfig()
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	now := time.Now()
	startDate := now.UTC().Format(time.RFC3339)
	if existing, err := store.Settings(); err == nil && existing != nil && existing.StartDate != "" {
		startDate = existing.StartDate
	}

	settings := model.BudgetSettings{MonthlyBudget: amount, StartDate: startDate}
	if err := store.SaveSettings(settings); err != nil {
		return fmt.Errorf("saving budget: %w", err)
	}

	f := newFormatter(cfg)
	fmt.Printf("  Monthly budget set to %s\n", f.Format(amount))
	fmt.Printf("  Daily allowance this month: %s\n", f.Format(budget.DailyAllowance(amount, now)))
	return nil
}

func runBudgetShow(_ *cobra.Command, _ []string) error {
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
		fmt.Println("  No budget configured. Run `perdiem budget set <amount>`.")
		return nil
	}

	f := newFormatter(cfg)
	fmt.Printf("  Monthly budget: %s\n", f.Format(settings.MonthlyBudget))
	fmt.Printf("  Daily allowance this month: %s\n", f.Format(budget.DailyAllowance(settings.MonthlyBudget, time.Now())))
	if settings.StartDate != "" {
		fmt.Printf("  Tracking since: %s\n", settings.StartDate)
	}
	return nil
}
