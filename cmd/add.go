package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/perdiem/internal/model"
)

var addCmd = &cobra.Command{
	Use:   "add <amount> [description]",
	Short: "Record an expense",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return addManual(model.TypeExpense, args)
	},
}

var incomeCmd = &cobra.Command{
	Use:   "income <amount> [description]",
	Short: "Record income",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return addManual(model.TypeIncome, args)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(incomeCmd)
}

func addManual(typ model.TransactionType, args []string) error {
	amount, err := parseAmountArg(args[0])
	if err != nil {
		return err
	}
	description := strings.Join(args[1:], " ")

	cfg := loadConfig()
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	tx := model.NewManual(amount, typ, description, time.Now())
	if err := store.Append(tx); err != nil {
		return fmt.Errorf("saving transaction: %w", err)
	}

	f := newFormatter(cfg)
	sign := "-"
	if typ == model.TypeIncome {
		sign = "+"
	}
	fmt.Printf("  Recorded %s%s  %s  (%s)\n", sign, f.Format(tx.Amount), tx.Description, tx.ID)
	return nil
}

// parseAmountArg accepts both "12.50" and "12,50".
func parseAmountArg(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if v == 0 {
		return 0, fmt.Errorf("amount must be non-zero")
	}
	return v, nil
}
