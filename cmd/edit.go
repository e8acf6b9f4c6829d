package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagEditAmount float64
	flagEditDesc   string
	flagClearYes   bool
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a transaction's amount or description",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all transactions (keeps budget settings)",
	RunE:  runClear,
}

func init() {
	editCmd.Flags().Float64Var(&flagEditAmount, "amount", 0, "New amount")
	editCmd.Flags().StringVar(&flagEditDesc, "desc", "", "New description")
	clearCmd.Flags().BoolVar(&flagClearYes, "yes", false, "Skip confirmation")
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(clearCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	var amount *float64
	var desc *string
	if cmd.Flags().Changed("amount") {
		amount = &flagEditAmount
	}
	if cmd.Flags().Changed("desc") {
		desc = &flagEditDesc
	}
	if amount == nil && desc == nil {
		return fmt.Errorf("nothing to change: pass --amount and/or --desc")
	}

	cfg := loadConfig()
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Update(args[0], amount, desc); err != nil {
		return fmt.Errorf("updating transaction: %w", err)
	}
	fmt.Printf("  Updated %s\n", args[0])
	return nil
}

func runRm(_ *cobra.Command, args []string) error {
	cfg := loadConfig()
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(args[0]); err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}
	fmt.Printf("  Deleted %s\n", args[0])
	return nil
}

func runClear(_ *cobra.Command, _ []string) error {
	if !flagClearYes {
		return fmt.Errorf("this deletes every transaction; rerun with --yes to confirm")
	}

	cfg := loadConfig()
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	count, err := store.Count()
	if err != nil {
		return err
	}
	if err := store.Clear(); err != nil {
		return fmt.Errorf("clearing ledger: %w", err)
	}
	fmt.Printf("  Deleted %d transactions\n", count)
	return nil
}
