package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the ledger to a JSON file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge transactions from a JSON file, skipping known ids",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	path := "perdiem-export.json"
	if len(args) == 1 {
		path = args[0]
	}

	cfg := loadConfig()
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Export(path); err != nil {
		return err
	}
	count, _ := store.Count()
	fmt.Printf("  Exported %d transactions to %s\n", count, path)
	return nil
}

func runImport(_ *cobra.Command, args []string) error {
	cfg := loadConfig()
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	added, err := store.Import(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("  Imported %d new transactions from %s\n", added, args[0])
	return nil
}
