package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/perdiem/internal/budget"
	"github.com/theirongolddev/perdiem/internal/cli"
	"github.com/theirongolddev/perdiem/internal/model"
)

var flagListLimit int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions grouped by day, newest first",
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVarP(&flagListLimit, "limit", "n", 0, "Show at most this many transactions (0 = all)")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	txs, err := store.Transactions()
	if err != nil {
		return err
	}
	if len(txs) == 0 {
		fmt.Println("\n  No transactions yet.")
		return nil
	}
	if flagListLimit > 0 && len(txs) > flagListLimit {
		txs = txs[:flagListLimit]
	}

	f := newFormatter(cfg)
	groups := budget.GroupByDay(txs)

	fmt.Println()
	for _, key := range budget.SortedDayKeys(groups) {
		fmt.Println(cli.RenderHeading(cli.FormatDayHeading(key)))

		rows := make([][]string, 0, len(groups[key]))
		for _, tx := range groups[key] {
			when := ""
			if ts, ok := model.ParseTimestamp(tx.Timestamp); ok {
				when = cli.FormatTime(ts)
			}
			amount := f.Format(tx.Amount)
			if tx.Type.Deducts() {
				amount = "-" + amount
			} else {
				amount = "+" + amount
			}
			rows = append(rows, []string{when, tx.Description, amount, string(tx.Source), tx.ID})
		}

		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Time", "Description", "Amount", "Source", "ID"},
			Rows:    rows,
		}))
		fmt.Println()
	}

	return nil
}
