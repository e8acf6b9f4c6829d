package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/perdiem/internal/budget"
	"github.com/theirongolddev/perdiem/internal/model"
	"github.com/theirongolddev/perdiem/internal/widget"
)

var flagWidgetPlain bool

var widgetCmd = &cobra.Command{
	Use:   "widget",
	Short: "Render the home-widget view of the available budget",
	RunE:  runWidget,
}

func init() {
	widgetCmd.Flags().BoolVar(&flagWidgetPlain, "plain", false, "Bare text output for status bars")
	rootCmd.AddCommand(widgetCmd)
}

func runWidget(_ *cobra.Command, _ []string) error {
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

	var status *model.BudgetStatus
	if settings != nil {
		txs, err := store.Transactions()
		if err != nil {
			return err
		}
		computed := budget.Calculate(txs, settings.MonthlyBudget, time.Now())
		status = &computed
	}

	f := newFormatter(cfg)
	if flagWidgetPlain {
		fmt.Println(widget.RenderPlain(status, f))
		return nil
	}
	fmt.Println(widget.Render(status, f))
	return nil
}
