package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/perdiem/internal/notify"
)

var captureCmd = &cobra.Command{
	Use:   "capture [json]",
	Short: "Parse a payment-app notification and append it to the ledger",
	Long: `Parse a notification payload (JSON argument or stdin) captured from a
payment app. Recognized payments are appended to the ledger; everything
else is silently dropped with the classification reported on stderr.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCapture,
}

func init() {
	rootCmd.AddCommand(captureCmd)
}

func runCapture(_ *cobra.Command, args []string) error {
	var raw []byte
	if len(args) == 1 {
		raw = []byte(args[0])
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		raw = data
	}

	cfg := loadConfig()
	parser := notify.New(cfg.Notifications.ExtraApps...)
	result := parser.ParseJSON(raw)

	if result.Outcome != notify.Payment {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Dropped: %s\n", result.Outcome)
		}
		return nil
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	tx := *result.Transaction
	if err := store.Append(tx); err != nil {
		return fmt.Errorf("saving transaction: %w", err)
	}

	f := newFormatter(cfg)
	fmt.Printf("  Captured %s at %s  (%s)\n", f.Format(tx.Amount), tx.Description, tx.ID)
	return nil
}
