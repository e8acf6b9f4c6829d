package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/perdiem/internal/config"
	"github.com/theirongolddev/perdiem/internal/daemon"
)

var (
	flagDaemonAddr     string
	flagDaemonInterval int
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the background budget monitor",
	Long: `Run a local HTTP service that periodically recomputes the budget
status from the ledger. Endpoints: /healthz, /v1/status, /v1/widget,
/v1/events.`,
	RunE: runDaemon,
}

func init() {
	daemonCmd.Flags().StringVar(&flagDaemonAddr, "addr", "", "Listen address (default from config)")
	daemonCmd.Flags().IntVar(&flagDaemonInterval, "interval", 0, "Poll interval in seconds (default from config)")
	rootCmd.AddCommand(daemonCmd)
}

func runDaemon(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	addr := cfg.Daemon.Addr
	if flagDaemonAddr != "" {
		addr = flagDaemonAddr
	}
	intervalSec := cfg.Daemon.IntervalSec
	if flagDaemonInterval > 0 {
		intervalSec = flagDaemonInterval
	}

	svc := daemon.New(daemon.Config{
		Addr:     addr,
		Interval: time.Duration(intervalSec) * time.Second,
		Currency: cfg.General.Currency,
		Locale:   cfg.General.Locale,
	}, store)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("  perdiem daemon listening on %s (ledger: %s)\n", addr, config.DBPath(cfg))
	return svc.Run(ctx)
}
