package cli

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchInterval time.Duration

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run briefing cycles on a fixed interval",
	Long: `Watch runs a cycle immediately and then repeats on the configured
interval until interrupted. Cycles never overlap: a slow cycle delays the
next tick rather than running concurrently with it.

Example:
  sitrep watch --interval 1h`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchInterval, "interval", time.Hour, "time between cycles")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	gen, err := newGenerator(cfg, log)
	if err != nil {
		return err
	}

	cycle, err := newCycle(cfg, gen, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("watch started", zap.Duration("interval", watchInterval))

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		rec, err := cycle.Run(ctx, "")
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			// A failed cycle mutates no state; the next tick starts clean
			log.Error("cycle failed", zap.Error(err))
		} else {
			fmt.Printf("Scan complete at %s: %s\n", rec.TimeStr, rec.Summary)
		}

		select {
		case <-ctx.Done():
			log.Info("watch stopped")
			return nil
		case <-ticker.C:
		}
	}

	log.Info("watch stopped")
	return nil
}
