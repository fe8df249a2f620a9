package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	scanProvider  string
	scanModel     string
	scanProfile   string
	scanRetention string
	scanCheck     bool
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan [intel...]",
	Short: "Run one briefing cycle",
	Long: `Scan runs one full cycle: load state, assemble the context bundle,
call the generation backend with web search, post-process the briefing and
persist the updated state.

Extra arguments are joined and injected as high-priority user intel, as is
the SITREP_USER_INTEL (or USER_INTEL) environment variable. Both present
means both are used.

Example:
  sitrep scan
  sitrep scan "power outages reported in the north"
  sitrep scan --profile extended --retention sparse`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVar(&scanProvider, "provider", "", "generation provider (anthropic, openai, ollama)")
	scanCmd.Flags().StringVar(&scanModel, "model", "", "model name (provider-specific)")
	scanCmd.Flags().StringVar(&scanProfile, "profile", "", "context profile (compact, extended)")
	scanCmd.Flags().StringVar(&scanRetention, "retention", "", "retention mode (bounded, sparse)")
	scanCmd.Flags().BoolVar(&scanCheck, "check", false, "verify provider availability before running")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if scanProvider != "" {
		cfg.Generation.Provider = scanProvider
	}
	if scanModel != "" {
		cfg.Generation.Model = scanModel
	}
	if scanProfile != "" {
		cfg.Context.ApplyProfile(scanProfile)
	}
	if scanRetention != "" {
		cfg.Retention.Mode = scanRetention
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	// Credentials resolve before any state is read
	gen, err := newGenerator(cfg, log)
	if err != nil {
		return err
	}

	extra := gatherExtraIntel(args)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if scanCheck {
		if !gen.Available(ctx) {
			return fmt.Errorf("provider %s is not available", gen.ProviderName())
		}
	}

	cycle, err := newCycle(cfg, gen, log)
	if err != nil {
		return err
	}
	rec, err := cycle.Run(ctx, extra)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	fmt.Printf("Scan complete at %s\n", rec.TimeStr)
	fmt.Printf("Summary: %s\n", rec.Summary)
	return nil
}

// gatherExtraIntel merges argv intel with the environment variable. Both
// present means both are concatenated, argv first.
func gatherExtraIntel(args []string) string {
	extra := strings.TrimSpace(strings.Join(args, " "))
	env := os.Getenv("SITREP_USER_INTEL")
	if env == "" {
		env = os.Getenv("USER_INTEL")
	}
	if env != "" {
		if extra != "" {
			extra = extra + " " + env
		} else {
			extra = env
		}
	}
	return extra
}
