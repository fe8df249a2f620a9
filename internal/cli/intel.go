package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sitrep/internal/model"
)

var intelPriority string

// intelCmd groups the user-intel subcommands.
var intelCmd = &cobra.Command{
	Use:   "intel",
	Short: "Manage user-supplied intel",
	Long: `Intel items are facts you feed the next cycles with elevated
priority. They are never removed automatically - prune the list yourself
if it grows stale.`,
}

var intelAddCmd = &cobra.Command{
	Use:   "add <text...>",
	Short: "Append an intel item",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		item := model.UserIntelItem{
			Text:     strings.Join(args, " "),
			Priority: intelPriority,
			Time:     itemTime(cfg),
		}
		if err := newStore(cfg, log).AppendIntel(item); err != nil {
			return fmt.Errorf("append intel: %w", err)
		}
		fmt.Printf("Added [%s] intel: %s\n", item.Priority, item.Text)
		return nil
	},
}

var intelListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored intel items",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		state := newStore(cfg, log).LoadState()
		if len(state.Intel) == 0 {
			fmt.Println("No intel stored.")
			return nil
		}
		for _, item := range state.Intel {
			fmt.Printf("- [%s] %s (%s)\n", item.Priority, item.Text, item.Time)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(intelCmd)
	intelCmd.AddCommand(intelAddCmd)
	intelCmd.AddCommand(intelListCmd)

	intelAddCmd.Flags().StringVar(&intelPriority, "priority", "normal", "priority tier (normal, high)")
}
