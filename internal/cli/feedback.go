package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sitrep/internal/model"
)

// feedbackCmd groups the feedback subcommands.
var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Manage correction feedback",
	Long: `Feedback items are free-text corrections the next cycles learn
from. The list is append-only; only the most recent window feeds each
cycle.`,
}

var feedbackAddCmd = &cobra.Command{
	Use:   "add <text...>",
	Short: "Append a feedback item",
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

		item := model.FeedbackItem{
			Text: strings.Join(args, " "),
			Time: itemTime(cfg),
		}
		if err := newStore(cfg, log).AppendFeedback(item); err != nil {
			return fmt.Errorf("append feedback: %w", err)
		}
		fmt.Printf("Added feedback: %s\n", item.Text)
		return nil
	},
}

var feedbackListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored feedback",
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
		if len(state.Feedback) == 0 {
			fmt.Println("No feedback stored.")
			return nil
		}
		for _, item := range state.Feedback {
			fmt.Printf("- %s (%s)\n", item.Text, item.Time)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(feedbackCmd)
	feedbackCmd.AddCommand(feedbackAddCmd)
	feedbackCmd.AddCommand(feedbackListCmd)
}
