package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var historyLimit int

// latestCmd prints the most recent briefing.
var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Print the most recent briefing",
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
		if state.Latest == nil {
			return fmt.Errorf("no briefing recorded yet - run 'sitrep scan' first")
		}
		fmt.Printf("%s (%s)\n\n%s\n", state.Latest.TimeStr, state.Latest.ModelID, state.Latest.Content)
		return nil
	},
}

// historyCmd lists retained briefings, newest first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List retained briefings, newest first",
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
		if len(state.History) == 0 {
			fmt.Println("No briefings recorded yet.")
			return nil
		}
		for _, rec := range state.History.Recent(historyLimit) {
			fmt.Printf("%s  %s\n", rec.TimeStr, rec.Summary)
		}
		return nil
	},
}

// sourcesCmd lists source reliability profiles, most trusted first.
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List source reliability scores, most trusted first",
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
		if len(state.Sources) == 0 {
			fmt.Println("No sources tracked yet.")
			return nil
		}

		names := make([]string, 0, len(state.Sources))
		for name := range state.Sources {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			si, sj := state.Sources[names[i]].Score, state.Sources[names[j]].Score
			if si != sj {
				return si > sj
			}
			return names[i] < names[j]
		})
		for _, name := range names {
			p := state.Sources[name]
			fmt.Printf("%-20s score %3d/100  mentions %d\n", name, p.Score, p.Mentions)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(latestCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(sourcesCmd)

	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "max records to list")
}
