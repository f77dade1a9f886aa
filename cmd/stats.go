package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/averse/internal/config"
	"github.com/papapumpkin/averse/internal/history"
	"github.com/papapumpkin/averse/internal/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recipe usage history",
	Long: `Show how often each recipe has been planned and when it was last
assigned, from the usage-history database populated by the plan command.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	printer := ui.New()
	cfg := config.Load()

	hs, err := history.Open(cmd.Context(), cfg.HistoryPath)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	defer hs.Close()

	usage, err := hs.RecipeUsage(cmd.Context())
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	if len(usage) == 0 {
		printer.StatsEmpty()
		return nil
	}

	printer.StatsHeader()
	for _, u := range usage {
		printer.StatsRow(u.Recipe, u.TimesUsed, u.LastDate)
	}
	return nil
}
