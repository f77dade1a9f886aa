package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/averse/internal/config"
	"github.com/papapumpkin/averse/internal/recipe"
	"github.com/papapumpkin/averse/internal/tui"
	"github.com/papapumpkin/averse/internal/ui"
)

var viewCmd = &cobra.Command{
	Use:   "view [query]",
	Short: "Browse recipes",
	Long: `Browse stored recipes.

On a terminal with no query, an interactive picker filters recipes as you
type and shows the highlighted recipe's ingredients and steps. With a
query (or --plain), matching recipes are printed to stdout instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

func init() {
	viewCmd.Flags().Bool("plain", false, "print matches to stdout instead of the picker")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	printer := ui.New()
	cfg := config.Load()

	store, err := recipe.Load(cfg.RecipeDir)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	if store.Len() == 0 {
		printer.Info("no recipes yet — run `averse add`")
		return nil
	}

	query := ""
	if len(args) == 1 {
		query = args[0]
	}
	plain, _ := cmd.Flags().GetBool("plain")

	if query != "" || plain || !isStdoutTTY() {
		return printMatches(store, query)
	}

	if _, err := tea.NewProgram(tui.NewPicker(store)).Run(); err != nil {
		return fmt.Errorf("running picker: %w", err)
	}
	return nil
}

// isStdoutTTY reports whether stdout is attached to a terminal.
func isStdoutTTY() bool {
	stat, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// printMatches writes the non-interactive view to stdout.
func printMatches(store *recipe.Store, query string) error {
	names := tui.MatchRecipes(store, query)
	if len(names) == 0 {
		return fmt.Errorf("no recipes match %q", query)
	}
	for i, name := range names {
		if i > 0 {
			fmt.Println()
		}
		r, _ := store.Get(name)
		fmt.Println(tui.RecipeDetail(r))
	}
	return nil
}
