package cmd

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/averse/internal/config"
	"github.com/papapumpkin/averse/internal/recipe"
	"github.com/papapumpkin/averse/internal/tui"
	"github.com/papapumpkin/averse/internal/ui"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a recipe",
	Long: `Add a recipe to the recipe directory.

Without flags, an interactive form collects the name, tags, ingredients,
and steps. With --name, the recipe is built entirely from flags, which
suits scripting:

  averse add --name Pasta --tag dinner \
    --ingredient "500 gram flour" --ingredient "2 eggs" \
    --step "Mix the flour and eggs."`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().String("name", "", "recipe name (skips the interactive form)")
	addCmd.Flags().StringArray("tag", nil, "recipe tag (repeatable)")
	addCmd.Flags().StringArray("ingredient", nil, `ingredient line "<amount> <unit> <name>" (repeatable)`)
	addCmd.Flags().StringArray("step", nil, "preparation step (repeatable)")
	addCmd.Flags().Bool("force", false, "overwrite an existing recipe of the same name")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, _ []string) error {
	printer := ui.New()
	cfg := config.Load()

	store, err := recipe.Load(cfg.RecipeDir)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	name, _ := cmd.Flags().GetString("name")
	force, _ := cmd.Flags().GetBool("force")

	var r recipe.Recipe
	if name != "" {
		r, err = recipeFromFlags(cmd, name)
		if err != nil {
			printer.Error(err.Error())
			return err
		}
	} else {
		form, err := tea.NewProgram(tui.NewAddForm()).Run()
		if err != nil {
			return fmt.Errorf("running add form: %w", err)
		}
		final := form.(tui.AddForm)
		if final.Aborted {
			printer.Info("add aborted")
			return nil
		}
		r = final.Recipe
	}

	if err := store.Add(r, force); err != nil {
		printer.Error(err.Error())
		return err
	}

	printer.RecipeSaved(r.Name, filepath.Join(cfg.RecipeDir, recipe.Filename(r.Name)))
	return nil
}

// recipeFromFlags assembles a recipe from the scripted flag path.
func recipeFromFlags(cmd *cobra.Command, name string) (recipe.Recipe, error) {
	tags, _ := cmd.Flags().GetStringArray("tag")
	lines, _ := cmd.Flags().GetStringArray("ingredient")
	steps, _ := cmd.Flags().GetStringArray("step")

	r := recipe.Recipe{Name: name, Tags: tags, Steps: steps}
	for _, line := range lines {
		ingr, err := recipe.ParseIngredient(line)
		if err != nil {
			return recipe.Recipe{}, err
		}
		r.Ingredients = append(r.Ingredients, ingr)
	}
	return r, nil
}
