package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/averse/internal/config"
	"github.com/papapumpkin/averse/internal/grocery"
	"github.com/papapumpkin/averse/internal/history"
	"github.com/papapumpkin/averse/internal/mealplan"
	"github.com/papapumpkin/averse/internal/recipe"
	"github.com/papapumpkin/averse/internal/render"
	"github.com/papapumpkin/averse/internal/ui"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan meals for a date range",
	Long: `Build a meal plan starting on --date, covering --days consecutive days.

Recipe selection is deterministic: each date receives --meals-per-day
recipes not used within --cooldown prior days of the same plan,
least-recently-used first, ties broken by name. If the eligible pool runs
dry the plan fails naming the first unfillable date, and nothing is
written.

The plan is saved to the plan directory, its grocery list is printed, and
the assignments are recorded in the usage history.`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().String("date", "", "start date, YYYY-MM-DD (required)")
	planCmd.Flags().Int("days", 0, "number of days to plan (default from config)")
	planCmd.Flags().Int("meals-per-day", 0, "recipes per day (default from config)")
	planCmd.Flags().Int("cooldown", -1, "min days before a recipe repeats (default from config)")
	planCmd.Flags().StringArray("tag", nil, "restrict candidates to recipes with this tag (repeatable)")
	_ = planCmd.MarkFlagRequired("date")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	printer := ui.New()
	cfg := config.Load()

	// Validate the date before touching any planning logic.
	dateArg, _ := cmd.Flags().GetString("date")
	start, err := mealplan.ParseDate(dateArg)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	days, _ := cmd.Flags().GetInt("days")
	if days == 0 {
		days = cfg.PlanDays
	}
	r, err := mealplan.NewRange(start, days)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	cons := mealplan.Constraints{
		MealsPerDay:  cfg.MealsPerDay,
		CooldownDays: cfg.CooldownDays,
	}
	if v, _ := cmd.Flags().GetInt("meals-per-day"); v > 0 {
		cons.MealsPerDay = v
	}
	if v, _ := cmd.Flags().GetInt("cooldown"); v >= 0 {
		cons.CooldownDays = v
	}
	cons.RequiredTags, _ = cmd.Flags().GetStringArray("tag")

	store, err := recipe.Load(cfg.RecipeDir)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	p, err := mealplan.Build(store, r, cons)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	list, err := grocery.Aggregate(p, store)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	if err := mealplan.Save(cfg.PlanDir, p); err != nil {
		printer.Error(err.Error())
		return err
	}
	printer.PlanSaved(p.Start.String(), p.End.String(), cfg.PlanDir)

	if err := recordHistory(cmd.Context(), cfg, p); err != nil {
		// History is advisory; a failed record never fails the plan.
		printer.Info("history not recorded: " + err.Error())
	}

	renderer := render.Renderer{NoColor: cfg.NoColor}
	fmt.Fprint(os.Stdout, renderer.Behold(p, list))
	return nil
}

// recordHistory appends the plan's assignments to the usage-history db.
func recordHistory(ctx context.Context, cfg config.Config, p *mealplan.Plan) error {
	hs, err := history.Open(ctx, cfg.HistoryPath)
	if err != nil {
		return err
	}
	defer hs.Close()
	return hs.RecordPlan(ctx, p)
}
