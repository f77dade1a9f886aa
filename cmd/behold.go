package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/averse/internal/config"
	"github.com/papapumpkin/averse/internal/grocery"
	"github.com/papapumpkin/averse/internal/mealplan"
	"github.com/papapumpkin/averse/internal/recipe"
	"github.com/papapumpkin/averse/internal/render"
	"github.com/papapumpkin/averse/internal/ui"
	"github.com/papapumpkin/averse/internal/watch"
)

var beholdCmd = &cobra.Command{
	Use:   "behold [date]",
	Short: "Display a plan and its grocery list",
	Long: `Display a saved plan: the date-by-date schedule followed by the
consolidated grocery list.

With a YYYY-MM-DD argument, the plan starting on that date is shown;
otherwise the plan with the newest start date. A plan referencing a
deleted recipe aborts with the missing name rather than silently dropping
its ingredients.

--watch keeps the view live, re-rendering when recipe or plan files
change.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBehold,
}

func init() {
	beholdCmd.Flags().Bool("watch", false, "re-render when recipes or plans change")
	rootCmd.AddCommand(beholdCmd)
}

func runBehold(cmd *cobra.Command, args []string) error {
	printer := ui.New()
	cfg := config.Load()

	loadPlan := latestPlan(cfg.PlanDir)
	if len(args) == 1 {
		start, err := mealplan.ParseDate(args[0])
		if err != nil {
			printer.Error(err.Error())
			return err
		}
		loadPlan = func() (*mealplan.Plan, error) { return mealplan.LoadPlan(cfg.PlanDir, start) }
	}

	if err := beholdOnce(cfg, loadPlan); err != nil {
		printer.Error(err.Error())
		return err
	}

	if watchFlag, _ := cmd.Flags().GetBool("watch"); !watchFlag {
		return nil
	}
	return beholdWatch(cfg, printer, loadPlan)
}

// latestPlan returns a loader for the newest plan in dir.
func latestPlan(dir string) func() (*mealplan.Plan, error) {
	return func() (*mealplan.Plan, error) { return mealplan.Latest(dir) }
}

// beholdOnce loads, aggregates, and renders a single snapshot to stdout.
func beholdOnce(cfg config.Config, loadPlan func() (*mealplan.Plan, error)) error {
	p, err := loadPlan()
	if err != nil {
		return err
	}

	store, err := recipe.Load(cfg.RecipeDir)
	if err != nil {
		return err
	}

	list, err := grocery.Aggregate(p, store)
	if err != nil {
		return err
	}

	renderer := render.Renderer{NoColor: cfg.NoColor}
	fmt.Fprint(os.Stdout, renderer.Behold(p, list))
	return nil
}

// beholdWatch re-renders on every debounced change until interrupted.
func beholdWatch(cfg config.Config, printer *ui.Printer, loadPlan func() (*mealplan.Plan, error)) error {
	w, err := watch.New(cfg.RecipeDir, cfg.PlanDir)
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	if err := w.Start(); err != nil {
		return fmt.Errorf("watching directories: %w", err)
	}
	defer w.Stop()

	printer.Watching(cfg.RecipeDir, cfg.PlanDir)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case <-sig:
			return nil
		case _, ok := <-w.Changes:
			if !ok {
				return nil
			}
			if err := beholdOnce(cfg, loadPlan); err != nil {
				// Keep watching through transient states (e.g. a
				// recipe mid-edit); report and wait for the next change.
				printer.Error(err.Error())
			}
		}
	}
}
