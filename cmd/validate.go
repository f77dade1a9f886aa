package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/averse/internal/config"
	"github.com/papapumpkin/averse/internal/recipe"
	"github.com/papapumpkin/averse/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate every recipe file",
	Long: `Parse every recipe file in the recipe directory and report problems:
frontmatter errors, missing names, unparseable ingredient lines, and
duplicate recipe names. Exits non-zero if any recipe is invalid.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	printer := ui.New()
	cfg := config.Load()

	errs := validateDir(cfg.RecipeDir)

	store, _ := recipe.Load(cfg.RecipeDir)
	count := 0
	if store != nil {
		count = store.Len()
	}

	printer.ValidateResult(cfg.RecipeDir, count, errs)
	if len(errs) > 0 {
		return fmt.Errorf("validation failed")
	}
	return nil
}

// validateDir parses each recipe file individually so every problem is
// reported, not just the first. Duplicate names across files are caught by
// a full store load afterwards.
func validateDir(dir string) []error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return []error{err}
	}

	var errs []error
	seen := make(map[string]string) // normalized name -> file
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		r, err := recipe.ParseFile(filepath.Join(dir, e.Name()))
		if err != nil {
			errs = append(errs, &recipe.FileError{File: e.Name(), Err: err})
			continue
		}
		key := recipe.NormalizeName(r.Name)
		if prev, ok := seen[key]; ok {
			errs = append(errs, &recipe.FileError{
				File: e.Name(),
				Err:  fmt.Errorf("%w: %q also defined in %s", recipe.ErrDuplicateName, r.Name, prev),
			})
			continue
		}
		seen[key] = e.Name()
	}
	return errs
}
