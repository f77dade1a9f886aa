package mealplan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// planExt is the suffix of persisted plan files. The file name is the
// plan's start date, e.g. 2022-05-15.plan.toml.
const planExt = ".plan.toml"

// planPath returns the on-disk path for a plan starting on the given date.
func planPath(dir string, start Date) string {
	return filepath.Join(dir, start.String()+planExt)
}

// Save writes the plan to dir atomically (write temp + rename) so an
// interrupted save never leaves a partially-written plan.
func Save(dir string, p *Plan) error {
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling plan: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating plan directory: %w", err)
	}

	path := planPath(dir, p.Start)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing temp plan file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming plan file: %w", err)
	}
	return nil
}

// LoadPlan reads the plan whose start date is start from dir.
func LoadPlan(dir string, start Date) (*Plan, error) {
	data, err := os.ReadFile(planPath(dir, start))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPlanNotFound, start)
		}
		return nil, fmt.Errorf("reading plan file: %w", err)
	}

	var p Plan
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing plan file: %w", err)
	}
	return &p, nil
}

// ListStarts returns the start dates of every plan in dir, ascending.
func ListStarts(dir string) ([]Date, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading plan directory: %w", err)
	}

	var starts []Date
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), planExt) {
			continue
		}
		d, err := ParseDate(strings.TrimSuffix(e.Name(), planExt))
		if err != nil {
			continue // not a plan file
		}
		starts = append(starts, d)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[j].After(starts[i]) })
	return starts, nil
}

// Latest loads the plan with the newest start date in dir. Fails with
// ErrNoPlans when the directory holds no plan files.
func Latest(dir string) (*Plan, error) {
	starts, err := ListStarts(dir)
	if err != nil {
		return nil, err
	}
	if len(starts) == 0 {
		return nil, ErrNoPlans
	}
	return LoadPlan(dir, starts[len(starts)-1])
}
