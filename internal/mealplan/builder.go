package mealplan

import (
	"sort"
	"time"

	"github.com/papapumpkin/averse/internal/recipe"
)

// Build constructs a plan assigning cons.MealsPerDay recipes to every date
// in r. A recipe is eligible for a date when it has not been used within
// cons.CooldownDays prior days of this same plan. Ties are broken by
// least-recently-used within the plan (never-used recipes first), then by
// name, so the result is fully deterministic: the same store, range, and
// constraints always produce an identical plan.
//
// Build is pure over its inputs and never relaxes constraints: when a date
// cannot be filled it fails with an InsufficientRecipesError naming that
// date, and no partial plan is returned.
func Build(store *recipe.Store, r DateRange, cons Constraints) (*Plan, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if cons.MealsPerDay < 1 {
		cons.MealsPerDay = 1
	}

	candidates := store.Filter(cons.RequiredTags)
	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Name
	}
	sort.Strings(names)

	const neverUsed = -1 << 30
	lastUsed := make(map[string]int, len(names))
	for _, n := range names {
		lastUsed[n] = neverUsed
	}

	plan := &Plan{
		Start:     r.Start,
		End:       r.End,
		CreatedAt: time.Now().UTC(),
	}

	for day := 0; day < r.Days(); day++ {
		date := r.Start.AddDays(day)

		eligible := make([]string, 0, len(names))
		for _, n := range names {
			if lastUsed[n] == neverUsed || day-lastUsed[n] >= cons.CooldownDays {
				eligible = append(eligible, n)
			}
		}
		if len(eligible) < cons.MealsPerDay {
			return nil, &InsufficientRecipesError{
				Date:     date,
				Need:     cons.MealsPerDay,
				Eligible: len(eligible),
			}
		}

		// Least-recently-used first; names pre-sorted, so SliceStable
		// keeps lexicographic order among equals.
		sort.SliceStable(eligible, func(i, j int) bool {
			return lastUsed[eligible[i]] < lastUsed[eligible[j]]
		})

		for meal := 0; meal < cons.MealsPerDay; meal++ {
			name := eligible[meal]
			plan.Assignments = append(plan.Assignments, Assignment{Date: date, Recipe: name})
			lastUsed[name] = day
		}
	}

	return plan, nil
}
