package mealplan

import "time"

// Assignment pairs a calendar date with the name of the recipe planned for
// it. The reference is by name only; it is resolved against the recipe
// store when the plan is consumed, and a recipe deleted after plan creation
// surfaces as a dangling-reference failure there.
type Assignment struct {
	Date   Date   `toml:"date"`
	Recipe string `toml:"recipe"`
}

// Plan assigns recipes to every date in an inclusive range. Plans are
// immutable once built: behold and aggregation read them without mutation.
type Plan struct {
	Start       Date         `toml:"start"`
	End         Date         `toml:"end"`
	CreatedAt   time.Time    `toml:"created_at"`
	Assignments []Assignment `toml:"assignments"`
}

// Range returns the plan's inclusive date range.
func (p *Plan) Range() DateRange {
	return DateRange{Start: p.Start, End: p.End}
}

// RecipesOn returns the recipe names assigned to a date, in assignment
// order.
func (p *Plan) RecipesOn(d Date) []string {
	var names []string
	for _, a := range p.Assignments {
		if a.Date.Equal(d) {
			names = append(names, a.Recipe)
		}
	}
	return names
}

// Constraints control plan construction.
type Constraints struct {
	// MealsPerDay is the number of recipes assigned to each date.
	MealsPerDay int
	// CooldownDays is the minimum number of days before a recipe may be
	// assigned again within the same plan. Zero disables the cooldown.
	CooldownDays int
	// RequiredTags restricts the candidate pool to recipes carrying
	// every listed tag.
	RequiredTags []string
}
