// Package grocery derives a consolidated shopping list from a plan.
// The list is ephemeral: it is recomputed from the plan and the recipe
// store on every behold, never persisted.
package grocery

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/papapumpkin/averse/internal/mealplan"
	"github.com/papapumpkin/averse/internal/recipe"
)

// ErrDanglingRecipe indicates a plan assignment references a recipe that is
// no longer present in the store. Defined here (where consumed) per project
// convention rather than in the mealplan package.
var ErrDanglingRecipe = errors.New("plan references missing recipe")

// DanglingRecipeError names the missing recipe so the caller can report it
// instead of silently dropping its ingredients.
type DanglingRecipeError struct {
	Recipe string
	Date   mealplan.Date
}

func (e *DanglingRecipeError) Error() string {
	return fmt.Sprintf("plan references missing recipe %q (assigned %s)", e.Recipe, e.Date)
}

// Unwrap returns ErrDanglingRecipe for use with errors.Is.
func (e *DanglingRecipeError) Unwrap() error {
	return ErrDanglingRecipe
}

// Entry is one aggregated line of the shopping list. Amount is expressed
// in the unit class's canonical unit (grams for mass, teaspoons for
// volume, a bare count otherwise).
type Entry struct {
	Name   string
	Class  recipe.Class
	Unit   recipe.Unit
	Amount float64
}

// Quantity renders the amount with its unit, omitting the unit for counts.
func (e Entry) Quantity() string {
	amount := strconv.FormatFloat(e.Amount, 'f', -1, 64)
	if e.Unit == recipe.UnitNone {
		return amount
	}
	return amount + " " + string(e.Unit)
}

// List is the aggregated shopping list for a plan, sorted by ingredient
// name then unit class.
type List struct {
	Entries []Entry
}

// key identifies an aggregation bucket. Ingredient names that appear with
// incompatible unit classes keep separate buckets under the same name; the
// renderer shows both rather than guessing a conversion.
type key struct {
	name  string
	class recipe.Class
}

// Aggregate folds every ingredient line of every assigned recipe into a
// single list. Same-class quantities for the same normalized ingredient
// name are summed in canonical units. The fold is commutative, so the
// result does not depend on assignment order.
//
// Every assignment is resolved against the store first: a missing recipe
// fails the whole aggregation with a DanglingRecipeError rather than
// omitting its ingredients.
func Aggregate(plan *mealplan.Plan, store *recipe.Store) (List, error) {
	amounts := make(map[key]float64)
	units := make(map[key]recipe.Unit)

	for _, a := range plan.Assignments {
		r, ok := store.Get(a.Recipe)
		if !ok {
			return List{}, &DanglingRecipeError{Recipe: a.Recipe, Date: a.Date}
		}

		for _, line := range r.Ingredients {
			factor, canonical := line.Unit.Canonical()
			k := key{name: recipe.NormalizeName(line.Name), class: line.Unit.Class()}
			amounts[k] += line.Amount * factor
			units[k] = canonical
		}
	}

	list := List{Entries: make([]Entry, 0, len(amounts))}
	for k, amount := range amounts {
		list.Entries = append(list.Entries, Entry{
			Name:   k.name,
			Class:  k.class,
			Unit:   units[k],
			Amount: amount,
		})
	}
	sort.Slice(list.Entries, func(i, j int) bool {
		a, b := list.Entries[i], list.Entries[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Class < b.Class
	})
	return list, nil
}
