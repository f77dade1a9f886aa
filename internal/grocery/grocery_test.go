package grocery

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/papapumpkin/averse/internal/mealplan"
	"github.com/papapumpkin/averse/internal/recipe"
)

// newStore builds a disk-backed store from full recipe values.
func newStore(t *testing.T, recipes ...recipe.Recipe) *recipe.Store {
	t.Helper()
	store, err := recipe.Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, r := range recipes {
		if err := store.Add(r, false); err != nil {
			t.Fatalf("Add %q: %v", r.Name, err)
		}
	}
	return store
}

func planFor(date string, names ...string) *mealplan.Plan {
	d := mealplan.MustDate(date)
	p := &mealplan.Plan{Start: d, End: d}
	for _, n := range names {
		p.Assignments = append(p.Assignments, mealplan.Assignment{Date: d, Recipe: n})
	}
	return p
}

func TestAggregate(t *testing.T) {
	t.Parallel()

	t.Run("merges shared ingredients", func(t *testing.T) {
		t.Parallel()
		pasta := recipe.Recipe{
			Name: "Pasta",
			Ingredients: []recipe.IngredientLine{
				{Name: "flour", Amount: 500, Unit: recipe.UnitGram},
				{Name: "eggs", Amount: 2, Unit: recipe.UnitNone},
			},
		}
		salad := recipe.Recipe{
			Name: "Salad",
			Ingredients: []recipe.IngredientLine{
				{Name: "lettuce", Amount: 200, Unit: recipe.UnitGram},
				{Name: "eggs", Amount: 2, Unit: recipe.UnitNone},
			},
		}
		store := newStore(t, pasta, salad)

		list, err := Aggregate(planFor("2022-05-15", "Pasta", "Salad"), store)
		if err != nil {
			t.Fatalf("Aggregate: %v", err)
		}

		want := []Entry{
			{Name: "eggs", Class: recipe.ClassNone, Unit: recipe.UnitNone, Amount: 4},
			{Name: "flour", Class: recipe.ClassMass, Unit: recipe.UnitGram, Amount: 500},
			{Name: "lettuce", Class: recipe.ClassMass, Unit: recipe.UnitGram, Amount: 200},
		}
		if !reflect.DeepEqual(list.Entries, want) {
			t.Errorf("entries = %+v, want %+v", list.Entries, want)
		}
	})

	t.Run("converts within a unit class", func(t *testing.T) {
		t.Parallel()
		bread := recipe.Recipe{
			Name: "Bread",
			Ingredients: []recipe.IngredientLine{
				{Name: "flour", Amount: 1, Unit: recipe.UnitKg},
			},
		}
		pasta := recipe.Recipe{
			Name: "Pasta",
			Ingredients: []recipe.IngredientLine{
				{Name: "flour", Amount: 500, Unit: recipe.UnitGram},
			},
		}
		store := newStore(t, bread, pasta)

		list, err := Aggregate(planFor("2022-05-15", "Bread", "Pasta"), store)
		if err != nil {
			t.Fatalf("Aggregate: %v", err)
		}
		if len(list.Entries) != 1 {
			t.Fatalf("entries = %+v, want one flour entry", list.Entries)
		}
		e := list.Entries[0]
		if e.Amount != 1500 || e.Unit != recipe.UnitGram {
			t.Errorf("flour = %v %s, want 1500 gram", e.Amount, e.Unit)
		}
	})

	t.Run("keeps incompatible unit classes separate", func(t *testing.T) {
		t.Parallel()
		a := recipe.Recipe{
			Name: "Braise",
			Ingredients: []recipe.IngredientLine{
				{Name: "butter", Amount: 100, Unit: recipe.UnitGram},
			},
		}
		b := recipe.Recipe{
			Name: "Sauce",
			Ingredients: []recipe.IngredientLine{
				{Name: "butter", Amount: 2, Unit: recipe.UnitTbsp},
			},
		}
		store := newStore(t, a, b)

		list, err := Aggregate(planFor("2022-05-15", "Braise", "Sauce"), store)
		if err != nil {
			t.Fatalf("Aggregate: %v", err)
		}
		if len(list.Entries) != 2 {
			t.Fatalf("entries = %+v, want two butter entries", list.Entries)
		}
		// Both entries share the name, tagged by class, mass before volume.
		if list.Entries[0].Class != recipe.ClassMass || list.Entries[1].Class != recipe.ClassVolume {
			t.Errorf("classes = %q, %q", list.Entries[0].Class, list.Entries[1].Class)
		}
	})

	t.Run("normalizes ingredient names", func(t *testing.T) {
		t.Parallel()
		a := recipe.Recipe{
			Name: "One",
			Ingredients: []recipe.IngredientLine{
				{Name: "Olive Oil ", Amount: 1, Unit: recipe.UnitTbsp},
			},
		}
		b := recipe.Recipe{
			Name: "Two",
			Ingredients: []recipe.IngredientLine{
				{Name: "olive oil", Amount: 1, Unit: recipe.UnitTbsp},
			},
		}
		store := newStore(t, a, b)

		list, err := Aggregate(planFor("2022-05-15", "One", "Two"), store)
		if err != nil {
			t.Fatalf("Aggregate: %v", err)
		}
		if len(list.Entries) != 1 || list.Entries[0].Amount != 6 {
			t.Errorf("entries = %+v, want one 6 tsp olive oil entry", list.Entries)
		}
	})

	t.Run("is order-invariant", func(t *testing.T) {
		t.Parallel()
		var recipes []recipe.Recipe
		names := []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo"}
		for i, n := range names {
			recipes = append(recipes, recipe.Recipe{
				Name: n,
				Ingredients: []recipe.IngredientLine{
					{Name: "rice", Amount: float64(100 + i), Unit: recipe.UnitGram},
					{Name: "stock", Amount: float64(i + 1), Unit: recipe.UnitCup},
				},
			})
		}
		store := newStore(t, recipes...)

		base := planFor("2022-05-15", names...)
		want, err := Aggregate(base, store)
		if err != nil {
			t.Fatalf("Aggregate: %v", err)
		}

		rng := rand.New(rand.NewSource(42))
		for trial := 0; trial < 20; trial++ {
			shuffled := planFor("2022-05-15", names...)
			rng.Shuffle(len(shuffled.Assignments), func(i, j int) {
				shuffled.Assignments[i], shuffled.Assignments[j] = shuffled.Assignments[j], shuffled.Assignments[i]
			})
			got, err := Aggregate(shuffled, store)
			if err != nil {
				t.Fatalf("Aggregate: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("permuted aggregate differs:\n%+v\n%+v", got, want)
			}
		}
	})

	t.Run("dangling recipe reference", func(t *testing.T) {
		t.Parallel()
		store := newStore(t) // empty: every reference dangles

		_, err := Aggregate(planFor("2022-05-15", "Ghost"), store)
		if !errors.Is(err, ErrDanglingRecipe) {
			t.Fatalf("Aggregate = %v, want ErrDanglingRecipe", err)
		}
		var dre *DanglingRecipeError
		if !errors.As(err, &dre) {
			t.Fatalf("error is not a DanglingRecipeError: %v", err)
		}
		if dre.Recipe != "Ghost" {
			t.Errorf("missing recipe = %q, want Ghost", dre.Recipe)
		}
	})
}

func TestEntryQuantity(t *testing.T) {
	t.Parallel()

	count := Entry{Name: "eggs", Amount: 4, Unit: recipe.UnitNone}
	if count.Quantity() != "4" {
		t.Errorf("Quantity = %q, want 4", count.Quantity())
	}

	mass := Entry{Name: "flour", Amount: 500, Unit: recipe.UnitGram}
	if mass.Quantity() != "500 gram" {
		t.Errorf("Quantity = %q, want 500 gram", mass.Quantity())
	}
}
