package render

import (
	"strings"
	"testing"

	"github.com/papapumpkin/averse/internal/grocery"
	"github.com/papapumpkin/averse/internal/mealplan"
	"github.com/papapumpkin/averse/internal/recipe"
)

func testPlan() *mealplan.Plan {
	start := mealplan.MustDate("2022-05-15")
	return &mealplan.Plan{
		Start: start,
		End:   start.AddDays(2),
		Assignments: []mealplan.Assignment{
			{Date: start, Recipe: "Pasta"},
			{Date: start, Recipe: "Salad"},
			{Date: start.AddDays(2), Recipe: "Soup"},
		},
	}
}

func testList() grocery.List {
	return grocery.List{Entries: []grocery.Entry{
		{Name: "eggs", Class: recipe.ClassNone, Unit: recipe.UnitNone, Amount: 4},
		{Name: "flour", Class: recipe.ClassMass, Unit: recipe.UnitGram, Amount: 500},
	}}
}

func TestRendererPlan(t *testing.T) {
	t.Parallel()

	r := Renderer{NoColor: true}
	out := r.Plan(testPlan())

	t.Run("dates ascend", func(t *testing.T) {
		t.Parallel()
		first := strings.Index(out, "2022-05-15")
		second := strings.Index(out, "2022-05-16")
		third := strings.Index(out, "2022-05-17")
		if first < 0 || second < 0 || third < 0 {
			t.Fatalf("missing dates in output:\n%s", out)
		}
		if !(first < second && second < third) {
			t.Errorf("dates out of order:\n%s", out)
		}
	})

	t.Run("recipes keep assignment order", func(t *testing.T) {
		t.Parallel()
		if strings.Index(out, "Pasta") > strings.Index(out, "Salad") {
			t.Errorf("assignment order not preserved:\n%s", out)
		}
	})

	t.Run("empty dates are marked", func(t *testing.T) {
		t.Parallel()
		if !strings.Contains(out, "(nothing planned)") {
			t.Errorf("missing empty-date marker:\n%s", out)
		}
	})
}

func TestRendererGroceries(t *testing.T) {
	t.Parallel()

	r := Renderer{NoColor: true}
	out := r.Groceries(testList())

	if !strings.Contains(out, "4") || !strings.Contains(out, "eggs") {
		t.Errorf("missing eggs line:\n%s", out)
	}
	if !strings.Contains(out, "500 gram") || !strings.Contains(out, "flour") {
		t.Errorf("missing flour line:\n%s", out)
	}
	if strings.Index(out, "eggs") > strings.Index(out, "flour") {
		t.Errorf("entries not alphabetical:\n%s", out)
	}
}

func TestRendererBeholdIdempotent(t *testing.T) {
	t.Parallel()

	r := Renderer{NoColor: true}
	p, list := testPlan(), testList()

	first := r.Behold(p, list)
	second := r.Behold(p, list)
	if first != second {
		t.Error("two renders of the same plan differ")
	}
}

func TestRendererEmptyList(t *testing.T) {
	t.Parallel()

	r := Renderer{NoColor: true}
	out := r.Groceries(grocery.List{})
	if !strings.Contains(out, "(empty)") {
		t.Errorf("missing empty marker:\n%s", out)
	}
}
