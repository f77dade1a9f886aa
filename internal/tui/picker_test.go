package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/averse/internal/recipe"
)

func pickerStore(t *testing.T) *recipe.Store {
	t.Helper()
	store, err := recipe.Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	recipes := []recipe.Recipe{
		{
			Name:        "Minestrone",
			Tags:        []string{"soup", "dinner"},
			Ingredients: []recipe.IngredientLine{{Name: "beans", Amount: 1, Unit: recipe.UnitCan}},
			Steps:       []string{"Simmer everything."},
		},
		{
			Name:        "Caesar Salad",
			Tags:        []string{"salad"},
			Ingredients: []recipe.IngredientLine{{Name: "lettuce", Amount: 200, Unit: recipe.UnitGram}},
		},
	}
	for _, r := range recipes {
		if err := store.Add(r, false); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	return store
}

func TestMatchRecipes(t *testing.T) {
	t.Parallel()

	store := pickerStore(t)

	t.Run("empty query matches all", func(t *testing.T) {
		t.Parallel()
		if got := MatchRecipes(store, ""); len(got) != 2 {
			t.Errorf("MatchRecipes = %v", got)
		}
	})

	t.Run("matches by name substring", func(t *testing.T) {
		t.Parallel()
		got := MatchRecipes(store, "mine")
		if len(got) != 1 || got[0] != "Minestrone" {
			t.Errorf("MatchRecipes(mine) = %v", got)
		}
	})

	t.Run("matches by tag", func(t *testing.T) {
		t.Parallel()
		got := MatchRecipes(store, "soup")
		if len(got) != 1 || got[0] != "Minestrone" {
			t.Errorf("MatchRecipes(soup) = %v", got)
		}
	})

	t.Run("no match", func(t *testing.T) {
		t.Parallel()
		if got := MatchRecipes(store, "dessert"); len(got) != 0 {
			t.Errorf("MatchRecipes(dessert) = %v", got)
		}
	})
}

func TestPickerView(t *testing.T) {
	t.Parallel()

	m := NewPicker(pickerStore(t))
	out := m.View()

	if !strings.Contains(out, "Minestrone") || !strings.Contains(out, "Caesar Salad") {
		t.Errorf("missing recipes in view:\n%s", out)
	}
	// Detail pane shows the highlighted recipe's ingredients.
	if !strings.Contains(out, "200 gram lettuce") {
		t.Errorf("missing detail pane:\n%s", out)
	}
}

func TestPickerCursor(t *testing.T) {
	t.Parallel()

	m := NewPicker(pickerStore(t))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	moved := next.(Picker)
	if moved.Cursor != 1 {
		t.Errorf("cursor = %d, want 1", moved.Cursor)
	}

	next, _ = moved.Update(tea.KeyMsg{Type: tea.KeyDown})
	clamped := next.(Picker)
	if clamped.Cursor != 1 {
		t.Errorf("cursor = %d, want clamped at 1", clamped.Cursor)
	}
}

func TestRecipeDetail(t *testing.T) {
	t.Parallel()

	store := pickerStore(t)
	r, _ := store.Get("Minestrone")
	out := RecipeDetail(r)

	if !strings.Contains(out, "Minestrone") {
		t.Errorf("missing name:\n%s", out)
	}
	if !strings.Contains(out, "1 can beans") {
		t.Errorf("missing ingredient:\n%s", out)
	}
	if !strings.Contains(out, "1. Simmer everything.") {
		t.Errorf("missing numbered step:\n%s", out)
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	t.Parallel()

	if got := TruncateWithEllipsis("short", 10); got != "short" {
		t.Errorf("TruncateWithEllipsis = %q", got)
	}
	if got := TruncateWithEllipsis("a very long recipe name", 10); got != "a very lo…" {
		t.Errorf("TruncateWithEllipsis = %q", got)
	}
}
