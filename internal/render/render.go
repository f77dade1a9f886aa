// Package render formats plans and shopping lists for display. Rendering
// is pure: the same plan and list always produce byte-identical output,
// and nothing is mutated.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/averse/internal/grocery"
	"github.com/papapumpkin/averse/internal/mealplan"
)

// Semantic color palette.
var (
	colorPrimary = lipgloss.Color("#00BFFF") // Cyan — headers
	colorAccent  = lipgloss.Color("#FFD700") // Gold — quantities
	colorSuccess = lipgloss.Color("#00E676") // Green — dates
	colorMuted   = lipgloss.Color("#636363") // Gray — de-emphasized
	colorWhite   = lipgloss.Color("#EEEEEE") // Off-white — primary text
)

var (
	styleHeader = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	styleDate   = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	styleRecipe = lipgloss.NewStyle().Foreground(colorWhite)
	styleAmount = lipgloss.NewStyle().Foreground(colorAccent)
	styleDim    = lipgloss.NewStyle().Foreground(colorMuted)
)

// Renderer formats plan output. With NoColor set, all styling is skipped
// and the output is plain text.
type Renderer struct {
	NoColor bool
}

func (r Renderer) styled(s lipgloss.Style, text string) string {
	if r.NoColor {
		return text
	}
	return s.Render(text)
}

// Plan renders the date-to-recipe schedule: dates ascending, recipes
// within a date in assignment order.
func (r Renderer) Plan(p *mealplan.Plan) string {
	var b strings.Builder

	title := fmt.Sprintf("plan %s → %s", p.Start, p.End)
	b.WriteString(r.styled(styleHeader, title))
	b.WriteString("\n")

	for day := 0; day < p.Range().Days(); day++ {
		date := p.Start.AddDays(day)
		b.WriteString("\n")
		b.WriteString(r.styled(styleDate, date.String()))
		b.WriteString("\n")

		names := p.RecipesOn(date)
		if len(names) == 0 {
			b.WriteString("  " + r.styled(styleDim, "(nothing planned)") + "\n")
			continue
		}
		for _, name := range names {
			b.WriteString("  • " + r.styled(styleRecipe, name) + "\n")
		}
	}

	return b.String()
}

// Groceries renders the aggregated shopping list, one ingredient per line,
// alphabetical by name then unit class. Quantities are right-padded into a
// fixed column so the list reads as a table.
func (r Renderer) Groceries(list grocery.List) string {
	var b strings.Builder

	b.WriteString(r.styled(styleHeader, "groceries"))
	b.WriteString("\n")

	if len(list.Entries) == 0 {
		b.WriteString("  " + r.styled(styleDim, "(empty)") + "\n")
		return b.String()
	}

	width := 0
	for _, e := range list.Entries {
		if n := len(e.Quantity()); n > width {
			width = n
		}
	}

	for _, e := range list.Entries {
		qty := fmt.Sprintf("%-*s", width, e.Quantity())
		b.WriteString("  " + r.styled(styleAmount, qty) + "  " + r.styled(styleRecipe, e.Name) + "\n")
	}

	return b.String()
}

// Behold renders a full plan view: the schedule followed by its
// consolidated grocery list.
func (r Renderer) Behold(p *mealplan.Plan, list grocery.List) string {
	return r.Plan(p) + "\n" + r.Groceries(list)
}
