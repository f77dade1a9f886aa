package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/averse/internal/recipe"
)

// Picker is the view command's browser: a filter input over the recipe
// list with a detail pane for the highlighted recipe. Typing narrows the
// list by name or tag substring; arrows move the cursor.
type Picker struct {
	Store  *recipe.Store
	Filter textinput.Model
	Names  []string // Filtered names, cursor indexes into this
	Cursor int
	Width  int
}

// NewPicker creates a picker over every recipe in the store.
func NewPicker(store *recipe.Store) Picker {
	ti := textinput.New()
	ti.Prompt = "▸ "
	ti.Placeholder = "type to filter recipes"
	ti.CharLimit = 64
	ti.Focus()

	return Picker{
		Store:  store,
		Filter: ti,
		Names:  store.Names(),
	}
}

func (m Picker) Init() tea.Cmd {
	return textinput.Blink
}

func (m Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		case tea.KeyUp:
			if m.Cursor > 0 {
				m.Cursor--
			}
			return m, nil
		case tea.KeyDown:
			if m.Cursor < len(m.Names)-1 {
				m.Cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.Filter, cmd = m.Filter.Update(msg)
	m.Names = MatchRecipes(m.Store, m.Filter.Value())
	if m.Cursor >= len(m.Names) {
		m.Cursor = 0
	}
	return m, cmd
}

func (m Picker) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("averse · view recipes"))
	b.WriteString("\n\n")
	b.WriteString(m.Filter.View())
	b.WriteString("\n\n")

	if len(m.Names) == 0 {
		b.WriteString("  " + styleDim.Render("no recipes match") + "\n")
		return b.String()
	}

	for i, name := range m.Names {
		b.WriteString(m.renderRow(i, name))
		b.WriteString("\n")
	}

	if r, ok := m.Store.Get(m.Names[m.Cursor]); ok {
		b.WriteString("\n")
		b.WriteString(styleDetailBorder.Render(RecipeDetail(r)))
		b.WriteString("\n")
	}

	b.WriteString(styleDim.Render("↑/↓ select · esc to quit"))
	b.WriteString("\n")
	return b.String()
}

// renderRow renders one list row with the selection indicator and tags.
func (m Picker) renderRow(i int, name string) string {
	r, _ := m.Store.Get(name)

	indicator := "  "
	styledName := styleRowNormal.Render(name)
	if i == m.Cursor {
		indicator = styleSelectionIndicator.Render(selectionIndicator) + " "
		styledName = styleRowSelected.Render(name)
	}

	tags := ""
	if len(r.Tags) > 0 {
		tags = "  " + styleDim.Render(strings.Join(r.Tags, ", "))
	}
	return indicator + styledName + tags
}

// MatchRecipes returns the names of recipes whose name or tags contain the
// query, case-insensitively. An empty query matches everything.
func MatchRecipes(store *recipe.Store, query string) []string {
	query = recipe.NormalizeName(query)
	var out []string
	for _, name := range store.Names() {
		r, _ := store.Get(name)
		if query == "" || strings.Contains(recipe.NormalizeName(name), query) || tagMatch(r, query) {
			out = append(out, name)
		}
	}
	return out
}

func tagMatch(r recipe.Recipe, query string) bool {
	for _, t := range r.Tags {
		if strings.Contains(recipe.NormalizeName(t), query) {
			return true
		}
	}
	return false
}

// RecipeDetail renders the full ingredient and step listing for one recipe.
// Shared by the picker detail pane and the plain-text view path.
func RecipeDetail(r recipe.Recipe) string {
	var b strings.Builder

	b.WriteString(styleRowSelected.Render(r.Name))
	if len(r.Tags) > 0 {
		b.WriteString(styleDim.Render("  [" + strings.Join(r.Tags, ", ") + "]"))
	}
	b.WriteString("\n")

	for _, ingr := range r.Ingredients {
		b.WriteString("  " + styleRowNormal.Render("⇒ "+ingr.String()) + "\n")
	}
	for i, step := range r.Steps {
		b.WriteString("  " + styleDim.Render(stepNumber(i)+step) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func stepNumber(i int) string {
	return strconv.Itoa(i+1) + ". "
}
