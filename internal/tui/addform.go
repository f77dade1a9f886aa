package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/averse/internal/recipe"
)

// addStage tracks which field of the recipe the form is collecting.
type addStage int

const (
	stageName addStage = iota
	stageTags
	stageIngredients
	stageSteps
	stageDone
)

// AddForm is a staged recipe entry form: name, comma-separated tags, then
// ingredient and step loops where an empty entry advances to the next
// stage. Ingredient lines are parsed as they are entered so a typo is
// rejected immediately with the parse error shown inline.
type AddForm struct {
	Input   textinput.Model
	Stage   addStage
	Recipe  recipe.Recipe
	Err     string // Last inline input error, cleared on the next entry
	Aborted bool
}

// NewAddForm creates the form with the name field focused.
func NewAddForm() AddForm {
	ti := textinput.New()
	ti.Prompt = "▸ "
	ti.Placeholder = "recipe name"
	ti.CharLimit = 128
	ti.Focus()

	return AddForm{Input: ti}
}

func (m AddForm) Init() tea.Cmd {
	return textinput.Blink
}

func (m AddForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.Aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

// submit consumes the current input line and advances the form.
func (m AddForm) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.Input.Value())
	m.Err = ""

	switch m.Stage {
	case stageName:
		if value == "" {
			m.Err = "recipe name is required"
			return m, nil
		}
		m.Recipe.Name = value
		m.Stage = stageTags
		m.Input.Placeholder = "tags, comma separated (e.g. soup, mealprep)"

	case stageTags:
		for _, t := range strings.Split(value, ",") {
			if tag := strings.TrimSpace(t); tag != "" {
				m.Recipe.Tags = append(m.Recipe.Tags, tag)
			}
		}
		m.Stage = stageIngredients
		m.Input.Placeholder = "<amount> <unit> <name> (e.g. 1 lb beef) — empty to continue"

	case stageIngredients:
		if value == "" {
			if len(m.Recipe.Ingredients) == 0 {
				m.Err = "at least one ingredient is required"
				return m, nil
			}
			m.Stage = stageSteps
			m.Input.Placeholder = "next step — empty to finish"
			break
		}
		line, err := recipe.ParseIngredient(value)
		if err != nil {
			m.Err = err.Error()
			return m, nil
		}
		m.Recipe.Ingredients = append(m.Recipe.Ingredients, line)

	case stageSteps:
		if value == "" {
			m.Stage = stageDone
			return m, tea.Quit
		}
		m.Recipe.Steps = append(m.Recipe.Steps, value)
	}

	m.Input.SetValue("")
	return m, nil
}

func (m AddForm) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("averse · add recipe"))
	b.WriteString("\n\n")
	b.WriteString(m.renderProgress())
	b.WriteString("\n")
	b.WriteString(styleStage.Render(m.stageLabel()))
	b.WriteString("\n")
	b.WriteString(m.Input.View())
	b.WriteString("\n")

	if m.Err != "" {
		b.WriteString(styleError.Render("✗ " + m.Err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleDim.Render("enter to confirm · esc to abort"))
	b.WriteString("\n")
	return b.String()
}

// renderProgress shows everything collected so far.
func (m AddForm) renderProgress() string {
	var b strings.Builder

	if m.Recipe.Name != "" {
		b.WriteString(styleConfirm.Render("✓ ") + styleRowSelected.Render(m.Recipe.Name))
		if len(m.Recipe.Tags) > 0 {
			b.WriteString(styleDim.Render("  [" + strings.Join(m.Recipe.Tags, ", ") + "]"))
		}
		b.WriteString("\n")
	}
	for _, ingr := range m.Recipe.Ingredients {
		b.WriteString("  " + styleRowNormal.Render("• "+ingr.String()) + "\n")
	}
	for i, step := range m.Recipe.Steps {
		b.WriteString("  " + styleDim.Render(TruncateWithEllipsis(stepNumber(i)+step, 72)) + "\n")
	}
	return b.String()
}

func (m AddForm) stageLabel() string {
	switch m.Stage {
	case stageName:
		return "⇸ recipe name"
	case stageTags:
		return "⇸ tags"
	case stageIngredients:
		return "⇸ ingredients"
	case stageSteps:
		return "⇸ steps"
	default:
		return ""
	}
}
