package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary     = lipgloss.Color("#00BFFF") // Cyan — primary accent
	colorAccent      = lipgloss.Color("#FFD700") // Gold — quantities
	colorSuccess     = lipgloss.Color("#00E676") // Green — confirmations
	colorDanger      = lipgloss.Color("#FF5252") // Red — errors
	colorMuted       = lipgloss.Color("#636363") // Gray — de-emphasized
	colorMutedLight  = lipgloss.Color("#8C8C8C") // Lighter gray — normal text
	colorWhite       = lipgloss.Color("#EEEEEE") // Off-white — primary text
	colorBrightWhite = lipgloss.Color("#FFFFFF") // Pure white — emphatic text
)

// Selection indicator prepended to the active row.
const selectionIndicator = "▎"

var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleStage = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleRowSelected = lipgloss.NewStyle().
				Foreground(colorBrightWhite).
				Bold(true)

	styleRowNormal = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleError = lipgloss.NewStyle().
			Foreground(colorDanger)

	styleDim = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleConfirm = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	// styleSelectionIndicator styles the left-edge indicator for the selected row.
	styleSelectionIndicator = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleDetailBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorMuted).
				Padding(0, 1)
)

// TruncateWithEllipsis shortens s to max runes, appending … when truncated.
func TruncateWithEllipsis(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
