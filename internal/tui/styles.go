package tui

import "github.com/charmbracelet/lipgloss"

// Colors used in the task browser.
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#9CA3AF") // Light gray
)

// Styles holds the styles for the task browser.
type Styles struct {
	Title     lipgloss.Style
	Selected  lipgloss.Style
	Normal    lipgloss.Style
	Completed lipgloss.Style
	Cancelled lipgloss.Style
	Overdue   lipgloss.Style
	Meta      lipgloss.Style
	Status    lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Normal: lipgloss.NewStyle(),
		Completed: lipgloss.NewStyle().
			Foreground(ColorSuccess),
		Cancelled: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Strikethrough(true),
		Overdue: lipgloss.NewStyle().
			Foreground(ColorError),
		Meta: lipgloss.NewStyle().
			Foreground(ColorMuted),
		Status: lipgloss.NewStyle().
			Foreground(ColorWarning),
	}
}
