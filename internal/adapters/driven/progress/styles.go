package progress

import "github.com/charmbracelet/lipgloss"

// Theme defines the colour palette for progress output.
type Theme struct {
	// Heading is used for section markers.
	Heading lipgloss.Color

	// Path is used for input file names.
	Path lipgloss.Color

	// Muted is for IDs and other bulk output.
	Muted lipgloss.Color

	// Success marks the completion line.
	Success lipgloss.Color

	// Warning marks duplicate IDs.
	Warning lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Heading: lipgloss.Color("#7C3AED"), // Purple
		Path:    lipgloss.Color("#06B6D4"), // Cyan
		Muted:   lipgloss.Color("#6C7086"), // Medium gray
		Success: lipgloss.Color("#A6E3A1"), // Green
		Warning: lipgloss.Color("#F9E2AF"), // Yellow
	}
}

// Styles contains the lipgloss styles used by Reporter.
type Styles struct {
	Heading lipgloss.Style
	Path    lipgloss.Style
	ID      lipgloss.Style
	Dupe    lipgloss.Style
	Done    lipgloss.Style
}

// NewStyles creates styles from a theme bound to renderer r.
func NewStyles(r *lipgloss.Renderer, theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		Heading: r.NewStyle().Bold(true).Foreground(theme.Heading),
		Path:    r.NewStyle().Foreground(theme.Path),
		ID:      r.NewStyle().Foreground(theme.Muted),
		Dupe:    r.NewStyle().Bold(true).Foreground(theme.Warning),
		Done:    r.NewStyle().Bold(true).Foreground(theme.Success),
	}
}
