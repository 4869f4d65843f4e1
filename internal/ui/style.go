package ui

import "github.com/charmbracelet/lipgloss"

// Theme groups the lipgloss styles used by the widget.
type Theme struct {
	Base      lipgloss.Style
	Title     lipgloss.Style
	Clock     lipgloss.Style
	Label     lipgloss.Style
	Timer     lipgloss.Style
	Break     lipgloss.Style
	Task      lipgloss.Style
	Selected  lipgloss.Style
	Draft     lipgloss.Style
	Counter   lipgloss.Style
	Warning   lipgloss.Style
	Status    lipgloss.Style
	StatusErr lipgloss.Style
}

type palette struct {
	primary, secondary, accent, muted, danger lipgloss.Color
}

var (
	darkPalette = palette{
		primary:   lipgloss.Color("#F9F9F9"),
		secondary: lipgloss.Color("#A0A0A0"),
		accent:    lipgloss.Color("#7AC4E8"),
		muted:     lipgloss.Color("#6B6B6B"),
		danger:    lipgloss.Color("#FF7676"),
	}

	lightPalette = palette{
		primary:   lipgloss.Color("#1A1A1A"),
		secondary: lipgloss.Color("#4D4D4D"),
		accent:    lipgloss.Color("#005F87"),
		muted:     lipgloss.Color("#8A8A8A"),
		danger:    lipgloss.Color("#C0392B"),
	}
)

// NewTheme returns the widget styles for a dark or light terminal.
func NewTheme(dark bool) Theme {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	label := lipgloss.NewStyle().Foreground(p.secondary).Width(8)

	return Theme{
		Base:      lipgloss.NewStyle().Padding(1, 2),
		Title:     lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		Clock:     lipgloss.NewStyle().Foreground(p.secondary),
		Label:     label,
		Timer:     lipgloss.NewStyle().Foreground(p.primary).Bold(true),
		Break:     lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		Task:      lipgloss.NewStyle().Foreground(p.primary).PaddingLeft(2),
		Selected:  lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		Draft:     lipgloss.NewStyle().Foreground(p.accent).PaddingLeft(2),
		Counter:   lipgloss.NewStyle().Foreground(p.muted),
		Warning:   lipgloss.NewStyle().Foreground(p.danger).Bold(true),
		Status:    lipgloss.NewStyle().Foreground(p.muted).Italic(true),
		StatusErr: lipgloss.NewStyle().Foreground(p.danger),
	}
}
