package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the lipgloss styles of the inspector
type Theme struct {
	TitleStyle        lipgloss.Style
	BorderStyle       lipgloss.Style
	PaneStyle         lipgloss.Style
	LabelStyle        lipgloss.Style
	CommandStyle      lipgloss.Style
	FlagStyle         lipgloss.Style
	ValueStyle        lipgloss.Style
	CanonicalStyle    lipgloss.Style
	SelectedItemStyle lipgloss.Style
	NormalItemStyle   lipgloss.Style
	WarningStyle      lipgloss.Style
	ErrorStyle        lipgloss.Style
	StatusBarStyle    lipgloss.Style
	HelpStyle         lipgloss.Style
}

func DefaultTheme() *Theme {
	return &Theme{
		TitleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1),
		BorderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")),
		PaneStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#555555")).
			Padding(0, 1),
		LabelStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")),
		CommandStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#04B575")),
		FlagStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5FAFFF")),
		ValueStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD75F")),
		CanonicalStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#303030")).
			Padding(0, 1),
		SelectedItemStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")),
		NormalItemStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DDDDDD")),
		WarningStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFAF00")),
		ErrorStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5F87")),
		StatusBarStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#3C3C3C")).
			Padding(0, 1),
		HelpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}
