package tui

import "github.com/charmbracelet/lipgloss"

// Theme is the color scheme for the terminal client.
type Theme struct {
	Foreground    lipgloss.Color
	ForegroundDim lipgloss.Color
	Primary       lipgloss.Color
	Success       lipgloss.Color
	Error         lipgloss.Color
	Selection     lipgloss.Color
}

// DefaultTheme is a Tokyo Night-ish palette.
var DefaultTheme = Theme{
	Foreground:    lipgloss.Color("#c0caf5"),
	ForegroundDim: lipgloss.Color("#565f89"),
	Primary:       lipgloss.Color("#7aa2f7"),
	Success:       lipgloss.Color("#9ece6a"),
	Error:         lipgloss.Color("#f7768e"),
	Selection:     lipgloss.Color("#33467c"),
}

// Styles holds the pre-built lipgloss styles used by the views.
type Styles struct {
	Title        lipgloss.Style
	Item         lipgloss.Style
	ItemDone     lipgloss.Style
	ItemSelected lipgloss.Style
	FilterOn     lipgloss.Style
	FilterOff    lipgloss.Style
	Status       lipgloss.Style
	Error        lipgloss.Style
	Help         lipgloss.Style
}

// NewStyles builds the style set from a theme.
func NewStyles(t Theme) *Styles {
	return &Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(t.Primary).MarginBottom(1),
		Item:         lipgloss.NewStyle().Foreground(t.Foreground),
		ItemDone:     lipgloss.NewStyle().Foreground(t.ForegroundDim).Strikethrough(true),
		ItemSelected: lipgloss.NewStyle().Background(t.Selection),
		FilterOn:     lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Underline(true),
		FilterOff:    lipgloss.NewStyle().Foreground(t.ForegroundDim),
		Status:       lipgloss.NewStyle().Foreground(t.Success),
		Error:        lipgloss.NewStyle().Foreground(t.Error),
		Help:         lipgloss.NewStyle().Foreground(t.ForegroundDim),
	}
}
