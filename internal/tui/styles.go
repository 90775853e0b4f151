package tui

import (
	"charm.land/lipgloss/v2"

	"tabula/internal/config"
)

// Styles holds the pre-built lipgloss styles derived from the
// configured theme.
type Styles struct {
	theme *config.Theme

	Column       lipgloss.Style
	ColumnActive lipgloss.Style
	ColumnTitle  lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardDragged  lipgloss.Style
	CardHighlit  lipgloss.Style
	DropMarker   lipgloss.Style
	Muted        lipgloss.Style
	StatusBar    lipgloss.Style
	Countdown    lipgloss.Style
	SearchBar    lipgloss.Style
	Title        lipgloss.Style
}

// NewStyles builds the style set from a theme.
func NewStyles(t *config.Theme) Styles {
	return Styles{
		theme: t,

		Column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),
		ColumnActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderActive)).
			Padding(0, 1),
		ColumnTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Title)).
			Bold(true),
		Card: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.CardTitle)),
		CardSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.BorderActive)).
			Bold(true),
		CardDragged: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.DragIndicator)).
			Bold(true),
		CardHighlit: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Highlight)).
			Bold(true),
		DropMarker: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.DragIndicator)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		Countdown: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.UndoCountdown)).
			Bold(true),
		SearchBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Highlight)),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Title)).
			Bold(true),
	}
}

// Priority returns a foreground style for a card priority.
func (s Styles) Priority(priorityID int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(s.theme.PriorityColor(priorityID)))
}
