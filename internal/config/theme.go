package config

// Theme holds the color palette used by the TUI. Colors are hex
// strings consumed by lipgloss.
type Theme struct {
	Border         string `yaml:"border"`
	BorderActive   string `yaml:"border_active"`
	Title          string `yaml:"title"`
	CardTitle      string `yaml:"card_title"`
	Muted          string `yaml:"muted"`
	Highlight      string `yaml:"highlight"`
	DragIndicator  string `yaml:"drag_indicator"`
	UndoCountdown  string `yaml:"undo_countdown"`
	PriorityLow    string `yaml:"priority_low"`
	PriorityMedium string `yaml:"priority_medium"`
	PriorityHigh   string `yaml:"priority_high"`
	PriorityCrit   string `yaml:"priority_critical"`
}

func (t *Theme) applyDefaults() {
	defaults := map[*string]string{
		&t.Border:         "#3B4252",
		&t.BorderActive:   "#88C0D0",
		&t.Title:          "#ECEFF4",
		&t.CardTitle:      "#D8DEE9",
		&t.Muted:          "#4C566A",
		&t.Highlight:      "#EBCB8B",
		&t.DragIndicator:  "#A3BE8C",
		&t.UndoCountdown:  "#BF616A",
		&t.PriorityLow:    "#22C55E",
		&t.PriorityMedium: "#EAB308",
		&t.PriorityHigh:   "#F97316",
		&t.PriorityCrit:   "#EF4444",
	}
	for field, value := range defaults {
		if *field == "" {
			*field = value
		}
	}
}

// PriorityColor returns the theme color for a priority value.
func (t *Theme) PriorityColor(priorityID int) string {
	switch priorityID {
	case 1:
		return t.PriorityLow
	case 2:
		return t.PriorityMedium
	case 3:
		return t.PriorityHigh
	case 4:
		return t.PriorityCrit
	default:
		return t.Muted
	}
}
