package tui

import (
	"fmt"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"tabula/internal/models"
)

// Glamour renderers are cached by wrap width, re-creation is
// expensive.
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func markdownRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	rendererCache.Store(width, renderer)
	return renderer, nil
}

func (m Model) viewDetail() string {
	card, col, _ := m.Store.FindCard(m.detailCardID)
	if card == nil {
		return m.viewBoard()
	}

	width := min(m.width-8, 80)
	if width < 24 {
		width = 24
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(card.Title) + "\n")
	b.WriteString(m.styles.Muted.Render("in "+col.Title) + "\n\n")

	meta := make([]string, 0, 3)
	if card.PriorityID > 0 {
		meta = append(meta, m.styles.Priority(card.PriorityID).Render(models.PriorityLabel(card.PriorityID)))
	}
	if card.Assignee != "" {
		meta = append(meta, "@"+card.Assignee)
	}
	if card.DueDate != nil {
		meta = append(meta, "due "+card.DueDate.Format("2006-01-02"))
	}
	for _, label := range card.Labels {
		meta = append(meta, lipgloss.NewStyle().Foreground(lipgloss.Color(label.Color)).Render("#"+label.Name))
	}
	if len(meta) > 0 {
		b.WriteString(strings.Join(meta, "  ") + "\n\n")
	}

	b.WriteString(m.renderDescription(card.Description, width-4))
	b.WriteString("\n\n" + m.styles.Muted.Render(
		fmt.Sprintf("esc close  %s edit  %s archive", m.Keys.Edit, m.Keys.Archive)))

	style := m.styles.ColumnActive
	if card.ID == m.highlightCardID {
		style = style.BorderForeground(lipgloss.Color(m.styles.theme.Highlight))
	}
	box := style.Width(width).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderDescription(description string, width int) string {
	if description == "" {
		return m.styles.Muted.Render("No description")
	}
	renderer, err := markdownRenderer(width)
	if err != nil {
		return description
	}
	rendered, err := renderer.Render(description)
	if err != nil {
		return description
	}
	return strings.TrimSpace(rendered)
}
