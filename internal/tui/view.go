package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"tabula/internal/board"
	"tabula/internal/models"
)

// View renders the current state of the board. Implements the
// tea.Model interface.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.width == 0 {
		view.Content = "Loading..."
		return view
	}

	switch m.mode {
	case CaptureMode:
		view.Content = m.viewCapture()
	case DetailMode:
		view.Content = m.viewDetail()
	default:
		view.Content = m.viewBoard()
	}
	return view
}

func (m Model) viewBoard() string {
	cols := m.visibleColumns()
	state := m.Machine.State()

	rendered := make([]string, 0, len(cols))
	for i, col := range cols {
		rendered = append(rendered, m.renderColumn(col, i, state))
	}

	boardRow := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	return lipgloss.JoinVertical(lipgloss.Left, boardRow, m.renderStatusBar())
}

func (m Model) renderColumn(col *board.ColumnView, colIdx int, state board.DragState) string {
	var b strings.Builder

	title := col.Title
	if state.Kind == board.DragColumn {
		if col.ID == state.ColumnID {
			title = m.styles.CardDragged.Render("◆ " + title)
		} else if colIdx == m.colDropIdx {
			title = m.styles.DropMarker.Render("▸ ") + m.styles.ColumnTitle.Render(title)
		} else {
			title = m.styles.ColumnTitle.Render(title)
		}
	} else {
		title = m.styles.ColumnTitle.Render(title)
	}

	count := fmt.Sprintf("%d", col.TotalCards)
	if len(col.Cards) != col.TotalCards {
		count = fmt.Sprintf("%d/%d", len(col.Cards), col.TotalCards)
	}
	b.WriteString(title + " " + m.styles.Muted.Render("("+count+")") + "\n")

	if len(col.Cards) == 0 {
		b.WriteString(m.styles.Muted.Render("  empty") + "\n")
	}

	cardDragHere := state.Kind == board.DragCard && state.ColumnID == col.ID
	for cardIdx, card := range col.Cards {
		b.WriteString(m.renderCard(card, colIdx, cardIdx, cardDragHere, state) + "\n")
	}

	style := m.styles.Column
	if colIdx == m.selectedCol {
		style = m.styles.ColumnActive
	}

	width := m.columnWidth()
	return style.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderCard(card *models.CardSummary, colIdx, cardIdx int, dragHere bool, state board.DragState) string {
	prefix := "  "
	style := m.styles.Card

	switch {
	case dragHere && card.ID == state.CardID:
		prefix = "◆ "
		style = m.styles.CardDragged
	case dragHere && cardIdx == m.dropIdx:
		prefix = m.styles.DropMarker.Render("▸ ")
	case card.ID == m.highlightCardID:
		prefix = "★ "
		style = m.styles.CardHighlit
	case colIdx == m.selectedCol && cardIdx == m.selectedCard && !m.Machine.Dragging():
		prefix = "> "
		style = m.styles.CardSelected
	}

	dot := m.styles.Priority(card.PriorityID).Render("●")
	return prefix + dot + " " + style.Render(truncate(card.Title, m.columnWidth()-6))
}

func (m Model) renderStatusBar() string {
	if m.mode == SearchMode {
		return m.styles.SearchBar.Render("/") + m.searchInput.View()
	}

	parts := make([]string, 0, 3)
	if m.query != "" {
		parts = append(parts, m.styles.SearchBar.Render("filter: "+m.query))
	}
	if card := m.Archiver.PendingCard(); card != nil {
		secs := int(m.Archiver.Remaining().Seconds()) + 1
		parts = append(parts, m.styles.Countdown.Render(
			fmt.Sprintf("archived %q, %s to undo (%ds)", card.Title, m.Keys.Undo, secs)))
	}
	if m.Machine.Dragging() {
		parts = append(parts, m.styles.StatusBar.Render(
			fmt.Sprintf("dragging  %s/%s/%s/%s move  %s drop  %s cancel",
				m.Keys.Left, m.Keys.Down, m.Keys.Up, m.Keys.Right, m.Keys.Drop, m.Keys.Cancel)))
	} else {
		parts = append(parts, m.styles.StatusBar.Render(
			fmt.Sprintf("%s grab  %s column  %s open  %s new  %s archive  %s search  %s quit",
				m.Keys.Grab, m.Keys.GrabColumn, m.Keys.Open,
				m.Keys.Capture, m.Keys.Archive, m.Keys.Search, m.Keys.Quit)))
	}
	return " " + strings.Join(parts, m.styles.Muted.Render("  |  "))
}

func (m Model) viewCapture() string {
	if m.captureForm == nil {
		return m.viewBoard()
	}
	header := "New card"
	if m.editCardID != 0 {
		header = "Edit card"
	}
	box := m.styles.ColumnActive.
		Width(min(m.width-4, 64)).
		Render(m.styles.Title.Render(header) + "\n\n" + m.captureForm.View())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// columnWidth splits the terminal between the visible columns.
func (m Model) columnWidth() int {
	n := len(m.visibleColumns())
	if n == 0 {
		n = 1
	}
	w := m.width/n - 2
	if w < 16 {
		w = 16
	}
	return w
}

// truncate clips a title to the given display width. Widths are
// terminal cells, not bytes, so wide runes count double and a cut
// never lands inside a rune.
func truncate(s string, width int) string {
	if width < 4 {
		width = 4
	}
	return ansi.Truncate(s, width, "…")
}
