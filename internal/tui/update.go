package tui

import (
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"tabula/internal/board"
)

// tickMsg drives the undo countdown and the deep-link highlight
// while either is active.
type tickMsg struct{}

// resolveDeepLinkMsg asks the resolver to act on a pending card
// identifier.
type resolveDeepLinkMsg struct{}

// clearNavMsg scrubs the resolved identifier from navigation state.
type clearNavMsg struct{}

const tickInterval = 250 * time.Millisecond

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// Update handles all messages and mutates the board through the
// engine. Implements the tea.Model interface.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	// The capture form needs every message while it is open.
	if m.mode == CaptureMode {
		return m.updateCapture(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m.updateTick()

	case resolveDeepLinkMsg:
		return m.updateDeepLink()

	case clearNavMsg:
		m.Resolver.ClearNavigation()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case SearchMode:
			return m.updateSearch(msg)
		case DetailMode:
			return m.updateDetail(msg)
		default:
			return m.updateNormal(msg)
		}
	}

	return m, nil
}

func (m Model) updateTick() (tea.Model, tea.Cmd) {
	if m.highlightCardID != 0 && !time.Now().Before(m.highlightUntil) {
		m.highlightCardID = 0
	}
	if m.Archiver.Undoable() || m.highlightCardID != 0 {
		return m, tick()
	}
	return m, nil
}

func (m Model) updateDeepLink() (tea.Model, tea.Cmd) {
	res := m.Resolver.Resolve(m.Store)
	if res == nil {
		return m, nil
	}

	m.mode = DetailMode
	m.detailCardID = res.Card.ID
	m.highlightCardID = res.Card.ID
	m.highlightUntil = res.HighlightUntil
	if res.ScrollTo > 0 {
		m.selectCard(res.ScrollTo)
	}

	clearNav := tea.Tick(navClearDelay, func(time.Time) tea.Msg {
		return clearNavMsg{}
	})
	return m, tea.Batch(tick(), clearNav)
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" || key == m.Keys.Quit {
		return m, tea.Quit
	}

	if m.Machine.Dragging() {
		return m.updateDrag(key)
	}

	switch key {
	case m.Keys.Left:
		if m.selectedCol > 0 {
			m.selectedCol--
			m.selectedCard = 0
		}
	case m.Keys.Right:
		if m.selectedCol < len(m.visibleColumns())-1 {
			m.selectedCol++
			m.selectedCard = 0
		}
	case m.Keys.Up:
		if m.selectedCard > 0 {
			m.selectedCard--
		}
	case m.Keys.Down:
		if col := m.currentColumn(); col != nil && m.selectedCard < len(col.Cards)-1 {
			m.selectedCard++
		}

	case m.Keys.Grab:
		if id := m.currentCardID(); id != 0 {
			m.Machine.DragStartCard(id)
			m.dropIdx = m.draggedCardIndex()
		}
	case m.Keys.GrabColumn:
		if col := m.currentColumn(); col != nil {
			m.Machine.DragStartColumn(col.ID)
			m.colDropIdx = m.selectedCol
		}

	case m.Keys.Archive:
		if id := m.currentCardID(); id != 0 {
			m.Dispatcher.Dispatch(m.Archiver.Archive(id)...)
			m.clampSelection()
			return m, tick()
		}
	case m.Keys.Undo:
		m.Dispatcher.Dispatch(m.Archiver.Undo()...)
		m.clampSelection()

	case m.Keys.Open:
		if id := m.currentCardID(); id != 0 {
			m.mode = DetailMode
			m.detailCardID = id
		}

	case m.Keys.Capture:
		return m.openCapture()

	case m.Keys.Edit:
		if id := m.currentCardID(); id != 0 {
			return m.openEdit(id)
		}

	case m.Keys.Search:
		m.mode = SearchMode
		m.searchInput.SetValue(m.query)
		return m, m.searchInput.Focus()

	case m.Keys.Cancel:
		if m.query != "" {
			m.query = ""
			m.clampSelection()
		}
	}

	return m, nil
}

// updateDrag routes movement keys while a drag session is active.
func (m Model) updateDrag(key string) (tea.Model, tea.Cmd) {
	state := m.Machine.State()

	switch key {
	case m.Keys.Drop:
		effects := m.Machine.DragEnd(m.dropTarget(state))
		m.Dispatcher.Dispatch(effects...)
		m.afterDrag(state)
	case m.Keys.Cancel:
		m.Machine.DragEnd(board.NoTarget)
		m.afterDrag(state)

	case m.Keys.Left:
		m.hoverNeighbor(state, -1)
	case m.Keys.Right:
		m.hoverNeighbor(state, +1)
	case m.Keys.Up:
		if state.Kind == board.DragCard && m.dropIdx > 0 {
			m.dropIdx--
		}
	case m.Keys.Down:
		if state.Kind == board.DragCard {
			if col := m.Store.FindColumn(state.ColumnID); col != nil && m.dropIdx < len(col.Cards)-1 {
				m.dropIdx++
			}
		}
	}

	return m, nil
}

// dropTarget translates the drop indicator into the element id the
// drag session releases over.
func (m Model) dropTarget(state board.DragState) int {
	if state.Kind == board.DragColumn {
		cols := m.Store.Columns()
		if m.colDropIdx < 0 || m.colDropIdx >= len(cols) {
			return board.NoTarget
		}
		return cols[m.colDropIdx].ID
	}

	col := m.Store.FindColumn(state.ColumnID)
	if col == nil {
		return board.NoTarget
	}
	if m.dropIdx >= 0 && m.dropIdx < len(col.Cards) {
		return col.Cards[m.dropIdx].ID
	}
	return col.ID
}

// hoverNeighbor moves the drag one column sideways. Card drags hover
// the neighbor column, which provisionally re-homes the card; column
// drags only move the drop indicator.
func (m *Model) hoverNeighbor(state board.DragState, delta int) {
	cols := m.Store.Columns()
	if state.Kind == board.DragColumn {
		next := m.colDropIdx + delta
		if next >= 0 && next < len(cols) {
			m.colDropIdx = next
		}
		return
	}

	cur := -1
	for i, col := range cols {
		if col.ID == state.ColumnID {
			cur = i
			break
		}
	}
	next := cur + delta
	if cur < 0 || next < 0 || next >= len(cols) {
		return
	}
	m.Machine.DragOver(cols[next].ID)
	m.dropIdx = m.draggedCardIndex()
}

// draggedCardIndex is the dragged card's current slot in its column.
func (m Model) draggedCardIndex() int {
	_, _, idx := m.Store.FindCard(m.Machine.State().CardID)
	if idx < 0 {
		return 0
	}
	return idx
}

// afterDrag re-seats the selection on the element that was dragged.
func (m *Model) afterDrag(state board.DragState) {
	if state.Kind == board.DragCard {
		if !m.selectCard(state.CardID) {
			m.clampSelection()
		}
		return
	}
	for i, col := range m.visibleColumns() {
		if col.ID == state.ColumnID {
			m.selectedCol = i
			break
		}
	}
	m.clampSelection()
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.query = m.searchInput.Value()
		m.mode = NormalMode
		m.searchInput.Blur()
		m.clampSelection()
		return m, nil
	case "esc":
		m.searchInput.SetValue("")
		m.query = ""
		m.mode = NormalMode
		m.searchInput.Blur()
		m.clampSelection()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.query = m.searchInput.Value()
	m.clampSelection()
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", m.Keys.Open, m.Keys.Quit:
		m.mode = NormalMode
		m.detailCardID = 0
		m.Resolver.DetailClosed()
	case m.Keys.Archive:
		m.Dispatcher.Dispatch(m.Archiver.Archive(m.detailCardID)...)
		m.mode = NormalMode
		m.detailCardID = 0
		m.Resolver.DetailClosed()
		m.clampSelection()
		return m, tick()
	case m.Keys.Edit:
		id := m.detailCardID
		m.mode = NormalMode
		m.detailCardID = 0
		m.Resolver.DetailClosed()
		return m.openEdit(id)
	}
	return m, nil
}

func (m Model) openCapture() (tea.Model, tea.Cmd) {
	col := m.currentColumn()
	if col == nil {
		return m, nil
	}

	m.capture = &captureValues{}
	m.editCardID = 0
	m.captureForm = NewCardForm("Add this card?", &m.capture.Title, &m.capture.Description, &m.capture.Confirm)
	m.mode = CaptureMode
	return m, m.captureForm.Init()
}

func (m Model) openEdit(cardID int) (tea.Model, tea.Cmd) {
	card, _, _ := m.Store.FindCard(cardID)
	if card == nil {
		return m, nil
	}

	m.capture = &captureValues{Title: card.Title, Description: card.Description}
	m.editCardID = card.ID
	m.captureForm = NewCardForm("Save changes?", &m.capture.Title, &m.capture.Description, &m.capture.Confirm)
	m.mode = CaptureMode
	return m, m.captureForm.Init()
}

func (m Model) updateCapture(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.captureForm == nil {
		m.mode = NormalMode
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.mode = NormalMode
		m.captureForm = nil
		m.capture = nil
		return m, tea.ClearScreen
	}

	model, cmd := m.captureForm.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		m.captureForm = form
	}

	if m.captureForm.State == huh.StateCompleted {
		if m.capture != nil && m.capture.Confirm && m.capture.Title != "" {
			if m.editCardID != 0 {
				m.submitEdit()
			} else {
				m.submitCapture()
			}
		}
		m.mode = NormalMode
		m.captureForm = nil
		m.capture = nil
		m.editCardID = 0
		return m, tea.ClearScreen
	}

	return m, cmd
}

// submitCapture persists the new card, then mirrors it into the
// store at the tail of the selected column.
func (m *Model) submitCapture() {
	col := m.currentColumn()
	if col == nil {
		return
	}

	ctx, cancel := m.DBContext()
	defer cancel()

	card, err := m.Gateway.CreateCard(ctx, col.ID, m.capture.Title, m.capture.Description, 0)
	if err != nil {
		slog.Error("failed to create card", "column_id", col.ID, "error", err)
		return
	}

	m.Store.InsertCard(card, col.ID, card.Position)
	m.Session.LastColumnID = col.ID
}

// submitEdit merges the edited fields into the store, then persists
// them.
func (m *Model) submitEdit() {
	if !m.Store.UpdateCardFields(m.editCardID, board.UpdateCardRequest{
		Title:       &m.capture.Title,
		Description: &m.capture.Description,
	}) {
		return
	}
	card, _, _ := m.Store.FindCard(m.editCardID)

	ctx, cancel := m.DBContext()
	defer cancel()

	if err := m.Gateway.UpdateCard(ctx, card.ID, card.Title, card.Description, card.PriorityID); err != nil {
		slog.Warn("failed to persist card edit", "card_id", card.ID, "error", err)
	}
}
