package board

import (
	"tabula/internal/models"
	"tabula/internal/position"
)

// DragKind classifies what a drag session is carrying.
type DragKind int

const (
	// DragNone means no drag is in flight.
	DragNone DragKind = iota
	// DragCard means a card is being dragged.
	DragCard
	// DragColumn means a whole column is being dragged.
	DragColumn
)

// NoTarget is passed to DragEnd when the gesture released over empty
// space. Real entity ids are always positive.
const NoTarget = 0

// DragState is the ephemeral record of an in-flight drag gesture.
// It is created on DragStart and zeroed on DragEnd, and is never
// persisted.
type DragState struct {
	Kind DragKind

	// CardID and OriginColumnID are set for card drags. The origin
	// column is where the card lived when the gesture began, which
	// may differ from its current column once DragOver has performed
	// a provisional move.
	CardID         int
	OriginColumnID int
	OriginIndex    int

	// ColumnID is the dragged column for column drags. For card drags
	// it is the card's current column and tracks provisional DragOver
	// moves, so the renderer can always tell where the card sits now.
	ColumnID int
}

// Machine drives a drag gesture through Idle -> Dragging -> Idle,
// mutating the store optimistically as the gesture progresses and
// emitting the persistence effects to dispatch on release.
type Machine struct {
	store *Store
	state DragState
}

// NewMachine creates a drag machine over the given store.
func NewMachine(store *Store) *Machine {
	return &Machine{store: store}
}

// State returns the current drag session.
func (m *Machine) State() DragState {
	return m.state
}

// Dragging reports whether a drag is in flight.
func (m *Machine) Dragging() bool {
	return m.state.Kind != DragNone
}

// DragStartCard begins a card drag. Cards and columns number their
// ids independently, so the caller names the entity kind instead of
// the machine guessing from a bare id. An unknown id leaves the
// machine Idle (stale ids from a previous render are expected, not
// errors).
func (m *Machine) DragStartCard(cardID int) {
	if card, col, idx := m.store.FindCard(cardID); card != nil {
		m.state = DragState{
			Kind:           DragCard,
			CardID:         card.ID,
			OriginColumnID: col.ID,
			OriginIndex:    idx,
			ColumnID:       col.ID,
		}
		return
	}
	m.state = DragState{}
}

// DragStartColumn begins a column drag. An unknown id leaves the
// machine Idle.
func (m *Machine) DragStartColumn(columnID int) {
	if col := m.store.FindColumn(columnID); col != nil {
		m.state = DragState{Kind: DragColumn, ColumnID: col.ID}
		return
	}
	m.state = DragState{}
}

// DragOver handles a hover event while dragging. For a card drag,
// hovering over a different column (directly, or over one of its
// cards) performs a provisional move: the card is appended to that
// column immediately so the user sees where it would land. The move
// is optimistic-only; nothing is dispatched until DragEnd. Hovering
// within the card's current column is a no-op, and column drags
// ignore hover entirely.
func (m *Machine) DragOver(overID int) {
	if m.state.Kind != DragCard {
		return
	}
	card, cur, _ := m.store.FindCard(m.state.CardID)
	if card == nil {
		return
	}
	over := m.resolveColumn(overID)
	if over == nil || over.ID == cur.ID {
		return
	}
	m.store.MoveCardToColumn(card.ID, over.ID, len(over.Cards))
	m.state.ColumnID = over.ID
}

// DragEnd completes the gesture, committing the final order to the
// store and returning the persistence effects to dispatch. The
// machine always returns to Idle, even when nothing resolved: a
// release over empty space simply cancels the drag. A provisional
// DragOver move is deliberately not rolled back on cancel.
func (m *Machine) DragEnd(overID int) []Effect {
	state := m.state
	m.state = DragState{}

	switch state.Kind {
	case DragColumn:
		return m.endColumnDrag(state, overID)
	case DragCard:
		return m.endCardDrag(state, overID)
	default:
		return nil
	}
}

func (m *Machine) endColumnDrag(state DragState, overID int) []Effect {
	over := m.resolveColumn(overID)
	if over == nil || over.ID == state.ColumnID {
		return nil
	}
	from := m.store.Board().ColumnIndex(state.ColumnID)
	to := m.store.Board().ColumnIndex(over.ID)
	if from < 0 || to < 0 {
		return nil
	}

	order := make([]int, 0, len(m.store.Columns()))
	for _, col := range m.store.Columns() {
		order = append(order, col.ID)
	}
	order = position.Reorder(order, from, to)
	if !m.store.ReorderColumns(order) {
		return nil
	}
	return []Effect{ReorderColumnsEffect{
		BoardID:          m.store.Board().ID,
		OrderedColumnIDs: order,
	}}
}

func (m *Machine) endCardDrag(state DragState, overID int) []Effect {
	card, cur, curIdx := m.store.FindCard(state.CardID)
	if card == nil {
		return nil
	}

	target, targetIdx := m.resolveDrop(overID, cur, curIdx)
	if target == nil {
		// Release over empty space cancels without committing, even
		// when a provisional hover move already changed columns.
		return nil
	}

	var effects []Effect
	if target.ID == cur.ID {
		// In-column order is resolved only at release. Skip the
		// dispatch entirely when the index did not change.
		if m.store.MoveCardToColumn(card.ID, cur.ID, targetIdx) {
			effects = append(effects, ReorderCardsEffect{
				ColumnID:       cur.ID,
				OrderedCardIDs: cur.CardIDs(),
			})
		}
	} else {
		// Release resolved straight into another column without a
		// provisional hover move having landed there first.
		m.store.MoveCardToColumn(card.ID, target.ID, targetIdx)
		effects = append(effects, ReorderCardsEffect{
			ColumnID:       target.ID,
			OrderedCardIDs: target.CardIDs(),
		})
	}

	// The column-membership change is persisted independently of
	// in-column order so partial failure of one call cannot corrupt
	// the other's intent.
	if card.ColumnID != state.OriginColumnID {
		effects = append(effects, MoveCardEffect{
			CardID:         card.ID,
			TargetColumnID: card.ColumnID,
			TargetIndex:    card.Position,
		})
	}
	return effects
}

// resolveColumn maps a hovered or released id to a column: directly,
// or through the card it identifies. Returns nil for unknown ids.
func (m *Machine) resolveColumn(id int) *models.Column {
	if id <= 0 {
		return nil
	}
	if col := m.store.FindColumn(id); col != nil {
		return col
	}
	if _, col, _ := m.store.FindCard(id); col != nil {
		return col
	}
	return nil
}

// resolveDrop maps the release id to a drop target. Releasing over a
// card targets that card's slot; releasing over a column body keeps
// the current index in the card's own column and appends to the tail
// of any other column.
func (m *Machine) resolveDrop(overID int, cur *models.Column, curIdx int) (*models.Column, int) {
	if overID <= 0 {
		return nil, -1
	}
	if col := m.store.FindColumn(overID); col != nil {
		if col.ID == cur.ID {
			return col, curIdx
		}
		return col, len(col.Cards)
	}
	if overCard, overCol, overIdx := m.store.FindCard(overID); overCard != nil {
		return overCol, overIdx
	}
	return nil, -1
}
