package board

import (
	"testing"

	"tabula/internal/models"
)

func effectTypes(effects []Effect) []string {
	names := make([]string, len(effects))
	for i, e := range effects {
		switch e.(type) {
		case MoveCardEffect:
			names[i] = "move"
		case ReorderCardsEffect:
			names[i] = "reorder_cards"
		case ReorderColumnsEffect:
			names[i] = "reorder_columns"
		case ArchiveCardEffect:
			names[i] = "archive"
		case RestoreCardEffect:
			names[i] = "restore"
		}
	}
	return names
}

func TestDragStartCard(t *testing.T) {
	tests := []struct {
		name     string
		id       int
		wantKind DragKind
	}{
		{name: "card id", id: 101, wantKind: DragCard},
		{name: "unknown id stays idle", id: 999, wantKind: DragNone},
		{name: "column id stays idle", id: 3, wantKind: DragNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine(newTestStore(t))
			m.DragStartCard(tt.id)
			if m.State().Kind != tt.wantKind {
				t.Errorf("kind = %v, want %v", m.State().Kind, tt.wantKind)
			}
		})
	}
}

func TestDragStartColumn(t *testing.T) {
	tests := []struct {
		name     string
		id       int
		wantKind DragKind
	}{
		{name: "column id", id: 1, wantKind: DragColumn},
		{name: "unknown id stays idle", id: 999, wantKind: DragNone},
		{name: "card id stays idle", id: 101, wantKind: DragNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine(newTestStore(t))
			m.DragStartColumn(tt.id)
			if m.State().Kind != tt.wantKind {
				t.Errorf("kind = %v, want %v", m.State().Kind, tt.wantKind)
			}
		})
	}
}

func TestDragStartCardWithCollidingColumnID(t *testing.T) {
	// Cards and columns number their ids independently, so the first
	// card and the first column both get id 1. Grabbing the card must
	// start a card drag, not a column drag.
	s := NewStore(&models.Board{
		ID: 1,
		Columns: []*models.Column{
			{
				ID: 1, BoardID: 1, Title: "To Do",
				Cards: []*models.Card{{ID: 1, Title: "first"}},
			},
			{ID: 2, BoardID: 1, Title: "Doing"},
		},
	})
	m := NewMachine(s)

	m.DragStartCard(1)
	state := m.State()
	if state.Kind != DragCard || state.CardID != 1 {
		t.Fatalf("state = %+v, want card drag of card 1", state)
	}

	m.DragEnd(NoTarget)
	m.DragStartColumn(1)
	if m.State().Kind != DragColumn || m.State().ColumnID != 1 {
		t.Fatalf("state = %+v, want column drag of column 1", m.State())
	}
}

func TestDragStartCardRecordsOrigin(t *testing.T) {
	m := NewMachine(newTestStore(t))
	m.DragStartCard(102)

	state := m.State()
	if state.CardID != 102 || state.OriginColumnID != 1 || state.OriginIndex != 1 {
		t.Errorf("state = %+v, want card 102 origin column 1 index 1", state)
	}
}

func TestDragStateTracksCurrentColumn(t *testing.T) {
	s := newTestStore(t)
	m := NewMachine(s)

	m.DragStartCard(101)
	if m.State().ColumnID != 1 {
		t.Fatalf("ColumnID = %d after start, want 1", m.State().ColumnID)
	}

	m.DragOver(2)
	if m.State().ColumnID != 2 {
		t.Errorf("ColumnID = %d after hover move, want 2", m.State().ColumnID)
	}

	m.DragOver(2) // same column, no change
	if m.State().ColumnID != 2 {
		t.Errorf("ColumnID = %d after repeated hover, want 2", m.State().ColumnID)
	}
}

func TestDragOverProvisionalMove(t *testing.T) {
	s := newTestStore(t)
	m := NewMachine(s)

	m.DragStartCard(101)
	m.DragOver(2) // hover over Doing

	// The card moved optimistically, appended at the target's tail.
	assertOrder(t, s, 1, "T2")
	assertOrder(t, s, 2, "T1")
	assertOwnership(t, s)
}

func TestDragOverSameColumnIsNoOp(t *testing.T) {
	s := newTestStore(t)
	m := NewMachine(s)

	m.DragStartCard(101)
	m.DragOver(1)   // own column body
	m.DragOver(102) // sibling card

	assertOrder(t, s, 1, "T1", "T2")
}

func TestDragOverColumnDragIgnoresHover(t *testing.T) {
	s := newTestStore(t)
	m := NewMachine(s)

	m.DragStartColumn(1)
	m.DragOver(3)

	if s.Columns()[0].ID != 1 {
		t.Error("column drag must not move anything on hover")
	}
}

func TestDragEndCardCrossColumn(t *testing.T) {
	s := newTestStore(t)
	m := NewMachine(s)

	// Scenario from the board: drag T1 from To Do into Doing.
	m.DragStartCard(101)
	m.DragOver(2)
	effects := m.DragEnd(2)

	assertOrder(t, s, 1, "T2")
	assertOrder(t, s, 2, "T1")

	// The membership change is persisted as its own call; no
	// in-column reorder happened at release (index unchanged), so
	// only the move is dispatched.
	got := effectTypes(effects)
	if len(got) != 1 || got[0] != "move" {
		t.Fatalf("effects = %v, want [move]", got)
	}
	move := effects[0].(MoveCardEffect)
	if move.CardID != 101 || move.TargetColumnID != 2 || move.TargetIndex != 0 {
		t.Errorf("move = %+v, want card 101 -> column 2 index 0", move)
	}

	if m.Dragging() {
		t.Error("machine must return to idle after DragEnd")
	}
}

func TestDragEndCardReleaseOnCardInOtherColumn(t *testing.T) {
	s := newWideStore(t)
	m := NewMachine(s)

	// Move B onto the empty column, then a fresh drag releases A
	// directly onto B's slot without any hover having fired.
	s.MoveCardToColumn(12, 2, 0)

	m.DragStartCard(11)
	effects := m.DragEnd(12)

	assertOrder(t, s, 1, "C", "D")
	assertOrder(t, s, 2, "A", "B")

	got := effectTypes(effects)
	if len(got) != 2 || got[0] != "reorder_cards" || got[1] != "move" {
		t.Fatalf("effects = %v, want [reorder_cards move]", got)
	}
	reorder := effects[0].(ReorderCardsEffect)
	if reorder.ColumnID != 2 {
		t.Errorf("reorder column = %d, want 2", reorder.ColumnID)
	}
	wantOrder := []int{11, 12}
	for i, id := range reorder.OrderedCardIDs {
		if id != wantOrder[i] {
			t.Errorf("reorder order = %v, want %v", reorder.OrderedCardIDs, wantOrder)
			break
		}
	}
}

func TestDragEndInColumnReorder(t *testing.T) {
	s := newWideStore(t)
	m := NewMachine(s)

	// Drag A and release over C: stable move to index 2.
	m.DragStartCard(11)
	effects := m.DragEnd(13)

	assertOrder(t, s, 1, "B", "C", "A", "D")

	got := effectTypes(effects)
	if len(got) != 1 || got[0] != "reorder_cards" {
		t.Fatalf("effects = %v, want [reorder_cards]", got)
	}
}

func TestDragEndReleaseInPlaceDispatchesNothing(t *testing.T) {
	s := newWideStore(t)
	m := NewMachine(s)

	m.DragStartCard(11)
	if effects := m.DragEnd(11); len(effects) != 0 {
		t.Errorf("release in place produced effects %v, want none", effectTypes(effects))
	}
	assertOrder(t, s, 1, "A", "B", "C", "D")
}

func TestDragEndSingleElementReorderIsNoOp(t *testing.T) {
	s := newTestStore(t)
	m := NewMachine(s)

	// Board scenario: move T1 to Doing, then "reorder" Doing with
	// itself. The second gesture must not dispatch anything.
	m.DragStartCard(101)
	m.DragOver(2)
	m.DragEnd(2)

	m.DragStartCard(101)
	effects := m.DragEnd(2)
	if len(effects) != 0 {
		t.Errorf("single-element reorder produced effects %v, want none", effectTypes(effects))
	}
	assertOrder(t, s, 1, "T2")
	assertOrder(t, s, 2, "T1")
}

func TestDragEndNoTargetCancels(t *testing.T) {
	s := newTestStore(t)
	m := NewMachine(s)

	m.DragStartCard(101)
	m.DragOver(2)
	effects := m.DragEnd(NoTarget)

	if len(effects) != 0 {
		t.Errorf("cancel produced effects %v, want none", effectTypes(effects))
	}
	if m.Dragging() {
		t.Error("machine must be idle after cancel")
	}
	// The provisional hover move is not rolled back on cancel.
	assertOrder(t, s, 2, "T1")
}

func TestDragEndColumnReorder(t *testing.T) {
	s := newTestStore(t)
	m := NewMachine(s)

	m.DragStartColumn(1)
	effects := m.DragEnd(3)

	wantIDs := []int{2, 3, 1}
	for i, col := range s.Columns() {
		if col.ID != wantIDs[i] {
			t.Errorf("column index %d = id %d, want %d", i, col.ID, wantIDs[i])
		}
	}

	got := effectTypes(effects)
	if len(got) != 1 || got[0] != "reorder_columns" {
		t.Fatalf("effects = %v, want [reorder_columns]", got)
	}
	reorder := effects[0].(ReorderColumnsEffect)
	if reorder.BoardID != 1 {
		t.Errorf("board id = %d, want 1", reorder.BoardID)
	}
	for i, id := range reorder.OrderedColumnIDs {
		if id != wantIDs[i] {
			t.Errorf("order = %v, want %v", reorder.OrderedColumnIDs, wantIDs)
			break
		}
	}
}

func TestDragEndColumnOnItselfIsNoOp(t *testing.T) {
	s := newTestStore(t)
	m := NewMachine(s)

	m.DragStartColumn(1)
	if effects := m.DragEnd(1); len(effects) != 0 {
		t.Errorf("column dropped on itself produced effects %v, want none", effectTypes(effects))
	}
}

func TestDragEndWithoutStartIsNoOp(t *testing.T) {
	m := NewMachine(newTestStore(t))
	if effects := m.DragEnd(2); effects != nil {
		t.Errorf("DragEnd without a start produced %v", effectTypes(effects))
	}
}

func TestDragStaleCardDuringSession(t *testing.T) {
	s := newTestStore(t)
	m := NewMachine(s)

	m.DragStartCard(101)
	s.RemoveCard(101) // archived mid-drag by another path

	m.DragOver(2) // must not panic or resurrect the card
	if effects := m.DragEnd(2); len(effects) != 0 {
		t.Errorf("stale drag produced effects %v, want none", effectTypes(effects))
	}
	assertOwnership(t, s)
}
