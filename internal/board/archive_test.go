package board

import (
	"testing"
	"time"
)

// fakeClock is a controllable time source for undo-window tests.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
}

func TestArchiveRemovesCardAndOpensWindow(t *testing.T) {
	s := newTestStore(t)
	clock := newClock()
	a := NewArchiver(s, 5*time.Second, clock.Now)

	effects := a.Archive(101)

	if got := effectTypes(effects); len(got) != 1 || got[0] != "archive" {
		t.Fatalf("effects = %v, want [archive]", got)
	}
	if card, _, _ := s.FindCard(101); card != nil {
		t.Error("archived card still present in store")
	}
	assertOrder(t, s, 1, "T2")
	if !a.Undoable() {
		t.Error("archive must open an undo window")
	}
	if a.Remaining() != 5*time.Second {
		t.Errorf("remaining = %v, want 5s", a.Remaining())
	}
}

func TestArchiveUnknownCard(t *testing.T) {
	s := newTestStore(t)
	a := NewArchiver(s, 0, nil)

	if effects := a.Archive(999); effects != nil {
		t.Errorf("archiving unknown card produced %v", effectTypes(effects))
	}
	if a.Undoable() {
		t.Error("no window should open for an unknown card")
	}
}

func TestUndoWithinWindowRestores(t *testing.T) {
	s := newTestStore(t)
	clock := newClock()
	a := NewArchiver(s, 5*time.Second, clock.Now)

	a.Archive(101)
	clock.Advance(3 * time.Second)
	effects := a.Undo()

	if got := effectTypes(effects); len(got) != 1 || got[0] != "restore" {
		t.Fatalf("effects = %v, want [restore]", got)
	}
	// Restored at its prior column/position.
	assertOrder(t, s, 1, "T1", "T2")
	assertOwnership(t, s)
	card, _, _ := s.FindCard(101)
	if card.Archived {
		t.Error("restored card still flagged archived")
	}
	if a.Undoable() {
		t.Error("undo must clear the pending entry")
	}
}

func TestUndoAfterDeadlineIsNoOp(t *testing.T) {
	s := newTestStore(t)
	clock := newClock()
	a := NewArchiver(s, 5*time.Second, clock.Now)

	a.Archive(101)
	clock.Advance(6 * time.Second)

	if effects := a.Undo(); effects != nil {
		t.Errorf("expired undo produced %v", effectTypes(effects))
	}
	if card, _, _ := s.FindCard(101); card != nil {
		t.Error("card must stay archived after the window elapses")
	}
	if a.Undoable() || a.Remaining() != 0 {
		t.Error("expired window must not be undoable")
	}
}

func TestUndoWithNothingPending(t *testing.T) {
	a := NewArchiver(newTestStore(t), 0, nil)
	if effects := a.Undo(); effects != nil {
		t.Errorf("undo with nothing pending produced %v", effectTypes(effects))
	}
}

func TestSecondArchiveForfeitsFirstUndo(t *testing.T) {
	s := newTestStore(t)
	clock := newClock()
	a := NewArchiver(s, 5*time.Second, clock.Now)

	// Archive T2, then immediately archive T1: only T1 is undoable,
	// T2 stays archived for good.
	a.Archive(102)
	a.Archive(101)

	if pending := a.PendingCard(); pending == nil || pending.ID != 101 {
		t.Fatalf("pending = %v, want card 101", pending)
	}

	a.Undo()
	if card, _, _ := s.FindCard(101); card == nil {
		t.Error("T1 should be restored")
	}
	if card, _, _ := s.FindCard(102); card != nil {
		t.Error("T2 must remain archived; its undo was forfeited")
	}
	// A second undo has nothing to act on.
	if effects := a.Undo(); effects != nil {
		t.Errorf("second undo produced %v", effectTypes(effects))
	}
}

func TestUndoClampsWhenColumnShrank(t *testing.T) {
	s := newWideStore(t)
	clock := newClock()
	a := NewArchiver(s, 5*time.Second, clock.Now)

	a.Archive(14) // D, position 3
	s.RemoveCard(11)
	s.RemoveCard(12)

	a.Undo()
	assertOrder(t, s, 1, "C", "D")
}

func TestUndoFallsBackWhenColumnGone(t *testing.T) {
	s := newTestStore(t)
	clock := newClock()
	a := NewArchiver(s, 5*time.Second, clock.Now)

	a.Archive(101)
	s.ReorderColumns([]int{2, 3, 1})
	s.Board().Columns = s.Board().Columns[:2] // To Do dropped entirely

	effects := a.Undo()
	if got := effectTypes(effects); len(got) != 1 || got[0] != "restore" {
		t.Fatalf("effects = %v, want [restore]", got)
	}
	if _, col, _ := s.FindCard(101); col == nil || col.ID != 2 {
		t.Errorf("card restored to column %v, want first column (id 2)", col)
	}
}
