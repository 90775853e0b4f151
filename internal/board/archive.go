package board

import (
	"time"

	"tabula/internal/models"
)

// DefaultUndoWindow is how long an archived card stays undoable when
// no window is configured.
const DefaultUndoWindow = 5 * time.Second

// pendingUndo is the single outstanding archive that can still be
// reversed. The removed card itself is retained so restore can put
// it back at its last known column/position.
type pendingUndo struct {
	card     *models.Card
	deadline time.Time
}

// Archiver removes cards from the store on archive and tracks a
// single bounded undo window. Archival is committed to the store
// immediately; it is only reversible through Undo within the window.
type Archiver struct {
	store   *Store
	window  time.Duration
	now     func() time.Time
	pending *pendingUndo
}

// NewArchiver creates an archiver over the store. A zero window
// falls back to DefaultUndoWindow; now may be nil for time.Now.
func NewArchiver(store *Store, window time.Duration, now func() time.Time) *Archiver {
	if window <= 0 {
		window = DefaultUndoWindow
	}
	if now == nil {
		now = time.Now
	}
	return &Archiver{store: store, window: window, now: now}
}

// Archive removes the card from the store, opens (or replaces) the
// undo window, and returns the persistence effect to dispatch. A
// second archive while an undo is pending silently forfeits the
// earlier one: only the most recent archive is undoable. Unknown
// card ids return nil effects.
func (a *Archiver) Archive(cardID int) []Effect {
	card := a.store.RemoveCard(cardID)
	if card == nil {
		return nil
	}
	card.Archived = true
	a.pending = &pendingUndo{
		card:     card,
		deadline: a.now().Add(a.window),
	}
	return []Effect{ArchiveCardEffect{CardID: cardID}}
}

// Undo restores the pending card if its window has not elapsed,
// reinserting it at its last known column/position (clamped if the
// column shrank, falling back to the first column if the column is
// gone). Returns the restore effect, or nil when there is nothing
// undoable or the deadline passed.
func (a *Archiver) Undo() []Effect {
	p := a.pending
	if p == nil || a.now().After(p.deadline) {
		return nil
	}
	a.pending = nil

	card := p.card
	columnID := card.ColumnID
	if a.store.FindColumn(columnID) == nil {
		cols := a.store.Columns()
		if len(cols) == 0 {
			return nil
		}
		columnID = cols[0].ID
	}
	if !a.store.InsertCard(card, columnID, card.Position) {
		return nil
	}
	return []Effect{RestoreCardEffect{CardID: card.ID}}
}

// Undoable reports whether an undo is currently possible.
func (a *Archiver) Undoable() bool {
	return a.pending != nil && !a.now().After(a.pending.deadline)
}

// PendingCard returns the card awaiting undo, or nil.
func (a *Archiver) PendingCard() *models.Card {
	if !a.Undoable() {
		return nil
	}
	return a.pending.card
}

// Remaining returns how much of the undo window is left, for the UI
// countdown. Zero when nothing is undoable.
func (a *Archiver) Remaining() time.Duration {
	if !a.Undoable() {
		return 0
	}
	return a.pending.deadline.Sub(a.now())
}
