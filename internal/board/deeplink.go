package board

import (
	"time"

	"tabula/internal/models"
)

// HighlightDuration is how long a deep-linked card stays highlighted
// before the highlight auto-clears.
const HighlightDuration = 1200 * time.Millisecond

// ResolveResult describes what the UI should do after a deep link
// resolved: open the card's detail view, highlight it until the
// deadline, and attempt to scroll its row into view once.
type ResolveResult struct {
	Card           *models.Card
	Column         *models.Column
	HighlightUntil time.Time

	// ScrollTo is a one-shot request; if the card's row is not
	// rendered when the UI gets to it, the scroll is skipped, not
	// retried.
	ScrollTo int
}

// Resolver opens the detail view for a card identifier arriving via
// navigation, exactly once per navigation event. The identifier
// stays pending while the card is absent (the board may still be
// loading), and a resolved identifier is not re-processed on
// unrelated re-renders until the detail view closes.
type Resolver struct {
	pendingCardID int
	processedID   int
	now           func() time.Time
}

// NewResolver creates a resolver; now may be nil for time.Now.
func NewResolver(now func() time.Time) *Resolver {
	if now == nil {
		now = time.Now
	}
	return &Resolver{now: now}
}

// SetTarget records a card identifier arriving via navigation. A new
// identifier resets the processed marker so it can resolve even if a
// previous link already did.
func (r *Resolver) SetTarget(cardID int) {
	if cardID != r.pendingCardID {
		r.processedID = 0
	}
	r.pendingCardID = cardID
}

// Pending returns the unresolved card identifier, or 0.
func (r *Resolver) Pending() int {
	return r.pendingCardID
}

// Resolve attempts to resolve the pending identifier against the
// store. Returns nil when there is nothing pending, the identifier
// was already processed, or the card is not on the board (the
// identifier is left in place rather than erroring; the board's load
// may not have completed yet).
func (r *Resolver) Resolve(store *Store) *ResolveResult {
	if r.pendingCardID == 0 || r.pendingCardID == r.processedID {
		return nil
	}
	card, col, _ := store.FindCard(r.pendingCardID)
	if card == nil {
		return nil
	}
	r.processedID = r.pendingCardID
	return &ResolveResult{
		Card:           card,
		Column:         col,
		HighlightUntil: r.now().Add(HighlightDuration),
		ScrollTo:       card.ID,
	}
}

// ClearNavigation scrubs the identifier from navigation state so
// closing and reopening the view does not re-trigger the same link.
// The processed marker is kept until the detail view closes.
func (r *Resolver) ClearNavigation() {
	r.pendingCardID = 0
}

// DetailClosed resets the processed marker so the same identifier
// can be deep-linked to again by a future navigation event.
func (r *Resolver) DetailClosed() {
	r.processedID = 0
}
