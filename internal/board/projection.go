package board

import (
	"github.com/sahilm/fuzzy"

	"tabula/internal/models"
)

// ColumnView is one column as the UI renders it: the cards that
// survive the active filter, as summaries with the owning column's
// title derived at projection time.
type ColumnView struct {
	ID         int
	Title      string
	Cards      []*models.CardSummary
	TotalCards int // unfiltered count, for the "3/7" column header
}

// Projection derives the filtered list the UI renders from the
// store. It is read-only: projecting never mutates the store, and a
// projection is recomputed from scratch on every render.
type Projection struct {
	store *Store
}

// NewProjection creates a projection over the store.
func NewProjection(store *Store) *Projection {
	return &Projection{store: store}
}

// View returns every column's visible cards. An empty query keeps
// all cards; otherwise cards are fuzzy-matched on title and label
// names.
func (p *Projection) View(query string) []*ColumnView {
	views := make([]*ColumnView, 0, len(p.store.Columns()))
	for _, col := range p.store.Columns() {
		view := &ColumnView{
			ID:         col.ID,
			Title:      col.Title,
			TotalCards: len(col.Cards),
		}
		for _, card := range col.Cards {
			if query != "" && !matches(query, card) {
				continue
			}
			view.Cards = append(view.Cards, summarize(card, col))
		}
		views = append(views, view)
	}
	return views
}

// matches reports whether the card survives the query using fuzzy
// matching over its title and label names.
func matches(query string, card *models.Card) bool {
	haystack := []string{card.Title}
	for _, label := range card.Labels {
		haystack = append(haystack, label.Name)
	}
	return len(fuzzy.Find(query, haystack)) > 0
}

// summarize builds the board-card DTO, deriving the column title
// from the owning column rather than a stored copy.
func summarize(card *models.Card, col *models.Column) *models.CardSummary {
	return &models.CardSummary{
		ID:          card.ID,
		Title:       card.Title,
		PriorityID:  card.PriorityID,
		DueDate:     card.DueDate,
		Assignee:    card.Assignee,
		Labels:      card.Labels,
		ColumnID:    col.ID,
		ColumnTitle: col.Title,
		Position:    card.Position,
	}
}
