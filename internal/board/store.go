// Package board implements the ordering and optimistic
// synchronization engine for a kanban board: the in-memory store the
// UI renders, the drag state machine that mutates it, archive/undo,
// deep-link resolution, and the read-only view projection.
package board

import (
	"time"

	"tabula/internal/models"
	"tabula/internal/position"
)

// Store is the single in-memory source of truth for a board's
// columns and cards. Every mutation is applied here synchronously
// before the matching persistence effect is dispatched; the UI only
// ever renders this state.
//
// All operations are total: an unknown card or column id is a silent
// no-op, never an error. After any operation the store is
// structurally valid: every card belongs to exactly one column and
// positions are dense 0..n-1 per column.
//
// Store is not safe for concurrent use. The update loop is the only
// mutator, so no locking is needed.
type Store struct {
	board *models.Board
}

// NewStore wraps a loaded board. Positions are renumbered so that
// in-memory order is canonical regardless of what persistence held.
func NewStore(b *models.Board) *Store {
	if b == nil {
		b = &models.Board{}
	}
	s := &Store{board: b}
	s.renumberColumns()
	for _, col := range b.Columns {
		s.renumberCards(col)
	}
	return s
}

// Board returns the underlying board. Callers must treat it as
// read-only; all mutation goes through Store operations.
func (s *Store) Board() *models.Board {
	return s.board
}

// Columns returns the board's columns in display order.
func (s *Store) Columns() []*models.Column {
	return s.board.Columns
}

// FindColumn returns the column with the given id, or nil.
func (s *Store) FindColumn(columnID int) *models.Column {
	return s.board.FindColumn(columnID)
}

// FindCard searches every column for the card with the given id.
// Returns the card, its owning column and its index, or
// (nil, nil, -1) when no column holds it.
func (s *Store) FindCard(cardID int) (*models.Card, *models.Column, int) {
	for _, col := range s.board.Columns {
		if card, idx := col.FindCard(cardID); card != nil {
			return card, col, idx
		}
	}
	return nil, nil, -1
}

// MoveCardToColumn removes the card from its current column and
// inserts it at targetIndex in the target column, updating the
// card's ColumnID. Reports whether the store changed. Unknown card
// or column ids are no-ops, as is moving a card onto its own
// current column/index.
func (s *Store) MoveCardToColumn(cardID, targetColumnID, targetIndex int) bool {
	card, src, idx := s.FindCard(cardID)
	if card == nil {
		return false
	}
	dst := s.FindColumn(targetColumnID)
	if dst == nil {
		return false
	}
	if src.ID == dst.ID {
		if clampIndex(targetIndex, len(src.Cards)-1) == idx {
			return false
		}
		src.Cards = position.Reorder(src.Cards, idx, targetIndex)
		s.renumberCards(src)
		return true
	}

	src.Cards = position.Remove(src.Cards, idx)
	dst.Cards = position.Insert(dst.Cards, card, targetIndex)
	card.ColumnID = dst.ID
	s.renumberCards(src)
	s.renumberCards(dst)
	return true
}

// ReorderCardsInColumn reorders the column's cards to match the
// given id sequence. Ids not present in the column are ignored;
// cards of the column missing from the sequence keep their relative
// order after the listed ones. Reports whether the order changed.
func (s *Store) ReorderCardsInColumn(columnID int, orderedCardIDs []int) bool {
	col := s.FindColumn(columnID)
	if col == nil {
		return false
	}

	reordered := make([]*models.Card, 0, len(col.Cards))
	taken := make(map[int]bool, len(orderedCardIDs))
	for _, id := range orderedCardIDs {
		if taken[id] {
			continue
		}
		if card, _ := col.FindCard(id); card != nil {
			reordered = append(reordered, card)
			taken[id] = true
		}
	}
	for _, card := range col.Cards {
		if !taken[card.ID] {
			reordered = append(reordered, card)
		}
	}

	if sameCardOrder(col.Cards, reordered) {
		return false
	}
	col.Cards = reordered
	s.renumberCards(col)
	return true
}

// ReorderColumns reorders the board's column list to match the given
// id sequence, with the same ignore/keep semantics as card reorder.
// Reports whether the order changed.
func (s *Store) ReorderColumns(orderedColumnIDs []int) bool {
	reordered := make([]*models.Column, 0, len(s.board.Columns))
	taken := make(map[int]bool, len(orderedColumnIDs))
	for _, id := range orderedColumnIDs {
		if taken[id] {
			continue
		}
		if col := s.FindColumn(id); col != nil {
			reordered = append(reordered, col)
			taken[id] = true
		}
	}
	for _, col := range s.board.Columns {
		if !taken[col.ID] {
			reordered = append(reordered, col)
		}
	}

	if sameColumnOrder(s.board.Columns, reordered) {
		return false
	}
	s.board.Columns = reordered
	s.renumberColumns()
	return true
}

// UpdateCardRequest carries a partial card update. Nil fields are
// left untouched, so edits made outside the board view (e.g. a table
// view title edit) merge into the same store the board renders.
type UpdateCardRequest struct {
	Title         *string
	Description   *string
	PriorityID    *int
	EstimatedTime *int
	DueDate       *time.Time
	Assignee      *string
	Labels        []*models.Label // nil = unchanged
}

// UpdateCardFields shallow-merges the request into the card wherever
// it is found. Reports whether a card was updated.
func (s *Store) UpdateCardFields(cardID int, req UpdateCardRequest) bool {
	card, _, _ := s.FindCard(cardID)
	if card == nil {
		return false
	}
	if req.Title != nil {
		card.Title = *req.Title
	}
	if req.Description != nil {
		card.Description = *req.Description
	}
	if req.PriorityID != nil {
		card.PriorityID = *req.PriorityID
	}
	if req.EstimatedTime != nil {
		card.EstimatedTime = *req.EstimatedTime
	}
	if req.DueDate != nil {
		due := *req.DueDate
		card.DueDate = &due
	}
	if req.Assignee != nil {
		card.Assignee = *req.Assignee
	}
	if req.Labels != nil {
		card.Labels = req.Labels
	}
	return true
}

// RemoveCard removes the card from whichever column holds it and
// returns it, with its last ColumnID and Position intact as a
// restore hint. Returns nil when no column holds the card.
func (s *Store) RemoveCard(cardID int) *models.Card {
	card, col, idx := s.FindCard(cardID)
	if card == nil {
		return nil
	}
	// Record the hint before renumbering shifts siblings.
	card.Position = idx
	col.Cards = position.Remove(col.Cards, idx)
	s.renumberCards(col)
	return card
}

// InsertCard places the card at index in the given column. The
// inverse of RemoveCard, used by undo-restore. Reports whether the
// card was inserted; a card whose id is already present somewhere in
// the store is a no-op, preserving exclusive ownership.
func (s *Store) InsertCard(card *models.Card, columnID, index int) bool {
	if card == nil {
		return false
	}
	if existing, _, _ := s.FindCard(card.ID); existing != nil {
		return false
	}
	col := s.FindColumn(columnID)
	if col == nil {
		return false
	}
	col.Cards = position.Insert(col.Cards, card, index)
	card.ColumnID = col.ID
	card.Archived = false
	s.renumberCards(col)
	return true
}

// renumberCards assigns Position = index for every card in the
// column. The sole producer of canonical card positions.
func (s *Store) renumberCards(col *models.Column) {
	for i, card := range col.Cards {
		card.Position = i
		card.ColumnID = col.ID
	}
}

// renumberColumns assigns Position = index for every column.
func (s *Store) renumberColumns() {
	for i, col := range s.board.Columns {
		col.Position = i
	}
}

func clampIndex(i, max int) int {
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}

func sameCardOrder(a, b []*models.Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}

func sameColumnOrder(a, b []*models.Column) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
