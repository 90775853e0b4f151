package models

import "time"

// Card represents a single card on the kanban board.
//
// ColumnID and Position are the persistence view of where the card
// lives; in memory the owning column's Cards slice is authoritative
// and both fields are kept in sync by renumbering. An archived card
// is removed from its column's slice entirely but keeps its last
// ColumnID/Position as a restore hint.
type Card struct {
	ID            int
	Title         string
	Description   string
	PriorityID    int
	EstimatedTime int // minutes, 0 = unset
	DueDate       *time.Time
	Assignee      string
	Labels        []*Label
	ColumnID      int
	Position      int
	Archived      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CardSummary is a DTO for displaying cards on the board. The column
// title is derived from the owning column at projection time rather
// than stored on the card.
type CardSummary struct {
	ID          int
	Title       string
	PriorityID  int
	DueDate     *time.Time
	Assignee    string
	Labels      []*Label
	ColumnID    int
	ColumnTitle string
	Position    int
}
