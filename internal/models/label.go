package models

// Label is a colored tag that can be attached to any number of cards
// on the same board.
type Label struct {
	ID      int
	BoardID int
	Name    string
	Color   string // hex, e.g. "#EF4444"
}
