package models

// Column represents a kanban board column (e.g., "To Do", "Doing", "Done").
// Cards are kept in display order; every card's Position matches its index
// in Cards after any structural change.
type Column struct {
	ID       int
	BoardID  int
	Title    string
	Position int
	Cards    []*Card
}

// FindCard returns the card with the given ID and its index in the
// column, or (nil, -1) if the column does not hold it.
func (c *Column) FindCard(cardID int) (*Card, int) {
	for i, card := range c.Cards {
		if card.ID == cardID {
			return card, i
		}
	}
	return nil, -1
}

// CardIDs returns the ids of the column's cards in display order.
func (c *Column) CardIDs() []int {
	ids := make([]int, len(c.Cards))
	for i, card := range c.Cards {
		ids[i] = card.ID
	}
	return ids
}
