package models

// Board is the top-level container: a named board with an ordered
// list of columns. Column order is given by each column's Position,
// which always matches its index in Columns.
type Board struct {
	ID         int
	Name       string
	Background string
	Columns    []*Column
}

// FindColumn returns the column with the given ID, or nil.
func (b *Board) FindColumn(columnID int) *Column {
	for _, col := range b.Columns {
		if col.ID == columnID {
			return col
		}
	}
	return nil
}

// ColumnIndex returns the index of the column with the given ID,
// or -1 if the board has no such column.
func (b *Board) ColumnIndex(columnID int) int {
	for i, col := range b.Columns {
		if col.ID == columnID {
			return i
		}
	}
	return -1
}
