package board

import "context"

// Gateway is the persistence collaborator the engine dispatches to.
// Calls are fire-and-forget from the engine's point of view: the
// store has already been mutated by the time an effect is committed,
// and the result is never used to roll the store back.
type Gateway interface {
	MoveCard(ctx context.Context, cardID, targetColumnID, targetIndex int) error
	ReorderCardsInColumn(ctx context.Context, columnID int, orderedCardIDs []int) error
	ReorderColumns(ctx context.Context, boardID int, orderedColumnIDs []int) error
	ArchiveCard(ctx context.Context, cardID int) error
	RestoreCard(ctx context.Context, cardID int) error
}

// Effect is a pending persistence call produced by an optimistic
// mutation. Splitting apply (store mutation) from Commit keeps the
// boundary explicit so a retry or rollback layer could be added
// without redesigning the engine.
type Effect interface {
	Commit(ctx context.Context, gw Gateway) error
}

// MoveCardEffect records that a card's owning column changed.
type MoveCardEffect struct {
	CardID         int
	TargetColumnID int
	TargetIndex    int
}

func (e MoveCardEffect) Commit(ctx context.Context, gw Gateway) error {
	return gw.MoveCard(ctx, e.CardID, e.TargetColumnID, e.TargetIndex)
}

// ReorderCardsEffect records the final card order of one column.
type ReorderCardsEffect struct {
	ColumnID       int
	OrderedCardIDs []int
}

func (e ReorderCardsEffect) Commit(ctx context.Context, gw Gateway) error {
	return gw.ReorderCardsInColumn(ctx, e.ColumnID, e.OrderedCardIDs)
}

// ReorderColumnsEffect records the board's new column order.
type ReorderColumnsEffect struct {
	BoardID          int
	OrderedColumnIDs []int
}

func (e ReorderColumnsEffect) Commit(ctx context.Context, gw Gateway) error {
	return gw.ReorderColumns(ctx, e.BoardID, e.OrderedColumnIDs)
}

// ArchiveCardEffect records a card archive.
type ArchiveCardEffect struct {
	CardID int
}

func (e ArchiveCardEffect) Commit(ctx context.Context, gw Gateway) error {
	return gw.ArchiveCard(ctx, e.CardID)
}

// RestoreCardEffect records an archive undo.
type RestoreCardEffect struct {
	CardID int
}

func (e RestoreCardEffect) Commit(ctx context.Context, gw Gateway) error {
	return gw.RestoreCard(ctx, e.CardID)
}
