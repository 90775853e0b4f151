package gateway

import (
	"context"
	"database/sql"
	"fmt"

	"tabula/internal/board"
)

// SQLite persists board state through plain database/sql. It
// implements the engine's Gateway contract plus the loader and the
// thin CRUD the surrounding shell needs.
//
// The store side of the engine is authoritative for ordering; this
// layer records whatever positions it is told and only shifts
// siblings where a single-card move needs room at an index.
type SQLite struct {
	db *sql.DB
}

// NewSQLite wraps an opened database.
func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

var _ board.Gateway = (*SQLite)(nil)

// MoveCard records that a card now belongs to targetColumnID at
// targetIndex. Sibling positions at or after the index are shifted
// to make room; the follow-up reorder call settles exact order.
func (s *SQLite) MoveCard(ctx context.Context, cardID, targetColumnID, targetIndex int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`UPDATE cards SET position = position + 1
		 WHERE column_id = ? AND position >= ? AND id != ?`,
		targetColumnID, targetIndex, cardID)
	if err != nil {
		return fmt.Errorf("failed to shift cards in column %d: %w", targetColumnID, err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE cards
		 SET column_id = ?, position = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		targetColumnID, targetIndex, cardID)
	if err != nil {
		return fmt.Errorf("failed to move card %d: %w", cardID, err)
	}

	return tx.Commit()
}

// ReorderCardsInColumn stores position = index for every listed card
// still in the column. Ids that moved elsewhere since the effect was
// captured are left alone.
func (s *SQLite) ReorderCardsInColumn(ctx context.Context, columnID int, orderedCardIDs []int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, cardID := range orderedCardIDs {
		_, err := tx.ExecContext(ctx,
			`UPDATE cards
			 SET position = ?, updated_at = CURRENT_TIMESTAMP
			 WHERE id = ? AND column_id = ?`,
			i, cardID, columnID)
		if err != nil {
			return fmt.Errorf("failed to reorder card %d: %w", cardID, err)
		}
	}

	return tx.Commit()
}

// ReorderColumns stores position = index for every listed column of
// the board.
func (s *SQLite) ReorderColumns(ctx context.Context, boardID int, orderedColumnIDs []int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, columnID := range orderedColumnIDs {
		_, err := tx.ExecContext(ctx,
			`UPDATE columns SET position = ? WHERE id = ? AND board_id = ?`,
			i, columnID, boardID)
		if err != nil {
			return fmt.Errorf("failed to reorder column %d: %w", columnID, err)
		}
	}

	return tx.Commit()
}

// ArchiveCard soft-deletes a card. Its column and position are kept
// as the restore hint.
func (s *SQLite) ArchiveCard(ctx context.Context, cardID int) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE cards SET archived = 1, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		cardID)
	if err != nil {
		return fmt.Errorf("failed to archive card %d: %w", cardID, err)
	}
	return nil
}

// RestoreCard reverses an archive.
func (s *SQLite) RestoreCard(ctx context.Context, cardID int) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE cards SET archived = 0, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		cardID)
	if err != nil {
		return fmt.Errorf("failed to restore card %d: %w", cardID, err)
	}
	return nil
}

// UpdateCard persists a card's editable fields after an optimistic
// store edit.
func (s *SQLite) UpdateCard(ctx context.Context, cardID int, title, description string, priorityID int) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE cards
		 SET title = ?, description = ?, priority_id = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		title, description, priorityID, cardID)
	if err != nil {
		return fmt.Errorf("failed to update card %d: %w", cardID, err)
	}
	return nil
}
