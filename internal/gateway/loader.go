package gateway

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tabula/internal/models"
)

// ErrBoardNotFound is returned when the requested board id does not
// exist.
var ErrBoardNotFound = errors.New("board not found")

// LoadBoard supplies the initial snapshot for a board view: the
// board, its columns in position order, and each column's
// non-archived cards in position order with labels attached.
// Archived cards are excluded entirely; they take no part in
// ordering.
func (s *SQLite) LoadBoard(ctx context.Context, boardID int) (*models.Board, error) {
	b := &models.Board{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, background FROM boards WHERE id = ?`, boardID,
	).Scan(&b.ID, &b.Name, &b.Background)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("board %d: %w", boardID, ErrBoardNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load board %d: %w", boardID, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, board_id, title, position
		 FROM columns WHERE board_id = ? ORDER BY position`, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to load columns: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		col := &models.Column{}
		if err := rows.Scan(&col.ID, &col.BoardID, &col.Title, &col.Position); err != nil {
			return nil, err
		}
		b.Columns = append(b.Columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	labels, err := s.loadCardLabels(ctx, boardID)
	if err != nil {
		return nil, err
	}

	for _, col := range b.Columns {
		cards, err := s.loadCards(ctx, col.ID, labels)
		if err != nil {
			return nil, err
		}
		col.Cards = cards
	}
	return b, nil
}

func (s *SQLite) loadCards(ctx context.Context, columnID int, labels map[int][]*models.Label) ([]*models.Card, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, column_id, title, description, priority_id, estimated_time,
		        due_date, assignee, position, created_at, updated_at
		 FROM cards
		 WHERE column_id = ? AND archived = 0
		 ORDER BY position`, columnID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cards for column %d: %w", columnID, err)
	}
	defer rows.Close()

	var cards []*models.Card
	for rows.Next() {
		card := &models.Card{}
		var due sql.NullTime
		if err := rows.Scan(
			&card.ID, &card.ColumnID, &card.Title, &card.Description,
			&card.PriorityID, &card.EstimatedTime, &due, &card.Assignee,
			&card.Position, &card.CreatedAt, &card.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if due.Valid {
			t := due.Time
			card.DueDate = &t
		}
		card.Labels = labels[card.ID]
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

// loadCardLabels fetches every card-label pairing for the board in
// one query, keyed by card id.
func (s *SQLite) loadCardLabels(ctx context.Context, boardID int) (map[int][]*models.Label, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT cl.card_id, l.id, l.board_id, l.name, l.color
		 FROM card_labels cl
		 JOIN labels l ON l.id = cl.label_id
		 WHERE l.board_id = ?`, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to load labels: %w", err)
	}
	defer rows.Close()

	byCard := make(map[int][]*models.Label)
	for rows.Next() {
		var cardID int
		label := &models.Label{}
		if err := rows.Scan(&cardID, &label.ID, &label.BoardID, &label.Name, &label.Color); err != nil {
			return nil, err
		}
		byCard[cardID] = append(byCard[cardID], label)
	}
	return byCard, rows.Err()
}

// ListBoards returns all boards without their columns, newest last.
func (s *SQLite) ListBoards(ctx context.Context) ([]*models.Board, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, background FROM boards ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	defer rows.Close()

	var boards []*models.Board
	for rows.Next() {
		b := &models.Board{}
		if err := rows.Scan(&b.ID, &b.Name, &b.Background); err != nil {
			return nil, err
		}
		boards = append(boards, b)
	}
	return boards, rows.Err()
}

// CreateCard inserts a card at the tail of the given column and
// returns it. The position is the current card count; the engine's
// renumbering keeps it canonical from then on.
func (s *SQLite) CreateCard(ctx context.Context, columnID int, title, description string, priorityID int) (*models.Card, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM cards WHERE column_id = ? AND archived = 0`,
		columnID).Scan(&count)
	if err != nil {
		return nil, fmt.Errorf("failed to count cards: %w", err)
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO cards (column_id, title, description, priority_id, position)
		 VALUES (?, ?, ?, ?, ?)`,
		columnID, title, description, priorityID, count)
	if err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	card := &models.Card{}
	var due sql.NullTime
	err = s.db.QueryRowContext(ctx,
		`SELECT id, column_id, title, description, priority_id, estimated_time,
		        due_date, assignee, position, created_at, updated_at
		 FROM cards WHERE id = ?`, id,
	).Scan(
		&card.ID, &card.ColumnID, &card.Title, &card.Description,
		&card.PriorityID, &card.EstimatedTime, &due, &card.Assignee,
		&card.Position, &card.CreatedAt, &card.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if due.Valid {
		t := due.Time
		card.DueDate = &t
	}
	return card, nil
}

// CreateColumn appends a column to the board and returns it.
func (s *SQLite) CreateColumn(ctx context.Context, boardID int, title string) (*models.Column, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM columns WHERE board_id = ?`, boardID).Scan(&count)
	if err != nil {
		return nil, fmt.Errorf("failed to count columns: %w", err)
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO columns (board_id, title, position) VALUES (?, ?, ?)`,
		boardID, title, count)
	if err != nil {
		return nil, fmt.Errorf("failed to create column: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.Column{ID: int(id), BoardID: boardID, Title: title, Position: count}, nil
}

// CreateBoard creates an empty board.
func (s *SQLite) CreateBoard(ctx context.Context, name string) (*models.Board, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO boards (name) VALUES (?)`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.Board{ID: int(id), Name: name}, nil
}
