package gateway

import (
	"context"
	"database/sql"
)

// runMigrations creates the schema and seeds a starter board when
// the database is empty.
func runMigrations(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS boards (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			background TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS columns (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			board_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			position INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (board_id) REFERENCES boards(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS cards (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			column_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			priority_id INTEGER NOT NULL DEFAULT 0,
			estimated_time INTEGER NOT NULL DEFAULT 0,
			due_date DATETIME,
			assignee TEXT NOT NULL DEFAULT '',
			position INTEGER NOT NULL,
			archived BOOLEAN NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (column_id) REFERENCES columns(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS labels (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			board_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			color TEXT NOT NULL,
			FOREIGN KEY (board_id) REFERENCES boards(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS card_labels (
			card_id INTEGER NOT NULL,
			label_id INTEGER NOT NULL,
			PRIMARY KEY (card_id, label_id),
			FOREIGN KEY (card_id) REFERENCES cards(id) ON DELETE CASCADE,
			FOREIGN KEY (label_id) REFERENCES labels(id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_cards_column
			ON cards(column_id, position)`,
		`CREATE INDEX IF NOT EXISTS idx_columns_board
			ON columns(board_id, position)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	return seedDefaultBoard(ctx, db)
}

// seedDefaultBoard creates a first board with the standard three
// columns when no board exists yet.
func seedDefaultBoard(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM boards").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	result, err := db.ExecContext(ctx,
		"INSERT INTO boards (name) VALUES (?)", "My Board")
	if err != nil {
		return err
	}
	boardID, err := result.LastInsertId()
	if err != nil {
		return err
	}

	for i, title := range []string{"To Do", "Doing", "Done"} {
		_, err := db.ExecContext(ctx,
			"INSERT INTO columns (board_id, title, position) VALUES (?, ?, ?)",
			boardID, title, i)
		if err != nil {
			return err
		}
	}
	return nil
}
