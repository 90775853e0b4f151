// Package cmd wires the command line surface: flag parsing, engine
// assembly and the bubbletea program lifecycle.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"tabula/internal/board"
	"tabula/internal/config"
	"tabula/internal/gateway"
	"tabula/internal/logging"
	"tabula/internal/tui"
)

var (
	boardID int
	cardID  int
)

var rootCmd = &cobra.Command{
	Use:   "tabula",
	Short: "Tabula - a terminal kanban board",
	Long: `Tabula is a terminal kanban board with keyboard-driven drag and
drop, undoable archiving and card deep links.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().IntVar(&boardID, "board", 0, "board to open (defaults to the last used board)")
	rootCmd.Flags().IntVar(&cardID, "card", 0, "open this card's detail view on startup")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func run(ctx context.Context) error {
	if err := logging.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := gateway.InitDB(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	gw := gateway.NewSQLite(db)
	dispatcher := gateway.NewDispatcher(gw)

	sess := board.LoadSession()
	openBoard := boardID
	if openBoard == 0 {
		openBoard = sess.LastBoardID
	}
	if openBoard == 0 {
		boards, err := gw.ListBoards(ctx)
		if err != nil {
			return fmt.Errorf("failed to list boards: %w", err)
		}
		if len(boards) == 0 {
			return fmt.Errorf("no boards found")
		}
		openBoard = boards[0].ID
	}

	loaded, err := gw.LoadBoard(ctx, openBoard)
	if errors.Is(err, gateway.ErrBoardNotFound) && boardID == 0 {
		// Stale session id, fall back to whatever exists.
		boards, lerr := gw.ListBoards(ctx)
		if lerr != nil || len(boards) == 0 {
			return fmt.Errorf("failed to load board %d: %w", openBoard, err)
		}
		openBoard = boards[0].ID
		loaded, err = gw.LoadBoard(ctx, openBoard)
	}
	if err != nil {
		return fmt.Errorf("failed to load board %d: %w", openBoard, err)
	}
	sess.LastBoardID = loaded.ID

	store := board.NewStore(loaded)
	model := tui.NewModel(ctx, cfg, sess, gw, dispatcher, store, cardID)

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}

	// Let in-flight commits land before the process exits.
	dispatcher.Wait()

	if err := sess.Save(); err != nil {
		slog.Warn("failed to save session", "error", err)
	}
	return nil
}
