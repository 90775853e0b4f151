// Package gateway persists board state: a SQLite-backed
// implementation of the engine's persistence contract, a loader for
// the initial board snapshot, and the asynchronous dispatcher that
// commits optimistic effects without blocking the UI.
package gateway

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"tabula/internal/board"
)

// commitTimeout bounds a single effect commit.
const commitTimeout = 5 * time.Second

// Dispatcher commits effects fire-and-forget: each effect runs on
// its own goroutine and its result is only logged, never fed back to
// the store. The in-memory state can diverge from the backend on
// failure until the next full load; the failure is logged, nothing
// else. Overlapping commits for the same column may complete
// out of order; the backend keeps whatever lands last.
type Dispatcher struct {
	gw board.Gateway
	wg sync.WaitGroup
}

// NewDispatcher creates a dispatcher over the given gateway.
func NewDispatcher(gw board.Gateway) *Dispatcher {
	return &Dispatcher{gw: gw}
}

// Dispatch commits each effect on its own goroutine and returns
// immediately. Nil effect slices are fine.
func (d *Dispatcher) Dispatch(effects ...board.Effect) {
	for _, effect := range effects {
		if effect == nil {
			continue
		}
		d.wg.Add(1)
		go func(e board.Effect) {
			defer d.wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), commitTimeout)
			defer cancel()
			if err := e.Commit(ctx, d.gw); err != nil {
				slog.Warn("persistence commit failed, in-memory state may diverge until reload",
					"effect", effectName(e),
					"error", err)
			}
		}(effect)
	}
}

// Wait blocks until every dispatched effect has completed. Called on
// shutdown so a quit right after a drag does not lose the write.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func effectName(e board.Effect) string {
	switch e.(type) {
	case board.MoveCardEffect:
		return "move_card"
	case board.ReorderCardsEffect:
		return "reorder_cards"
	case board.ReorderColumnsEffect:
		return "reorder_columns"
	case board.ArchiveCardEffect:
		return "archive_card"
	case board.RestoreCardEffect:
		return "restore_card"
	default:
		return "unknown"
	}
}
