// Package tui is the terminal shell around the board engine. It owns
// the bubbletea update loop, the single thread that mutates the
// optimistic store, and translates key gestures into drag events,
// archive/undo actions and deep-link resolution.
package tui

import (
	"context"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"tabula/internal/board"
	"tabula/internal/config"
	"tabula/internal/gateway"
)

// Mode identifies which input mode the shell is in.
type Mode int

const (
	// NormalMode is board navigation and dragging.
	NormalMode Mode = iota
	// SearchMode is incremental filter input.
	SearchMode
	// CaptureMode is the quick-capture card form.
	CaptureMode
	// DetailMode is the full card detail view.
	DetailMode
)

// captureValues backs the quick-capture form fields.
type captureValues struct {
	Title       string
	Description string
	Confirm     bool
}

// dbTimeout bounds synchronous database calls made from the update
// loop (quick-capture insert, board reload).
const dbTimeout = 3 * time.Second

// navClearDelay is how long after a deep link resolves before the
// identifier is scrubbed from navigation state.
const navClearDelay = 500 * time.Millisecond

// Model is the bubbletea model. It composes the engine pieces and
// the ephemeral view state around them.
type Model struct {
	Ctx  context.Context
	Cfg  *config.Config
	Keys config.KeyMappings

	Store      *board.Store
	Machine    *board.Machine
	Archiver   *board.Archiver
	Resolver   *board.Resolver
	Projection *board.Projection
	Session    *board.SessionContext

	Gateway    *gateway.SQLite
	Dispatcher *gateway.Dispatcher

	styles Styles

	mode Mode

	// Selection. selectedCol indexes the projected column list;
	// selectedCard indexes the visible cards of that column.
	selectedCol  int
	selectedCard int

	// dropIdx is the target slot while a card drag is in flight;
	// colDropIdx the target column index during a column drag.
	dropIdx    int
	colDropIdx int

	// Search.
	searchInput textinput.Model
	query       string

	// Detail view.
	detailCardID int

	// Deep-link highlight, cleared when the deadline passes.
	highlightCardID int
	highlightUntil  time.Time

	// Quick capture and card edit share one form. Values live behind
	// a pointer because the form writes through pointers that must
	// survive model copies. editCardID is 0 when capturing.
	captureForm *huh.Form
	capture     *captureValues
	editCardID  int

	width  int
	height int
}

// NewModel assembles the shell around a loaded board. deepLinkCardID
// is the card identifier from navigation (0 for none).
func NewModel(
	ctx context.Context,
	cfg *config.Config,
	sess *board.SessionContext,
	gw *gateway.SQLite,
	dispatcher *gateway.Dispatcher,
	store *board.Store,
	deepLinkCardID int,
) Model {
	resolver := board.NewResolver(nil)
	if deepLinkCardID > 0 {
		resolver.SetTarget(deepLinkCardID)
	}

	search := textinput.New()
	search.Placeholder = "search cards..."

	m := Model{
		Ctx:         ctx,
		Cfg:         cfg,
		Keys:        cfg.KeyMappings,
		Store:       store,
		Machine:     board.NewMachine(store),
		Archiver:    board.NewArchiver(store, cfg.UndoWindow(), nil),
		Resolver:    resolver,
		Projection:  board.NewProjection(store),
		Session:     sess,
		Gateway:     gw,
		Dispatcher:  dispatcher,
		styles:      NewStyles(&cfg.Theme),
		searchInput: search,
	}

	// Start on the column the last session captured into, so
	// quick-capture lands there again without any navigation. A stale
	// or foreign column id leaves the selection at the first column.
	if sess != nil && sess.LastColumnID > 0 {
		for i, col := range store.Columns() {
			if col.ID == sess.LastColumnID {
				m.selectedCol = i
				break
			}
		}
	}
	return m
}

// Init runs deep-link resolution for an identifier present at mount.
func (m Model) Init() tea.Cmd {
	if m.Resolver.Pending() > 0 {
		return func() tea.Msg { return resolveDeepLinkMsg{} }
	}
	return nil
}

// DBContext returns a bounded context for synchronous database work
// done on the update loop.
func (m Model) DBContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.Ctx, dbTimeout)
}

// visibleColumns is the projected view the renderer and the
// selection logic share.
func (m Model) visibleColumns() []*board.ColumnView {
	return m.Projection.View(m.query)
}

// currentColumn returns the selected projected column, or nil.
func (m Model) currentColumn() *board.ColumnView {
	cols := m.visibleColumns()
	if m.selectedCol < 0 || m.selectedCol >= len(cols) {
		return nil
	}
	return cols[m.selectedCol]
}

// currentCardID returns the id of the selected visible card, or 0.
func (m Model) currentCardID() int {
	col := m.currentColumn()
	if col == nil || m.selectedCard < 0 || m.selectedCard >= len(col.Cards) {
		return 0
	}
	return col.Cards[m.selectedCard].ID
}

// clampSelection keeps the selection inside the projected board
// after any structural change.
func (m *Model) clampSelection() {
	cols := m.visibleColumns()
	if len(cols) == 0 {
		m.selectedCol, m.selectedCard = 0, 0
		return
	}
	if m.selectedCol >= len(cols) {
		m.selectedCol = len(cols) - 1
	}
	if m.selectedCol < 0 {
		m.selectedCol = 0
	}
	cards := cols[m.selectedCol].Cards
	if m.selectedCard >= len(cards) {
		m.selectedCard = len(cards) - 1
	}
	if m.selectedCard < 0 {
		m.selectedCard = 0
	}
}

// selectCard moves the selection to the given card wherever it is
// visible. Reports whether the card's row was found; a filtered-out
// or unloaded card cannot be scrolled to and the caller skips the
// attempt rather than retrying.
func (m *Model) selectCard(cardID int) bool {
	for colIdx, col := range m.visibleColumns() {
		for cardIdx, card := range col.Cards {
			if card.ID == cardID {
				m.selectedCol = colIdx
				m.selectedCard = cardIdx
				return true
			}
		}
	}
	return false
}
