package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/herohde/mcumax/pkg/board"
	"github.com/herohde/mcumax/pkg/board/fen"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

var version = build.NewVersion(0, 1, 0)

// Options are engine creation options.
type Options struct {
	// NodeMax is the default node budget passed to FindBestMove if the
	// caller does not override it with a nonzero value of its own.
	NodeMax uint64
	// DepthMax is the default depth ceiling passed to FindBestMove.
	DepthMax int
	// Hash is reserved for a future transposition table size in MB; this
	// engine does not yet implement one, so it has no effect.
	Hash uint
}

func (o Options) String() string {
	return fmt.Sprintf("{nodeMax=%v, depthMax=%v, hash=%v}", o.NodeMax, o.DepthMax, o.Hash)
}

// Option is an engine creation option.
type Option func(*Engine)

// WithNodeMax sets the default node budget.
func WithNodeMax(n uint64) Option {
	return func(e *Engine) {
		e.opts.NodeMax = n
	}
}

// WithDepthMax sets the default depth ceiling.
func WithDepthMax(d int) Option {
	return func(e *Engine) {
		e.opts.DepthMax = d
	}
}

// WithHash sets the reserved transposition table size.
func WithHash(mb uint) Option {
	return func(e *Engine) {
		e.opts.Hash = mb
	}
}

// Engine wraps a board.Position with locking, logging and a host-callback
// bridge, so a single Engine value can be driven from one goroutine while
// StopSearch is called concurrently from another (e.g. a clock watchdog),
// matching the core's own callback/StopSearch contract (section 5).
type Engine struct {
	opts Options

	mu       sync.Mutex
	pos      *board.Position
	callback func(*Engine)
	stop     iox.AsyncCloser
}

// New initializes an engine at the standard starting position.
func New(opts ...Option) *Engine {
	e := &Engine{pos: board.NewGame(), stop: iox.NewAsyncCloser()}
	for _, fn := range opts {
		fn(e)
	}
	e.pos.SetCallback(e.onSearchTick)

	logw.Infof(context.Background(), "Initialized engine %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("mcumax %v", version)
}

// Options returns the engine's default search budget.
func (e *Engine) Options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.opts
}

// LoadFEN replaces the current position with the one described by s. On a
// parse error the engine's existing position is left unchanged.
func (e *Engine) LoadFEN(s string) error {
	pos, err := fen.Decode(s)
	if err != nil {
		return fmt.Errorf("load position: %w", err)
	}

	e.mu.Lock()
	e.pos = pos
	e.pos.SetCallback(e.onSearchTick)
	e.mu.Unlock()

	logw.Infof(context.Background(), "Loaded position %q", s)
	return nil
}

// FEN exports the current position.
func (e *Engine) FEN() string {
	e.mu.Lock()
	pos := e.pos
	e.mu.Unlock()

	return fen.Encode(pos)
}

// PieceAt returns the piece on sq and whether the square is occupied.
func (e *Engine) PieceAt(sq board.Square) (board.Piece, bool) {
	e.mu.Lock()
	pos := e.pos
	e.mu.Unlock()

	return pos.PieceAt(sq)
}

// SideToMove returns the color to move.
func (e *Engine) SideToMove() board.Piece {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pos.Side()
}

// InCheck, IsCheckmate and IsStalemate probe the current position for color
// c without touching search state.
func (e *Engine) InCheck(c board.Piece) bool {
	e.mu.Lock()
	pos := e.pos
	e.mu.Unlock()

	return pos.InCheck(c)
}

func (e *Engine) IsCheckmate(c board.Piece) bool {
	e.mu.Lock()
	pos := e.pos
	e.mu.Unlock()

	return pos.IsCheckmate(c)
}

func (e *Engine) IsStalemate(c board.Piece) bool {
	e.mu.Lock()
	pos := e.pos
	e.mu.Unlock()

	return pos.IsStalemate(c)
}

// EnumerateMoves fills buf with pseudo-legal moves for the side to move and
// returns the total count, which may exceed cap(buf).
func (e *Engine) EnumerateMoves(buf []board.Move) int {
	e.mu.Lock()
	pos := e.pos
	e.mu.Unlock()

	return pos.EnumerateMoves(buf)
}

// TryMove reports the placement string m would produce, without committing
// to it, so a host can match a candidate move against external state (an
// EBoard reading, say) before calling PlayMove.
func (e *Engine) TryMove(m board.Move) string {
	e.mu.Lock()
	pos := e.pos
	e.mu.Unlock()

	return pos.Peek(m)
}

// FindBestMove searches for the side to move's best move under the given
// budget, falling back to the engine's configured defaults for any zero
// argument. It blocks until the node or depth budget is exhausted or the
// host calls StopSearch; the caller must not drive the same
// Engine from another goroutine concurrently with this call, except for
// StopSearch itself.
func (e *Engine) FindBestMove(nodeMax uint64, depthMax int) board.Move {
	e.mu.Lock()
	if nodeMax == 0 {
		nodeMax = e.opts.NodeMax
	}
	if depthMax == 0 {
		depthMax = e.opts.DepthMax
	}
	e.stop = iox.NewAsyncCloser()
	pos := e.pos
	e.mu.Unlock()

	ctx := context.Background()
	logw.Infof(ctx, "FindBestMove nodeMax=%v depthMax=%v", nodeMax, depthMax)

	m := pos.FindBestMove(nodeMax, depthMax)

	logw.Infof(ctx, "FindBestMove done: move=%v nodes=%v", m, pos.NodeCount())
	return m
}

// PlayMove commits m if the search reaches it among the side to move's
// candidates, per the same depth budget EnumerateMoves uses.
func (e *Engine) PlayMove(m board.Move) bool {
	e.mu.Lock()
	e.stop = iox.NewAsyncCloser()
	pos := e.pos
	e.mu.Unlock()

	ok := pos.PlayMove(m)
	logw.Infof(context.Background(), "PlayMove %v: ok=%v", m, ok)
	return ok
}

// SetCallback installs a host hook invoked periodically during search.
// ClearCallback removes it.
func (e *Engine) SetCallback(fn func(*Engine)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.callback = fn
}

func (e *Engine) ClearCallback() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.callback = nil
}

// StopSearch requests that the in-progress search unwind at the next
// opportunity. Safe to call from inside the installed callback, or from a
// separate goroutine while FindBestMove/PlayMove is running on another.
func (e *Engine) StopSearch() {
	e.mu.Lock()
	stop := e.stop
	e.mu.Unlock()

	if stop != nil {
		stop.Close()
	}
}

// onSearchTick is installed once as the board.Position callback and bridges
// it to the host callback, forwarding a closed stop request into the core's
// own StopSearch.
func (e *Engine) onSearchTick(p *board.Position) {
	e.mu.Lock()
	stop := e.stop
	cb := e.callback
	e.mu.Unlock()

	if stop != nil && stop.IsClosed() {
		p.StopSearch()
	}
	if cb != nil {
		cb(e)
	}
}
