// livechess-demo drives the engine against a physical DGT EBoard via
// LiveChess: opponent moves arrive as board-state events, and the engine's
// replies are logged for the operator to play back on the board by hand.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/herohde/livechess-go/pkg/livechess"
	"github.com/herohde/mcumax/pkg/board"
	"github.com/herohde/mcumax/pkg/board/fen"
	"github.com/herohde/mcumax/pkg/engine"
	"github.com/seekerror/logw"
)

var (
	serial  = flag.String("serial", "auto", "Board selection by serial number (default: auto)")
	flip    = flag.Bool("flip", false, "Flip board")
	nodeMax = flag.Uint64("nodemax", 500000, "Node budget per move")
	depth   = flag.Int("depthmax", 8, "Depth ceiling per move")
	clock   = flag.Duration("clock", 10*time.Second, "Wall-clock budget per move")
)

func main() {
	flag.Parse()
	ctx := context.Background()

	id := livechess.EBoardSerial(*serial)
	if id == "auto" {
		auto, err := livechess.AutoDetect(ctx, livechess.DefaultClient)
		if err != nil {
			logw.Exitf(ctx, "Autodetect board failed: %v", err)
		}
		id = auto
	}

	client, events, err := livechess.NewFeed(ctx, id)
	if err != nil {
		logw.Exitf(ctx, "Feed for %v failed: %v", id, err)
	}
	if *flip {
		if err := client.Flip(ctx, true); err != nil {
			logw.Exitf(ctx, "Flip board %v failed: %v", id, err)
		}
	}
	if err := client.Setup(ctx, fen.Initial); err != nil {
		logw.Exitf(ctx, "Setup board %v failed: %v", id, err)
	}

	e := engine.New(engine.WithNodeMax(*nodeMax), engine.WithDepthMax(*depth))

	// The clock watchdog is the host-callback hook's concrete home: it owns
	// the wall-clock budget the core itself has no notion of, polling the
	// engine's own periodic callback to request an early stop.
	deadline := time.Now().Add(*clock)
	e.SetCallback(func(eng *engine.Engine) {
		if time.Now().After(deadline) {
			eng.StopSearch()
		}
	})

	logw.Infof(ctx, "Watching board %v for opponent moves", id)

	for event := range events {
		if len(event.San) == 0 {
			continue
		}

		m, ok := matchBoardEvent(e, event)
		if !ok {
			logw.Errorf(ctx, "Board state %v did not match any legal move", event.Board)
			continue
		}
		if !e.PlayMove(m) {
			logw.Errorf(ctx, "Rejected opponent move %v", m)
			continue
		}
		logw.Infof(ctx, "Opponent played %v", m)

		if e.IsCheckmate(e.SideToMove()) {
			logw.Infof(ctx, "Checkmate, game over")
			continue
		}

		deadline = time.Now().Add(*clock)
		reply := e.FindBestMove(*nodeMax, *depth)
		if !reply.IsValid() || !e.PlayMove(reply) {
			logw.Infof(ctx, "No reply move found")
			continue
		}
		logw.Infof(ctx, "Engine plays %v - move it on the board: %v", reply, e.FEN())
	}
}

// matchBoardEvent finds the legal move whose resulting placement matches the
// EBoard's reported state, the same way the teacher's UCI adaptor matches a
// physical board reading against legal candidates instead of parsing SAN.
func matchBoardEvent(e *engine.Engine, event livechess.EBoardEventResponse) (board.Move, bool) {
	buf := make([]board.Move, 256)
	n := e.EnumerateMoves(buf)
	if n > len(buf) {
		buf = make([]board.Move, n)
		n = e.EnumerateMoves(buf)
	}
	buf = buf[:n]

	for _, m := range buf {
		if e.TryMove(m) == event.Board {
			return m, true
		}
	}
	return board.Move{}, false
}
