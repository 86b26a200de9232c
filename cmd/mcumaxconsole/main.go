// mcumaxconsole is a stdin/stdout driver for manual testing of the engine
// without any networked board or GUI.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/herohde/mcumax/pkg/board"
	"github.com/herohde/mcumax/pkg/board/fen"
	"github.com/herohde/mcumax/pkg/engine"
	"github.com/seekerror/logw"
)

var (
	nodeMax  = flag.Uint64("nodemax", 200000, "Default node budget for 'go'")
	depthMax = flag.Int("depthmax", 6, "Default depth ceiling for 'go'")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: mcumaxconsole [options]

mcumaxconsole is a line-oriented console for the engine.

Commands:
  reset [<fen>]       reset to the starting position, or the given position
  print               print the current position
  <uci move>          play a move, e.g. e2e4
  go [nodemax depthmax]
                      search and play the engine's best move
  quit                exit

Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(engine.WithNodeMax(*nodeMax), engine.WithDepthMax(*depthMax))

	in := engine.ReadStdinLines(ctx)
	out := make(chan string, 16)
	go engine.WriteStdoutLines(ctx, out)
	defer close(out)

	out <- fmt.Sprintf("engine %v", e.Name())
	printBoard(out, e)

	for line := range in {
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd, args := strings.ToLower(parts[0]), parts[1:]
		switch cmd {
		case "reset", "r", "new":
			pos := fen.Initial
			if len(args) > 0 {
				pos = strings.Join(args, " ")
			}
			if err := e.LoadFEN(pos); err != nil {
				logw.Errorf(ctx, "Invalid position %q: %v", pos, err)
				out <- fmt.Sprintf("invalid position: %v", err)
				break
			}
			printBoard(out, e)

		case "print", "p":
			printBoard(out, e)

		case "go", "g":
			n, d := *nodeMax, *depthMax
			if len(args) > 0 {
				if v, err := strconv.ParseUint(args[0], 10, 64); err == nil {
					n = v
				}
			}
			if len(args) > 1 {
				if v, err := strconv.Atoi(args[1]); err == nil {
					d = v
				}
			}

			m := e.FindBestMove(n, d)
			if !m.IsValid() {
				out <- "no move found"
				break
			}
			if !e.PlayMove(m) {
				out <- fmt.Sprintf("engine move rejected: %v", m)
				break
			}
			out <- fmt.Sprintf("move %v", m)
			printBoard(out, e)

		case "quit", "exit", "q":
			return

		default:
			m, err := board.ParseMove(cmd)
			if err != nil {
				out <- fmt.Sprintf("invalid move: %q", cmd)
				break
			}
			if !e.PlayMove(m) {
				out <- fmt.Sprintf("illegal move: %v", m)
				break
			}
			printBoard(out, e)
		}
	}
}

func printBoard(out chan<- string, e *engine.Engine) {
	out <- e.FEN()
	if e.IsCheckmate(e.SideToMove()) {
		out <- "checkmate"
	} else if e.IsStalemate(e.SideToMove()) {
		out <- "stalemate"
	} else if e.InCheck(e.SideToMove()) {
		out <- "check"
	}
}
