// Command play runs one iterative-deepening search from a FEN and prints
// the depth-by-depth progress plus the final best move. It has no board
// pretty-printing and no undo stack.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/rs/zerolog"

	c "github.com/ChizhovVadim/gochess/common"
	"github.com/ChizhovVadim/gochess/engine"
)

type Config struct {
	Fen      string
	MoveTime int
	Depth    int
}

var config Config

func main() {
	logger := log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)
	if err := run(logger); err != nil {
		logger.Println(err)
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	flag.StringVar(&config.Fen, "fen", c.InitialPositionFEN, "starting position")
	flag.IntVar(&config.MoveTime, "movetime", 3000, "search budget in milliseconds")
	flag.IntVar(&config.Depth, "depth", 0, "max depth (0 = unbounded within movetime)")
	flag.Parse()

	logger.Println("play started", "fen", config.Fen, "movetime", config.MoveTime)
	defer logger.Println("play finished")

	var pos, err = c.NewPositionFromFEN(config.Fen)
	if err != nil {
		return fmt.Errorf("parse fen %q: %w", config.Fen, err)
	}

	var searchLog = zerolog.New(os.Stdout).With().Timestamp().Logger()

	var eng = engine.NewEngine()
	eng.StartNewGame(pos)
	eng.Progress = func(info engine.SearchInfo) {
		searchLog.Info().
			Int("depth", info.Depth).
			Int("score", info.Score).
			Int64("nodes", info.Nodes).
			Dur("time", info.Time).
			Str("move", c.MoveToString(info.Move)).
			Msg("search info")
	}

	var best, score, nodes = eng.SearchBestMove(pos, config.MoveTime, config.Depth)
	if best == c.MoveEmpty {
		if pos.InCheck() {
			logger.Println("no legal moves: checkmate")
		} else {
			logger.Println("no legal moves: stalemate")
		}
		return nil
	}

	logger.Printf("bestmove %s score %d nodes %d", c.MoveToString(best), score, nodes)
	return nil
}
