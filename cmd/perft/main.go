// Command perft runs node-count verification over a suite of FEN
// positions concurrently, one goroutine per line, each owning its own
// Position value.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	c "github.com/ChizhovVadim/gochess/common"
)

type Config struct {
	Concurrency int
	File        string
}

var config Config

// builtinSuite is the well-known Chess Programming Wiki perft table,
// used when -file is not given.
var builtinSuite = []string{
	c.InitialPositionFEN + ";1;20",
	c.InitialPositionFEN + ";2;400",
	c.InitialPositionFEN + ";3;8902",
	c.InitialPositionFEN + ";4;197281",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1;3;97862",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1;4;43238",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1;3;9467",
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if err := run(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run() error {
	flag.IntVar(&config.Concurrency, "concurrency", runtime.NumCPU(), "worker goroutines")
	flag.StringVar(&config.File, "file", "", "EPD-like fen;depth;nodes suite file, one per line")
	flag.Parse()

	log.Printf("%+v", config)

	var lines, err = loadSuite(config.File)
	if err != nil {
		return fmt.Errorf("load suite: %w", err)
	}

	var g, ctx = errgroup.WithContext(context.Background())
	g.SetLimit(config.Concurrency)

	for i, line := range lines {
		var i, line = i, line
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			return runCase(i, line)
		})
	}

	return g.Wait()
}

func loadSuite(path string) ([]string, error) {
	if path == "" {
		return builtinSuite, nil
	}
	var f, err = os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	var sc = bufio.NewScanner(f)
	for sc.Scan() {
		var line = strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}

func runCase(index int, line string) error {
	var fields = strings.Split(line, ";")
	if len(fields) != 3 {
		return fmt.Errorf("case %d: bad line %q", index, line)
	}
	var fen = strings.TrimSpace(fields[0])
	var depth, err1 = strconv.Atoi(strings.TrimSpace(fields[1]))
	var expected, err2 = strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64)
	if err1 != nil || err2 != nil {
		return fmt.Errorf("case %d: bad depth/nodes in %q", index, line)
	}

	var pos, err = c.NewPositionFromFEN(fen)
	if err != nil {
		return fmt.Errorf("case %d: %w", index, err)
	}

	var got = c.Perft(pos, depth)
	if got != expected {
		return fmt.Errorf("case %d (%s) depth %d: got %d, want %d", index, fen, depth, got, expected)
	}
	log.Printf("case %d ok: depth=%d nodes=%d", index, depth, got)
	return nil
}
