package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"othello-engine/controller"
	"othello-engine/engine"
	"othello-engine/othello"
)

func main() {
	level := flag.Int("level", engine.DefaultStrength, "engine strength")
	seed := flag.Int64("seed", 0, "random seed, 0 for an entropy-seeded engine")
	logLevel := flag.String("loglevel", "warn", "log level (debug, info, warn, error)")
	flag.Parse()

	lvl, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	e := engine.NewEngine(*level)
	if *seed != 0 {
		e.SetSeed(*seed)
	}
	protocolLoop(os.Stdin, os.Stdout, controller.New(e))
}

// lockedWriter serialises protocol replies written by the command loop and by
// the goroutine reporting a finished search.
type lockedWriter struct {
	mu  sync.Mutex
	out io.Writer
}

func (w *lockedWriter) println(a ...any) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintln(w.out, a...)
}

func (w *lockedWriter) printf(format string, a ...any) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintf(w.out, format, a...)
}

func protocolLoop(in io.Reader, out io.Writer, c *controller.Controller) {
	w := &lockedWriter{out: out}
	scanner := bufio.NewScanner(in)

	// result channel of the search started by the last go command
	var pending <-chan controller.Result
	waitForSearch := func() {
		if pending != nil {
			<-pending
			pending = nil
		}
	}

	reportMove := controller.ListenerFunc(func(m othello.Move, ok bool) {
		if !ok {
			w.println("bestmove (none)")
			return
		}
		w.println("bestmove", m.String())
	})

	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci", "othello":
			w.println("id name othello-engine")
			w.println("id level", c.Level())
			w.println("uciok")
		case "isready":
			// a running search is finished first, so replies stay in order
			waitForSearch()
			w.println("readyok")
		case "newgame", "ucinewgame":
			if !c.NewGame() {
				w.println("info string Cannot start a new game while searching")
			}
		case "quit":
			c.Interrupt()
			waitForSearch()
			return
		case "stop":
			c.Interrupt()
		case "go":
			if len(tokens) == 3 && strings.ToLower(tokens[1]) == "level" {
				if !setLevel(w, c, tokens[2]) {
					continue
				}
			}
			if err := c.ComputeMove(context.Background(), reportMove); err != nil {
				w.println("info string", err)
				continue
			}
			pending = c.Done()
		case "position":
			if len(tokens) < 2 || strings.ToLower(tokens[1]) != "startpos" {
				w.println("info string Malformed position command")
				continue
			}
			if !c.NewGame() {
				w.println("info string Cannot set up a position while searching")
				continue
			}
			if len(tokens) > 2 && strings.ToLower(tokens[2]) == "moves" {
				playMoves(w, c, tokens[3:])
			}
		case "move":
			playMoves(w, c, tokens[1:])
		case "undo":
			if !c.Undo() {
				w.println("info string Nothing to undo")
			}
		case "takeback":
			if !c.TakeBack() {
				w.println("info string Nothing to take back")
			}
		case "level":
			if len(tokens) != 2 {
				w.println("info string Malformed level command")
				continue
			}
			setLevel(w, c, tokens[1])
		case "seed":
			if len(tokens) != 2 {
				w.println("info string Malformed seed command")
				continue
			}
			seed, err := strconv.ParseInt(tokens[1], 10, 64)
			if err != nil {
				w.println("info string Malformed seed", tokens[1])
				continue
			}
			if !c.SetSeed(seed) {
				w.println("info string Cannot change the seed while searching")
			}
		case "show", "d":
			w.printf("%s", render(c))
		default:
			w.println("info string Unknown command:", line)
		}
	}
	c.Interrupt()
	waitForSearch()
}

func setLevel(w *lockedWriter, c *controller.Controller, arg string) bool {
	level, err := strconv.Atoi(arg)
	if err != nil || level < 0 {
		w.println("info string Malformed level", arg)
		return false
	}
	if !c.SetLevel(level) {
		w.println("info string Cannot change the level while searching")
		return false
	}
	return true
}

func playMoves(w *lockedWriter, c *controller.Controller, moves []string) {
	for _, s := range moves {
		m, err := othello.ParseMove(s, c.WhoseTurn())
		if err != nil {
			w.println("info string", err)
			return
		}
		if !c.MakeMove(m.X(), m.Y()) {
			w.println("info string Illegal move", s)
			return
		}
	}
}

// render draws the board with columns a-h across and rows 1-8 down. Black is
// X, White is O.
func render(c *controller.Controller) string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for y := 1; y <= othello.BoardSize; y++ {
		sb.WriteString(strconv.Itoa(y))
		for x := 1; x <= othello.BoardSize; x++ {
			p, _ := c.Square(x, y)
			switch p {
			case othello.Black:
				sb.WriteString(" X")
			case othello.White:
				sb.WriteString(" O")
			default:
				sb.WriteString(" .")
			}
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "black %d white %d turn %v", c.ScoreBlack(), c.ScoreWhite(), c.WhoseTurn())
	if last := c.LastMove(); last != "" {
		fmt.Fprintf(&sb, " last %s", last)
	}
	sb.WriteString("\n")
	return sb.String()
}
