package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"othello-engine/controller"
	"othello-engine/engine"
	"othello-engine/othello"
)

func runProtocol(t *testing.T, script string) []string {
	t.Helper()
	zerolog.SetGlobalLevel(zerolog.Disabled)
	var out bytes.Buffer
	protocolLoop(strings.NewReader(script), &out, controller.New(engine.NewSeededEngine(2, 4)))
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func indexOf(lines []string, prefix string) int {
	for i, l := range lines {
		if strings.HasPrefix(l, prefix) {
			return i
		}
	}
	return -1
}

func TestProtocolSearchAndUndo(t *testing.T) {
	lines := runProtocol(t, strings.Join([]string{
		"uci",
		"position startpos moves c4",
		"go",
		"isready",
		"undo",
		"show",
		"quit",
	}, "\n"))

	if indexOf(lines, "uciok") < 0 {
		t.Fatalf("no uciok in %q", lines)
	}
	best, ready := indexOf(lines, "bestmove "), indexOf(lines, "readyok")
	if best < 0 || ready < best {
		t.Fatalf("bestmove must come before readyok: %q", lines)
	}
	m, err := othello.ParseMove(strings.TrimPrefix(lines[best], "bestmove "), othello.White)
	if err != nil {
		t.Fatalf("bestmove line %q: %v", lines[best], err)
	}
	after := othello.NewGame()
	c4, _ := othello.NewMove(3, 4, othello.Black)
	after.MakeMove(c4)
	if !after.MoveIsLegal(m) {
		t.Fatalf("engine answered c4 with illegal %v", m)
	}

	// undo goes back past the engine's reply and the entered c4
	if indexOf(lines, "4 . . . O X . . .") < 0 || indexOf(lines, "5 . . . X O . . .") < 0 {
		t.Fatalf("board not back at the start: %q", lines)
	}
	if indexOf(lines, "black 2 white 2 turn Black") < 0 {
		t.Fatalf("scores not reset: %q", lines)
	}
}

func TestProtocolRejectsBadInput(t *testing.T) {
	lines := runProtocol(t, strings.Join([]string{
		"move a1",
		"move zz",
		"level x",
		"takeback",
		"frobnicate",
		"quit",
	}, "\n"))
	for _, want := range []string{
		"info string Illegal move a1",
		"info string invalid move notation",
		"info string Malformed level x",
		"info string Nothing to take back",
		"info string Unknown command: frobnicate",
	} {
		if indexOf(lines, want) < 0 {
			t.Fatalf("missing %q in %q", want, lines)
		}
	}
}

func TestProtocolGameOver(t *testing.T) {
	lines := runProtocol(t, strings.Join([]string{
		"position startpos moves e6 f4 e3 f6 g5 d6 e7 f5 c5",
		"go",
		"show",
	}, "\n"))
	if indexOf(lines, "info string "+controller.ErrGameOver.Error()) < 0 {
		t.Fatalf("expected game over report: %q", lines)
	}
	if indexOf(lines, "black 13 white 0 turn None last C5") < 0 {
		t.Fatalf("unexpected final position: %q", lines)
	}
}
