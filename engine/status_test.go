package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func statusOf(t *testing.T, fen string) (Result, Reason) {
	t.Helper()
	e := New(Config{})
	board := dragontoothmg.ParseFen(fen)
	e.resetStateTracking(&board)
	return e.GameStatus(&board)
}

func TestStatusCheckmate(t *testing.T) {
	result, reason := statusOf(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 2 3")
	if result != BlackWins || reason != Checkmate {
		t.Fatalf("fool's mate: got result=%d reason=%d", result, reason)
	}
}

func TestStatusStalemate(t *testing.T) {
	result, reason := statusOf(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if result != Draw || reason != Stalemate {
		t.Fatalf("stalemate: got result=%d reason=%d", result, reason)
	}
}

func TestStatusFiftyMoveRule(t *testing.T) {
	result, reason := statusOf(t, "8/8/4k3/8/4K3/8/8/4R3 w - - 100 80")
	if result != Draw || reason != FiftyMoveRule {
		t.Fatalf("fifty-move rule: got result=%d reason=%d", result, reason)
	}
}

func TestStatusOngoing(t *testing.T) {
	result, reason := statusOf(t, dragontoothmg.Startpos)
	if result != NoResult || reason != NoReason {
		t.Fatalf("startpos: got result=%d reason=%d", result, reason)
	}
}

func TestStatusInsufficientMaterial(t *testing.T) {
	draws := []string{
		"8/8/4k3/8/4K3/8/8/8 w - - 0 1",        // bare kings
		"8/8/4k3/8/4K3/8/5N2/8 w - - 0 1",      // king and knight
		"8/8/4k3/8/4K3/8/5B2/8 b - - 0 1",      // king and bishop
		"5b2/4k3/8/8/8/8/8/2B1K3 w - - 0 1",    // same-color bishops
	}
	for _, fen := range draws {
		result, reason := statusOf(t, fen)
		if result != Draw || reason != InsufficientMaterial {
			t.Fatalf("%q: got result=%d reason=%d", fen, result, reason)
		}
	}

	ongoing := []string{
		"8/8/4k3/8/4K3/8/3NN3/8 w - - 0 1",     // two knights: mate exists in theory
		"5b2/4k3/8/8/8/8/8/3B1K2 w - - 0 1",    // opposite-color bishops
		"8/8/4k3/8/4K3/8/4P3/8 w - - 0 1",      // a pawn can still promote
		"8/8/4k3/8/4K3/8/8/4R3 w - - 0 1",      // rook mates
	}
	for _, fen := range ongoing {
		result, _ := statusOf(t, fen)
		if result != NoResult {
			t.Fatalf("%q should be ongoing, got result=%d", fen, result)
		}
	}
}

func TestStatusRepetition(t *testing.T) {
	e := New(Config{})
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	e.resetStateTracking(&board)

	for _, uci := range []string{"g1f3", "g8f6", "f3g1", "f6g8"} {
		move, err := dragontoothmg.ParseMove(uci)
		if err != nil {
			t.Fatalf("parse %s: %v", uci, err)
		}
		e.applyMove(&board, move)
	}

	result, reason := e.GameStatus(&board)
	if result != Draw || reason != Repetition {
		t.Fatalf("knight shuffle: got result=%d reason=%d", result, reason)
	}
}
