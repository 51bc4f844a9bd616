package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func findMove(t *testing.T, moves []dragontoothmg.Move, uci string) dragontoothmg.Move {
	t.Helper()
	for _, m := range moves {
		if m.String() == uci {
			return m
		}
	}
	t.Fatalf("move %s not found in legal moves", uci)
	return 0
}

func TestOrderMovesCapturesFirstMVVLVA(t *testing.T) {
	e := New(Config{})
	// The e4 pawn can take a queen on d5 or a pawn on f5.
	board := dragontoothmg.ParseFen("k7/8/8/3q1p2/4P3/8/8/K7 w - - 0 1")
	moves := board.GenerateLegalMoves()

	ordered := e.OrderMoves(&board, moves, 0)
	if ordered[0].String() != "e4d5" {
		t.Fatalf("queen capture should rank first, got %s", ordered[0].String())
	}
	if ordered[1].String() != "e4f5" {
		t.Fatalf("pawn capture should rank second, got %s", ordered[1].String())
	}
}

func TestOrderMovesDoesNotMutateInput(t *testing.T) {
	e := New(Config{})
	board := dragontoothmg.ParseFen("k7/8/8/3q1p2/4P3/8/8/K7 w - - 0 1")
	moves := board.GenerateLegalMoves()
	before := make([]dragontoothmg.Move, len(moves))
	copy(before, moves)

	ordered := e.OrderMoves(&board, moves, 0)
	if len(ordered) != len(moves) {
		t.Fatalf("ordering changed move count: %d -> %d", len(moves), len(ordered))
	}
	for i := range moves {
		if moves[i] != before[i] {
			t.Fatalf("input slice mutated at index %d", i)
		}
	}
}

func TestScoreMoveKillerPriority(t *testing.T) {
	e := New(Config{})
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	moves := board.GenerateLegalMoves()

	first := findMove(t, moves, "b1c3")
	second := findMove(t, moves, "g1f3")

	e.killers.InsertKiller(second, 2)
	e.killers.InsertKiller(first, 2)

	if got := e.scoreMove(&board, first, 2); got != firstKillerScore {
		t.Fatalf("slot-0 killer scored %d, want %d", got, firstKillerScore)
	}
	if got := e.scoreMove(&board, second, 2); got != secondKillerScore {
		t.Fatalf("slot-1 killer scored %d, want %d", got, secondKillerScore)
	}
	// Same move again must not fill both slots with one entry.
	e.killers.InsertKiller(first, 2)
	if e.killers.KillerMoves[2][0] != first || e.killers.KillerMoves[2][1] != second {
		t.Fatalf("re-inserting slot-0 killer disturbed the slots")
	}
}

func TestScoreMoveHistoryFallback(t *testing.T) {
	e := New(Config{})
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	moves := board.GenerateLegalMoves()
	quiet := findMove(t, moves, "e2e4")

	if got := e.scoreMove(&board, quiet, 0); got != 0 {
		t.Fatalf("fresh history should score 0, got %d", got)
	}

	e.history.Increment(board.Wtomove, quiet, 3)
	e.history.Increment(board.Wtomove, quiet, 2)
	if got := e.scoreMove(&board, quiet, 0); got != 13 {
		t.Fatalf("history should accumulate depth^2 (9+4), got %d", got)
	}

	// The other side's counters are independent.
	if got := e.history.Score(false, quiet); got != 0 {
		t.Fatalf("opposite side history should be untouched, got %d", got)
	}
}

func TestCaptureScoreEnPassant(t *testing.T) {
	e := New(Config{})
	// Black just played d7d5; e5xd6 en passant has an empty target square.
	board := dragontoothmg.ParseFen("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	moves := board.GenerateLegalMoves()
	ep := findMove(t, moves, "e5d6")

	got := e.scoreMove(&board, ep, 0)
	want := captureOffset + pieceValue[dragontoothmg.Pawn] - pieceValue[dragontoothmg.Pawn]
	if got != want {
		t.Fatalf("en passant scored %d, want %d", got, want)
	}
}
