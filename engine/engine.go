package engine

import (
	"fmt"
	"time"

	"github.com/dylhunn/dragontoothmg"
	"github.com/rs/zerolog/log"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	Inf       = 1000000
	MateScore = 100000
	DrawScore = 0

	// Upper bound on search ply; killer slots and the mate-distance term
	// are indexed by ply, so the search never recurses past this.
	MaxPly = 128
)

// Config carries the search tunables. Zero values select the defaults.
type Config struct {
	MaxDepth        int // iterative-deepening ceiling
	QuiescenceDepth int // capture-search recursion guard
	TimeCheckNodes  int // clock poll interval in nodes, power of two
}

const (
	defaultMaxDepth        = 5
	defaultQuiescenceDepth = 32
	defaultTimeCheckNodes  = 1024
)

// Engine owns all mutable search state: the transposition table, killer
// slots, history counters and the repetition stack. The table and counters
// live as long as the instance; history keeps accumulating across Move calls.
// One Engine is single-threaded - concurrent Move calls on the same instance
// are not safe, separate instances are.
type Engine struct {
	cfg       Config
	checkMask uint64

	tt      TransTable
	killers KillerStruct
	history HistoryStruct

	timer      TimeHandler
	stateStack []State

	nodes   uint64
	stopped bool
}

func New(cfg Config) *Engine {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = defaultMaxDepth
	}
	if cfg.MaxDepth > MaxPly {
		cfg.MaxDepth = MaxPly
	}
	if cfg.QuiescenceDepth <= 0 {
		cfg.QuiescenceDepth = defaultQuiescenceDepth
	}
	if cfg.TimeCheckNodes <= 0 {
		cfg.TimeCheckNodes = defaultTimeCheckNodes
	}

	e := &Engine{
		cfg:       cfg,
		checkMask: uint64(cfg.TimeCheckNodes - 1),
	}
	e.tt.init()
	return e
}

// Move picks the strongest move it can find for the position within the time
// budget and returns it in coordinate (UCI) notation. An empty string means
// the side to move has no legal move and the game is over; the caller must
// not try to apply it. Malformed FEN is the move generator's problem - the
// engine assumes a valid position.
//
// The search deepens from 1 to MaxDepth, re-ordering the root moves with the
// current killer/history state before each iteration. The budget is polled,
// not preemptive: the best move tracked so far is returned as soon as the
// clock runs out, even mid-depth, so a partially searched depth contributes
// whatever it had already proven.
func (e *Engine) Move(fen string, timeLimitMs int) string {
	board := dragontoothmg.ParseFen(fen)
	moves := board.GenerateLegalMoves()
	if len(moves) == 0 {
		return ""
	}

	e.timer.Start(timeLimitMs)
	e.tt.Clear()
	e.resetStateTracking(&board)
	e.nodes = 0
	e.stopped = false

	searchStart := time.Now()
	bestMove := moves[0]

	for depth := 1; depth <= e.cfg.MaxDepth; depth++ {
		if e.timer.Expired() {
			break
		}

		ordered := e.OrderMoves(&board, moves, 0)

		alpha, beta := -Inf, Inf
		bestScore := -Inf
		aborted := false

		for i, move := range ordered {
			unapply := e.applyMove(&board, move)

			var score int
			if i == 0 {
				score = -e.alphabeta(&board, depth-1, -beta, -alpha, 1)
			} else {
				score = -e.alphabeta(&board, depth-1, -alpha-1, -alpha, 1)
				if score > alpha {
					score = -e.alphabeta(&board, depth-1, -beta, -alpha, 1)
				}
			}

			unapply()

			if e.timer.Expired() {
				aborted = true
				break
			}

			if score > bestScore {
				bestScore = score
				bestMove = move
			}
			if score > alpha {
				alpha = score
			}
		}

		if aborted {
			break
		}

		elapsed := time.Since(searchStart).Milliseconds()
		fmt.Println(
			"info depth", depth,
			"score", mateOrCPScore(bestScore),
			"nodes", e.nodes,
			"time", elapsed,
			"pv", bestMove.String(),
		)
		log.Debug().
			Int("depth", depth).
			Int("score", bestScore).
			Uint64("nodes", e.nodes).
			Int64("timeMs", elapsed).
			Str("bestmove", bestMove.String()).
			Msg("depth-complete")
	}

	return bestMove.String()
}
