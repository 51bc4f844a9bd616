package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dylhunn/dragontoothmg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"chessbot/engine"
)

const engineName = "Chessbot"

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if os.Getenv("CHESSBOT_DEBUG") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	uciLoop()
}

// uciLoop reads UCI commands from stdin until "quit". The board set up by
// "position" is handed to the engine as a FEN, so the engine itself never
// carries game state between searches beyond its own tables.
func uciLoop() {
	eng := engine.New(engine.Config{})
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "uci":
			fmt.Println("id name", engineName)
			fmt.Println("id author Chessbot developers")
			fmt.Println("uciok")
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			eng = engine.New(engine.Config{})
			board = dragontoothmg.ParseFen(dragontoothmg.Startpos)
		case "position":
			newBoard, err := parsePosition(fields[1:])
			if err != nil {
				log.Error().Err(err).Str("line", line).Msg("bad position command")
				continue
			}
			board = newBoard
		case "go":
			budget := parseGo(fields[1:], board.Wtomove)
			best := eng.Move(board.ToFen(), budget)
			if best == "" {
				fmt.Println("bestmove 0000")
				continue
			}
			fmt.Println("bestmove", best)
		case "quit":
			return
		default:
			log.Debug().Str("line", line).Msg("ignoring unknown command")
		}
	}
}

// parsePosition handles "position [startpos | fen <6 fields>] [moves ...]".
func parsePosition(args []string) (dragontoothmg.Board, error) {
	var board dragontoothmg.Board
	if len(args) == 0 {
		return board, fmt.Errorf("position: missing arguments")
	}

	movesAt := -1
	switch args[0] {
	case "startpos":
		board = dragontoothmg.ParseFen(dragontoothmg.Startpos)
		for i, arg := range args[1:] {
			if arg == "moves" {
				movesAt = 1 + i
			}
		}
	case "fen":
		if len(args) < 7 {
			return board, fmt.Errorf("position: truncated FEN")
		}
		board = dragontoothmg.ParseFen(strings.Join(args[1:7], " "))
		for i, arg := range args[7:] {
			if arg == "moves" {
				movesAt = 7 + i
			}
		}
	default:
		return board, fmt.Errorf("position: unknown mode %q", args[0])
	}

	if movesAt >= 0 {
		for _, moveStr := range args[movesAt+1:] {
			move, err := dragontoothmg.ParseMove(moveStr)
			if err != nil {
				return board, fmt.Errorf("position: bad move %q: %w", moveStr, err)
			}
			board.Apply(move)
		}
	}
	return board, nil
}

// parseGo turns the "go" arguments into a millisecond budget. With movetime
// the budget is exact; with clock times we allot 1/40th of the remaining
// clock plus half the increment, a plain fixed-moves-to-go heuristic.
func parseGo(args []string, whiteToMove bool) int {
	var movetime, wtime, btime, winc, binc int
	for i := 0; i+1 < len(args); i++ {
		val, err := strconv.Atoi(args[i+1])
		if err != nil {
			continue
		}
		switch args[i] {
		case "movetime":
			movetime = val
		case "wtime":
			wtime = val
		case "btime":
			btime = val
		case "winc":
			winc = val
		case "binc":
			binc = val
		}
	}

	if movetime > 0 {
		return movetime
	}

	remaining, increment := wtime, winc
	if !whiteToMove {
		remaining, increment = btime, binc
	}
	if remaining > 0 {
		return remaining/40 + increment/2
	}
	return 1000
}
