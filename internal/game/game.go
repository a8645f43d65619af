// Package game runs one tic-tac-toe match between two move sources.
package game

import (
	"fmt"

	"github.com/qychen/tictacgo/pkg/common"
)

// A MoveSource produces the next move for a mark. Engine-backed
// sources only return squares drawn from AvailableMoves; interactive
// sources may return anything and are re-asked on illegal input.
type MoveSource interface {
	Name() string
	ChooseMove(board *common.Board, mark common.Mark) (int, error)
}

type PlyRecord struct {
	Square int
	Mark   common.Mark
	Source string
}

type Game struct {
	board   common.Board
	toMove  common.Mark
	sources [2]MoveSource // indexed below by mark
	history []PlyRecord
}

func sourceIndex(mark common.Mark) int {
	if mark == common.X {
		return 0
	}
	return 1
}

// New starts a fresh game with X to move.
func New(xSource, oSource MoveSource) *Game {
	return &Game{
		board:   common.NewBoard(),
		toMove:  common.X,
		sources: [2]MoveSource{xSource, oSource},
	}
}

func (g *Game) Board() *common.Board {
	return &g.board
}

func (g *Game) ToMove() common.Mark {
	return g.toMove
}

func (g *Game) Source(mark common.Mark) MoveSource {
	return g.sources[sourceIndex(mark)]
}

func (g *Game) History() []PlyRecord {
	return g.history
}

func (g *Game) Result() common.GameResult {
	return common.Evaluate(&g.board)
}

// PlayTurn asks the current source for a move and applies it. Illegal
// moves are re-requested from the same source without advancing the
// turn. Returns the result after the ply.
func (g *Game) PlayTurn() (common.GameResult, error) {
	var result = common.Evaluate(&g.board)
	if result.Outcome != common.InProgress {
		return result, nil
	}
	var source = g.Source(g.toMove)
	for {
		var sq, err = source.ChooseMove(&g.board, g.toMove)
		if err != nil {
			return result, fmt.Errorf("%v: %w", source.Name(), err)
		}
		if err := g.board.PlaceSquare(g.toMove, sq); err != nil {
			continue
		}
		g.history = append(g.history, PlyRecord{Square: sq, Mark: g.toMove, Source: source.Name()})
		break
	}
	result = common.Evaluate(&g.board)
	if result.Outcome == common.InProgress {
		g.toMove = g.toMove.Other()
	}
	return result, nil
}

// ApplyMove applies sq for the side to move without consulting its
// source, for callers that receive moves externally (the HTTP API).
func (g *Game) ApplyMove(sq int, sourceName string) (common.GameResult, error) {
	var result = common.Evaluate(&g.board)
	if result.Outcome != common.InProgress {
		return result, common.ErrNoMoves
	}
	if err := g.board.PlaceSquare(g.toMove, sq); err != nil {
		return result, err
	}
	g.history = append(g.history, PlyRecord{Square: sq, Mark: g.toMove, Source: sourceName})
	result = common.Evaluate(&g.board)
	if result.Outcome == common.InProgress {
		g.toMove = g.toMove.Other()
	}
	return result, nil
}

// Play runs turns until the game ends.
func (g *Game) Play() (common.GameResult, error) {
	for {
		var result, err = g.PlayTurn()
		if err != nil {
			return result, err
		}
		if result.Outcome != common.InProgress {
			return result, nil
		}
	}
}
