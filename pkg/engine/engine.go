// Package engine implements exhaustive minimax search for tic-tac-toe.
// The game tree from any reachable position is at most 9 plies deep, so
// the search visits every node with no pruning.
package engine

import (
	"github.com/qychen/tictacgo/pkg/common"
)

const (
	scoreMin = -100
	scoreMax = 100
)

type SearchInfo struct {
	BestMove int
	Score    int
	Nodes    int64
}

type Engine struct {
	maximizer common.Mark
	minimizer common.Mark
	nodes     int64
}

// NewEngine returns an engine playing computer against computer.Other().
func NewEngine(computer common.Mark) *Engine {
	return &Engine{
		maximizer: computer,
		minimizer: computer.Other(),
	}
}

func (e *Engine) Mark() common.Mark {
	return e.maximizer
}

// Search scores every available move as played by the maximizer and
// returns the first move reaching the best score in row-major order.
// The board is restored before returning.
func (e *Engine) Search(board *common.Board) (SearchInfo, error) {
	var moves = board.AvailableMoves()
	if len(moves) == 0 {
		return SearchInfo{}, common.ErrNoMoves
	}
	e.nodes = 0
	var bestMove = common.SquareNone
	var bestScore = scoreMin
	for _, sq := range moves {
		board.PlaceSquare(e.maximizer, sq)
		var score = e.score(board, 0, false)
		board.ClearSquare(sq)
		if score > bestScore {
			bestScore = score
			bestMove = sq
		}
	}
	return SearchInfo{
		BestMove: bestMove,
		Score:    bestScore,
		Nodes:    e.nodes,
	}, nil
}

// BestMove is Search reduced to the chosen square.
func (e *Engine) BestMove(board *common.Board) (int, error) {
	var si, err = e.Search(board)
	if err != nil {
		return common.SquareNone, err
	}
	return si.BestMove, nil
}

// score evaluates the position with the side to move implied by
// maximizing. Wins are worth 10-depth and losses depth-10, so the
// engine prefers the fastest win and the slowest loss.
func (e *Engine) score(board *common.Board, depth int, maximizing bool) int {
	e.nodes++
	switch common.Winner(board) {
	case e.maximizer:
		return 10 - depth
	case e.minimizer:
		return depth - 10
	}
	if board.IsFull() {
		return 0
	}
	if maximizing {
		var best = scoreMin
		for _, sq := range board.AvailableMoves() {
			board.PlaceSquare(e.maximizer, sq)
			var score = e.score(board, depth+1, false)
			board.ClearSquare(sq)
			if score > best {
				best = score
			}
		}
		return best
	}
	var best = scoreMax
	for _, sq := range board.AvailableMoves() {
		board.PlaceSquare(e.minimizer, sq)
		var score = e.score(board, depth+1, true)
		board.ClearSquare(sq)
		if score < best {
			best = score
		}
	}
	return best
}
