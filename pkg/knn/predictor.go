// Package knn chooses tic-tac-toe moves from a recorded dataset:
// exact state lookup for move-labeled data, a k-nearest-neighbor vote
// for outcome-labeled data, and uniform random choice when neither
// produces a playable move.
package knn

import (
	"math/rand"
	"sort"

	"github.com/qychen/tictacgo/pkg/common"
)

const DefaultNeighbors = 5

type Predictor struct {
	dataset   Dataset
	neighbors int
	rnd       *rand.Rand
}

// NewPredictor wraps dataset with an explicit randomness source so
// fallback moves are reproducible under a fixed seed.
func NewPredictor(dataset Dataset, rnd *rand.Rand) *Predictor {
	return &Predictor{
		dataset:   dataset,
		neighbors: DefaultNeighbors,
		rnd:       rnd,
	}
}

func (p *Predictor) SetNeighbors(k int) {
	if k > 0 {
		p.neighbors = k
	}
}

func (p *Predictor) Dataset() *Dataset {
	return &p.dataset
}

// FindBestMove returns the dataset's move for state, or ok=false when
// the dataset offers nothing.
func (p *Predictor) FindBestMove(state common.StateVector) (int, bool) {
	if p.dataset.Empty() {
		return common.SquareNone, false
	}
	if p.dataset.Kind == MoveLabeled {
		for _, record := range p.dataset.Records {
			if record.State == state {
				return record.Label, true
			}
		}
		return common.SquareNone, false
	}
	var candidates = p.similarBoardMoves(state)
	if len(candidates) == 0 {
		return common.SquareNone, false
	}
	return mostFrequent(candidates), true
}

// similarBoardMoves ranks records by Hamming similarity to state, takes
// the top neighbors, and collects every square empty in state but
// occupied in the record.
func (p *Predictor) similarBoardMoves(state common.StateVector) []int {
	type scored struct {
		similarity int
		record     *Record
	}
	var ranked = make([]scored, 0, len(p.dataset.Records))
	for i := range p.dataset.Records {
		var record = &p.dataset.Records[i]
		var similarity = 0
		for sq := 0; sq < common.SquareCount; sq++ {
			if state[sq] == record.State[sq] {
				similarity++
			}
		}
		ranked = append(ranked, scored{similarity, record})
	}
	// Stable keeps dataset order among equal similarities.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].similarity > ranked[j].similarity
	})
	var top = ranked
	if len(top) > p.neighbors {
		top = top[:p.neighbors]
	}
	var moves []int
	for _, entry := range top {
		for sq := 0; sq < common.SquareCount; sq++ {
			if state[sq] == 0 && entry.record.State[sq] != 0 {
				moves = append(moves, sq)
			}
		}
	}
	return moves
}

// mostFrequent returns the most common move; ties go to the move seen
// first in aggregation order.
func mostFrequent(moves []int) int {
	var counts = make(map[int]int)
	for _, move := range moves {
		counts[move]++
	}
	var best = common.SquareNone
	var bestCount = 0
	for _, move := range moves {
		if counts[move] > bestCount {
			best = move
			bestCount = counts[move]
		}
	}
	return best
}

// ChooseMove returns a legal move for the board: the dataset's
// suggestion when it is playable, otherwise a uniform random available
// square. The second result reports whether the dataset was used.
func (p *Predictor) ChooseMove(board *common.Board) (int, bool, error) {
	var moves = board.AvailableMoves()
	if len(moves) == 0 {
		return common.SquareNone, false, common.ErrNoMoves
	}
	if move, ok := p.FindBestMove(board.Vector()); ok {
		for _, available := range moves {
			if available == move {
				return move, true, nil
			}
		}
	}
	return moves[p.rnd.Intn(len(moves))], false, nil
}
