package game

import (
	"math/rand"

	"github.com/qychen/tictacgo/pkg/common"
	"github.com/qychen/tictacgo/pkg/engine"
	"github.com/qychen/tictacgo/pkg/knn"
)

// MinimaxSource plays perfectly via exhaustive search.
type MinimaxSource struct {
	engines [2]*engine.Engine
}

func NewMinimaxSource() *MinimaxSource {
	return &MinimaxSource{}
}

func (s *MinimaxSource) Name() string {
	return "minimax"
}

func (s *MinimaxSource) ChooseMove(board *common.Board, mark common.Mark) (int, error) {
	var i = sourceIndex(mark)
	if s.engines[i] == nil {
		s.engines[i] = engine.NewEngine(mark)
	}
	return s.engines[i].BestMove(board)
}

// HeuristicSource plays from a recorded dataset, falling back to
// random choice when the dataset offers nothing playable.
type HeuristicSource struct {
	predictor *knn.Predictor
	predicted bool
}

func NewHeuristicSource(predictor *knn.Predictor) *HeuristicSource {
	return &HeuristicSource{predictor: predictor}
}

func (s *HeuristicSource) Name() string {
	return "knn"
}

// LastWasPrediction reports whether the previous ChooseMove came from
// the dataset rather than the random fallback.
func (s *HeuristicSource) LastWasPrediction() bool {
	return s.predicted
}

func (s *HeuristicSource) ChooseMove(board *common.Board, mark common.Mark) (int, error) {
	var sq, predicted, err = s.predictor.ChooseMove(board)
	s.predicted = predicted
	return sq, err
}

// RandomSource plays a uniform random available square.
type RandomSource struct {
	rnd *rand.Rand
}

func NewRandomSource(rnd *rand.Rand) *RandomSource {
	return &RandomSource{rnd: rnd}
}

func (s *RandomSource) Name() string {
	return "random"
}

func (s *RandomSource) ChooseMove(board *common.Board, mark common.Mark) (int, error) {
	var moves = board.AvailableMoves()
	if len(moves) == 0 {
		return common.SquareNone, common.ErrNoMoves
	}
	return moves[s.rnd.Intn(len(moves))], nil
}

// FuncSource adapts a prompt function, typically interactive input.
type FuncSource struct {
	SourceName string
	Choose     func(board *common.Board, mark common.Mark) (int, error)
}

func (s *FuncSource) Name() string {
	return s.SourceName
}

func (s *FuncSource) ChooseMove(board *common.Board, mark common.Mark) (int, error) {
	return s.Choose(board, mark)
}
