package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qychen/tictacgo/pkg/common"
)

func TestSearchFullBoard(t *testing.T) {
	var b = common.NewBoard()
	var marks = []common.Mark{
		common.X, common.O, common.X,
		common.X, common.O, common.O,
		common.O, common.X, common.X,
	}
	for sq, m := range marks {
		require.NoError(t, b.PlaceSquare(m, sq))
	}
	var e = NewEngine(common.X)
	_, err := e.Search(&b)
	assert.ErrorIs(t, err, common.ErrNoMoves)
}

func TestSearchRestoresBoard(t *testing.T) {
	var b = common.NewBoard()
	require.NoError(t, b.Place(common.X, 1, 1))
	var before = b.Vector()
	var e = NewEngine(common.O)
	_, err := e.Search(&b)
	require.NoError(t, err)
	assert.Equal(t, before, b.Vector())
}

func TestTakesImmediateWin(t *testing.T) {
	// X on 0 and 1, O on 3 and 4; X to move wins at 2.
	var b = common.NewBoard()
	require.NoError(t, b.PlaceSquare(common.X, 0))
	require.NoError(t, b.PlaceSquare(common.O, 3))
	require.NoError(t, b.PlaceSquare(common.X, 1))
	require.NoError(t, b.PlaceSquare(common.O, 4))
	var e = NewEngine(common.X)
	si, err := e.Search(&b)
	require.NoError(t, err)
	assert.Equal(t, 2, si.BestMove)
	assert.Equal(t, 10, si.Score)
}

func TestPrefersFasterWin(t *testing.T) {
	// X wins immediately at 8, or forks at 3 for a win two plies
	// later. 3 comes first in scan order, so only the depth bias
	// makes the engine take the one-ply win.
	var b = common.NewBoard()
	require.NoError(t, b.PlaceSquare(common.X, 0))
	require.NoError(t, b.PlaceSquare(common.O, 1))
	require.NoError(t, b.PlaceSquare(common.X, 4))
	require.NoError(t, b.PlaceSquare(common.O, 2))
	var e = NewEngine(common.X)
	si, err := e.Search(&b)
	require.NoError(t, err)
	assert.Equal(t, 8, si.BestMove)
	assert.Equal(t, 10, si.Score)
}

func TestBlocksThreat(t *testing.T) {
	// X threatens 0-1-2; O must block at 2.
	var b = common.NewBoard()
	require.NoError(t, b.PlaceSquare(common.X, 0))
	require.NoError(t, b.PlaceSquare(common.O, 4))
	require.NoError(t, b.PlaceSquare(common.X, 1))
	var e = NewEngine(common.O)
	move, err := e.BestMove(&b)
	require.NoError(t, err)
	assert.Equal(t, 2, move)
}

func TestCenterReplyIsCorner(t *testing.T) {
	var b = common.NewBoard()
	require.NoError(t, b.Place(common.X, 1, 1))
	var e = NewEngine(common.O)
	move, err := e.BestMove(&b)
	require.NoError(t, err)
	assert.Contains(t, []int{0, 2, 6, 8}, move)
}

func TestSelfPlayDraws(t *testing.T) {
	var b = common.NewBoard()
	var engines = map[common.Mark]*Engine{
		common.X: NewEngine(common.X),
		common.O: NewEngine(common.O),
	}
	var toMove = common.X
	for {
		var result = common.Evaluate(&b)
		if result.Outcome != common.InProgress {
			assert.Equal(t, common.Draw, result.Outcome)
			return
		}
		move, err := engines[toMove].BestMove(&b)
		require.NoError(t, err)
		require.NoError(t, b.PlaceSquare(toMove, move))
		toMove = toMove.Other()
	}
}

// TestNeverLoses walks every legal line of play for the human side with
// the engine answering each position; the engine side must never lose.
func TestNeverLoses(t *testing.T) {
	for _, computer := range []common.Mark{common.X, common.O} {
		var e = NewEngine(computer)
		var b = common.NewBoard()
		playAllLines(t, e, &b, common.X)
	}
}

func playAllLines(t *testing.T, e *Engine, b *common.Board, toMove common.Mark) {
	var result = common.Evaluate(b)
	if result.Outcome != common.InProgress {
		require.False(t,
			result.Outcome == common.Won && result.Winner == e.Mark().Other(),
			"engine lost: %v", b.Vector())
		return
	}
	if toMove == e.Mark() {
		move, err := e.BestMove(b)
		require.NoError(t, err)
		require.NoError(t, b.PlaceSquare(toMove, move))
		playAllLines(t, e, b, toMove.Other())
		b.ClearSquare(move)
		return
	}
	for _, move := range b.AvailableMoves() {
		require.NoError(t, b.PlaceSquare(toMove, move))
		playAllLines(t, e, b, toMove.Other())
		b.ClearSquare(move)
	}
}
